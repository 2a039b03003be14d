package content

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/manabiya/manabiya/internal/content/internal/repository/dao"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ContentDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMContentDAO(db)
}
