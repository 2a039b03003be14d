package tag

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/manabiya/manabiya/internal/tag/internal/repository/dao"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.TagDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMTagDAO(db)
}
