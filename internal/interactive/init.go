package interactive

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/manabiya/manabiya/internal/interactive/internal/repository/dao"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.InteractiveDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMInteractiveDAO(db)
}
