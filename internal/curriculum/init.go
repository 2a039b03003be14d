package curriculum

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/manabiya/manabiya/internal/curriculum/internal/repository/dao"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.StudySettingDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMStudySettingDAO(db)
}
