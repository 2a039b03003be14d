package report

import (
	"sync"

	"github.com/ego-component/egorm"
	"github.com/manabiya/manabiya/internal/report/internal/repository/dao"
)

var once = &sync.Once{}

func InitTablesOnce(db *egorm.Component) dao.ReportDAO {
	once.Do(func() {
		err := dao.InitTables(db)
		if err != nil {
			panic(err)
		}
	})
	return dao.NewGORMReportDAO(db)
}
