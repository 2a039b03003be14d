package domain

import "time"

type Status int32

const (
	// StatusPending 待处理
	StatusPending Status = 0
	// StatusResolved 已处理
	StatusResolved Status = 1
	// StatusRejected 已驳回
	StatusRejected Status = 2
)

const (
	CategoryInappropriate = "inappropriate"
	CategoryIncorrect     = "incorrect"
	CategorySpam          = "spam"
	CategoryOther         = "other"
)

type Report struct {
	Id          int64
	ContentId   int64
	ReporterId  int64
	Category    string
	Description string
	Status      Status
	// ResolverId 处理这条举报的教师，待处理时为零
	ResolverId  int64
	ResolveNote string
	ResolvedAt  *time.Time
	Ctime       time.Time

	// 列表展示的时候补充的字段，不落库
	ReporterNickname string
	ContentTitle     string
}
