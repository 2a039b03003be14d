package web

import (
	"time"

	"github.com/manabiya/manabiya/internal/curriculum/internal/domain"
)

type SaveReq struct {
	// Id 为 0 表示新建
	Id        int64    `json:"id"`
	TeamId    int64    `json:"teamId"`
	Name      string   `json:"name"`
	ExamStart *int64   `json:"examStart"`
	ExamEnd   *int64   `json:"examEnd"`
	Tags      []string `json:"tags"`
}

func (req SaveReq) toDomain() domain.StudySetting {
	return domain.StudySetting{
		Id:        req.Id,
		TeamId:    req.TeamId,
		Name:      req.Name,
		ExamStart: fromMilli(req.ExamStart),
		ExamEnd:   fromMilli(req.ExamEnd),
		Tags:      req.Tags,
	}
}

type SettingID struct {
	Id int64 `json:"id"`
}

type ListReq struct {
	TeamId int64 `json:"teamId"`
}

type StudySetting struct {
	Id        int64    `json:"id"`
	TeamId    int64    `json:"teamId"`
	Name      string   `json:"name"`
	ExamStart *int64   `json:"examStart"`
	ExamEnd   *int64   `json:"examEnd"`
	Tags      []string `json:"tags"`
	Ctime     int64    `json:"ctime"`
}

type StudySettingList struct {
	Settings []StudySetting `json:"settings"`
}

func newStudySetting(s domain.StudySetting) StudySetting {
	return StudySetting{
		Id:        s.Id,
		TeamId:    s.TeamId,
		Name:      s.Name,
		ExamStart: toMilli(s.ExamStart),
		ExamEnd:   toMilli(s.ExamEnd),
		Tags:      s.Tags,
		Ctime:     s.Ctime.UnixMilli(),
	}
}

func fromMilli(v *int64) *time.Time {
	if v == nil {
		return nil
	}
	t := time.UnixMilli(*v)
	return &t
}

func toMilli(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	v := t.UnixMilli()
	return &v
}
