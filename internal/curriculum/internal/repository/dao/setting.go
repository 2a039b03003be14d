// Copyright 2024 manabiya
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dao

import (
	"context"
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type StudySettingDAO interface {
	Insert(ctx context.Context, s StudySetting) (int64, error)
	Update(ctx context.Context, s StudySetting) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (StudySetting, error)
	FindByTeam(ctx context.Context, teamId int64) ([]StudySetting, error)
}

type GORMStudySettingDAO struct {
	db *egorm.Component
}

func NewGORMStudySettingDAO(db *egorm.Component) StudySettingDAO {
	return &GORMStudySettingDAO{db: db}
}

func (dao *GORMStudySettingDAO) Insert(ctx context.Context, s StudySetting) (int64, error) {
	now := time.Now().UnixMilli()
	s.Ctime = now
	s.Utime = now
	err := dao.db.WithContext(ctx).Create(&s).Error
	return s.Id, err
}

func (dao *GORMStudySettingDAO) Update(ctx context.Context, s StudySetting) error {
	return dao.db.WithContext(ctx).Model(&StudySetting{}).
		Where("id = ?", s.Id).
		Updates(map[string]any{
			"name":       s.Name,
			"exam_start": s.ExamStart,
			"exam_end":   s.ExamEnd,
			"tags":       s.Tags,
			"utime":      time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMStudySettingDAO) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).
		Where("id = ?", id).Delete(&StudySetting{}).Error
}

func (dao *GORMStudySettingDAO) FindById(ctx context.Context, id int64) (StudySetting, error) {
	var s StudySetting
	err := dao.db.WithContext(ctx).First(&s, "id = ?", id).Error
	return s, err
}

func (dao *GORMStudySettingDAO) FindByTeam(ctx context.Context, teamId int64) ([]StudySetting, error) {
	var ss []StudySetting
	err := dao.db.WithContext(ctx).
		Where("team_id = ?", teamId).
		Order("id").
		Find(&ss).Error
	return ss, err
}

type StudySetting struct {
	Id     int64 `gorm:"primaryKey,autoIncrement"`
	TeamId int64 `gorm:"index"`
	Name   string
	// ExamStart ExamEnd 毫秒时间戳，NULL 表示没配置
	ExamStart sql.NullInt64
	ExamEnd   sql.NullInt64
	Tags      sqlx.JsonColumn[[]string] `gorm:"type:json"`
	Ctime     int64
	Utime     int64
}
