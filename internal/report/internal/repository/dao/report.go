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

	"github.com/ego-component/egorm"
	"gorm.io/gorm"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

const statusPending int32 = 0

type ReportDAO interface {
	Insert(ctx context.Context, r Report) (int64, error)
	FindById(ctx context.Context, id int64) (Report, error)
	FindByReporter(ctx context.Context, uid int64) ([]Report, error)
	// FindPendingByReporters 给教师看的待处理列表，只看自己班学生提交的
	FindPendingByReporters(ctx context.Context, uids []int64) ([]Report, error)
	PendingCountByReporters(ctx context.Context, uids []int64) (int64, error)
	// UpdateStatus 处理举报，记录处理人和处理时间
	UpdateStatus(ctx context.Context, id int64, status int32, resolverId int64, note string) error
}

type GORMReportDAO struct {
	db *egorm.Component
}

func NewGORMReportDAO(db *egorm.Component) ReportDAO {
	return &GORMReportDAO{db: db}
}

func (dao *GORMReportDAO) Insert(ctx context.Context, r Report) (int64, error) {
	now := time.Now().UnixMilli()
	r.Ctime = now
	r.Utime = now
	err := dao.db.WithContext(ctx).Create(&r).Error
	return r.Id, err
}

func (dao *GORMReportDAO) FindById(ctx context.Context, id int64) (Report, error) {
	var r Report
	err := dao.db.WithContext(ctx).First(&r, "id = ?", id).Error
	return r, err
}

func (dao *GORMReportDAO) FindByReporter(ctx context.Context, uid int64) ([]Report, error) {
	var rs []Report
	err := dao.db.WithContext(ctx).
		Where("reporter_id = ?", uid).
		Order("id DESC").
		Find(&rs).Error
	return rs, err
}

func (dao *GORMReportDAO) FindPendingByReporters(ctx context.Context, uids []int64) ([]Report, error) {
	if len(uids) == 0 {
		return nil, nil
	}
	var rs []Report
	err := dao.db.WithContext(ctx).
		Where("reporter_id IN ? AND status = ?", uids, statusPending).
		Order("id").
		Find(&rs).Error
	return rs, err
}

func (dao *GORMReportDAO) PendingCountByReporters(ctx context.Context, uids []int64) (int64, error) {
	if len(uids) == 0 {
		return 0, nil
	}
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Report{}).
		Where("reporter_id IN ? AND status = ?", uids, statusPending).
		Count(&cnt).Error
	return cnt, err
}

func (dao *GORMReportDAO) UpdateStatus(ctx context.Context,
	id int64, status int32, resolverId int64, note string) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Model(&Report{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":       status,
			"resolver_id":  resolverId,
			"resolve_note": note,
			"resolved_at":  sql.NullInt64{Int64: now, Valid: true},
			"utime":        now,
		}).Error
}

type Report struct {
	Id         int64 `gorm:"primaryKey,autoIncrement"`
	ContentId  int64 `gorm:"index"`
	ReporterId int64 `gorm:"index"`
	Category   string
	// Description 学生自己写的补充说明
	Description string `gorm:"type:text"`
	Status      int32  `gorm:"index"`
	ResolverId  int64
	ResolveNote string
	// ResolvedAt 毫秒数，没处理时是 NULL
	ResolvedAt sql.NullInt64
	Ctime      int64
	Utime      int64
}
