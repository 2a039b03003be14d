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
	"time"

	"github.com/ego-component/egorm"
	"gorm.io/gorm/clause"
)

type InteractiveDAO interface {
	// Insert 幂等，重复插入同一条互动直接忽略
	Insert(ctx context.Context, i UserInteraction) error
	// Delete 记录不存在时不算错误
	Delete(ctx context.Context, uid, contentId int64, typ string) error
	CountsByContent(ctx context.Context, contentId int64) ([]TypeCount, error)
	Exists(ctx context.Context, uid, contentId int64, typ string) (bool, error)
	ContentIdsOfUser(ctx context.Context, uid int64, typ string) ([]int64, error)
}

type GORMInteractiveDAO struct {
	db *egorm.Component
}

func NewGORMInteractiveDAO(db *egorm.Component) InteractiveDAO {
	return &GORMInteractiveDAO{db: db}
}

func (dao *GORMInteractiveDAO) Insert(ctx context.Context, i UserInteraction) error {
	now := time.Now().UnixMilli()
	i.Ctime = now
	i.Utime = now
	return dao.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&i).Error
}

func (dao *GORMInteractiveDAO) Delete(ctx context.Context, uid, contentId int64, typ string) error {
	return dao.db.WithContext(ctx).
		Where("uid = ? AND content_id = ? AND type = ?", uid, contentId, typ).
		Delete(&UserInteraction{}).Error
}

func (dao *GORMInteractiveDAO) CountsByContent(ctx context.Context, contentId int64) ([]TypeCount, error) {
	var res []TypeCount
	err := dao.db.WithContext(ctx).Model(&UserInteraction{}).
		Select("type, COUNT(id) AS cnt").
		Where("content_id = ?", contentId).
		Group("type").
		Scan(&res).Error
	return res, err
}

func (dao *GORMInteractiveDAO) Exists(ctx context.Context, uid, contentId int64, typ string) (bool, error) {
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&UserInteraction{}).
		Where("uid = ? AND content_id = ? AND type = ?", uid, contentId, typ).
		Count(&cnt).Error
	return cnt > 0, err
}

func (dao *GORMInteractiveDAO) ContentIdsOfUser(ctx context.Context, uid int64, typ string) ([]int64, error) {
	var ids []int64
	err := dao.db.WithContext(ctx).Model(&UserInteraction{}).
		Select("content_id").
		Where("uid = ? AND type = ?", uid, typ).
		Order("id DESC").
		Scan(&ids).Error
	return ids, err
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&UserInteraction{})
}

type UserInteraction struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	Uid       int64  `gorm:"uniqueIndex:uidx_uid_content_type"`
	ContentId int64  `gorm:"uniqueIndex:uidx_uid_content_type;index"`
	Type      string `gorm:"type:varchar(16);uniqueIndex:uidx_uid_content_type"`
	Ctime     int64
	Utime     int64
}

type TypeCount struct {
	Type string
	Cnt  int64
}
