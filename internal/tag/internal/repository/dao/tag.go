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
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type TagDAO interface {
	// GetOrCreate 并发安全，name 上有唯一索引，冲突时直接读已有的
	GetOrCreate(ctx context.Context, name string) (Tag, error)
	FindByNames(ctx context.Context, names []string) ([]Tag, error)
	// ReplaceContentTags 覆盖一个内容的全部标签绑定
	ReplaceContentTags(ctx context.Context, contentId int64, tagIds []int64) error
	NamesOfContent(ctx context.Context, contentId int64) ([]string, error)
	// PopularNames 按绑定次数倒序
	PopularNames(ctx context.Context, limit int) ([]TagCount, error)
	// PopularNamesOfContents 只统计给定内容上的绑定
	PopularNamesOfContents(ctx context.Context, contentIds []int64, limit int) ([]TagCount, error)
}

type GORMTagDAO struct {
	db *egorm.Component
}

func NewGORMTagDAO(db *egorm.Component) TagDAO {
	return &GORMTagDAO{db: db}
}

func (dao *GORMTagDAO) GetOrCreate(ctx context.Context, name string) (Tag, error) {
	now := time.Now().UnixMilli()
	t := Tag{
		Name:  name,
		Ctime: now,
		Utime: now,
	}
	err := dao.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&t).Error
	if err != nil {
		return Tag{}, err
	}
	// OnConflict DoNothing 的时候拿不到已有记录的 id，再查一次
	if t.Id == 0 {
		err = dao.db.WithContext(ctx).First(&t, "name = ?", name).Error
	}
	return t, err
}

func (dao *GORMTagDAO) FindByNames(ctx context.Context, names []string) ([]Tag, error) {
	var ts []Tag
	err := dao.db.WithContext(ctx).
		Where("name IN ?", names).Find(&ts).Error
	return ts, err
}

func (dao *GORMTagDAO) ReplaceContentTags(ctx context.Context, contentId int64, tagIds []int64) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("content_id = ?", contentId).Delete(&ContentTag{}).Error
		if err != nil {
			return err
		}
		if len(tagIds) == 0 {
			return nil
		}
		cts := make([]ContentTag, 0, len(tagIds))
		for _, tid := range tagIds {
			cts = append(cts, ContentTag{
				ContentId: contentId,
				TagId:     tid,
				Ctime:     now,
				Utime:     now,
			})
		}
		return tx.Create(&cts).Error
	})
}

func (dao *GORMTagDAO) NamesOfContent(ctx context.Context, contentId int64) ([]string, error) {
	var names []string
	err := dao.db.WithContext(ctx).Model(&ContentTag{}).
		Select("tags.name").
		Joins("JOIN tags ON tags.id = content_tags.tag_id").
		Where("content_tags.content_id = ?", contentId).
		Order("content_tags.id").
		Scan(&names).Error
	return names, err
}

func (dao *GORMTagDAO) PopularNames(ctx context.Context, limit int) ([]TagCount, error) {
	var res []TagCount
	err := dao.db.WithContext(ctx).Model(&ContentTag{}).
		Select("tags.name AS name, COUNT(content_tags.id) AS cnt").
		Joins("JOIN tags ON tags.id = content_tags.tag_id").
		Group("tags.name").
		Order("cnt DESC").
		Limit(limit).
		Scan(&res).Error
	return res, err
}

func (dao *GORMTagDAO) PopularNamesOfContents(ctx context.Context,
	contentIds []int64, limit int) ([]TagCount, error) {
	if len(contentIds) == 0 {
		return nil, nil
	}
	var res []TagCount
	err := dao.db.WithContext(ctx).Model(&ContentTag{}).
		Select("tags.name AS name, COUNT(content_tags.id) AS cnt").
		Joins("JOIN tags ON tags.id = content_tags.tag_id").
		Where("content_tags.content_id IN ?", contentIds).
		Group("tags.name").
		Order("cnt DESC").
		Limit(limit).
		Scan(&res).Error
	return res, err
}

type Tag struct {
	Id    int64  `gorm:"primaryKey,autoIncrement"`
	Name  string `gorm:"type:varchar(128);unique"`
	Ctime int64
	Utime int64
}

type ContentTag struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	ContentId int64 `gorm:"uniqueIndex:uidx_content_tag"`
	TagId     int64 `gorm:"uniqueIndex:uidx_content_tag"`
	Ctime     int64
	Utime     int64
}

type TagCount struct {
	Name string
	Cnt  int64
}
