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
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ContentDAO interface {
	// InsertWithOptions 内容和选项在一个事务里落库
	InsertWithOptions(ctx context.Context, c Content, opts []QuizOption) (int64, error)
	// UpdateWithOptions 更新内容并整体替换选项
	UpdateWithOptions(ctx context.Context, c Content, opts []QuizOption) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (Content, error)
	FindByIds(ctx context.Context, ids []int64) ([]Content, error)
	FindByAuthor(ctx context.Context, uid int64) ([]Content, error)
	OptionsOf(ctx context.Context, contentId int64) ([]QuizOption, error)
	OptionById(ctx context.Context, id int64) (QuizOption, error)
	// PublishedSince 信息流候选集，带作者昵称
	PublishedSince(ctx context.Context, since int64) ([]ContentWithAuthor, error)
	// FindPublished 按类型浏览已发布的内容，新的在前
	FindPublished(ctx context.Context, typ string, limit, offset int) ([]Content, error)
	// SearchPublished 标题或者正文模糊匹配，只搜已发布的
	SearchPublished(ctx context.Context, keyword string, limit, offset int) ([]Content, error)
	CountSearchPublished(ctx context.Context, keyword string) (int64, error)
	IdsByAuthors(ctx context.Context, uids []int64) ([]int64, error)
	CountByAuthors(ctx context.Context, uids []int64) (int64, error)
	InsertAnswer(ctx context.Context, a Answer) (int64, error)
	AnswersOfUser(ctx context.Context, uid int64) ([]Answer, error)
	// AnswerStatsOfUsers 学生群体的作答总数和答对数
	AnswerStatsOfUsers(ctx context.Context, uids []int64) (total int64, correct int64, err error)
}

type GORMContentDAO struct {
	db *egorm.Component
}

func NewGORMContentDAO(db *egorm.Component) ContentDAO {
	return &GORMContentDAO{db: db}
}

func (dao *GORMContentDAO) InsertWithOptions(ctx context.Context, c Content, opts []QuizOption) (int64, error) {
	now := time.Now().UnixMilli()
	c.Ctime = now
	c.Utime = now
	err := dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&c).Error; err != nil {
			return err
		}
		if len(opts) == 0 {
			return nil
		}
		for i := range opts {
			opts[i].ContentId = c.Id
			opts[i].Ctime = now
			opts[i].Utime = now
		}
		return tx.Create(&opts).Error
	})
	return c.Id, err
}

func (dao *GORMContentDAO) UpdateWithOptions(ctx context.Context, c Content, opts []QuizOption) error {
	now := time.Now().UnixMilli()
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Model(&Content{}).
			Where("id = ?", c.Id).
			Updates(map[string]any{
				"title":       c.Title,
				"body":        c.Body,
				"explanation": c.Explanation,
				"published":   c.Published,
				"utime":       now,
			}).Error
		if err != nil {
			return err
		}
		err = tx.Where("content_id = ?", c.Id).Delete(&QuizOption{}).Error
		if err != nil {
			return err
		}
		if len(opts) == 0 {
			return nil
		}
		for i := range opts {
			opts[i].Id = 0
			opts[i].ContentId = c.Id
			opts[i].Ctime = now
			opts[i].Utime = now
		}
		return tx.Create(&opts).Error
	})
}

func (dao *GORMContentDAO) Delete(ctx context.Context, id int64) error {
	return dao.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("content_id = ?", id).Delete(&QuizOption{}).Error
		if err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&Content{}).Error
	})
}

func (dao *GORMContentDAO) FindById(ctx context.Context, id int64) (Content, error) {
	var c Content
	err := dao.db.WithContext(ctx).First(&c, "id = ?", id).Error
	return c, err
}

func (dao *GORMContentDAO) FindByIds(ctx context.Context, ids []int64) ([]Content, error) {
	var cs []Content
	err := dao.db.WithContext(ctx).
		Where("id IN ?", ids).Find(&cs).Error
	return cs, err
}

func (dao *GORMContentDAO) FindByAuthor(ctx context.Context, uid int64) ([]Content, error) {
	var cs []Content
	err := dao.db.WithContext(ctx).
		Where("author_id = ?", uid).
		Order("id DESC").
		Find(&cs).Error
	return cs, err
}

func (dao *GORMContentDAO) OptionsOf(ctx context.Context, contentId int64) ([]QuizOption, error) {
	var opts []QuizOption
	err := dao.db.WithContext(ctx).
		Where("content_id = ?", contentId).
		Order("idx").
		Find(&opts).Error
	return opts, err
}

func (dao *GORMContentDAO) OptionById(ctx context.Context, id int64) (QuizOption, error) {
	var opt QuizOption
	err := dao.db.WithContext(ctx).First(&opt, "id = ?", id).Error
	return opt, err
}

func (dao *GORMContentDAO) PublishedSince(ctx context.Context, since int64) ([]ContentWithAuthor, error) {
	var res []ContentWithAuthor
	err := dao.db.WithContext(ctx).Model(&Content{}).
		Select("contents.*, users.nickname AS author_nickname").
		Joins("JOIN users ON users.id = contents.author_id").
		Where("contents.published = ? AND contents.ctime > ?", true, since).
		Order("contents.id").
		Scan(&res).Error
	return res, err
}

func (dao *GORMContentDAO) FindPublished(ctx context.Context, typ string, limit, offset int) ([]Content, error) {
	var cs []Content
	err := dao.db.WithContext(ctx).
		Where("type = ? AND published = ?", typ, true).
		Order("ctime DESC").
		Limit(limit).Offset(offset).
		Find(&cs).Error
	return cs, err
}

func (dao *GORMContentDAO) SearchPublished(ctx context.Context, keyword string, limit, offset int) ([]Content, error) {
	var cs []Content
	pattern := "%" + keyword + "%"
	err := dao.db.WithContext(ctx).
		Where("(title LIKE ? OR body LIKE ?) AND published = ?", pattern, pattern, true).
		Order("ctime DESC").
		Limit(limit).Offset(offset).
		Find(&cs).Error
	return cs, err
}

func (dao *GORMContentDAO) CountSearchPublished(ctx context.Context, keyword string) (int64, error) {
	var cnt int64
	pattern := "%" + keyword + "%"
	err := dao.db.WithContext(ctx).Model(&Content{}).
		Where("(title LIKE ? OR body LIKE ?) AND published = ?", pattern, pattern, true).
		Count(&cnt).Error
	return cnt, err
}

func (dao *GORMContentDAO) IdsByAuthors(ctx context.Context, uids []int64) ([]int64, error) {
	if len(uids) == 0 {
		return nil, nil
	}
	var ids []int64
	err := dao.db.WithContext(ctx).Model(&Content{}).
		Select("id").
		Where("author_id IN ?", uids).
		Scan(&ids).Error
	return ids, err
}

func (dao *GORMContentDAO) CountByAuthors(ctx context.Context, uids []int64) (int64, error) {
	if len(uids) == 0 {
		return 0, nil
	}
	var cnt int64
	err := dao.db.WithContext(ctx).Model(&Content{}).
		Where("author_id IN ?", uids).
		Count(&cnt).Error
	return cnt, err
}

func (dao *GORMContentDAO) InsertAnswer(ctx context.Context, a Answer) (int64, error) {
	now := time.Now().UnixMilli()
	a.Ctime = now
	a.Utime = now
	err := dao.db.WithContext(ctx).Create(&a).Error
	return a.Id, err
}

func (dao *GORMContentDAO) AnswersOfUser(ctx context.Context, uid int64) ([]Answer, error) {
	var as []Answer
	err := dao.db.WithContext(ctx).
		Where("uid = ?", uid).
		Order("id DESC").
		Find(&as).Error
	return as, err
}

func (dao *GORMContentDAO) AnswerStatsOfUsers(ctx context.Context, uids []int64) (int64, int64, error) {
	if len(uids) == 0 {
		return 0, 0, nil
	}
	var stats struct {
		Total   int64
		Correct int64
	}
	err := dao.db.WithContext(ctx).Model(&Answer{}).
		Select("COUNT(id) AS total, SUM(CASE WHEN correct THEN 1 ELSE 0 END) AS correct").
		Where("uid IN ?", uids).
		Scan(&stats).Error
	return stats.Total, stats.Correct, err
}

type Content struct {
	Id          int64  `gorm:"primaryKey,autoIncrement"`
	Type        string `gorm:"type:varchar(16);index"`
	Title       string `gorm:"type:varchar(512)"`
	Body        string `gorm:"type:text"`
	Explanation string `gorm:"type:text"`
	AuthorId    int64  `gorm:"index"`
	Published   bool   `gorm:"index"`
	Ctime       int64  `gorm:"index"`
	Utime       int64
}

// ContentWithAuthor 候选集查询的投影结果
type ContentWithAuthor struct {
	Content
	AuthorNickname string
}

type QuizOption struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	ContentId int64 `gorm:"index"`
	Idx       int
	Text      string `gorm:"type:text"`
	Correct   bool
	Ctime     int64
	Utime     int64
}

type Answer struct {
	Id        int64 `gorm:"primaryKey,autoIncrement"`
	Uid       int64 `gorm:"index"`
	ContentId int64 `gorm:"index"`
	OptionId  int64
	Correct   bool
	Ctime     int64
	Utime     int64
}
