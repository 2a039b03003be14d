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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/manabiya/manabiya/internal/content/internal/domain"
	"github.com/manabiya/manabiya/internal/content/internal/repository/dao"
)

var ErrContentNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./content.go -package=repomocks -destination=mocks/content.mock.go ContentRepository
type ContentRepository interface {
	Create(ctx context.Context, c domain.Content) (int64, error)
	Update(ctx context.Context, c domain.Content) error
	Delete(ctx context.Context, id int64) error
	// FindById 带选项
	FindById(ctx context.Context, id int64) (domain.Content, error)
	FindByIds(ctx context.Context, ids []int64) ([]domain.Content, error)
	FindByAuthor(ctx context.Context, uid int64) ([]domain.Content, error)
	OptionById(ctx context.Context, id int64) (domain.Option, int64, error)
	PublishedSince(ctx context.Context, since time.Time) ([]domain.Content, error)
	FindPublished(ctx context.Context, typ string, limit, offset int) ([]domain.Content, error)
	// Search 模糊搜索已发布的内容，带命中总数
	Search(ctx context.Context, keyword string, limit, offset int) ([]domain.Content, int64, error)
	IdsByAuthors(ctx context.Context, uids []int64) ([]int64, error)
	CountByAuthors(ctx context.Context, uids []int64) (int64, error)
	CreateAnswer(ctx context.Context, a domain.Answer) (int64, error)
	AnswersOfUser(ctx context.Context, uid int64) ([]domain.Answer, error)
	AnswerStatsOfUsers(ctx context.Context, uids []int64) (total int64, correct int64, err error)
}

type contentRepository struct {
	dao dao.ContentDAO
}

func NewContentRepository(d dao.ContentDAO) ContentRepository {
	return &contentRepository{dao: d}
}

func (r *contentRepository) Create(ctx context.Context, c domain.Content) (int64, error) {
	return r.dao.InsertWithOptions(ctx, r.toEntity(c), r.toOptionEntities(c.Options))
}

func (r *contentRepository) Update(ctx context.Context, c domain.Content) error {
	return r.dao.UpdateWithOptions(ctx, r.toEntity(c), r.toOptionEntities(c.Options))
}

func (r *contentRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *contentRepository) FindById(ctx context.Context, id int64) (domain.Content, error) {
	c, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Content{}, err
	}
	res := r.toDomain(c)
	if c.Type == domain.TypeQuiz {
		opts, err := r.dao.OptionsOf(ctx, id)
		if err != nil {
			return domain.Content{}, err
		}
		res.Options = slice.Map(opts, func(idx int, src dao.QuizOption) domain.Option {
			return r.toOptionDomain(src)
		})
	}
	return res, nil
}

func (r *contentRepository) FindByIds(ctx context.Context, ids []int64) ([]domain.Content, error) {
	cs, err := r.dao.FindByIds(ctx, ids)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Content) domain.Content {
		return r.toDomain(src)
	}), nil
}

func (r *contentRepository) FindByAuthor(ctx context.Context, uid int64) ([]domain.Content, error) {
	cs, err := r.dao.FindByAuthor(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Content) domain.Content {
		return r.toDomain(src)
	}), nil
}

func (r *contentRepository) OptionById(ctx context.Context, id int64) (domain.Option, int64, error) {
	opt, err := r.dao.OptionById(ctx, id)
	if err != nil {
		return domain.Option{}, 0, err
	}
	return r.toOptionDomain(opt), opt.ContentId, nil
}

func (r *contentRepository) PublishedSince(ctx context.Context, since time.Time) ([]domain.Content, error) {
	cs, err := r.dao.PublishedSince(ctx, since.UnixMilli())
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.ContentWithAuthor) domain.Content {
		c := r.toDomain(src.Content)
		c.AuthorNickname = src.AuthorNickname
		return c
	}), nil
}

func (r *contentRepository) FindPublished(ctx context.Context, typ string, limit, offset int) ([]domain.Content, error) {
	cs, err := r.dao.FindPublished(ctx, typ, limit, offset)
	if err != nil {
		return nil, err
	}
	return slice.Map(cs, func(idx int, src dao.Content) domain.Content {
		return r.toDomain(src)
	}), nil
}

func (r *contentRepository) Search(ctx context.Context, keyword string, limit, offset int) ([]domain.Content, int64, error) {
	total, err := r.dao.CountSearchPublished(ctx, keyword)
	if err != nil {
		return nil, 0, err
	}
	cs, err := r.dao.SearchPublished(ctx, keyword, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	return slice.Map(cs, func(idx int, src dao.Content) domain.Content {
		return r.toDomain(src)
	}), total, nil
}

func (r *contentRepository) IdsByAuthors(ctx context.Context, uids []int64) ([]int64, error) {
	return r.dao.IdsByAuthors(ctx, uids)
}

func (r *contentRepository) CountByAuthors(ctx context.Context, uids []int64) (int64, error) {
	return r.dao.CountByAuthors(ctx, uids)
}

func (r *contentRepository) CreateAnswer(ctx context.Context, a domain.Answer) (int64, error) {
	return r.dao.InsertAnswer(ctx, dao.Answer{
		Uid:       a.Uid,
		ContentId: a.ContentId,
		OptionId:  a.OptionId,
		Correct:   a.Correct,
	})
}

func (r *contentRepository) AnswersOfUser(ctx context.Context, uid int64) ([]domain.Answer, error) {
	as, err := r.dao.AnswersOfUser(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(as, func(idx int, src dao.Answer) domain.Answer {
		return domain.Answer{
			Id:        src.Id,
			Uid:       src.Uid,
			ContentId: src.ContentId,
			OptionId:  src.OptionId,
			Correct:   src.Correct,
			Ctime:     time.UnixMilli(src.Ctime),
		}
	}), nil
}

func (r *contentRepository) AnswerStatsOfUsers(ctx context.Context, uids []int64) (int64, int64, error) {
	return r.dao.AnswerStatsOfUsers(ctx, uids)
}

func (r *contentRepository) toEntity(c domain.Content) dao.Content {
	return dao.Content{
		Id:          c.Id,
		Type:        c.Type,
		Title:       c.Title,
		Body:        c.Body,
		Explanation: c.Explanation,
		AuthorId:    c.AuthorId,
		Published:   c.Published,
	}
}

func (r *contentRepository) toOptionEntities(opts []domain.Option) []dao.QuizOption {
	return slice.Map(opts, func(idx int, src domain.Option) dao.QuizOption {
		return dao.QuizOption{
			Idx:     src.Idx,
			Text:    src.Text,
			Correct: src.Correct,
		}
	})
}

func (r *contentRepository) toDomain(c dao.Content) domain.Content {
	return domain.Content{
		Id:          c.Id,
		Type:        c.Type,
		Title:       c.Title,
		Body:        c.Body,
		Explanation: c.Explanation,
		AuthorId:    c.AuthorId,
		Published:   c.Published,
		Ctime:       time.UnixMilli(c.Ctime),
	}
}

func (r *contentRepository) toOptionDomain(opt dao.QuizOption) domain.Option {
	return domain.Option{
		Id:      opt.Id,
		Idx:     opt.Idx,
		Text:    opt.Text,
		Correct: opt.Correct,
	}
}
