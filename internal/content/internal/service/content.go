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

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/manabiya/manabiya/internal/content/internal/domain"
	"github.com/manabiya/manabiya/internal/content/internal/repository"
	"github.com/manabiya/manabiya/internal/tag"
)

var (
	ErrContentNotFound    = repository.ErrContentNotFound
	ErrNotAuthor          = errors.New("只有作者本人可以修改内容")
	ErrInvalidOption      = errors.New("选项不属于这道题")
	ErrUnknownContentType = errors.New("未知的内容类型")
	ErrEmptyKeyword       = errors.New("搜索关键词不能为空")
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

//go:generate mockgen -source=./content.go -package=contentmocks -destination=../../mocks/content.mock.go ContentService
type ContentService interface {
	// Save id 为 0 新建，否则更新，更新时校验作者
	Save(ctx context.Context, c domain.Content) (int64, error)
	Delete(ctx context.Context, uid, id int64) error
	Detail(ctx context.Context, id int64) (domain.Content, error)
	MyPosts(ctx context.Context, uid int64) ([]domain.Content, error)
	ListByIds(ctx context.Context, ids []int64) ([]domain.Content, error)
	// PublishedSince 信息流候选集，按发布过滤，带作者昵称
	PublishedSince(ctx context.Context, since time.Time) ([]domain.Content, error)
	// ListPublished 按类型浏览已发布的内容，带标签
	ListPublished(ctx context.Context, typ string, limit, offset int) ([]domain.Content, error)
	// Search 标题或者正文的关键词搜索，只搜已发布的，返回命中总数
	Search(ctx context.Context, keyword string, limit, offset int) ([]domain.Content, int64, error)
	// Answer 判题并记录作答
	Answer(ctx context.Context, uid, contentId, optionId int64) (correct bool, explanation string, err error)
	MyAnswers(ctx context.Context, uid int64) ([]domain.Answer, error)
	// 看板用的统计口径
	IdsByAuthors(ctx context.Context, uids []int64) ([]int64, error)
	CountByAuthors(ctx context.Context, uids []int64) (int64, error)
	AnswerStatsOfUsers(ctx context.Context, uids []int64) (total int64, correct int64, err error)
}

type contentService struct {
	repo   repository.ContentRepository
	tagSvc tag.Service
}

func NewContentService(repo repository.ContentRepository, tagSvc tag.Service) ContentService {
	return &contentService{
		repo:   repo,
		tagSvc: tagSvc,
	}
}

func (svc *contentService) Save(ctx context.Context, c domain.Content) (int64, error) {
	if c.Type == domain.TypeTrivia {
		c.Options = nil
	}
	if c.Id == 0 {
		id, err := svc.repo.Create(ctx, c)
		if err != nil {
			return 0, err
		}
		return id, svc.tagSvc.BindContent(ctx, id, c.Tags)
	}
	old, err := svc.repo.FindById(ctx, c.Id)
	if err != nil {
		return 0, err
	}
	if old.AuthorId != c.AuthorId {
		return 0, ErrNotAuthor
	}
	// 内容类型创建之后不允许改
	c.Type = old.Type
	err = svc.repo.Update(ctx, c)
	if err != nil {
		return 0, err
	}
	return c.Id, svc.tagSvc.BindContent(ctx, c.Id, c.Tags)
}

func (svc *contentService) Delete(ctx context.Context, uid, id int64) error {
	old, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if old.AuthorId != uid {
		return ErrNotAuthor
	}
	err = svc.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	return svc.tagSvc.BindContent(ctx, id, nil)
}

func (svc *contentService) Detail(ctx context.Context, id int64) (domain.Content, error) {
	c, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return domain.Content{}, err
	}
	tags, err := svc.tagSvc.NamesForContent(ctx, id)
	if err != nil {
		return domain.Content{}, err
	}
	c.Tags = tags
	return c, nil
}

func (svc *contentService) MyPosts(ctx context.Context, uid int64) ([]domain.Content, error) {
	return svc.repo.FindByAuthor(ctx, uid)
}

func (svc *contentService) ListByIds(ctx context.Context, ids []int64) ([]domain.Content, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	return svc.repo.FindByIds(ctx, ids)
}

func (svc *contentService) PublishedSince(ctx context.Context, since time.Time) ([]domain.Content, error) {
	return svc.repo.PublishedSince(ctx, since)
}

func (svc *contentService) ListPublished(ctx context.Context, typ string, limit, offset int) ([]domain.Content, error) {
	if typ != domain.TypeQuiz && typ != domain.TypeTrivia {
		return nil, ErrUnknownContentType
	}
	cs, err := svc.repo.FindPublished(ctx, typ, normalizeLimit(limit), offset)
	if err != nil {
		return nil, err
	}
	return cs, svc.attachTags(ctx, cs)
}

func (svc *contentService) Search(ctx context.Context, keyword string, limit, offset int) ([]domain.Content, int64, error) {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return nil, 0, ErrEmptyKeyword
	}
	cs, total, err := svc.repo.Search(ctx, keyword, normalizeLimit(limit), offset)
	if err != nil {
		return nil, 0, err
	}
	return cs, total, svc.attachTags(ctx, cs)
}

func (svc *contentService) attachTags(ctx context.Context, cs []domain.Content) error {
	for i := range cs {
		tags, err := svc.tagSvc.NamesForContent(ctx, cs[i].Id)
		if err != nil {
			return err
		}
		cs[i].Tags = tags
	}
	return nil
}

func normalizeLimit(limit int) int {
	if limit <= 0 {
		return defaultPageSize
	}
	if limit > maxPageSize {
		return maxPageSize
	}
	return limit
}

func (svc *contentService) Answer(ctx context.Context, uid, contentId, optionId int64) (bool, string, error) {
	c, err := svc.repo.FindById(ctx, contentId)
	if err != nil {
		return false, "", err
	}
	opt, ownerId, err := svc.repo.OptionById(ctx, optionId)
	if err != nil {
		if errors.Is(err, ErrContentNotFound) {
			return false, "", ErrInvalidOption
		}
		return false, "", err
	}
	if ownerId != contentId {
		return false, "", ErrInvalidOption
	}
	_, err = svc.repo.CreateAnswer(ctx, domain.Answer{
		Uid:       uid,
		ContentId: contentId,
		OptionId:  optionId,
		Correct:   opt.Correct,
	})
	if err != nil {
		return false, "", err
	}
	return opt.Correct, c.Explanation, nil
}

func (svc *contentService) MyAnswers(ctx context.Context, uid int64) ([]domain.Answer, error) {
	return svc.repo.AnswersOfUser(ctx, uid)
}

func (svc *contentService) IdsByAuthors(ctx context.Context, uids []int64) ([]int64, error) {
	return svc.repo.IdsByAuthors(ctx, uids)
}

func (svc *contentService) CountByAuthors(ctx context.Context, uids []int64) (int64, error) {
	return svc.repo.CountByAuthors(ctx, uids)
}

func (svc *contentService) AnswerStatsOfUsers(ctx context.Context, uids []int64) (int64, int64, error) {
	return svc.repo.AnswerStatsOfUsers(ctx, uids)
}
