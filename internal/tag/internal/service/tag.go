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
	"strings"

	"github.com/manabiya/manabiya/internal/tag/internal/domain"
	"github.com/manabiya/manabiya/internal/tag/internal/repository"
)

//go:generate mockgen -source=./tag.go -package=tagmocks -destination=../../mocks/tag.mock.go TagService
type TagService interface {
	// EnsureByNames 按名字找或建，输入会去空白、去重，保留顺序
	EnsureByNames(ctx context.Context, names []string) ([]domain.Tag, error)
	// BindContent 用这批名字覆盖内容的标签
	BindContent(ctx context.Context, contentId int64, names []string) error
	NamesForContent(ctx context.Context, contentId int64) ([]string, error)
	Popular(ctx context.Context, limit int) ([]domain.TagCount, error)
	// PopularForContents 只在给定内容范围内统计热门标签
	PopularForContents(ctx context.Context, contentIds []int64, limit int) ([]domain.TagCount, error)
}

type tagService struct {
	repo repository.TagRepository
}

func NewTagService(repo repository.TagRepository) TagService {
	return &tagService{repo: repo}
}

func (svc *tagService) EnsureByNames(ctx context.Context, names []string) ([]domain.Tag, error) {
	cleaned := normalize(names)
	res := make([]domain.Tag, 0, len(cleaned))
	for _, name := range cleaned {
		t, err := svc.repo.GetOrCreate(ctx, name)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

func (svc *tagService) BindContent(ctx context.Context, contentId int64, names []string) error {
	ts, err := svc.EnsureByNames(ctx, names)
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.Id)
	}
	return svc.repo.ReplaceContentTags(ctx, contentId, ids)
}

func (svc *tagService) NamesForContent(ctx context.Context, contentId int64) ([]string, error) {
	return svc.repo.NamesForContent(ctx, contentId)
}

func (svc *tagService) Popular(ctx context.Context, limit int) ([]domain.TagCount, error) {
	return svc.repo.Popular(ctx, limit)
}

func (svc *tagService) PopularForContents(ctx context.Context,
	contentIds []int64, limit int) ([]domain.TagCount, error) {
	if len(contentIds) == 0 {
		return nil, nil
	}
	return svc.repo.PopularForContents(ctx, contentIds, limit)
}

func normalize(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	res := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		res = append(res, name)
	}
	return res
}
