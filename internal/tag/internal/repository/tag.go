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

	"github.com/ecodeclub/ekit/slice"
	"github.com/manabiya/manabiya/internal/tag/internal/domain"
	"github.com/manabiya/manabiya/internal/tag/internal/repository/dao"
)

//go:generate mockgen -source=./tag.go -package=repomocks -destination=mocks/tag.mock.go TagRepository
type TagRepository interface {
	GetOrCreate(ctx context.Context, name string) (domain.Tag, error)
	ReplaceContentTags(ctx context.Context, contentId int64, tagIds []int64) error
	NamesForContent(ctx context.Context, contentId int64) ([]string, error)
	Popular(ctx context.Context, limit int) ([]domain.TagCount, error)
	PopularForContents(ctx context.Context, contentIds []int64, limit int) ([]domain.TagCount, error)
}

type tagRepository struct {
	dao dao.TagDAO
}

func NewTagRepository(d dao.TagDAO) TagRepository {
	return &tagRepository{dao: d}
}

func (r *tagRepository) GetOrCreate(ctx context.Context, name string) (domain.Tag, error) {
	t, err := r.dao.GetOrCreate(ctx, name)
	if err != nil {
		return domain.Tag{}, err
	}
	return domain.Tag{Id: t.Id, Name: t.Name}, nil
}

func (r *tagRepository) ReplaceContentTags(ctx context.Context, contentId int64, tagIds []int64) error {
	return r.dao.ReplaceContentTags(ctx, contentId, tagIds)
}

func (r *tagRepository) NamesForContent(ctx context.Context, contentId int64) ([]string, error) {
	return r.dao.NamesOfContent(ctx, contentId)
}

func (r *tagRepository) Popular(ctx context.Context, limit int) ([]domain.TagCount, error) {
	tcs, err := r.dao.PopularNames(ctx, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(tcs, func(idx int, src dao.TagCount) domain.TagCount {
		return domain.TagCount{Name: src.Name, Cnt: src.Cnt}
	}), nil
}

func (r *tagRepository) PopularForContents(ctx context.Context,
	contentIds []int64, limit int) ([]domain.TagCount, error) {
	tcs, err := r.dao.PopularNamesOfContents(ctx, contentIds, limit)
	if err != nil {
		return nil, err
	}
	return slice.Map(tcs, func(idx int, src dao.TagCount) domain.TagCount {
		return domain.TagCount{Name: src.Name, Cnt: src.Cnt}
	}), nil
}
