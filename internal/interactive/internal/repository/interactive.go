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

	"github.com/manabiya/manabiya/internal/interactive/internal/domain"
	"github.com/manabiya/manabiya/internal/interactive/internal/repository/dao"
)

//go:generate mockgen -source=./interactive.go -package=repomocks -destination=mocks/interactive.mock.go InteractiveRepository
type InteractiveRepository interface {
	Add(ctx context.Context, uid, contentId int64, typ string) error
	Remove(ctx context.Context, uid, contentId int64, typ string) error
	CountsForContent(ctx context.Context, contentId int64) (domain.Counts, error)
	Has(ctx context.Context, uid, contentId int64, typ string) (bool, error)
	ContentIdsOf(ctx context.Context, uid int64, typ string) ([]int64, error)
}

type interactiveRepository struct {
	dao dao.InteractiveDAO
}

func NewInteractiveRepository(d dao.InteractiveDAO) InteractiveRepository {
	return &interactiveRepository{dao: d}
}

func (r *interactiveRepository) Add(ctx context.Context, uid, contentId int64, typ string) error {
	return r.dao.Insert(ctx, dao.UserInteraction{
		Uid:       uid,
		ContentId: contentId,
		Type:      typ,
	})
}

func (r *interactiveRepository) Remove(ctx context.Context, uid, contentId int64, typ string) error {
	return r.dao.Delete(ctx, uid, contentId, typ)
}

func (r *interactiveRepository) CountsForContent(ctx context.Context, contentId int64) (domain.Counts, error) {
	tcs, err := r.dao.CountsByContent(ctx, contentId)
	if err != nil {
		return domain.Counts{}, err
	}
	var res domain.Counts
	for _, tc := range tcs {
		switch tc.Type {
		case domain.TypeLike:
			res.LikeCnt = tc.Cnt
		case domain.TypeSave:
			res.SaveCnt = tc.Cnt
		case domain.TypeShare:
			res.ShareCnt = tc.Cnt
		}
	}
	return res, nil
}

func (r *interactiveRepository) Has(ctx context.Context, uid, contentId int64, typ string) (bool, error) {
	return r.dao.Exists(ctx, uid, contentId, typ)
}

func (r *interactiveRepository) ContentIdsOf(ctx context.Context, uid int64, typ string) ([]int64, error) {
	return r.dao.ContentIdsOfUser(ctx, uid, typ)
}
