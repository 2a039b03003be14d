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

	"github.com/manabiya/manabiya/internal/interactive/internal/domain"
	"github.com/manabiya/manabiya/internal/interactive/internal/repository"
)

var ErrInvalidType = errors.New("不支持的互动类型")

//go:generate mockgen -source=./interactive.go -package=intrmocks -destination=../../mocks/interactive.mock.go InteractiveService
type InteractiveService interface {
	// Add 幂等，重复点赞收藏不报错
	Add(ctx context.Context, uid, contentId int64, typ string) error
	// Remove 不存在时也不报错
	Remove(ctx context.Context, uid, contentId int64, typ string) error
	CountsForContent(ctx context.Context, contentId int64) (domain.Counts, error)
	Liked(ctx context.Context, uid, contentId int64) (bool, error)
	ContentIdsOf(ctx context.Context, uid int64, typ string) ([]int64, error)
}

type interactiveService struct {
	repo repository.InteractiveRepository
}

func NewInteractiveService(repo repository.InteractiveRepository) InteractiveService {
	return &interactiveService{repo: repo}
}

func (svc *interactiveService) Add(ctx context.Context, uid, contentId int64, typ string) error {
	if !validType(typ) {
		return ErrInvalidType
	}
	return svc.repo.Add(ctx, uid, contentId, typ)
}

func (svc *interactiveService) Remove(ctx context.Context, uid, contentId int64, typ string) error {
	if !validType(typ) {
		return ErrInvalidType
	}
	return svc.repo.Remove(ctx, uid, contentId, typ)
}

func (svc *interactiveService) CountsForContent(ctx context.Context, contentId int64) (domain.Counts, error) {
	return svc.repo.CountsForContent(ctx, contentId)
}

func (svc *interactiveService) Liked(ctx context.Context, uid, contentId int64) (bool, error) {
	return svc.repo.Has(ctx, uid, contentId, domain.TypeLike)
}

func (svc *interactiveService) ContentIdsOf(ctx context.Context, uid int64, typ string) ([]int64, error) {
	if !validType(typ) {
		return nil, ErrInvalidType
	}
	return svc.repo.ContentIdsOf(ctx, uid, typ)
}

func validType(typ string) bool {
	switch typ {
	case domain.TypeLike, domain.TypeSave, domain.TypeShare:
		return true
	default:
		return false
	}
}
