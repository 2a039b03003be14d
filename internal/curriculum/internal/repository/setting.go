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
	"database/sql"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/manabiya/manabiya/internal/curriculum/internal/domain"
	"github.com/manabiya/manabiya/internal/curriculum/internal/repository/dao"
)

var ErrSettingNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./setting.go -package=repomocks -destination=mocks/setting.mock.go StudySettingRepository
type StudySettingRepository interface {
	Create(ctx context.Context, s domain.StudySetting) (int64, error)
	Update(ctx context.Context, s domain.StudySetting) error
	Delete(ctx context.Context, id int64) error
	FindById(ctx context.Context, id int64) (domain.StudySetting, error)
	FindByTeam(ctx context.Context, teamId int64) ([]domain.StudySetting, error)
}

type studySettingRepository struct {
	dao dao.StudySettingDAO
}

func NewStudySettingRepository(d dao.StudySettingDAO) StudySettingRepository {
	return &studySettingRepository{dao: d}
}

func (r *studySettingRepository) Create(ctx context.Context, s domain.StudySetting) (int64, error) {
	return r.dao.Insert(ctx, r.toEntity(s))
}

func (r *studySettingRepository) Update(ctx context.Context, s domain.StudySetting) error {
	return r.dao.Update(ctx, r.toEntity(s))
}

func (r *studySettingRepository) Delete(ctx context.Context, id int64) error {
	return r.dao.Delete(ctx, id)
}

func (r *studySettingRepository) FindById(ctx context.Context, id int64) (domain.StudySetting, error) {
	s, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.StudySetting{}, err
	}
	return r.toDomain(s), nil
}

func (r *studySettingRepository) FindByTeam(ctx context.Context, teamId int64) ([]domain.StudySetting, error) {
	ss, err := r.dao.FindByTeam(ctx, teamId)
	if err != nil {
		return nil, err
	}
	return slice.Map(ss, func(idx int, src dao.StudySetting) domain.StudySetting {
		return r.toDomain(src)
	}), nil
}

func (r *studySettingRepository) toEntity(s domain.StudySetting) dao.StudySetting {
	return dao.StudySetting{
		Id:        s.Id,
		TeamId:    s.TeamId,
		Name:      s.Name,
		ExamStart: toNullMilli(s.ExamStart),
		ExamEnd:   toNullMilli(s.ExamEnd),
		Tags: sqlx.JsonColumn[[]string]{
			Val:   s.Tags,
			Valid: true,
		},
	}
}

func (r *studySettingRepository) toDomain(s dao.StudySetting) domain.StudySetting {
	return domain.StudySetting{
		Id:        s.Id,
		TeamId:    s.TeamId,
		Name:      s.Name,
		ExamStart: fromNullMilli(s.ExamStart),
		ExamEnd:   fromNullMilli(s.ExamEnd),
		Tags:      s.Tags.Val,
		Ctime:     time.UnixMilli(s.Ctime),
	}
}

func toNullMilli(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

func fromNullMilli(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64)
	return &t
}
