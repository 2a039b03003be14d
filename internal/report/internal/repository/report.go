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
	"github.com/manabiya/manabiya/internal/report/internal/domain"
	"github.com/manabiya/manabiya/internal/report/internal/repository/dao"
)

var ErrReportNotFound = dao.ErrRecordNotFound

//go:generate mockgen -source=./report.go -package=repomocks -destination=mocks/report.mock.go ReportRepository
type ReportRepository interface {
	Create(ctx context.Context, r domain.Report) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Report, error)
	FindByReporter(ctx context.Context, uid int64) ([]domain.Report, error)
	FindPendingByReporters(ctx context.Context, uids []int64) ([]domain.Report, error)
	PendingCountByReporters(ctx context.Context, uids []int64) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status domain.Status, resolverId int64, note string) error
}

type reportRepository struct {
	dao dao.ReportDAO
}

func NewReportRepository(d dao.ReportDAO) ReportRepository {
	return &reportRepository{dao: d}
}

func (r *reportRepository) Create(ctx context.Context, rep domain.Report) (int64, error) {
	return r.dao.Insert(ctx, dao.Report{
		ContentId:   rep.ContentId,
		ReporterId:  rep.ReporterId,
		Category:    rep.Category,
		Description: rep.Description,
		Status:      int32(domain.StatusPending),
	})
}

func (r *reportRepository) FindById(ctx context.Context, id int64) (domain.Report, error) {
	rep, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Report{}, err
	}
	return r.toDomain(rep), nil
}

func (r *reportRepository) FindByReporter(ctx context.Context, uid int64) ([]domain.Report, error) {
	reps, err := r.dao.FindByReporter(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(reps, func(idx int, src dao.Report) domain.Report {
		return r.toDomain(src)
	}), nil
}

func (r *reportRepository) FindPendingByReporters(ctx context.Context, uids []int64) ([]domain.Report, error) {
	reps, err := r.dao.FindPendingByReporters(ctx, uids)
	if err != nil {
		return nil, err
	}
	return slice.Map(reps, func(idx int, src dao.Report) domain.Report {
		return r.toDomain(src)
	}), nil
}

func (r *reportRepository) PendingCountByReporters(ctx context.Context, uids []int64) (int64, error) {
	return r.dao.PendingCountByReporters(ctx, uids)
}

func (r *reportRepository) UpdateStatus(ctx context.Context,
	id int64, status domain.Status, resolverId int64, note string) error {
	return r.dao.UpdateStatus(ctx, id, int32(status), resolverId, note)
}

func (r *reportRepository) toDomain(rep dao.Report) domain.Report {
	res := domain.Report{
		Id:          rep.Id,
		ContentId:   rep.ContentId,
		ReporterId:  rep.ReporterId,
		Category:    rep.Category,
		Description: rep.Description,
		Status:      domain.Status(rep.Status),
		ResolverId:  rep.ResolverId,
		ResolveNote: rep.ResolveNote,
		Ctime:       time.UnixMilli(rep.Ctime),
	}
	if rep.ResolvedAt.Valid {
		t := time.UnixMilli(rep.ResolvedAt.Int64)
		res.ResolvedAt = &t
	}
	return res
}
