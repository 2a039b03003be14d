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

	"github.com/ecodeclub/ekit/slice"
	"github.com/manabiya/manabiya/internal/content"
	"github.com/manabiya/manabiya/internal/report/internal/domain"
	"github.com/manabiya/manabiya/internal/report/internal/repository"
	"github.com/manabiya/manabiya/internal/team"
	"github.com/manabiya/manabiya/internal/user"
)

var (
	ErrReportNotFound  = repository.ErrReportNotFound
	ErrContentNotFound = errors.New("举报的内容不存在")
	ErrInvalidCategory = errors.New("举报类型不合法")
	// ErrNoPermission 教师只能处理自己班学生提交的举报
	ErrNoPermission    = errors.New("没有权限处理这条举报")
	ErrAlreadyResolved = errors.New("举报已经处理过了")
)

var categories = map[string]struct{}{
	domain.CategoryInappropriate: {},
	domain.CategoryIncorrect:     {},
	domain.CategorySpam:          {},
	domain.CategoryOther:         {},
}

//go:generate mockgen -source=./report.go -package=reportmocks -destination=../../mocks/report.mock.go ReportService
type ReportService interface {
	// Create 学生举报一条内容
	Create(ctx context.Context, uid, contentId int64, category, description string) (int64, error)
	MyReports(ctx context.Context, uid int64) ([]domain.Report, error)
	// PendingForTeacher 自己班学生提交的待处理举报，带举报人昵称和内容标题
	PendingForTeacher(ctx context.Context, teacherId int64) ([]domain.Report, error)
	PendingCount(ctx context.Context, teacherId int64) (int64, error)
	// PendingCountOfStudents 看板按学生范围统计用
	PendingCountOfStudents(ctx context.Context, uids []int64) (int64, error)
	// Resolve 处理举报，status 只能是已处理或者已驳回
	Resolve(ctx context.Context, teacherId, reportId int64, status domain.Status, note string) error
	// ReportedContent 教师查看被举报的内容原文
	ReportedContent(ctx context.Context, teacherId, reportId int64) (content.Content, error)
}

type reportService struct {
	repo       repository.ReportRepository
	contentSvc content.Service
	teamSvc    team.Service
	userSvc    user.UserService
}

func NewReportService(repo repository.ReportRepository,
	contentSvc content.Service,
	teamSvc team.Service,
	userSvc user.UserService) ReportService {
	return &reportService{
		repo:       repo,
		contentSvc: contentSvc,
		teamSvc:    teamSvc,
		userSvc:    userSvc,
	}
}

func (svc *reportService) Create(ctx context.Context,
	uid, contentId int64, category, description string) (int64, error) {
	if _, ok := categories[category]; !ok {
		return 0, ErrInvalidCategory
	}
	cs, err := svc.contentSvc.ListByIds(ctx, []int64{contentId})
	if err != nil {
		return 0, err
	}
	if len(cs) == 0 {
		return 0, ErrContentNotFound
	}
	return svc.repo.Create(ctx, domain.Report{
		ContentId:   contentId,
		ReporterId:  uid,
		Category:    category,
		Description: description,
	})
}

func (svc *reportService) MyReports(ctx context.Context, uid int64) ([]domain.Report, error) {
	return svc.repo.FindByReporter(ctx, uid)
}

func (svc *reportService) PendingForTeacher(ctx context.Context, teacherId int64) ([]domain.Report, error) {
	uids, err := svc.teamSvc.StudentIdsOfTeacher(ctx, teacherId)
	if err != nil {
		return nil, err
	}
	reps, err := svc.repo.FindPendingByReporters(ctx, uids)
	if err != nil {
		return nil, err
	}
	if len(reps) == 0 {
		return nil, nil
	}
	return svc.enrich(ctx, reps)
}

func (svc *reportService) enrich(ctx context.Context, reps []domain.Report) ([]domain.Report, error) {
	reporterIds := slice.Map(reps, func(idx int, src domain.Report) int64 {
		return src.ReporterId
	})
	contentIds := slice.Map(reps, func(idx int, src domain.Report) int64 {
		return src.ContentId
	})
	us, err := svc.userSvc.FindByIds(ctx, reporterIds)
	if err != nil {
		return nil, err
	}
	cs, err := svc.contentSvc.ListByIds(ctx, contentIds)
	if err != nil {
		return nil, err
	}
	uMap := slice.ToMap(us, func(u user.User) int64 {
		return u.Id
	})
	cMap := slice.ToMap(cs, func(c content.Content) int64 {
		return c.Id
	})
	for i := range reps {
		reps[i].ReporterNickname = uMap[reps[i].ReporterId].Nickname
		reps[i].ContentTitle = cMap[reps[i].ContentId].Title
	}
	return reps, nil
}

func (svc *reportService) PendingCount(ctx context.Context, teacherId int64) (int64, error) {
	uids, err := svc.teamSvc.StudentIdsOfTeacher(ctx, teacherId)
	if err != nil {
		return 0, err
	}
	return svc.repo.PendingCountByReporters(ctx, uids)
}

func (svc *reportService) PendingCountOfStudents(ctx context.Context, uids []int64) (int64, error) {
	if len(uids) == 0 {
		return 0, nil
	}
	return svc.repo.PendingCountByReporters(ctx, uids)
}

func (svc *reportService) Resolve(ctx context.Context,
	teacherId, reportId int64, status domain.Status, note string) error {
	if status != domain.StatusResolved && status != domain.StatusRejected {
		return errors.New("不支持的处理结果")
	}
	rep, err := svc.verifyReporter(ctx, teacherId, reportId)
	if err != nil {
		return err
	}
	if rep.Status != domain.StatusPending {
		return ErrAlreadyResolved
	}
	return svc.repo.UpdateStatus(ctx, reportId, status, teacherId, note)
}

func (svc *reportService) ReportedContent(ctx context.Context,
	teacherId, reportId int64) (content.Content, error) {
	rep, err := svc.verifyReporter(ctx, teacherId, reportId)
	if err != nil {
		return content.Content{}, err
	}
	return svc.contentSvc.Detail(ctx, rep.ContentId)
}

// verifyReporter 校验举报人是不是这个教师班上的学生
func (svc *reportService) verifyReporter(ctx context.Context,
	teacherId, reportId int64) (domain.Report, error) {
	rep, err := svc.repo.FindById(ctx, reportId)
	if err != nil {
		return domain.Report{}, err
	}
	uids, err := svc.teamSvc.StudentIdsOfTeacher(ctx, teacherId)
	if err != nil {
		return domain.Report{}, err
	}
	for _, uid := range uids {
		if uid == rep.ReporterId {
			return rep, nil
		}
	}
	return domain.Report{}, ErrNoPermission
}
