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
	"math"

	"github.com/ecodeclub/ekit/slice"
	"github.com/manabiya/manabiya/internal/content"
	"github.com/manabiya/manabiya/internal/dashboard/internal/domain"
	"github.com/manabiya/manabiya/internal/report"
	"github.com/manabiya/manabiya/internal/tag"
	"github.com/manabiya/manabiya/internal/team"
	"golang.org/x/sync/errgroup"
)

// ErrNoPermission 教师只能看自己名下班级的数据
var ErrNoPermission = errors.New("没有权限查看这个班级")

const popularTagLimit = 10

//go:generate mockgen -source=./dashboard.go -package=dashboardmocks -destination=../../mocks/dashboard.mock.go DashboardService
type DashboardService interface {
	// Summary teamId 为零统计名下所有班级，否则只统计指定班级
	Summary(ctx context.Context, teacherId, teamId int64) (domain.Summary, error)
	// PopularTags 学生内容上用得最多的标签
	PopularTags(ctx context.Context, teacherId, teamId int64) ([]tag.TagCount, error)
}

type dashboardService struct {
	contentSvc content.Service
	teamSvc    team.Service
	tagSvc     tag.Service
	reportSvc  report.Service
}

func NewDashboardService(contentSvc content.Service,
	teamSvc team.Service,
	tagSvc tag.Service,
	reportSvc report.Service) DashboardService {
	return &dashboardService{
		contentSvc: contentSvc,
		teamSvc:    teamSvc,
		tagSvc:     tagSvc,
		reportSvc:  reportSvc,
	}
}

func (svc *dashboardService) Summary(ctx context.Context, teacherId, teamId int64) (domain.Summary, error) {
	uids, err := svc.studentIds(ctx, teacherId, teamId)
	if err != nil {
		return domain.Summary{}, err
	}
	res := domain.Summary{
		TotalStudents: int64(len(uids)),
	}
	// 没有学生就没有统计可做
	if len(uids) == 0 {
		return res, nil
	}

	var (
		answerTotal   int64
		answerCorrect int64
		posts         int64
		pending       int64
	)
	// 四路统计互不依赖
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		answerTotal, answerCorrect, err = svc.contentSvc.AnswerStatsOfUsers(gctx, uids)
		return err
	})
	eg.Go(func() error {
		var err error
		posts, err = svc.contentSvc.CountByAuthors(gctx, uids)
		return err
	})
	eg.Go(func() error {
		var err error
		pending, err = svc.reportSvc.PendingCountOfStudents(gctx, uids)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.Summary{}, err
	}

	res.TotalAnswers = answerTotal
	res.PostsCreated = posts
	res.PendingReports = pending
	if answerTotal > 0 {
		res.Accuracy = round2(float64(answerCorrect) / float64(answerTotal) * 100)
	}
	return res, nil
}

func (svc *dashboardService) PopularTags(ctx context.Context, teacherId, teamId int64) ([]tag.TagCount, error) {
	uids, err := svc.studentIds(ctx, teacherId, teamId)
	if err != nil {
		return nil, err
	}
	if len(uids) == 0 {
		return nil, nil
	}
	contentIds, err := svc.contentSvc.IdsByAuthors(ctx, uids)
	if err != nil {
		return nil, err
	}
	return svc.tagSvc.PopularForContents(ctx, contentIds, popularTagLimit)
}

func (svc *dashboardService) studentIds(ctx context.Context, teacherId, teamId int64) ([]int64, error) {
	if teamId == 0 {
		return svc.teamSvc.StudentIdsOfTeacher(ctx, teacherId)
	}
	_, err := svc.teamSvc.VerifyOwner(ctx, teamId, teacherId)
	if errors.Is(err, team.ErrNotOwner) || errors.Is(err, team.ErrTeamNotFound) {
		return nil, ErrNoPermission
	}
	if err != nil {
		return nil, err
	}
	ms, err := svc.teamSvc.Members(ctx, teamId)
	if err != nil {
		return nil, err
	}
	return slice.Map(ms, func(idx int, src team.Member) int64 {
		return src.Uid
	}), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
