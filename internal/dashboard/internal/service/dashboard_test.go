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
	"testing"

	contentmocks "github.com/manabiya/manabiya/internal/content/mocks"
	"github.com/manabiya/manabiya/internal/dashboard/internal/domain"
	reportmocks "github.com/manabiya/manabiya/internal/report/mocks"
	"github.com/manabiya/manabiya/internal/tag"
	tagmocks "github.com/manabiya/manabiya/internal/tag/mocks"
	"github.com/manabiya/manabiya/internal/team"
	teammocks "github.com/manabiya/manabiya/internal/team/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type dashboardMocks struct {
	contentSvc *contentmocks.MockContentService
	teamSvc    *teammocks.MockTeamService
	tagSvc     *tagmocks.MockTagService
	reportSvc  *reportmocks.MockReportService
}

func newDashboardService(ctrl *gomock.Controller) (DashboardService, dashboardMocks) {
	m := dashboardMocks{
		contentSvc: contentmocks.NewMockContentService(ctrl),
		teamSvc:    teammocks.NewMockTeamService(ctrl),
		tagSvc:     tagmocks.NewMockTagService(ctrl),
		reportSvc:  reportmocks.NewMockReportService(ctrl),
	}
	return NewDashboardService(m.contentSvc, m.teamSvc, m.tagSvc, m.reportSvc), m
}

func TestDashboardService_Summary(t *testing.T) {
	const teacherId int64 = 100

	t.Run("名下所有班级的汇总", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newDashboardService(ctrl)

		uids := []int64{3, 4, 5}
		m.teamSvc.EXPECT().StudentIdsOfTeacher(gomock.Any(), teacherId).
			Return(uids, nil)
		// 2/3 答对，正确率保留两位小数
		m.contentSvc.EXPECT().AnswerStatsOfUsers(gomock.Any(), uids).
			Return(int64(3), int64(2), nil)
		m.contentSvc.EXPECT().CountByAuthors(gomock.Any(), uids).
			Return(int64(7), nil)
		m.reportSvc.EXPECT().PendingCountOfStudents(gomock.Any(), uids).
			Return(int64(2), nil)

		s, err := svc.Summary(context.Background(), teacherId, 0)
		require.NoError(t, err)
		assert.Equal(t, domain.Summary{
			TotalStudents:  3,
			TotalAnswers:   3,
			Accuracy:       66.67,
			PostsCreated:   7,
			PendingReports: 2,
		}, s)
	})

	t.Run("没有学生返回零值", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newDashboardService(ctrl)

		m.teamSvc.EXPECT().StudentIdsOfTeacher(gomock.Any(), teacherId).
			Return(nil, nil)

		s, err := svc.Summary(context.Background(), teacherId, 0)
		require.NoError(t, err)
		assert.Equal(t, domain.Summary{}, s)
	})

	t.Run("没有答题时正确率是零", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newDashboardService(ctrl)

		uids := []int64{3}
		m.teamSvc.EXPECT().StudentIdsOfTeacher(gomock.Any(), teacherId).
			Return(uids, nil)
		m.contentSvc.EXPECT().AnswerStatsOfUsers(gomock.Any(), uids).
			Return(int64(0), int64(0), nil)
		m.contentSvc.EXPECT().CountByAuthors(gomock.Any(), uids).
			Return(int64(0), nil)
		m.reportSvc.EXPECT().PendingCountOfStudents(gomock.Any(), uids).
			Return(int64(0), nil)

		s, err := svc.Summary(context.Background(), teacherId, 0)
		require.NoError(t, err)
		assert.Equal(t, 0.0, s.Accuracy)
		assert.Equal(t, int64(1), s.TotalStudents)
	})

	t.Run("指定班级但不是创建者", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newDashboardService(ctrl)

		m.teamSvc.EXPECT().VerifyOwner(gomock.Any(), int64(9), teacherId).
			Return(team.Team{}, team.ErrNotOwner)

		_, err := svc.Summary(context.Background(), teacherId, 9)
		assert.ErrorIs(t, err, ErrNoPermission)
	})

	t.Run("指定班级只统计这个班", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newDashboardService(ctrl)

		m.teamSvc.EXPECT().VerifyOwner(gomock.Any(), int64(9), teacherId).
			Return(team.Team{Id: 9, CreatedBy: teacherId}, nil)
		m.teamSvc.EXPECT().Members(gomock.Any(), int64(9)).
			Return([]team.Member{{Uid: 3}, {Uid: 4}}, nil)
		uids := []int64{3, 4}
		m.contentSvc.EXPECT().AnswerStatsOfUsers(gomock.Any(), uids).
			Return(int64(4), int64(4), nil)
		m.contentSvc.EXPECT().CountByAuthors(gomock.Any(), uids).
			Return(int64(2), nil)
		m.reportSvc.EXPECT().PendingCountOfStudents(gomock.Any(), uids).
			Return(int64(0), nil)

		s, err := svc.Summary(context.Background(), teacherId, 9)
		require.NoError(t, err)
		assert.Equal(t, int64(2), s.TotalStudents)
		assert.Equal(t, 100.0, s.Accuracy)
	})
}

func TestDashboardService_PopularTags(t *testing.T) {
	const teacherId int64 = 100

	t.Run("只统计学生的内容", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newDashboardService(ctrl)

		uids := []int64{3, 4}
		m.teamSvc.EXPECT().StudentIdsOfTeacher(gomock.Any(), teacherId).
			Return(uids, nil)
		m.contentSvc.EXPECT().IdsByAuthors(gomock.Any(), uids).
			Return([]int64{12, 13}, nil)
		m.tagSvc.EXPECT().PopularForContents(gomock.Any(), []int64{12, 13}, 10).
			Return([]tag.TagCount{
				{Name: "江户", Cnt: 5},
				{Name: "明治", Cnt: 3},
			}, nil)

		tcs, err := svc.PopularTags(context.Background(), teacherId, 0)
		require.NoError(t, err)
		require.Len(t, tcs, 2)
		assert.Equal(t, "江户", tcs[0].Name)
	})

	t.Run("没有学生时返回空", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc, m := newDashboardService(ctrl)

		m.teamSvc.EXPECT().StudentIdsOfTeacher(gomock.Any(), teacherId).
			Return(nil, nil)

		tcs, err := svc.PopularTags(context.Background(), teacherId, 0)
		require.NoError(t, err)
		assert.Empty(t, tcs)
	})
}
