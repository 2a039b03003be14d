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

	"github.com/manabiya/manabiya/internal/content"
	contentmocks "github.com/manabiya/manabiya/internal/content/mocks"
	"github.com/manabiya/manabiya/internal/report/internal/domain"
	"github.com/manabiya/manabiya/internal/report/internal/repository"
	repomocks "github.com/manabiya/manabiya/internal/report/internal/repository/mocks"
	teammocks "github.com/manabiya/manabiya/internal/team/mocks"
	"github.com/manabiya/manabiya/internal/user"
	usermocks "github.com/manabiya/manabiya/internal/user/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestReportService_Create(t *testing.T) {
	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) (repository.ReportRepository, content.Service)
		category string
		wantId   int64
		wantErr  error
	}{
		{
			name: "成功举报",
			mock: func(ctrl *gomock.Controller) (repository.ReportRepository, content.Service) {
				repo := repomocks.NewMockReportRepository(ctrl)
				contentSvc := contentmocks.NewMockContentService(ctrl)
				contentSvc.EXPECT().ListByIds(gomock.Any(), []int64{12}).
					Return([]content.Content{{Id: 12}}, nil)
				repo.EXPECT().Create(gomock.Any(), domain.Report{
					ContentId:   12,
					ReporterId:  3,
					Category:    domain.CategoryIncorrect,
					Description: "答案标错了",
				}).Return(int64(1), nil)
				return repo, contentSvc
			},
			category: domain.CategoryIncorrect,
			wantId:   1,
		},
		{
			name: "举报类型不合法",
			mock: func(ctrl *gomock.Controller) (repository.ReportRepository, content.Service) {
				return repomocks.NewMockReportRepository(ctrl), contentmocks.NewMockContentService(ctrl)
			},
			category: "whatever",
			wantErr:  ErrInvalidCategory,
		},
		{
			name: "内容不存在",
			mock: func(ctrl *gomock.Controller) (repository.ReportRepository, content.Service) {
				repo := repomocks.NewMockReportRepository(ctrl)
				contentSvc := contentmocks.NewMockContentService(ctrl)
				contentSvc.EXPECT().ListByIds(gomock.Any(), []int64{12}).
					Return(nil, nil)
				return repo, contentSvc
			},
			category: domain.CategoryIncorrect,
			wantErr:  ErrContentNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, contentSvc := tc.mock(ctrl)
			svc := NewReportService(repo, contentSvc,
				teammocks.NewMockTeamService(ctrl), usermocks.NewMockUserService(ctrl))
			id, err := svc.Create(context.Background(), 3, 12, tc.category, "答案标错了")
			assert.ErrorIs(t, err, tc.wantErr)
			if err == nil {
				assert.Equal(t, tc.wantId, id)
			}
		})
	}
}

func TestReportService_Resolve(t *testing.T) {
	const teacherId int64 = 100
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) (repository.ReportRepository, *teammocks.MockTeamService)
		status  domain.Status
		wantErr error
	}{
		{
			name: "处理成功",
			mock: func(ctrl *gomock.Controller) (repository.ReportRepository, *teammocks.MockTeamService) {
				repo := repomocks.NewMockReportRepository(ctrl)
				teamSvc := teammocks.NewMockTeamService(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(7)).
					Return(domain.Report{Id: 7, ReporterId: 3, Status: domain.StatusPending}, nil)
				teamSvc.EXPECT().StudentIdsOfTeacher(gomock.Any(), teacherId).
					Return([]int64{3, 4}, nil)
				repo.EXPECT().UpdateStatus(gomock.Any(), int64(7),
					domain.StatusResolved, teacherId, "已下架").Return(nil)
				return repo, teamSvc
			},
			status: domain.StatusResolved,
		},
		{
			name: "不是自己班学生的举报",
			mock: func(ctrl *gomock.Controller) (repository.ReportRepository, *teammocks.MockTeamService) {
				repo := repomocks.NewMockReportRepository(ctrl)
				teamSvc := teammocks.NewMockTeamService(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(7)).
					Return(domain.Report{Id: 7, ReporterId: 99, Status: domain.StatusPending}, nil)
				teamSvc.EXPECT().StudentIdsOfTeacher(gomock.Any(), teacherId).
					Return([]int64{3, 4}, nil)
				return repo, teamSvc
			},
			status:  domain.StatusRejected,
			wantErr: ErrNoPermission,
		},
		{
			name: "已经处理过了",
			mock: func(ctrl *gomock.Controller) (repository.ReportRepository, *teammocks.MockTeamService) {
				repo := repomocks.NewMockReportRepository(ctrl)
				teamSvc := teammocks.NewMockTeamService(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(7)).
					Return(domain.Report{Id: 7, ReporterId: 3, Status: domain.StatusResolved}, nil)
				teamSvc.EXPECT().StudentIdsOfTeacher(gomock.Any(), teacherId).
					Return([]int64{3, 4}, nil)
				return repo, teamSvc
			},
			status:  domain.StatusResolved,
			wantErr: ErrAlreadyResolved,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo, teamSvc := tc.mock(ctrl)
			svc := NewReportService(repo, contentmocks.NewMockContentService(ctrl),
				teamSvc, usermocks.NewMockUserService(ctrl))
			err := svc.Resolve(context.Background(), teacherId, 7, tc.status, "已下架")
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestReportService_Resolve_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc := NewReportService(repomocks.NewMockReportRepository(ctrl),
		contentmocks.NewMockContentService(ctrl),
		teammocks.NewMockTeamService(ctrl),
		usermocks.NewMockUserService(ctrl))
	// 不允许把举报改回待处理
	err := svc.Resolve(context.Background(), 100, 7, domain.StatusPending, "")
	assert.Error(t, err)
}

func TestReportService_PendingForTeacher(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockReportRepository(ctrl)
	contentSvc := contentmocks.NewMockContentService(ctrl)
	teamSvc := teammocks.NewMockTeamService(ctrl)
	userSvc := usermocks.NewMockUserService(ctrl)

	teamSvc.EXPECT().StudentIdsOfTeacher(gomock.Any(), int64(100)).
		Return([]int64{3, 4}, nil)
	repo.EXPECT().FindPendingByReporters(gomock.Any(), []int64{3, 4}).
		Return([]domain.Report{
			{Id: 1, ContentId: 12, ReporterId: 3, Category: domain.CategorySpam},
			{Id: 2, ContentId: 13, ReporterId: 4, Category: domain.CategoryOther},
		}, nil)
	userSvc.EXPECT().FindByIds(gomock.Any(), []int64{3, 4}).
		Return([]user.User{
			{Id: 3, Nickname: "小明"},
			{Id: 4, Nickname: "小红"},
		}, nil)
	contentSvc.EXPECT().ListByIds(gomock.Any(), []int64{12, 13}).
		Return([]content.Content{
			{Id: 12, Title: "江户时代小测验"},
			{Id: 13, Title: "明治维新冷知识"},
		}, nil)

	svc := NewReportService(repo, contentSvc, teamSvc, userSvc)
	reps, err := svc.PendingForTeacher(context.Background(), 100)
	require.NoError(t, err)
	require.Len(t, reps, 2)
	assert.Equal(t, "小明", reps[0].ReporterNickname)
	assert.Equal(t, "江户时代小测验", reps[0].ContentTitle)
	assert.Equal(t, "小红", reps[1].ReporterNickname)
	assert.Equal(t, "明治维新冷知识", reps[1].ContentTitle)
}

func TestReportService_PendingForTeacher_NoStudents(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := repomocks.NewMockReportRepository(ctrl)
	teamSvc := teammocks.NewMockTeamService(ctrl)
	teamSvc.EXPECT().StudentIdsOfTeacher(gomock.Any(), int64(100)).
		Return(nil, nil)
	repo.EXPECT().FindPendingByReporters(gomock.Any(), gomock.Nil()).
		Return(nil, nil)

	svc := NewReportService(repo, contentmocks.NewMockContentService(ctrl),
		teamSvc, usermocks.NewMockUserService(ctrl))
	reps, err := svc.PendingForTeacher(context.Background(), 100)
	require.NoError(t, err)
	assert.Empty(t, reps)
}
