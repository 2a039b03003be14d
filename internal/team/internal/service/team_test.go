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
	"testing"

	"github.com/manabiya/manabiya/internal/team/internal/domain"
	"github.com/manabiya/manabiya/internal/team/internal/repository"
	repomocks "github.com/manabiya/manabiya/internal/team/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestTeamService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockTeamRepository(ctrl)
	var saved domain.Team
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, team domain.Team) (int64, error) {
			saved = team
			return int64(11), nil
		})

	svc := NewTeamService(repo)
	created, err := svc.Create(context.Background(), 123, "三年二组")
	require.NoError(t, err)
	assert.Equal(t, int64(11), created.Id)
	assert.Equal(t, "三年二组", saved.Name)
	assert.Equal(t, int64(123), saved.CreatedBy)
	assert.True(t, saved.Active)
	// 参加码 6 位大写，方便口头念给学生
	assert.Len(t, saved.JoinCode, 6)
	assert.Equal(t, strings.ToUpper(saved.JoinCode), saved.JoinCode)
	assert.Equal(t, saved.JoinCode, created.JoinCode)
}

func TestTeamService_VerifyOwner(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(ctrl *gomock.Controller) repository.TeamRepository
		teamId    int64
		teacherId int64
		wantErr   error
	}{
		{
			name: "创建者本人",
			mock: func(ctrl *gomock.Controller) repository.TeamRepository {
				repo := repomocks.NewMockTeamRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Team{Id: 1, CreatedBy: 123}, nil)
				return repo
			},
			teamId:    1,
			teacherId: 123,
		},
		{
			name: "不是创建者",
			mock: func(ctrl *gomock.Controller) repository.TeamRepository {
				repo := repomocks.NewMockTeamRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(1)).
					Return(domain.Team{Id: 1, CreatedBy: 456}, nil)
				return repo
			},
			teamId:    1,
			teacherId: 123,
			wantErr:   ErrNotOwner,
		},
		{
			name: "班级不存在",
			mock: func(ctrl *gomock.Controller) repository.TeamRepository {
				repo := repomocks.NewMockTeamRepository(ctrl)
				repo.EXPECT().FindById(gomock.Any(), int64(99)).
					Return(domain.Team{}, repository.ErrTeamNotFound)
				return repo
			},
			teamId:    99,
			teacherId: 123,
			wantErr:   ErrTeamNotFound,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewTeamService(tc.mock(ctrl))
			_, err := svc.VerifyOwner(context.Background(), tc.teamId, tc.teacherId)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestTeamService_Join(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(ctrl *gomock.Controller) repository.TeamRepository
		code    string
		wantErr error
		wantId  int64
	}{
		{
			name: "成功加入",
			mock: func(ctrl *gomock.Controller) repository.TeamRepository {
				repo := repomocks.NewMockTeamRepository(ctrl)
				repo.EXPECT().FindByJoinCode(gomock.Any(), "ABC123").
					Return(domain.Team{Id: 5}, nil)
				repo.EXPECT().AddMember(gomock.Any(), int64(5), int64(77)).
					Return(nil)
				return repo
			},
			code:   "ABC123",
			wantId: 5,
		},
		{
			// 输入的参加码统一转成大写再查
			name: "小写带空格的参加码",
			mock: func(ctrl *gomock.Controller) repository.TeamRepository {
				repo := repomocks.NewMockTeamRepository(ctrl)
				repo.EXPECT().FindByJoinCode(gomock.Any(), "ABC123").
					Return(domain.Team{Id: 5}, nil)
				repo.EXPECT().AddMember(gomock.Any(), int64(5), int64(77)).
					Return(nil)
				return repo
			},
			code:   " abc123 ",
			wantId: 5,
		},
		{
			name: "参加码无效",
			mock: func(ctrl *gomock.Controller) repository.TeamRepository {
				repo := repomocks.NewMockTeamRepository(ctrl)
				repo.EXPECT().FindByJoinCode(gomock.Any(), "NOSUCH").
					Return(domain.Team{}, repository.ErrTeamNotFound)
				return repo
			},
			code:    "NOSUCH",
			wantErr: ErrTeamNotFound,
		},
		{
			name: "重复加入",
			mock: func(ctrl *gomock.Controller) repository.TeamRepository {
				repo := repomocks.NewMockTeamRepository(ctrl)
				repo.EXPECT().FindByJoinCode(gomock.Any(), "ABC123").
					Return(domain.Team{Id: 5}, nil)
				repo.EXPECT().AddMember(gomock.Any(), int64(5), int64(77)).
					Return(repository.ErrAlreadyMember)
				return repo
			},
			code:    "ABC123",
			wantErr: ErrAlreadyInTeam,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewTeamService(tc.mock(ctrl))
			team, err := svc.Join(context.Background(), 77, tc.code)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantId, team.Id)
			}
		})
	}
}

func TestTeamService_RegenerateCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockTeamRepository(ctrl)
	repo.EXPECT().FindById(gomock.Any(), int64(3)).
		Return(domain.Team{Id: 3, CreatedBy: 123, JoinCode: "OLDONE"}, nil)
	var newCode string
	repo.EXPECT().UpdateJoinCode(gomock.Any(), int64(3), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64, code string) error {
			newCode = code
			return nil
		})

	svc := NewTeamService(repo)
	team, err := svc.RegenerateCode(context.Background(), 3, 123)
	require.NoError(t, err)
	assert.Len(t, newCode, 6)
	assert.NotEqual(t, "OLDONE", newCode)
	assert.Equal(t, newCode, team.JoinCode)
}
