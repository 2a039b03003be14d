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
	"time"

	"github.com/manabiya/manabiya/internal/curriculum/internal/domain"
	repomocks "github.com/manabiya/manabiya/internal/curriculum/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"github.com/manabiya/manabiya/internal/team"
	teammocks "github.com/manabiya/manabiya/internal/team/mocks"
)

func ptr(t time.Time) *time.Time {
	return &t
}

func TestStudySetting_ActiveAt(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	testCases := []struct {
		name    string
		setting domain.StudySetting
		want    bool
	}{
		{
			name: "区间内",
			setting: domain.StudySetting{
				ExamStart: ptr(now.Add(-24 * time.Hour)),
				ExamEnd:   ptr(now.Add(24 * time.Hour)),
			},
			want: true,
		},
		{
			name: "正好是开始时刻",
			setting: domain.StudySetting{
				ExamStart: ptr(now),
				ExamEnd:   ptr(now.Add(24 * time.Hour)),
			},
			want: true,
		},
		{
			name: "正好是结束时刻",
			setting: domain.StudySetting{
				ExamStart: ptr(now.Add(-24 * time.Hour)),
				ExamEnd:   ptr(now),
			},
			want: true,
		},
		{
			name: "还没开始",
			setting: domain.StudySetting{
				ExamStart: ptr(now.Add(time.Hour)),
				ExamEnd:   ptr(now.Add(24 * time.Hour)),
			},
			want: false,
		},
		{
			name: "已经结束",
			setting: domain.StudySetting{
				ExamStart: ptr(now.Add(-48 * time.Hour)),
				ExamEnd:   ptr(now.Add(-24 * time.Hour)),
			},
			want: false,
		},
		{
			name: "只有开始时间",
			setting: domain.StudySetting{
				ExamStart: ptr(now.Add(-24 * time.Hour)),
			},
			want: false,
		},
		{
			name: "只有结束时间",
			setting: domain.StudySetting{
				ExamEnd: ptr(now.Add(24 * time.Hour)),
			},
			want: false,
		},
		{
			name:    "都没配置",
			setting: domain.StudySetting{},
			want:    false,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.setting.ActiveAt(now))
		})
	}
}

func TestCurriculumService_ExamTagsForTeam(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	active := domain.StudySetting{
		ExamStart: ptr(now.Add(-time.Hour)),
		ExamEnd:   ptr(now.Add(time.Hour)),
	}
	inactive := domain.StudySetting{
		ExamStart: ptr(now.Add(-48 * time.Hour)),
		ExamEnd:   ptr(now.Add(-24 * time.Hour)),
	}

	testCases := []struct {
		name   string
		teamId int64
		mock   func(repo *repomocks.MockStudySettingRepository)
		want   map[string]struct{}
	}{
		{
			name:   "没有班级返回空集合",
			teamId: 0,
			mock:   func(repo *repomocks.MockStudySettingRepository) {},
			want:   map[string]struct{}{},
		},
		{
			name:   "班级没配置学习计划",
			teamId: 1,
			mock: func(repo *repomocks.MockStudySettingRepository) {
				repo.EXPECT().FindByTeam(gomock.Any(), int64(1)).
					Return(nil, nil)
			},
			want: map[string]struct{}{},
		},
		{
			name:   "只收考试期内的标签",
			teamId: 1,
			mock: func(repo *repomocks.MockStudySettingRepository) {
				s1 := active
				s1.Tags = []string{"数学", "代数"}
				s2 := inactive
				s2.Tags = []string{"历史"}
				repo.EXPECT().FindByTeam(gomock.Any(), int64(1)).
					Return([]domain.StudySetting{s1, s2}, nil)
			},
			want: map[string]struct{}{
				"数学": {},
				"代数": {},
			},
		},
		{
			name:   "多个计划的标签取并集去重",
			teamId: 1,
			mock: func(repo *repomocks.MockStudySettingRepository) {
				s1 := active
				s1.Tags = []string{"数学", "几何"}
				s2 := active
				s2.Tags = []string{"数学", "英语"}
				repo.EXPECT().FindByTeam(gomock.Any(), int64(1)).
					Return([]domain.StudySetting{s1, s2}, nil)
			},
			want: map[string]struct{}{
				"数学": {},
				"几何": {},
				"英语": {},
			},
		},
		{
			name:   "缺一端时间的计划不参与",
			teamId: 1,
			mock: func(repo *repomocks.MockStudySettingRepository) {
				s1 := domain.StudySetting{
					ExamStart: ptr(now.Add(-time.Hour)),
					Tags:      []string{"物理"},
				}
				repo.EXPECT().FindByTeam(gomock.Any(), int64(1)).
					Return([]domain.StudySetting{s1}, nil)
			},
			want: map[string]struct{}{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockStudySettingRepository(ctrl)
			tc.mock(repo)
			svc := NewCurriculumService(repo, teammocks.NewMockTeamService(ctrl))
			got, err := svc.ExamTagsForTeam(context.Background(), tc.teamId, now)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCurriculumService_Create_Permission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockStudySettingRepository(ctrl)
	teamSvc := teammocks.NewMockTeamService(ctrl)
	teamSvc.EXPECT().VerifyOwner(gomock.Any(), int64(2), int64(123)).
		Return(team.Team{}, team.ErrNotOwner)

	svc := NewCurriculumService(repo, teamSvc)
	_, err := svc.Create(context.Background(), 123, domain.StudySetting{TeamId: 2})
	assert.ErrorIs(t, err, ErrNoPermission)
}
