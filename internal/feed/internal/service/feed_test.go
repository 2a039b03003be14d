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
	"testing"
	"time"

	"github.com/manabiya/manabiya/internal/content"
	contentmocks "github.com/manabiya/manabiya/internal/content/mocks"
	curriculummocks "github.com/manabiya/manabiya/internal/curriculum/mocks"
	"github.com/manabiya/manabiya/internal/interactive"
	intrmocks "github.com/manabiya/manabiya/internal/interactive/mocks"
	tagmocks "github.com/manabiya/manabiya/internal/tag/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type feedMocks struct {
	contentSvc    *contentmocks.MockContentService
	intrSvc       *intrmocks.MockInteractiveService
	tagSvc        *tagmocks.MockTagService
	curriculumSvc *curriculummocks.MockCurriculumService
}

func newFeedService(ctrl *gomock.Controller) (FeedService, feedMocks) {
	m := feedMocks{
		contentSvc:    contentmocks.NewMockContentService(ctrl),
		intrSvc:       intrmocks.NewMockInteractiveService(ctrl),
		tagSvc:        tagmocks.NewMockTagService(ctrl),
		curriculumSvc: curriculummocks.NewMockCurriculumService(ctrl),
	}
	svc := NewFeedService(m.contentSvc, m.intrSvc, m.tagSvc, m.curriculumSvc, Config{})
	return svc, m
}

func TestFeedService_Score(t *testing.T) {
	const uid int64 = 77
	const teamId int64 = 1

	testCases := []struct {
		name string
		// age 内容发布距今多久
		age       time.Duration
		counts    interactive.Counts
		liked     bool
		tags      []string
		examTags  map[string]struct{}
		wantScore float64
	}{
		{
			name:      "没有任何信号的旧内容得零分",
			age:       48 * time.Hour,
			examTags:  map[string]struct{}{},
			wantScore: 0.0,
		},
		{
			name:      "只有新鲜度加分",
			age:       time.Hour,
			examTags:  map[string]struct{}{},
			wantScore: 5.0,
		},
		{
			name:      "发布刚好超过 24 小时就不算新",
			age:       24*time.Hour + time.Second,
			examTags:  map[string]struct{}{},
			wantScore: 0.0,
		},
		{
			name:      "赞和收藏按权重累加",
			age:       48 * time.Hour,
			counts:    interactive.Counts{LikeCnt: 2, SaveCnt: 1},
			examTags:  map[string]struct{}{},
			wantScore: 7.0,
		},
		{
			name:      "分享数不加分",
			age:       48 * time.Hour,
			counts:    interactive.Counts{ShareCnt: 100},
			examTags:  map[string]struct{}{},
			wantScore: 0.0,
		},
		{
			name:      "自己赞过加三分",
			age:       48 * time.Hour,
			liked:     true,
			examTags:  map[string]struct{}{},
			wantScore: 3.0,
		},
		{
			name:     "标签和考试期有交集加十五分",
			age:      48 * time.Hour,
			tags:     []string{"江户"},
			examTags: map[string]struct{}{"江户": {}, "明治": {}},
			// 交集命中一个和命中多个加的分一样
			wantScore: 15.0,
		},
		{
			name:      "考试期标签为空时有标签也不加分",
			age:       48 * time.Hour,
			tags:      []string{"江户"},
			examTags:  map[string]struct{}{},
			wantScore: 0.0,
		},
		{
			name:      "综合场景",
			age:       30 * time.Hour,
			counts:    interactive.Counts{LikeCnt: 2, SaveCnt: 1},
			liked:     true,
			tags:      []string{"江户"},
			examTags:  map[string]struct{}{"江户": {}, "明治": {}},
			wantScore: 25.0,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc, m := newFeedService(ctrl)

			c := content.Content{Id: 9, Ctime: time.Now().Add(-tc.age)}
			m.contentSvc.EXPECT().PublishedSince(gomock.Any(), gomock.Any()).
				Return([]content.Content{c}, nil)
			m.curriculumSvc.EXPECT().ExamTagsForTeam(gomock.Any(), teamId, gomock.Any()).
				Return(tc.examTags, nil)
			m.intrSvc.EXPECT().CountsForContent(gomock.Any(), int64(9)).
				Return(tc.counts, nil)
			m.intrSvc.EXPECT().Liked(gomock.Any(), uid, int64(9)).
				Return(tc.liked, nil)
			m.tagSvc.EXPECT().NamesForContent(gomock.Any(), int64(9)).
				Return(tc.tags, nil)

			res, err := svc.GetScoredFeed(context.Background(), uid, teamId)
			require.NoError(t, err)
			require.Len(t, res, 1)
			assert.Equal(t, tc.wantScore, res[0].Score)
		})
	}
}

func TestFeedService_Ordering(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newFeedService(ctrl)

	old := time.Now().Add(-48 * time.Hour)
	// 候选顺序 A B C，分数 10 20 20，期望 B C A：同分保持原始顺序
	a := content.Content{Id: 1, Ctime: old}
	b := content.Content{Id: 2, Ctime: old}
	c := content.Content{Id: 3, Ctime: old}
	m.contentSvc.EXPECT().PublishedSince(gomock.Any(), gomock.Any()).
		Return([]content.Content{a, b, c}, nil)
	m.curriculumSvc.EXPECT().ExamTagsForTeam(gomock.Any(), int64(0), gomock.Any()).
		Return(map[string]struct{}{}, nil)
	counts := map[int64]interactive.Counts{
		1: {LikeCnt: 10},
		2: {SaveCnt: 4},
		3: {SaveCnt: 4},
	}
	m.intrSvc.EXPECT().CountsForContent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64) (interactive.Counts, error) {
			return counts[id], nil
		}).Times(3)
	m.intrSvc.EXPECT().Liked(gomock.Any(), int64(77), gomock.Any()).
		Return(false, nil).Times(3)
	m.tagSvc.EXPECT().NamesForContent(gomock.Any(), gomock.Any()).
		Return(nil, nil).Times(3)

	res, err := svc.GetScoredFeed(context.Background(), 77, 0)
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, int64(2), res[0].Content.Id)
	assert.Equal(t, int64(3), res[1].Content.Id)
	assert.Equal(t, int64(1), res[2].Content.Id)
	assert.Equal(t, 20.0, res[0].Score)
	assert.Equal(t, 20.0, res[1].Score)
	assert.Equal(t, 10.0, res[2].Score)
}

func TestFeedService_SubReadFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newFeedService(ctrl)

	old := time.Now().Add(-48 * time.Hour)
	mockErr := errors.New("模拟的读失败")
	m.contentSvc.EXPECT().PublishedSince(gomock.Any(), gomock.Any()).
		Return([]content.Content{{Id: 1, Ctime: old}, {Id: 2, Ctime: old}}, nil)
	m.curriculumSvc.EXPECT().ExamTagsForTeam(gomock.Any(), int64(0), gomock.Any()).
		Return(map[string]struct{}{}, nil)
	// 任何一路子信号失败，整个请求失败，不返回残缺结果
	m.intrSvc.EXPECT().CountsForContent(gomock.Any(), gomock.Any()).
		Return(interactive.Counts{}, mockErr).AnyTimes()
	m.intrSvc.EXPECT().Liked(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(false, nil).AnyTimes()
	m.tagSvc.EXPECT().NamesForContent(gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()

	res, err := svc.GetScoredFeed(context.Background(), 77, 0)
	assert.ErrorIs(t, err, mockErr)
	assert.Nil(t, res)
}

func TestFeedService_Idempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newFeedService(ctrl)

	old := time.Now().Add(-48 * time.Hour)
	m.contentSvc.EXPECT().PublishedSince(gomock.Any(), gomock.Any()).
		Return([]content.Content{{Id: 1, Ctime: old}, {Id: 2, Ctime: old}}, nil).Times(2)
	m.curriculumSvc.EXPECT().ExamTagsForTeam(gomock.Any(), int64(0), gomock.Any()).
		Return(map[string]struct{}{}, nil).Times(2)
	counts := map[int64]interactive.Counts{
		1: {LikeCnt: 1},
		2: {SaveCnt: 2},
	}
	m.intrSvc.EXPECT().CountsForContent(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, id int64) (interactive.Counts, error) {
			return counts[id], nil
		}).Times(4)
	m.intrSvc.EXPECT().Liked(gomock.Any(), int64(77), gomock.Any()).
		Return(false, nil).Times(4)
	m.tagSvc.EXPECT().NamesForContent(gomock.Any(), gomock.Any()).
		Return(nil, nil).Times(4)

	first, err := svc.GetScoredFeed(context.Background(), 77, 0)
	require.NoError(t, err)
	second, err := svc.GetScoredFeed(context.Background(), 77, 0)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFeedService_EmptyCandidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	svc, m := newFeedService(ctrl)

	m.contentSvc.EXPECT().PublishedSince(gomock.Any(), gomock.Any()).
		Return(nil, nil)
	m.curriculumSvc.EXPECT().ExamTagsForTeam(gomock.Any(), int64(5), gomock.Any()).
		Return(map[string]struct{}{"数学": {}}, nil)

	res, err := svc.GetScoredFeed(context.Background(), 77, 5)
	require.NoError(t, err)
	assert.Empty(t, res)
}
