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

	"github.com/manabiya/manabiya/internal/content/internal/domain"
	repomocks "github.com/manabiya/manabiya/internal/content/internal/repository/mocks"
	tagmocks "github.com/manabiya/manabiya/internal/tag/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestContentService_Save_Update(t *testing.T) {
	testCases := []struct {
		name    string
		mock    func(repo *repomocks.MockContentRepository, tagSvc *tagmocks.MockTagService)
		content domain.Content
		wantErr error
	}{
		{
			name: "作者本人更新",
			mock: func(repo *repomocks.MockContentRepository, tagSvc *tagmocks.MockTagService) {
				repo.EXPECT().FindById(gomock.Any(), int64(9)).
					Return(domain.Content{Id: 9, Type: domain.TypeQuiz, AuthorId: 77}, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any()).Return(nil)
				tagSvc.EXPECT().BindContent(gomock.Any(), int64(9), []string{"数学"}).
					Return(nil)
			},
			content: domain.Content{Id: 9, AuthorId: 77, Tags: []string{"数学"}},
		},
		{
			name: "不是作者",
			mock: func(repo *repomocks.MockContentRepository, tagSvc *tagmocks.MockTagService) {
				repo.EXPECT().FindById(gomock.Any(), int64(9)).
					Return(domain.Content{Id: 9, AuthorId: 1}, nil)
			},
			content: domain.Content{Id: 9, AuthorId: 77},
			wantErr: ErrNotAuthor,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockContentRepository(ctrl)
			tagSvc := tagmocks.NewMockTagService(ctrl)
			tc.mock(repo, tagSvc)
			svc := NewContentService(repo, tagSvc)
			_, err := svc.Save(context.Background(), tc.content)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestContentService_Answer(t *testing.T) {
	testCases := []struct {
		name        string
		mock        func(repo *repomocks.MockContentRepository)
		optionId    int64
		wantCorrect bool
		wantErr     error
	}{
		{
			name:     "答对",
			optionId: 2,
			mock: func(repo *repomocks.MockContentRepository) {
				repo.EXPECT().FindById(gomock.Any(), int64(9)).
					Return(domain.Content{Id: 9, Explanation: "因为勾股定理"}, nil)
				repo.EXPECT().OptionById(gomock.Any(), int64(2)).
					Return(domain.Option{Id: 2, Correct: true}, int64(9), nil)
				repo.EXPECT().CreateAnswer(gomock.Any(), domain.Answer{
					Uid:       77,
					ContentId: 9,
					OptionId:  2,
					Correct:   true,
				}).Return(int64(1), nil)
			},
			wantCorrect: true,
		},
		{
			name:     "答错也要记录",
			optionId: 3,
			mock: func(repo *repomocks.MockContentRepository) {
				repo.EXPECT().FindById(gomock.Any(), int64(9)).
					Return(domain.Content{Id: 9}, nil)
				repo.EXPECT().OptionById(gomock.Any(), int64(3)).
					Return(domain.Option{Id: 3, Correct: false}, int64(9), nil)
				repo.EXPECT().CreateAnswer(gomock.Any(), domain.Answer{
					Uid:       77,
					ContentId: 9,
					OptionId:  3,
					Correct:   false,
				}).Return(int64(2), nil)
			},
			wantCorrect: false,
		},
		{
			name:     "选项属于别的题",
			optionId: 5,
			mock: func(repo *repomocks.MockContentRepository) {
				repo.EXPECT().FindById(gomock.Any(), int64(9)).
					Return(domain.Content{Id: 9}, nil)
				repo.EXPECT().OptionById(gomock.Any(), int64(5)).
					Return(domain.Option{Id: 5}, int64(100), nil)
			},
			wantErr: ErrInvalidOption,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockContentRepository(ctrl)
			tc.mock(repo)
			svc := NewContentService(repo, tagmocks.NewMockTagService(ctrl))
			correct, _, err := svc.Answer(context.Background(), 77, 9, tc.optionId)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr == nil {
				assert.Equal(t, tc.wantCorrect, correct)
			}
		})
	}
}

func TestContentService_Answer_Explanation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockContentRepository(ctrl)
	repo.EXPECT().FindById(gomock.Any(), int64(9)).
		Return(domain.Content{Id: 9, Explanation: "因为勾股定理"}, nil)
	repo.EXPECT().OptionById(gomock.Any(), int64(2)).
		Return(domain.Option{Id: 2, Correct: true}, int64(9), nil)
	repo.EXPECT().CreateAnswer(gomock.Any(), gomock.Any()).Return(int64(1), nil)

	svc := NewContentService(repo, tagmocks.NewMockTagService(ctrl))
	_, explanation, err := svc.Answer(context.Background(), 77, 9, 2)
	require.NoError(t, err)
	assert.Equal(t, "因为勾股定理", explanation)
}

func TestContentService_Search(t *testing.T) {
	testCases := []struct {
		name      string
		mock      func(repo *repomocks.MockContentRepository, tagSvc *tagmocks.MockTagService)
		keyword   string
		limit     int
		offset    int
		wantTotal int64
		wantTags  []string
		wantErr   error
	}{
		{
			name: "命中并带出标签",
			mock: func(repo *repomocks.MockContentRepository, tagSvc *tagmocks.MockTagService) {
				repo.EXPECT().Search(gomock.Any(), "江户", 20, 0).
					Return([]domain.Content{{Id: 9, Title: "江户时代小测验"}}, int64(1), nil)
				tagSvc.EXPECT().NamesForContent(gomock.Any(), int64(9)).
					Return([]string{"历史"}, nil)
			},
			keyword:   "江户",
			wantTotal: 1,
			wantTags:  []string{"历史"},
		},
		{
			name: "关键词去掉空白之后再搜",
			mock: func(repo *repomocks.MockContentRepository, tagSvc *tagmocks.MockTagService) {
				repo.EXPECT().Search(gomock.Any(), "明治", 20, 0).
					Return(nil, int64(0), nil)
			},
			keyword: "  明治  ",
		},
		{
			name:    "空关键词直接报错",
			mock:    func(repo *repomocks.MockContentRepository, tagSvc *tagmocks.MockTagService) {},
			keyword: "   ",
			wantErr: ErrEmptyKeyword,
		},
		{
			name: "分页上限收敛到一百",
			mock: func(repo *repomocks.MockContentRepository, tagSvc *tagmocks.MockTagService) {
				repo.EXPECT().Search(gomock.Any(), "幕府", 100, 40).
					Return(nil, int64(0), nil)
			},
			keyword: "幕府",
			limit:   1000,
			offset:  40,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockContentRepository(ctrl)
			tagSvc := tagmocks.NewMockTagService(ctrl)
			tc.mock(repo, tagSvc)
			svc := NewContentService(repo, tagSvc)
			cs, total, err := svc.Search(context.Background(), tc.keyword, tc.limit, tc.offset)
			assert.ErrorIs(t, err, tc.wantErr)
			if tc.wantErr != nil {
				return
			}
			assert.Equal(t, tc.wantTotal, total)
			if tc.wantTags != nil {
				require.Len(t, cs, 1)
				assert.Equal(t, tc.wantTags, cs[0].Tags)
			}
		})
	}
}

func TestContentService_ListPublished(t *testing.T) {
	t.Run("按类型浏览", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := repomocks.NewMockContentRepository(ctrl)
		tagSvc := tagmocks.NewMockTagService(ctrl)
		repo.EXPECT().FindPublished(gomock.Any(), domain.TypeTrivia, 20, 0).
			Return([]domain.Content{{Id: 3, Type: domain.TypeTrivia}}, nil)
		tagSvc.EXPECT().NamesForContent(gomock.Any(), int64(3)).
			Return([]string{"地理"}, nil)

		svc := NewContentService(repo, tagSvc)
		cs, err := svc.ListPublished(context.Background(), domain.TypeTrivia, 0, 0)
		require.NoError(t, err)
		require.Len(t, cs, 1)
		assert.Equal(t, []string{"地理"}, cs[0].Tags)
	})

	t.Run("未知类型", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc := NewContentService(repomocks.NewMockContentRepository(ctrl),
			tagmocks.NewMockTagService(ctrl))
		_, err := svc.ListPublished(context.Background(), "essay", 0, 0)
		assert.ErrorIs(t, err, ErrUnknownContentType)
	})
}
