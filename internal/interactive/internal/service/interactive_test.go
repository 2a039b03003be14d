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

	"github.com/manabiya/manabiya/internal/interactive/internal/domain"
	repomocks "github.com/manabiya/manabiya/internal/interactive/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInteractiveService_Add(t *testing.T) {
	testCases := []struct {
		name    string
		typ     string
		mock    func(repo *repomocks.MockInteractiveRepository)
		wantErr error
	}{
		{
			name: "点赞",
			typ:  domain.TypeLike,
			mock: func(repo *repomocks.MockInteractiveRepository) {
				repo.EXPECT().Add(gomock.Any(), int64(77), int64(9), domain.TypeLike).
					Return(nil)
			},
		},
		{
			name:    "非法类型",
			typ:     "upvote",
			mock:    func(repo *repomocks.MockInteractiveRepository) {},
			wantErr: ErrInvalidType,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := repomocks.NewMockInteractiveRepository(ctrl)
			tc.mock(repo)
			svc := NewInteractiveService(repo)
			err := svc.Add(context.Background(), 77, 9, tc.typ)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestInteractiveService_CountsForContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockInteractiveRepository(ctrl)
	repo.EXPECT().CountsForContent(gomock.Any(), int64(9)).
		Return(domain.Counts{LikeCnt: 3, SaveCnt: 1}, nil)

	svc := NewInteractiveService(repo)
	counts, err := svc.CountsForContent(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, domain.Counts{LikeCnt: 3, SaveCnt: 1}, counts)
}
