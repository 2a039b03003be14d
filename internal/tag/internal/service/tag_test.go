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

	"github.com/manabiya/manabiya/internal/tag/internal/domain"
	repomocks "github.com/manabiya/manabiya/internal/tag/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNormalize(t *testing.T) {
	testCases := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "去空白去重保序",
			input: []string{" 数学 ", "英语", "数学", "", "  "},
			want:  []string{"数学", "英语"},
		},
		{
			name:  "空输入",
			input: nil,
			want:  []string{},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, normalize(tc.input))
		})
	}
}

func TestTagService_BindContent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockTagRepository(ctrl)
	repo.EXPECT().GetOrCreate(gomock.Any(), "数学").
		Return(domain.Tag{Id: 1, Name: "数学"}, nil)
	repo.EXPECT().GetOrCreate(gomock.Any(), "历史").
		Return(domain.Tag{Id: 2, Name: "历史"}, nil)
	repo.EXPECT().ReplaceContentTags(gomock.Any(), int64(9), []int64{1, 2}).
		Return(nil)

	svc := NewTagService(repo)
	// 重复和空白的名字在绑定之前就会被清理掉
	err := svc.BindContent(context.Background(), 9, []string{"数学", " 历史 ", "数学"})
	require.NoError(t, err)
}
