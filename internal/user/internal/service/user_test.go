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

	"github.com/manabiya/manabiya/internal/user/internal/domain"
	"github.com/manabiya/manabiya/internal/user/internal/repository"
	repomocks "github.com/manabiya/manabiya/internal/user/internal/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := repomocks.NewMockUserRepository(ctrl)
	var saved domain.User
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, u domain.User) (int64, error) {
			saved = u
			return int64(7), nil
		})

	svc := NewUserService(repo)
	u, err := svc.Register(context.Background(), domain.User{
		Email:    "sensei@example.com",
		Password: "hello#world123",
		Nickname: "田中先生",
		Role:     domain.RoleTeacher,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.Id)
	// 返回值里不能带密码
	assert.Empty(t, u.Password)
	// 存储的必须是 bcrypt 哈希而不是明文
	assert.NotEqual(t, "hello#world123", saved.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(saved.Password), []byte("hello#world123")))
}

func TestUserService_Login(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hello#world123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	testCases := []struct {
		name     string
		mock     func(ctrl *gomock.Controller) repository.UserRepository
		email    string
		password string
		wantErr  error
		wantUser domain.User
	}{
		{
			name: "登录成功",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "abc@example.com").
					Return(domain.User{
						Id:       1,
						Email:    "abc@example.com",
						Password: string(hash),
						Nickname: "小明",
						Role:     domain.RoleStudent,
					}, nil)
				return repo
			},
			email:    "abc@example.com",
			password: "hello#world123",
			wantUser: domain.User{
				Id:       1,
				Email:    "abc@example.com",
				Nickname: "小明",
				Role:     domain.RoleStudent,
			},
		},
		{
			name: "用户不存在",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "abc@example.com").
					Return(domain.User{}, repository.ErrUserNotFound)
				return repo
			},
			email:    "abc@example.com",
			password: "hello#world123",
			wantErr:  ErrInvalidEmailOrPassword,
		},
		{
			name: "密码错误",
			mock: func(ctrl *gomock.Controller) repository.UserRepository {
				repo := repomocks.NewMockUserRepository(ctrl)
				repo.EXPECT().FindByEmail(gomock.Any(), "abc@example.com").
					Return(domain.User{
						Id:       1,
						Email:    "abc@example.com",
						Password: string(hash),
					}, nil)
				return repo
			},
			email:    "abc@example.com",
			password: "wrong-password",
			wantErr:  ErrInvalidEmailOrPassword,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			svc := NewUserService(tc.mock(ctrl))
			u, err := svc.Login(context.Background(), tc.email, tc.password)
			assert.Equal(t, tc.wantErr, err)
			if err != nil {
				return
			}
			assert.Equal(t, tc.wantUser, u)
		})
	}
}
