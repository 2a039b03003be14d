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

	"github.com/manabiya/manabiya/internal/user/internal/domain"
	"github.com/manabiya/manabiya/internal/user/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrDuplicateEmail         = repository.ErrUserDuplicate
	ErrInvalidEmailOrPassword = errors.New("邮箱或者密码错误")
)

//go:generate mockgen -source=./user.go -package=usermocks -destination=../../mocks/user.mock.go UserService
type UserService interface {
	// Register 注册，成功之后返回补全了 Id 的用户
	Register(ctx context.Context, u domain.User) (domain.User, error)
	// Login 校验邮箱和密码
	Login(ctx context.Context, email, password string) (domain.User, error)
	Profile(ctx context.Context, id int64) (domain.User, error)
	// UpdateNonSensitiveInfo 更新昵称、头像这类非敏感数据
	UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error
	FindByIds(ctx context.Context, ids []int64) ([]domain.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (svc *userService) Register(ctx context.Context, u domain.User) (domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, err
	}
	u.Password = string(hash)
	id, err := svc.repo.Create(ctx, u)
	if err != nil {
		return domain.User{}, err
	}
	u.Id = id
	u.Password = ""
	return u, nil
}

func (svc *userService) Login(ctx context.Context, email, password string) (domain.User, error) {
	u, err := svc.repo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domain.User{}, ErrInvalidEmailOrPassword
	}
	if err != nil {
		return domain.User{}, err
	}
	err = bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	if err != nil {
		return domain.User{}, ErrInvalidEmailOrPassword
	}
	u.Password = ""
	return u, nil
}

func (svc *userService) Profile(ctx context.Context, id int64) (domain.User, error) {
	u, err := svc.repo.FindById(ctx, id)
	u.Password = ""
	return u, err
}

func (svc *userService) UpdateNonSensitiveInfo(ctx context.Context, user domain.User) error {
	// 邮箱、密码、角色都不在这里改
	return svc.repo.Update(ctx, domain.User{
		Id:       user.Id,
		Nickname: user.Nickname,
		Avatar:   user.Avatar,
	})
}

func (svc *userService) FindByIds(ctx context.Context, ids []int64) ([]domain.User, error) {
	return svc.repo.FindByIds(ctx, ids)
}
