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

package web

import (
	"errors"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/manabiya/manabiya/internal/user/internal/domain"
	"github.com/manabiya/manabiya/internal/user/internal/errs"
	"github.com/manabiya/manabiya/internal/user/internal/service"
)

var _ ginx.Handler = &Handler{}

type Handler struct {
	svc service.UserService
}

func NewHandler(svc service.UserService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PublicRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.POST("/register", ginx.B[RegisterReq](h.Register))
	users.POST("/login", ginx.B[LoginReq](h.Login))
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	users := server.Group("/users")
	users.GET("/profile", ginx.S(h.Profile))
	users.POST("/profile", ginx.BS[EditReq](h.Edit))
}

func (h *Handler) Register(ctx *ginx.Context, req RegisterReq) (ginx.Result, error) {
	role := req.Role
	if role != domain.RoleTeacher {
		role = domain.RoleStudent
	}
	u, err := h.svc.Register(ctx, domain.User{
		Email:    req.Email,
		Password: req.Password,
		Nickname: req.Nickname,
		Role:     role,
	})
	if errors.Is(err, service.ErrDuplicateEmail) {
		return ginx.Result{
			Code: errs.UserDuplicateEmail.Code,
			Msg:  errs.UserDuplicateEmail.Msg,
		}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return h.buildSession(ctx, u)
}

func (h *Handler) Login(ctx *ginx.Context, req LoginReq) (ginx.Result, error) {
	u, err := h.svc.Login(ctx, req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidEmailOrPassword) {
		return ginx.Result{
			Code: errs.UserInvalidEmailOrPasswd.Code,
			Msg:  errs.UserInvalidEmailOrPasswd.Msg,
		}, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return h.buildSession(ctx, u)
}

func (h *Handler) Profile(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	u, err := h.svc.Profile(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}

func (h *Handler) Edit(ctx *ginx.Context, req EditReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.UpdateNonSensitiveInfo(ctx, domain.User{
		Id:       sess.Claims().Uid,
		Nickname: req.Nickname,
		Avatar:   req.Avatar,
	})
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Msg: "OK"}, nil
}

// buildSession 把角色塞进 jwt data，后面教师端接口靠它做权限校验
func (h *Handler) buildSession(ctx *ginx.Context, u domain.User) (ginx.Result, error) {
	_, err := session.NewSessionBuilder(ctx, u.Id).
		SetJwtData(map[string]string{
			"role": u.Role,
		}).Build()
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{Data: newProfile(u)}, nil
}
