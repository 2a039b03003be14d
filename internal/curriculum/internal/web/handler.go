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
	"fmt"
	"net/http"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/manabiya/manabiya/internal/curriculum/internal/domain"
	"github.com/manabiya/manabiya/internal/curriculum/internal/service"
	"github.com/manabiya/manabiya/internal/user"
)

type Handler struct {
	svc service.CurriculumService
}

func NewHandler(svc service.CurriculumService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/curriculum/save", ginx.S(h.Permission), ginx.BS[SaveReq](h.Save))
	server.POST("/curriculum/delete", ginx.S(h.Permission), ginx.BS[SettingID](h.Delete))
	server.POST("/curriculum/list", ginx.S(h.Permission), ginx.BS[ListReq](h.List))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	s := req.toDomain()
	if req.Id == 0 {
		id, err := h.svc.Create(ctx, uid, s)
		if err != nil {
			return h.errResult(err), err
		}
		return ginx.Result{Data: id}, nil
	}
	err := h.svc.Update(ctx, uid, s)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{Data: req.Id}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req SettingID, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{}, nil
}

func (h *Handler) List(ctx *ginx.Context, req ListReq, sess session.Session) (ginx.Result, error) {
	ss, err := h.svc.List(ctx, sess.Claims().Uid, req.TeamId)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: StudySettingList{
			Settings: slice.Map(ss, func(idx int, src domain.StudySetting) StudySetting {
				return newStudySetting(src)
			}),
		},
	}, nil
}

func (h *Handler) Permission(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("role").StringOrDefault("") != user.RoleTeacher {
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return ginx.Result{}, fmt.Errorf("非法访问教师接口 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *Handler) errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrSettingNotFound):
		return settingNotFoundResult
	case errors.Is(err, service.ErrNoPermission):
		return noPermissionResult
	default:
		return systemErrorResult
	}
}
