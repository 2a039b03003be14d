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
	"github.com/gotomicro/ego/core/elog"
	"github.com/manabiya/manabiya/internal/dashboard/internal/service"
	"github.com/manabiya/manabiya/internal/tag"
	"github.com/manabiya/manabiya/internal/user"
)

type Handler struct {
	svc    service.DashboardService
	logger *elog.Component
}

func NewHandler(svc service.DashboardService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/dashboard/summary", ginx.S(h.Permission), ginx.BS[SummaryReq](h.Summary))
	server.POST("/dashboard/popular-tags", ginx.S(h.Permission), ginx.BS[SummaryReq](h.PopularTags))
}

func (h *Handler) Summary(ctx *ginx.Context, req SummaryReq, sess session.Session) (ginx.Result, error) {
	s, err := h.svc.Summary(ctx, sess.Claims().Uid, req.TeamId)
	if errors.Is(err, service.ErrNoPermission) {
		return noPermissionResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newSummary(s),
	}, nil
}

func (h *Handler) PopularTags(ctx *ginx.Context, req SummaryReq, sess session.Session) (ginx.Result, error) {
	tcs, err := h.svc.PopularTags(ctx, sess.Claims().Uid, req.TeamId)
	if errors.Is(err, service.ErrNoPermission) {
		return noPermissionResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PopularTagList{
			Tags: slice.Map(tcs, func(idx int, src tag.TagCount) PopularTag {
				return newPopularTag(src)
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
