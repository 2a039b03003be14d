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
	"github.com/manabiya/manabiya/internal/report/internal/domain"
	"github.com/manabiya/manabiya/internal/report/internal/service"
	"github.com/manabiya/manabiya/internal/user"
)

type Handler struct {
	svc    service.ReportService
	logger *elog.Component
}

func NewHandler(svc service.ReportService) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	// 学生端
	server.POST("/reports/create", ginx.BS[CreateReq](h.Create))
	server.GET("/reports/mine", ginx.S(h.Mine))
	// 教师端
	server.GET("/reports/pending", ginx.S(h.Permission), ginx.S(h.Pending))
	server.GET("/reports/pending-count", ginx.S(h.Permission), ginx.S(h.PendingCount))
	server.POST("/reports/resolve", ginx.S(h.Permission), ginx.BS[ResolveReq](h.Resolve))
	server.POST("/reports/content", ginx.S(h.Permission), ginx.BS[ReportID](h.Content))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Create(ctx, sess.Claims().Uid, req.ContentId, req.Category, req.Description)
	switch {
	case errors.Is(err, service.ErrInvalidCategory):
		return invalidCategoryResult, err
	case errors.Is(err, service.ErrContentNotFound):
		return contentNotFoundResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: id,
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	reps, err := h.svc.MyReports(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ReportList{
			Reports: slice.Map(reps, func(idx int, src domain.Report) Report {
				return newReport(src)
			}),
		},
	}, nil
}

func (h *Handler) Pending(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	reps, err := h.svc.PendingForTeacher(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ReportList{
			Reports: slice.Map(reps, func(idx int, src domain.Report) Report {
				return newReport(src)
			}),
		},
	}, nil
}

func (h *Handler) PendingCount(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cnt, err := h.svc.PendingCount(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: PendingCountResp{Count: cnt},
	}, nil
}

func (h *Handler) Resolve(ctx *ginx.Context, req ResolveReq, sess session.Session) (ginx.Result, error) {
	var status domain.Status
	switch req.Action {
	case "resolve":
		status = domain.StatusResolved
	case "reject":
		status = domain.StatusRejected
	default:
		return systemErrorResult, fmt.Errorf("不支持的处理动作 %q", req.Action)
	}
	err := h.svc.Resolve(ctx, sess.Claims().Uid, req.Rid, status, req.Note)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) Content(ctx *ginx.Context, req ReportID, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.ReportedContent(ctx, sess.Claims().Uid, req.Rid)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: newReportedContent(c),
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
	case errors.Is(err, service.ErrReportNotFound):
		return reportNotFoundResult
	case errors.Is(err, service.ErrNoPermission):
		return noPermissionResult
	case errors.Is(err, service.ErrAlreadyResolved):
		return alreadyResolvedResult
	default:
		return systemErrorResult
	}
}
