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
	"github.com/manabiya/manabiya/internal/team/internal/domain"
	"github.com/manabiya/manabiya/internal/team/internal/service"
	"github.com/manabiya/manabiya/internal/user"
)

type Handler struct {
	svc     service.TeamService
	userSvc user.UserService
	logger  *elog.Component
}

func NewHandler(svc service.TeamService, userSvc user.UserService) *Handler {
	return &Handler{
		svc:     svc,
		userSvc: userSvc,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	// 教师端
	server.POST("/teams/create", ginx.S(h.Permission), ginx.BS[CreateReq](h.Create))
	server.GET("/teams/list", ginx.S(h.Permission), ginx.S(h.List))
	server.POST("/teams/students", ginx.S(h.Permission), ginx.BS[TeamID](h.Students))
	server.POST("/teams/regenerate-code", ginx.S(h.Permission),
		ginx.BS[TeamID](h.RegenerateCode))
	// 学生端
	server.POST("/teams/join", ginx.BS[JoinReq](h.Join))
	server.GET("/teams/mine", ginx.S(h.Mine))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	t, err := h.svc.Create(ctx, sess.Claims().Uid, req.Name)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newTeam(t),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	ts, err := h.svc.MyTeams(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: TeamList{
			Teams: slice.Map(ts, func(idx int, src domain.Team) Team {
				return newTeam(src)
			}),
		},
	}, nil
}

func (h *Handler) Students(ctx *ginx.Context, req TeamID, sess session.Session) (ginx.Result, error) {
	_, err := h.svc.VerifyOwner(ctx, req.TeamId, sess.Claims().Uid)
	if err != nil {
		return h.ownerErrResult(err), err
	}
	ms, err := h.svc.Members(ctx, req.TeamId)
	if err != nil {
		return systemErrorResult, err
	}
	us, err := h.userSvc.FindByIds(ctx, slice.Map(ms, func(idx int, src domain.Member) int64 {
		return src.Uid
	}))
	if err != nil {
		return systemErrorResult, err
	}
	uMap := slice.ToMap(us, func(element user.User) int64 {
		return element.Id
	})
	return ginx.Result{
		Data: StudentList{
			Students: slice.Map(ms, func(idx int, src domain.Member) Student {
				u := uMap[src.Uid]
				return Student{
					Uid:      src.Uid,
					Nickname: u.Nickname,
					Email:    u.Email,
					JoinedAt: src.JoinedAt.UnixMilli(),
				}
			}),
		},
	}, nil
}

func (h *Handler) RegenerateCode(ctx *ginx.Context, req TeamID, sess session.Session) (ginx.Result, error) {
	t, err := h.svc.RegenerateCode(ctx, req.TeamId, sess.Claims().Uid)
	if err != nil {
		return h.ownerErrResult(err), err
	}
	return ginx.Result{
		Data: newTeam(t),
	}, nil
}

func (h *Handler) Join(ctx *ginx.Context, req JoinReq, sess session.Session) (ginx.Result, error) {
	t, err := h.svc.Join(ctx, sess.Claims().Uid, req.Code)
	switch {
	case errors.Is(err, service.ErrTeamNotFound):
		return teamNotFoundResult, err
	case errors.Is(err, service.ErrAlreadyInTeam):
		return alreadyInTeamResult, err
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newTeam(t),
	}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	t, err := h.svc.TeamOfUser(ctx, sess.Claims().Uid)
	if errors.Is(err, service.ErrTeamNotFound) {
		return teamNotFoundResult, err
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newTeam(t),
	}, nil
}

func (h *Handler) Permission(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	if sess.Claims().Get("role").StringOrDefault("") != user.RoleTeacher {
		ctx.AbortWithStatus(http.StatusInternalServerError)
		return ginx.Result{}, fmt.Errorf("非法访问教师接口 uid: %d", sess.Claims().Uid)
	}
	return ginx.Result{}, ginx.ErrNoResponse
}

func (h *Handler) ownerErrResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrTeamNotFound):
		return teamNotFoundResult
	case errors.Is(err, service.ErrNotOwner):
		return noPermissionResult
	default:
		return systemErrorResult
	}
}

func newTeam(t domain.Team) Team {
	return Team{
		Id:       t.Id,
		Name:     t.Name,
		JoinCode: t.JoinCode,
		Ctime:    t.Ctime.UnixMilli(),
	}
}
