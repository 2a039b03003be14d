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

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
	"github.com/manabiya/manabiya/internal/feed/internal/domain"
	"github.com/manabiya/manabiya/internal/feed/internal/service"
	"github.com/manabiya/manabiya/internal/team"
)

type Handler struct {
	svc     service.FeedService
	teamSvc team.Service
	logger  *elog.Component
}

func NewHandler(svc service.FeedService, teamSvc team.Service) *Handler {
	return &Handler{
		svc:     svc,
		teamSvc: teamSvc,
		logger:  elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.GET("/feed", ginx.S(h.Feed))
}

func (h *Handler) Feed(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	uid := sess.Claims().Uid
	// 没加入班级就按没有考试期标签处理，信息流照常返回
	var teamId int64
	t, err := h.teamSvc.TeamOfUser(ctx, uid)
	switch {
	case err == nil:
		teamId = t.Id
	case errors.Is(err, team.ErrTeamNotFound):
		teamId = 0
	default:
		return systemErrorResult, err
	}

	scs, err := h.svc.GetScoredFeed(ctx, uid, teamId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: FeedResp{
			Items: slice.Map(scs, func(idx int, src domain.ScoredContent) FeedItem {
				return newFeedItem(src)
			}),
		},
	}, nil
}
