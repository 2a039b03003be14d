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
	"github.com/manabiya/manabiya/internal/content"
	"github.com/manabiya/manabiya/internal/interactive/internal/domain"
	"github.com/manabiya/manabiya/internal/interactive/internal/service"
)

type Handler struct {
	svc        service.InteractiveService
	contentSvc content.Service
}

func NewHandler(svc service.InteractiveService, contentSvc content.Service) *Handler {
	return &Handler{
		svc:        svc,
		contentSvc: contentSvc,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/interactions/like", ginx.BS[ContentID](h.Like))
	server.POST("/interactions/unlike", ginx.BS[ContentID](h.Unlike))
	server.POST("/interactions/save", ginx.BS[ContentID](h.Save))
	server.POST("/interactions/unsave", ginx.BS[ContentID](h.Unsave))
	server.POST("/interactions/counts", ginx.BS[ContentID](h.Counts))
	server.GET("/interactions/liked", ginx.S(h.MyLiked))
	server.GET("/interactions/saved", ginx.S(h.MySaved))
}

func (h *Handler) Like(ctx *ginx.Context, req ContentID, sess session.Session) (ginx.Result, error) {
	return h.add(ctx, req, sess, domain.TypeLike)
}

func (h *Handler) Unlike(ctx *ginx.Context, req ContentID, sess session.Session) (ginx.Result, error) {
	return h.remove(ctx, req, sess, domain.TypeLike)
}

func (h *Handler) Save(ctx *ginx.Context, req ContentID, sess session.Session) (ginx.Result, error) {
	return h.add(ctx, req, sess, domain.TypeSave)
}

func (h *Handler) Unsave(ctx *ginx.Context, req ContentID, sess session.Session) (ginx.Result, error) {
	return h.remove(ctx, req, sess, domain.TypeSave)
}

func (h *Handler) Counts(ctx *ginx.Context, req ContentID, sess session.Session) (ginx.Result, error) {
	counts, err := h.svc.CountsForContent(ctx, req.ContentId)
	if err != nil {
		return systemErrorResult, err
	}
	liked, err := h.svc.Liked(ctx, sess.Claims().Uid, req.ContentId)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: CountsResp{
			LikeCnt:  counts.LikeCnt,
			SaveCnt:  counts.SaveCnt,
			ShareCnt: counts.ShareCnt,
			Liked:    liked,
		},
	}, nil
}

func (h *Handler) MyLiked(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.listOf(ctx, sess.Claims().Uid, domain.TypeLike)
}

func (h *Handler) MySaved(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	return h.listOf(ctx, sess.Claims().Uid, domain.TypeSave)
}

func (h *Handler) add(ctx *ginx.Context, req ContentID, sess session.Session, typ string) (ginx.Result, error) {
	err := h.svc.Add(ctx, sess.Claims().Uid, req.ContentId, typ)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{}, nil
}

func (h *Handler) remove(ctx *ginx.Context, req ContentID, sess session.Session, typ string) (ginx.Result, error) {
	err := h.svc.Remove(ctx, sess.Claims().Uid, req.ContentId, typ)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{}, nil
}

func (h *Handler) listOf(ctx *ginx.Context, uid int64, typ string) (ginx.Result, error) {
	ids, err := h.svc.ContentIdsOf(ctx, uid, typ)
	if err != nil {
		return h.errResult(err), err
	}
	cs, err := h.contentSvc.ListByIds(ctx, ids)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ContentList{
			Contents: slice.Map(cs, func(idx int, src content.Content) Content {
				return Content{
					Id:             src.Id,
					Type:           src.Type,
					Title:          src.Title,
					AuthorNickname: src.AuthorNickname,
					Ctime:          src.Ctime.UnixMilli(),
				}
			}),
		},
	}, nil
}

func (h *Handler) errResult(err error) ginx.Result {
	if errors.Is(err, service.ErrInvalidType) {
		return invalidTypeResult
	}
	return systemErrorResult
}
