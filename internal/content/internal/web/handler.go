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
	"github.com/manabiya/manabiya/internal/content/internal/domain"
	"github.com/manabiya/manabiya/internal/content/internal/service"
)

type Handler struct {
	svc service.ContentService
}

func NewHandler(svc service.ContentService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/contents/save", ginx.BS[SaveReq](h.Save))
	server.POST("/contents/delete", ginx.BS[ContentID](h.Delete))
	server.POST("/contents/detail", ginx.BS[ContentID](h.Detail))
	server.GET("/contents/mine", ginx.S(h.Mine))
	server.POST("/contents/list", ginx.B[ListPublishedReq](h.ListPublished))
	server.POST("/contents/search", ginx.B[SearchReq](h.Search))
	server.POST("/contents/answer", ginx.BS[AnswerReq](h.Answer))
	server.GET("/contents/answers/mine", ginx.S(h.MyAnswers))
}

func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	id, err := h.svc.Save(ctx, req.toDomain(sess.Claims().Uid))
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{Data: id}, nil
}

func (h *Handler) Delete(ctx *ginx.Context, req ContentID, sess session.Session) (ginx.Result, error) {
	err := h.svc.Delete(ctx, sess.Claims().Uid, req.Id)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req ContentID, sess session.Session) (ginx.Result, error) {
	c, err := h.svc.Detail(ctx, req.Id)
	if err != nil {
		return h.errResult(err), err
	}
	res := newContent(c)
	// 不是作者就看不到正确答案和解析
	if c.AuthorId != sess.Claims().Uid {
		res.Explanation = ""
		for i := range res.Options {
			res.Options[i].Correct = false
		}
	}
	return ginx.Result{Data: res}, nil
}

func (h *Handler) Mine(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	cs, err := h.svc.MyPosts(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ContentList{
			Contents: slice.Map(cs, func(idx int, src domain.Content) Content {
				return newContent(src)
			}),
		},
	}, nil
}

func (h *Handler) ListPublished(ctx *ginx.Context, req ListPublishedReq) (ginx.Result, error) {
	cs, err := h.svc.ListPublished(ctx, req.Type, req.Limit, req.Offset)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: ContentList{
			Contents: slice.Map(cs, func(idx int, src domain.Content) Content {
				return newPublicContent(src)
			}),
		},
	}, nil
}

func (h *Handler) Search(ctx *ginx.Context, req SearchReq) (ginx.Result, error) {
	cs, total, err := h.svc.Search(ctx, req.Keyword, req.Limit, req.Offset)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: SearchResp{
			Contents: slice.Map(cs, func(idx int, src domain.Content) Content {
				return newPublicContent(src)
			}),
			Total: total,
		},
	}, nil
}

func (h *Handler) Answer(ctx *ginx.Context, req AnswerReq, sess session.Session) (ginx.Result, error) {
	correct, explanation, err := h.svc.Answer(ctx, sess.Claims().Uid, req.ContentId, req.OptionId)
	if err != nil {
		return h.errResult(err), err
	}
	return ginx.Result{
		Data: AnswerResp{
			Correct:     correct,
			Explanation: explanation,
		},
	}, nil
}

func (h *Handler) MyAnswers(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	as, err := h.svc.MyAnswers(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: AnswerList{
			Answers: slice.Map(as, func(idx int, src domain.Answer) Answer {
				return Answer{
					Id:        src.Id,
					ContentId: src.ContentId,
					OptionId:  src.OptionId,
					Correct:   src.Correct,
					Ctime:     src.Ctime.UnixMilli(),
				}
			}),
		},
	}, nil
}

func (h *Handler) errResult(err error) ginx.Result {
	switch {
	case errors.Is(err, service.ErrContentNotFound):
		return contentNotFoundResult
	case errors.Is(err, service.ErrNotAuthor):
		return notAuthorResult
	case errors.Is(err, service.ErrInvalidOption):
		return invalidOptionResult
	case errors.Is(err, service.ErrUnknownContentType):
		return unknownTypeResult
	case errors.Is(err, service.ErrEmptyKeyword):
		return emptyKeywordResult
	default:
		return systemErrorResult
	}
}
