package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/manabiya/manabiya/internal/content/internal/domain"
)

type SaveReq struct {
	Id          int64    `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Explanation string   `json:"explanation"`
	Published   bool     `json:"published"`
	Options     []Option `json:"options"`
	Tags        []string `json:"tags"`
}

func (req SaveReq) toDomain(uid int64) domain.Content {
	return domain.Content{
		Id:          req.Id,
		Type:        req.Type,
		Title:       req.Title,
		Body:        req.Body,
		Explanation: req.Explanation,
		AuthorId:    uid,
		Published:   req.Published,
		Options: slice.Map(req.Options, func(idx int, src Option) domain.Option {
			return domain.Option{
				Idx:     src.Idx,
				Text:    src.Text,
				Correct: src.Correct,
			}
		}),
		Tags: req.Tags,
	}
}

type Option struct {
	Id      int64  `json:"id"`
	Idx     int    `json:"idx"`
	Text    string `json:"text"`
	Correct bool   `json:"correct,omitempty"`
}

type ContentID struct {
	Id int64 `json:"id"`
}

type ListPublishedReq struct {
	Type   string `json:"type"`
	Limit  int    `json:"limit"`
	Offset int    `json:"offset"`
}

type SearchReq struct {
	Keyword string `json:"keyword"`
	Limit   int    `json:"limit"`
	Offset  int    `json:"offset"`
}

type SearchResp struct {
	Contents []Content `json:"contents"`
	Total    int64     `json:"total"`
}

type AnswerReq struct {
	ContentId int64 `json:"contentId"`
	OptionId  int64 `json:"optionId"`
}

type AnswerResp struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

type Content struct {
	Id             int64    `json:"id"`
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	Explanation    string   `json:"explanation,omitempty"`
	AuthorId       int64    `json:"authorId"`
	AuthorNickname string   `json:"authorNickname,omitempty"`
	Published      bool     `json:"published"`
	Options        []Option `json:"options,omitempty"`
	Tags           []string `json:"tags,omitempty"`
	Ctime          int64    `json:"ctime"`
}

type ContentList struct {
	Contents []Content `json:"contents"`
}

type Answer struct {
	Id        int64 `json:"id"`
	ContentId int64 `json:"contentId"`
	OptionId  int64 `json:"optionId"`
	Correct   bool  `json:"correct"`
	Ctime     int64 `json:"ctime"`
}

type AnswerList struct {
	Answers []Answer `json:"answers"`
}

// newPublicContent 浏览和搜索场景的内容，不带答案和解析
func newPublicContent(c domain.Content) Content {
	res := newContent(c)
	res.Explanation = ""
	for i := range res.Options {
		res.Options[i].Correct = false
	}
	return res
}

func newContent(c domain.Content) Content {
	return Content{
		Id:             c.Id,
		Type:           c.Type,
		Title:          c.Title,
		Body:           c.Body,
		Explanation:    c.Explanation,
		AuthorId:       c.AuthorId,
		AuthorNickname: c.AuthorNickname,
		Published:      c.Published,
		Options: slice.Map(c.Options, func(idx int, src domain.Option) Option {
			return Option{
				Id:      src.Id,
				Idx:     src.Idx,
				Text:    src.Text,
				Correct: src.Correct,
			}
		}),
		Tags:  c.Tags,
		Ctime: c.Ctime.UnixMilli(),
	}
}
