package web

import (
	"github.com/ecodeclub/ekit/slice"
	"github.com/manabiya/manabiya/internal/content"
	"github.com/manabiya/manabiya/internal/report/internal/domain"
)

type CreateReq struct {
	ContentId   int64  `json:"contentId"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

type ReportID struct {
	Rid int64 `json:"rid"`
}

type ResolveReq struct {
	Rid int64 `json:"rid"`
	// Action resolve 或者 reject
	Action string `json:"action"`
	Note   string `json:"note"`
}

type Report struct {
	Id               int64  `json:"id"`
	ContentId        int64  `json:"contentId"`
	ContentTitle     string `json:"contentTitle,omitempty"`
	ReporterId       int64  `json:"reporterId"`
	ReporterNickname string `json:"reporterNickname,omitempty"`
	Category         string `json:"category"`
	Description      string `json:"description"`
	Status           int32  `json:"status"`
	ResolveNote      string `json:"resolveNote,omitempty"`
	ResolvedAt       int64  `json:"resolvedAt,omitempty"`
	Ctime            int64  `json:"ctime"`
}

type ReportList struct {
	Reports []Report `json:"reports"`
}

type PendingCountResp struct {
	Count int64 `json:"count"`
}

// ReportedContent 教师审核时看的内容原文，不隐藏答案和解析
type ReportedContent struct {
	Id          int64    `json:"id"`
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	Explanation string   `json:"explanation,omitempty"`
	AuthorId    int64    `json:"authorId"`
	Options     []Option `json:"options,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

type Option struct {
	Id      int64  `json:"id"`
	Idx     int    `json:"idx"`
	Text    string `json:"text"`
	Correct bool   `json:"correct"`
}

func newReportedContent(c content.Content) ReportedContent {
	return ReportedContent{
		Id:          c.Id,
		Type:        c.Type,
		Title:       c.Title,
		Body:        c.Body,
		Explanation: c.Explanation,
		AuthorId:    c.AuthorId,
		Options: slice.Map(c.Options, func(idx int, src content.Option) Option {
			return Option{
				Id:      src.Id,
				Idx:     src.Idx,
				Text:    src.Text,
				Correct: src.Correct,
			}
		}),
		Tags: c.Tags,
	}
}

func newReport(r domain.Report) Report {
	res := Report{
		Id:               r.Id,
		ContentId:        r.ContentId,
		ContentTitle:     r.ContentTitle,
		ReporterId:       r.ReporterId,
		ReporterNickname: r.ReporterNickname,
		Category:         r.Category,
		Description:      r.Description,
		Status:           int32(r.Status),
		ResolveNote:      r.ResolveNote,
		Ctime:            r.Ctime.UnixMilli(),
	}
	if r.ResolvedAt != nil {
		res.ResolvedAt = r.ResolvedAt.UnixMilli()
	}
	return res
}
