package web

import (
	"github.com/manabiya/manabiya/internal/feed/internal/domain"
)

type FeedItem struct {
	Id             int64    `json:"id"`
	Type           string   `json:"type"`
	Title          string   `json:"title"`
	Body           string   `json:"body"`
	AuthorId       int64    `json:"authorId"`
	AuthorNickname string   `json:"authorNickname"`
	LikeCnt        int64    `json:"likeCnt"`
	SaveCnt        int64    `json:"saveCnt"`
	Liked          bool     `json:"liked"`
	Tags           []string `json:"tags"`
	Score          float64  `json:"score"`
	Ctime          int64    `json:"ctime"`
}

type FeedResp struct {
	Items []FeedItem `json:"items"`
}

func newFeedItem(sc domain.ScoredContent) FeedItem {
	return FeedItem{
		Id:             sc.Content.Id,
		Type:           sc.Content.Type,
		Title:          sc.Content.Title,
		Body:           sc.Content.Body,
		AuthorId:       sc.Content.AuthorId,
		AuthorNickname: sc.Content.AuthorNickname,
		LikeCnt:        sc.LikeCnt,
		SaveCnt:        sc.SaveCnt,
		Liked:          sc.Liked,
		Tags:           sc.Tags,
		Score:          sc.Score,
		Ctime:          sc.Content.Ctime.UnixMilli(),
	}
}
