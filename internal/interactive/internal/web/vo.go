package web

type ContentID struct {
	ContentId int64 `json:"contentId"`
}

type Content struct {
	Id             int64  `json:"id"`
	Type           string `json:"type"`
	Title          string `json:"title"`
	AuthorNickname string `json:"authorNickname,omitempty"`
	Ctime          int64  `json:"ctime"`
}

type ContentList struct {
	Contents []Content `json:"contents"`
}

type CountsResp struct {
	LikeCnt  int64 `json:"likeCnt"`
	SaveCnt  int64 `json:"saveCnt"`
	ShareCnt int64 `json:"shareCnt"`
	Liked    bool  `json:"liked"`
}
