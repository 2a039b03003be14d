package web

import (
	"github.com/manabiya/manabiya/internal/dashboard/internal/domain"
	"github.com/manabiya/manabiya/internal/tag"
)

type SummaryReq struct {
	// TeamId 为零统计名下全部班级
	TeamId int64 `json:"teamId"`
}

type Summary struct {
	TotalStudents  int64   `json:"totalStudents"`
	TotalAnswers   int64   `json:"totalAnswers"`
	Accuracy       float64 `json:"accuracy"`
	PostsCreated   int64   `json:"postsCreated"`
	PendingReports int64   `json:"pendingReports"`
}

type PopularTag struct {
	Name string `json:"name"`
	Cnt  int64  `json:"cnt"`
}

type PopularTagList struct {
	Tags []PopularTag `json:"tags"`
}

func newSummary(s domain.Summary) Summary {
	return Summary{
		TotalStudents:  s.TotalStudents,
		TotalAnswers:   s.TotalAnswers,
		Accuracy:       s.Accuracy,
		PostsCreated:   s.PostsCreated,
		PendingReports: s.PendingReports,
	}
}

func newPopularTag(tc tag.TagCount) PopularTag {
	return PopularTag{
		Name: tc.Name,
		Cnt:  tc.Cnt,
	}
}
