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

package service

import (
	"context"
	"sort"
	"time"

	"github.com/manabiya/manabiya/internal/content"
	"github.com/manabiya/manabiya/internal/curriculum"
	"github.com/manabiya/manabiya/internal/feed/internal/domain"
	"github.com/manabiya/manabiya/internal/interactive"
	"github.com/manabiya/manabiya/internal/tag"
	"golang.org/x/sync/errgroup"
)

// 各路信号的权重。分数只会做加法，不同内容之间互不影响。
const (
	likeWeight = 1.0
	saveWeight = 5.0
	// freshBonus 发布不满 24 小时的新内容加分
	freshBonus = 5.0
	// likedBonus 当前用户赞过的内容加分
	likedBonus = 3.0
	// examBonus 内容标签和考试期标签有交集时加分
	examBonus = 15.0
)

// Config 时间窗配置，显式传入而不是读全局变量
type Config struct {
	// CandidateWindow 候选集只收这个窗口内发布的内容
	CandidateWindow time.Duration
	// FreshWindow 新内容加分的窗口
	FreshWindow time.Duration
}

const (
	defaultCandidateWindow = 7 * 24 * time.Hour
	defaultFreshWindow     = 24 * time.Hour
)

func (c Config) withDefaults() Config {
	if c.CandidateWindow <= 0 {
		c.CandidateWindow = defaultCandidateWindow
	}
	if c.FreshWindow <= 0 {
		c.FreshWindow = defaultFreshWindow
	}
	return c
}

//go:generate mockgen -source=./feed.go -package=feedmocks -destination=../../mocks/feed.mock.go FeedService
type FeedService interface {
	// GetScoredFeed 按分数倒序返回候选内容，同分保持候选集原始顺序。
	// 任何一路读取失败整个请求失败，不会返回残缺的信息流。
	GetScoredFeed(ctx context.Context, uid, teamId int64) ([]domain.ScoredContent, error)
}

type feedService struct {
	contentSvc    content.Service
	intrSvc       interactive.Service
	tagSvc        tag.Service
	curriculumSvc curriculum.Service
	cfg           Config
}

func NewFeedService(contentSvc content.Service,
	intrSvc interactive.Service,
	tagSvc tag.Service,
	curriculumSvc curriculum.Service,
	cfg Config) FeedService {
	return &feedService{
		contentSvc:    contentSvc,
		intrSvc:       intrSvc,
		tagSvc:        tagSvc,
		curriculumSvc: curriculumSvc,
		cfg:           cfg.withDefaults(),
	}
}

func (svc *feedService) GetScoredFeed(ctx context.Context, uid, teamId int64) ([]domain.ScoredContent, error) {
	// 整个打分过程用同一个 now，保证新鲜度判断一致
	now := time.Now()

	var (
		candidates []content.Content
		examTags   map[string]struct{}
	)
	// 候选集和考试期标签互不依赖，并发拉取
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		candidates, err = svc.contentSvc.PublishedSince(gctx, now.Add(-svc.cfg.CandidateWindow))
		return err
	})
	eg.Go(func() error {
		var err error
		examTags, err = svc.curriculumSvc.ExamTagsForTeam(gctx, teamId, now)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 每个候选独立打分，结果按下标写回，保持候选集顺序
	res := make([]domain.ScoredContent, len(candidates))
	eg, gctx = errgroup.WithContext(ctx)
	for i := range candidates {
		i, c := i, candidates[i]
		eg.Go(func() error {
			sc, err := svc.score(gctx, uid, c, examTags, now)
			if err != nil {
				return err
			}
			res[i] = sc
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	// 稳定排序，同分之间保持候选集的先后
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Score > res[j].Score
	})
	return res, nil
}

func (svc *feedService) score(ctx context.Context, uid int64,
	c content.Content, examTags map[string]struct{}, now time.Time) (domain.ScoredContent, error) {
	var (
		counts interactive.Counts
		liked  bool
		tags   []string
	)
	// 三路子信号也互不依赖
	eg, gctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		counts, err = svc.intrSvc.CountsForContent(gctx, c.Id)
		return err
	})
	eg.Go(func() error {
		var err error
		liked, err = svc.intrSvc.Liked(gctx, uid, c.Id)
		return err
	})
	eg.Go(func() error {
		var err error
		tags, err = svc.tagSvc.NamesForContent(gctx, c.Id)
		return err
	})
	if err := eg.Wait(); err != nil {
		return domain.ScoredContent{}, err
	}

	// 分享数不参与打分
	score := float64(counts.LikeCnt)*likeWeight + float64(counts.SaveCnt)*saveWeight
	if now.Sub(c.Ctime) < svc.cfg.FreshWindow {
		score += freshBonus
	}
	if liked {
		score += likedBonus
	}
	if overlaps(tags, examTags) {
		score += examBonus
	}
	return domain.ScoredContent{
		Content: c,
		LikeCnt: counts.LikeCnt,
		SaveCnt: counts.SaveCnt,
		Liked:   liked,
		Tags:    tags,
		Score:   score,
	}, nil
}

func overlaps(tags []string, examTags map[string]struct{}) bool {
	for _, t := range tags {
		if _, ok := examTags[t]; ok {
			return true
		}
	}
	return false
}
