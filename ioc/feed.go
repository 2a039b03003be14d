package ioc

import (
	"time"

	"github.com/gotomicro/ego/core/econf"
	"github.com/manabiya/manabiya/internal/content"
	"github.com/manabiya/manabiya/internal/curriculum"
	"github.com/manabiya/manabiya/internal/feed"
	"github.com/manabiya/manabiya/internal/interactive"
	"github.com/manabiya/manabiya/internal/tag"
	"github.com/manabiya/manabiya/internal/team"
)

// InitFeedModule 时间窗从配置读，没配就用默认值
func InitFeedModule(contentModule *content.Module,
	intrModule *interactive.Module,
	tagModule *tag.Module,
	curriculumModule *curriculum.Module,
	teamModule *team.Module) *feed.Module {
	type FeedConfig struct {
		CandidateWindow time.Duration `yaml:"candidateWindow"`
		FreshWindow     time.Duration `yaml:"freshWindow"`
	}
	var cfg FeedConfig
	err := econf.UnmarshalKey("feed", &cfg)
	if err != nil {
		panic(err)
	}
	return feed.InitModule(feed.Config{
		CandidateWindow: cfg.CandidateWindow,
		FreshWindow:     cfg.FreshWindow,
	}, contentModule, intrModule, tagModule, curriculumModule, teamModule)
}
