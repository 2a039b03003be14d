//go:build wireinject

package ioc

import (
	"github.com/google/wire"
	"github.com/manabiya/manabiya/internal/content"
	"github.com/manabiya/manabiya/internal/curriculum"
	"github.com/manabiya/manabiya/internal/dashboard"
	"github.com/manabiya/manabiya/internal/feed"
	"github.com/manabiya/manabiya/internal/interactive"
	"github.com/manabiya/manabiya/internal/report"
	"github.com/manabiya/manabiya/internal/tag"
	"github.com/manabiya/manabiya/internal/team"
	"github.com/manabiya/manabiya/internal/user"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		InitSession,
		user.InitModule,
		team.InitModule,
		tag.InitModule,
		curriculum.InitModule,
		content.InitModule,
		interactive.InitModule,
		InitFeedModule,
		report.InitModule,
		dashboard.InitModule,
		wire.FieldsOf(new(*user.Module), "Hdl"),
		wire.FieldsOf(new(*team.Module), "Hdl"),
		wire.FieldsOf(new(*curriculum.Module), "Hdl"),
		wire.FieldsOf(new(*content.Module), "Hdl"),
		wire.FieldsOf(new(*interactive.Module), "Hdl"),
		wire.FieldsOf(new(*feed.Module), "Hdl"),
		wire.FieldsOf(new(*report.Module), "Hdl"),
		wire.FieldsOf(new(*dashboard.Module), "Hdl"),
		initGinxServer)
	return new(App), nil
}
