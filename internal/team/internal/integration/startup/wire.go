//go:build wireinject

package startup

import (
	"github.com/ecodeclub/ecache"
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/manabiya/manabiya/internal/team"
	"github.com/manabiya/manabiya/internal/user"
)

func InitModule(db *egorm.Component, ec ecache.Cache) *team.Module {
	wire.Build(
		user.InitModule,
		team.InitModule,
	)
	return new(team.Module)
}
