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

//go:build wireinject

package report

import (
	"github.com/ego-component/egorm"
	"github.com/google/wire"
	"github.com/manabiya/manabiya/internal/content"
	"github.com/manabiya/manabiya/internal/report/internal/repository"
	"github.com/manabiya/manabiya/internal/report/internal/service"
	"github.com/manabiya/manabiya/internal/report/internal/web"
	"github.com/manabiya/manabiya/internal/team"
	"github.com/manabiya/manabiya/internal/user"
)

var ModuleSet = wire.NewSet(
	InitTablesOnce,
	repository.NewReportRepository,
	service.NewReportService,
	web.NewHandler,
)

func InitModule(db *egorm.Component,
	contentModule *content.Module,
	teamModule *team.Module,
	userModule *user.Module) *Module {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*content.Module), "Svc"),
		wire.FieldsOf(new(*team.Module), "Svc"),
		wire.FieldsOf(new(*user.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
