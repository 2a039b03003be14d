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

package feed

import (
	"github.com/google/wire"
	"github.com/manabiya/manabiya/internal/content"
	"github.com/manabiya/manabiya/internal/curriculum"
	"github.com/manabiya/manabiya/internal/feed/internal/service"
	"github.com/manabiya/manabiya/internal/feed/internal/web"
	"github.com/manabiya/manabiya/internal/interactive"
	"github.com/manabiya/manabiya/internal/tag"
	"github.com/manabiya/manabiya/internal/team"
)

var ModuleSet = wire.NewSet(
	service.NewFeedService,
	web.NewHandler,
)

func InitModule(cfg Config,
	contentModule *content.Module,
	intrModule *interactive.Module,
	tagModule *tag.Module,
	curriculumModule *curriculum.Module,
	teamModule *team.Module) *Module {
	wire.Build(
		ModuleSet,
		wire.FieldsOf(new(*content.Module), "Svc"),
		wire.FieldsOf(new(*interactive.Module), "Svc"),
		wire.FieldsOf(new(*tag.Module), "Svc"),
		wire.FieldsOf(new(*curriculum.Module), "Svc"),
		wire.FieldsOf(new(*team.Module), "Svc"),
		wire.Struct(new(Module), "*"),
	)
	return new(Module)
}
