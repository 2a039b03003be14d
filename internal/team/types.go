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

package team

import (
	"github.com/manabiya/manabiya/internal/team/internal/domain"
	"github.com/manabiya/manabiya/internal/team/internal/service"
	"github.com/manabiya/manabiya/internal/team/internal/web"
)

type Handler = web.Handler

type Team = domain.Team

type Member = domain.Member

// Service 给课程、看板这些模块校验班级归属用
type Service = service.TeamService

var (
	ErrTeamNotFound = service.ErrTeamNotFound
	ErrNotOwner     = service.ErrNotOwner
)

type Module struct {
	Hdl *Handler
	Svc Service
}
