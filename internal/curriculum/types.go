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

package curriculum

import (
	"github.com/manabiya/manabiya/internal/curriculum/internal/domain"
	"github.com/manabiya/manabiya/internal/curriculum/internal/service"
	"github.com/manabiya/manabiya/internal/curriculum/internal/web"
)

type Handler = web.Handler

type StudySetting = domain.StudySetting

// Service 信息流模块靠它拿考试期标签
type Service = service.CurriculumService

type Module struct {
	Hdl *Handler
	Svc Service
}
