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

package content

import (
	"github.com/manabiya/manabiya/internal/content/internal/domain"
	"github.com/manabiya/manabiya/internal/content/internal/service"
	"github.com/manabiya/manabiya/internal/content/internal/web"
)

type Handler = web.Handler

type Content = domain.Content

type Option = domain.Option

type Answer = domain.Answer

const (
	TypeQuiz   = domain.TypeQuiz
	TypeTrivia = domain.TypeTrivia
)

// Service 信息流、互动和看板模块都会用到
type Service = service.ContentService

var ErrContentNotFound = service.ErrContentNotFound

type Module struct {
	Hdl *Handler
	Svc Service
}
