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

package tag

import (
	"github.com/manabiya/manabiya/internal/tag/internal/domain"
	"github.com/manabiya/manabiya/internal/tag/internal/service"
)

// 标签模块没有自己的 HTTP 接口，内容、信息流和看板模块直接用 Service

type Tag = domain.Tag

type TagCount = domain.TagCount

type Service = service.TagService

type Module struct {
	Svc Service
}
