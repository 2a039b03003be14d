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

package domain

import "github.com/manabiya/manabiya/internal/content"

// ScoredContent 打完分的候选内容。
// 显式组合而不是往 map 里塞字段，保证每个字段都一定有值。
type ScoredContent struct {
	Content content.Content
	LikeCnt int64
	SaveCnt int64
	// Liked 当前用户是否赞过
	Liked bool
	Tags  []string
	Score float64
}
