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

import "time"

// StudySetting 教师给班级配置的学习计划，考试期间相关标签会被信息流加权
type StudySetting struct {
	Id     int64
	TeamId int64
	Name   string
	// ExamStart ExamEnd 考试区间，两个都配置了才生效
	ExamStart *time.Time
	ExamEnd   *time.Time
	Tags      []string
	Ctime     time.Time
}

// ActiveAt 判断 now 时刻是否处在考试区间里，边界算在区间内。
// 只配置了一端的区间永远不生效。
func (s StudySetting) ActiveAt(now time.Time) bool {
	if s.ExamStart == nil || s.ExamEnd == nil {
		return false
	}
	return !now.Before(*s.ExamStart) && !now.After(*s.ExamEnd)
}
