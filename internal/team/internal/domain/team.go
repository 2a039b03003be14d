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

// Team 一个教师管理的班级
type Team struct {
	Id        int64
	Name      string
	// JoinCode 学生加入班级用的参加码
	JoinCode  string
	CreatedBy int64
	Active    bool
	Ctime     time.Time
}

// Member 班级里的一个学生
type Member struct {
	Uid      int64
	Nickname string
	Email    string
	JoinedAt time.Time
}
