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

const (
	// TypeQuiz 带选项的题目
	TypeQuiz = "quiz"
	// TypeTrivia 纯阅读的小知识
	TypeTrivia = "trivia"
)

type Content struct {
	Id    int64
	Type  string
	Title string
	// Body 题干或者小知识正文
	Body        string
	Explanation string
	AuthorId    int64
	// AuthorNickname 列表场景下由查询带出来
	AuthorNickname string
	Published      bool
	Options        []Option
	Tags           []string
	Ctime          time.Time
}

type Option struct {
	Id int64
	// Idx 选项展示顺序
	Idx     int
	Text    string
	Correct bool
}

// Answer 学生对一道题的作答记录
type Answer struct {
	Id        int64
	Uid       int64
	ContentId int64
	OptionId  int64
	Correct   bool
	Ctime     time.Time
}
