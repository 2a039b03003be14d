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

const (
	// RoleTeacher 教师，管理班级和考试范围
	RoleTeacher = "teacher"
	// RoleStudent 学生，通过参加码加入班级
	RoleStudent = "student"
)

type User struct {
	Id       int64
	Email    string
	// Password 明文只在注册和登录的参数里出现，存储的是 bcrypt 哈希
	Password string
	Nickname string
	Avatar   string
	Role     string
}

func (u User) IsTeacher() bool {
	return u.Role == RoleTeacher
}
