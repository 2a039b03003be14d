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

//go:build e2e

package integration

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ego-component/egorm"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/manabiya/manabiya/internal/team/internal/integration/startup"
	"github.com/manabiya/manabiya/internal/team/internal/repository/dao"
	"github.com/manabiya/manabiya/internal/team/internal/web"
	"github.com/manabiya/manabiya/internal/test"
	testioc "github.com/manabiya/manabiya/internal/test/ioc"
	"github.com/manabiya/manabiya/internal/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	teacherUid = int64(2051)
	studentUid = int64(3052)
)

type HandlerTestSuite struct {
	suite.Suite
	teacherServer *egin.Component
	studentServer *egin.Component
	db            *egorm.Component
	dao           dao.TeamDAO
}

func (s *HandlerTestSuite) SetupSuite() {
	db := testioc.InitDB()
	module := startup.InitModule(db, testioc.InitCache())
	hdl := module.Hdl
	econf.Set("server", map[string]any{"contextTimeout": "1s"})

	teacherServer := egin.Load("server").Build()
	teacherServer.Use(test.SessionMiddleware(teacherUid, user.RoleTeacher))
	hdl.PrivateRoutes(teacherServer.Engine)

	studentServer := egin.Load("server").Build()
	studentServer.Use(test.SessionMiddleware(studentUid, user.RoleStudent))
	hdl.PrivateRoutes(studentServer.Engine)

	s.teacherServer = teacherServer
	s.studentServer = studentServer
	s.db = db
	s.dao = dao.NewGORMTeamDAO(db)
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `teams`").Error
	require.NoError(s.T(), err)
	err = s.db.Exec("TRUNCATE TABLE `team_members`").Error
	require.NoError(s.T(), err)
}

func (s *HandlerTestSuite) TestCreateAndJoin() {
	t := s.T()
	// 教师建班级
	req, err := http.NewRequest(http.MethodPost,
		"/teams/create", iox.NewJSONReader(web.CreateReq{Name: "三年二班"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Team]()
	s.teacherServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	created := recorder.MustScan().Data
	assert.Equal(t, "三年二班", created.Name)
	assert.Len(t, created.JoinCode, 6)

	// 学生用参加码加入
	req, err = http.NewRequest(http.MethodPost,
		"/teams/join", iox.NewJSONReader(web.JoinReq{Code: created.JoinCode}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	joinRecorder := test.NewJSONResponseRecorder[web.Team]()
	s.studentServer.ServeHTTP(joinRecorder, req)
	require.Equal(t, 200, joinRecorder.Code)
	joined := joinRecorder.MustScan().Data
	assert.Equal(t, created.Id, joined.Id)

	// 再加入一次会失败
	req, err = http.NewRequest(http.MethodPost,
		"/teams/join", iox.NewJSONReader(web.JoinReq{Code: created.JoinCode}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	againRecorder := test.NewJSONResponseRecorder[web.Team]()
	s.studentServer.ServeHTTP(againRecorder, req)
	require.Equal(t, 200, againRecorder.Code)
	assert.Equal(t, 502003, againRecorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestJoinInvalidCode() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/teams/join", iox.NewJSONReader(web.JoinReq{Code: "ZZZZZZ"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Team]()
	s.studentServer.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 502002, recorder.MustScan().Code)
}

func (s *HandlerTestSuite) TestStudentCannotCreate() {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/teams/create", iox.NewJSONReader(web.CreateReq{Name: "野班级"}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.Team]()
	s.studentServer.ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
