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

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/lithammer/shortuuid/v4"
	"github.com/manabiya/manabiya/internal/team/internal/domain"
	"github.com/manabiya/manabiya/internal/team/internal/repository"
)

var (
	ErrTeamNotFound  = repository.ErrTeamNotFound
	ErrAlreadyInTeam = repository.ErrAlreadyMember
	// ErrNotOwner 不是这个班级的创建者
	ErrNotOwner = errors.New("不是班级的创建者")
)

const joinCodeLen = 6

//go:generate mockgen -source=./team.go -package=teammocks -destination=../../mocks/team.mock.go TeamService
type TeamService interface {
	// Create 创建班级，自动生成参加码
	Create(ctx context.Context, teacherId int64, name string) (domain.Team, error)
	MyTeams(ctx context.Context, teacherId int64) ([]domain.Team, error)
	// VerifyOwner 校验教师是不是班级创建者
	// 班级不存在返回 ErrTeamNotFound，不是创建者返回 ErrNotOwner
	VerifyOwner(ctx context.Context, teamId, teacherId int64) (domain.Team, error)
	RegenerateCode(ctx context.Context, teamId, teacherId int64) (domain.Team, error)
	Members(ctx context.Context, teamId int64) ([]domain.Member, error)
	// Join 学生用参加码加入班级
	Join(ctx context.Context, uid int64, code string) (domain.Team, error)
	// TeamOfUser 学生所在的班级，没加入时返回 ErrTeamNotFound
	TeamOfUser(ctx context.Context, uid int64) (domain.Team, error)
	// StudentIdsOfTeacher 教师名下所有班级的学生 uid
	StudentIdsOfTeacher(ctx context.Context, teacherId int64) ([]int64, error)
}

type teamService struct {
	repo repository.TeamRepository
}

func NewTeamService(repo repository.TeamRepository) TeamService {
	return &teamService{repo: repo}
}

func (svc *teamService) Create(ctx context.Context, teacherId int64, name string) (domain.Team, error) {
	t := domain.Team{
		Name:      name,
		JoinCode:  genJoinCode(),
		CreatedBy: teacherId,
		Active:    true,
	}
	id, err := svc.repo.Create(ctx, t)
	if err != nil {
		return domain.Team{}, err
	}
	t.Id = id
	return t, nil
}

func (svc *teamService) MyTeams(ctx context.Context, teacherId int64) ([]domain.Team, error) {
	return svc.repo.FindByCreator(ctx, teacherId)
}

func (svc *teamService) VerifyOwner(ctx context.Context, teamId, teacherId int64) (domain.Team, error) {
	t, err := svc.repo.FindById(ctx, teamId)
	if err != nil {
		return domain.Team{}, err
	}
	if t.CreatedBy != teacherId {
		return domain.Team{}, ErrNotOwner
	}
	return t, nil
}

func (svc *teamService) RegenerateCode(ctx context.Context, teamId, teacherId int64) (domain.Team, error) {
	t, err := svc.VerifyOwner(ctx, teamId, teacherId)
	if err != nil {
		return domain.Team{}, err
	}
	t.JoinCode = genJoinCode()
	err = svc.repo.UpdateJoinCode(ctx, teamId, t.JoinCode)
	if err != nil {
		return domain.Team{}, err
	}
	return t, nil
}

func (svc *teamService) Members(ctx context.Context, teamId int64) ([]domain.Member, error) {
	return svc.repo.MemberUids(ctx, teamId)
}

func (svc *teamService) Join(ctx context.Context, uid int64, code string) (domain.Team, error) {
	t, err := svc.repo.FindByJoinCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		return domain.Team{}, err
	}
	err = svc.repo.AddMember(ctx, t.Id, uid)
	if err != nil {
		return domain.Team{}, err
	}
	return t, nil
}

func (svc *teamService) TeamOfUser(ctx context.Context, uid int64) (domain.Team, error) {
	teamId, err := svc.repo.TeamIdOfUser(ctx, uid)
	if err != nil {
		return domain.Team{}, err
	}
	return svc.repo.FindById(ctx, teamId)
}

func (svc *teamService) StudentIdsOfTeacher(ctx context.Context, teacherId int64) ([]int64, error) {
	ts, err := svc.repo.FindByCreator(ctx, teacherId)
	if err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(ts))
	for _, t := range ts {
		ids = append(ids, t.Id)
	}
	return svc.repo.MemberUidsOfTeams(ctx, ids)
}

// genJoinCode 参加码要念得出来也抄得下来，取 shortuuid 的前缀再转大写
func genJoinCode() string {
	return strings.ToUpper(shortuuid.New()[:joinCodeLen])
}
