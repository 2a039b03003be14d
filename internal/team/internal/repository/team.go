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

package repository

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/slice"
	"github.com/manabiya/manabiya/internal/team/internal/domain"
	"github.com/manabiya/manabiya/internal/team/internal/repository/dao"
)

var (
	ErrTeamNotFound  = dao.ErrRecordNotFound
	ErrAlreadyMember = dao.ErrAlreadyMember
)

//go:generate mockgen -source=./team.go -package=repomocks -destination=mocks/team.mock.go TeamRepository
type TeamRepository interface {
	Create(ctx context.Context, t domain.Team) (int64, error)
	FindById(ctx context.Context, id int64) (domain.Team, error)
	FindByJoinCode(ctx context.Context, code string) (domain.Team, error)
	FindByCreator(ctx context.Context, uid int64) ([]domain.Team, error)
	UpdateJoinCode(ctx context.Context, id int64, code string) error
	AddMember(ctx context.Context, teamId, uid int64) error
	// TeamIdOfUser 学生所在班级的 id，没加入任何班级时返回 ErrTeamNotFound
	TeamIdOfUser(ctx context.Context, uid int64) (int64, error)
	// MemberUids 返回成员 uid 和加入时间
	MemberUids(ctx context.Context, teamId int64) ([]domain.Member, error)
	MemberUidsOfTeams(ctx context.Context, teamIds []int64) ([]int64, error)
}

type teamRepository struct {
	dao dao.TeamDAO
}

func NewTeamRepository(d dao.TeamDAO) TeamRepository {
	return &teamRepository{dao: d}
}

func (r *teamRepository) Create(ctx context.Context, t domain.Team) (int64, error) {
	return r.dao.Insert(ctx, dao.Team{
		Name:      t.Name,
		JoinCode:  t.JoinCode,
		CreatedBy: t.CreatedBy,
		Active:    t.Active,
	})
}

func (r *teamRepository) FindById(ctx context.Context, id int64) (domain.Team, error) {
	t, err := r.dao.FindById(ctx, id)
	if err != nil {
		return domain.Team{}, err
	}
	return r.toDomain(t), nil
}

func (r *teamRepository) FindByJoinCode(ctx context.Context, code string) (domain.Team, error) {
	t, err := r.dao.FindByJoinCode(ctx, code)
	if err != nil {
		return domain.Team{}, err
	}
	return r.toDomain(t), nil
}

func (r *teamRepository) FindByCreator(ctx context.Context, uid int64) ([]domain.Team, error) {
	ts, err := r.dao.FindByCreator(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(ts, func(idx int, src dao.Team) domain.Team {
		return r.toDomain(src)
	}), nil
}

func (r *teamRepository) UpdateJoinCode(ctx context.Context, id int64, code string) error {
	return r.dao.UpdateJoinCode(ctx, id, code)
}

func (r *teamRepository) AddMember(ctx context.Context, teamId, uid int64) error {
	return r.dao.InsertMember(ctx, dao.TeamMember{
		TeamId: teamId,
		Uid:    uid,
	})
}

func (r *teamRepository) TeamIdOfUser(ctx context.Context, uid int64) (int64, error) {
	m, err := r.dao.FindMemberByUid(ctx, uid)
	if err != nil {
		return 0, err
	}
	return m.TeamId, nil
}

func (r *teamRepository) MemberUids(ctx context.Context, teamId int64) ([]domain.Member, error) {
	ms, err := r.dao.Members(ctx, teamId)
	if err != nil {
		return nil, err
	}
	return slice.Map(ms, func(idx int, src dao.TeamMember) domain.Member {
		return domain.Member{
			Uid:      src.Uid,
			JoinedAt: time.UnixMilli(src.Ctime),
		}
	}), nil
}

func (r *teamRepository) MemberUidsOfTeams(ctx context.Context, teamIds []int64) ([]int64, error) {
	return r.dao.MemberUidsOfTeams(ctx, teamIds)
}

func (r *teamRepository) toDomain(t dao.Team) domain.Team {
	return domain.Team{
		Id:        t.Id,
		Name:      t.Name,
		JoinCode:  t.JoinCode,
		CreatedBy: t.CreatedBy,
		Active:    t.Active,
		Ctime:     time.UnixMilli(t.Ctime),
	}
}
