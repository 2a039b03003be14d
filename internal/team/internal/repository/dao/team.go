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

package dao

import (
	"context"
	"errors"
	"time"

	"github.com/ego-component/egorm"
	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

var (
	ErrRecordNotFound = gorm.ErrRecordNotFound
	// ErrAlreadyMember 一个学生最多加入一个班级，uid 上有唯一索引
	ErrAlreadyMember = errors.New("已经加入了班级")
)

//go:generate mockgen -source=./team.go -package=daomocks -destination=mocks/team.mock.go TeamDAO
type TeamDAO interface {
	Insert(ctx context.Context, t Team) (int64, error)
	FindById(ctx context.Context, id int64) (Team, error)
	FindByJoinCode(ctx context.Context, code string) (Team, error)
	FindByCreator(ctx context.Context, uid int64) ([]Team, error)
	UpdateJoinCode(ctx context.Context, id int64, code string) error
	InsertMember(ctx context.Context, m TeamMember) error
	FindMemberByUid(ctx context.Context, uid int64) (TeamMember, error)
	Members(ctx context.Context, teamId int64) ([]TeamMember, error)
	MemberUidsOfTeams(ctx context.Context, teamIds []int64) ([]int64, error)
}

type GORMTeamDAO struct {
	db *egorm.Component
}

func NewGORMTeamDAO(db *egorm.Component) TeamDAO {
	return &GORMTeamDAO{db: db}
}

func (dao *GORMTeamDAO) Insert(ctx context.Context, t Team) (int64, error) {
	now := time.Now().UnixMilli()
	t.Ctime = now
	t.Utime = now
	err := dao.db.WithContext(ctx).Create(&t).Error
	return t.Id, err
}

func (dao *GORMTeamDAO) FindById(ctx context.Context, id int64) (Team, error) {
	var t Team
	err := dao.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return t, err
}

func (dao *GORMTeamDAO) FindByJoinCode(ctx context.Context, code string) (Team, error) {
	var t Team
	err := dao.db.WithContext(ctx).
		First(&t, "join_code = ? AND active = ?", code, true).Error
	return t, err
}

func (dao *GORMTeamDAO) FindByCreator(ctx context.Context, uid int64) ([]Team, error) {
	var ts []Team
	err := dao.db.WithContext(ctx).
		Where("created_by = ? AND active = ?", uid, true).
		Order("id DESC").
		Find(&ts).Error
	return ts, err
}

func (dao *GORMTeamDAO) UpdateJoinCode(ctx context.Context, id int64, code string) error {
	return dao.db.WithContext(ctx).Model(&Team{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"join_code": code,
			"utime":     time.Now().UnixMilli(),
		}).Error
}

func (dao *GORMTeamDAO) InsertMember(ctx context.Context, m TeamMember) error {
	now := time.Now().UnixMilli()
	m.Ctime = now
	m.Utime = now
	err := dao.db.WithContext(ctx).Create(&m).Error
	if me, ok := err.(*mysql.MySQLError); ok {
		const uniqueIndexErrNo uint16 = 1062
		if me.Number == uniqueIndexErrNo {
			return ErrAlreadyMember
		}
	}
	return err
}

func (dao *GORMTeamDAO) FindMemberByUid(ctx context.Context, uid int64) (TeamMember, error) {
	var m TeamMember
	err := dao.db.WithContext(ctx).First(&m, "uid = ?", uid).Error
	return m, err
}

func (dao *GORMTeamDAO) Members(ctx context.Context, teamId int64) ([]TeamMember, error) {
	var ms []TeamMember
	err := dao.db.WithContext(ctx).
		Where("team_id = ?", teamId).
		Order("id").
		Find(&ms).Error
	return ms, err
}

func (dao *GORMTeamDAO) MemberUidsOfTeams(ctx context.Context, teamIds []int64) ([]int64, error) {
	if len(teamIds) == 0 {
		return nil, nil
	}
	var uids []int64
	err := dao.db.WithContext(ctx).Model(&TeamMember{}).
		Select("uid").
		Where("team_id IN ?", teamIds).
		Scan(&uids).Error
	return uids, err
}

type Team struct {
	Id        int64  `gorm:"primaryKey,autoIncrement"`
	Name      string `gorm:"type:varchar(256)"`
	JoinCode  string `gorm:"type:varchar(16);unique"`
	CreatedBy int64  `gorm:"index"`
	Active    bool
	Ctime     int64
	Utime     int64
}

type TeamMember struct {
	Id     int64 `gorm:"primaryKey,autoIncrement"`
	TeamId int64 `gorm:"index"`
	// Uid 唯一索引保证一个学生只在一个班级里
	Uid   int64 `gorm:"unique"`
	Ctime int64
	Utime int64
}
