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
	"time"

	"github.com/manabiya/manabiya/internal/curriculum/internal/domain"
	"github.com/manabiya/manabiya/internal/curriculum/internal/repository"
	"github.com/manabiya/manabiya/internal/team"
)

var (
	ErrSettingNotFound = repository.ErrSettingNotFound
	ErrNoPermission    = errors.New("没有权限操作这个班级的学习计划")
)

//go:generate mockgen -source=./curriculum.go -package=curriculummocks -destination=../../mocks/curriculum.mock.go CurriculumService
type CurriculumService interface {
	Create(ctx context.Context, teacherId int64, s domain.StudySetting) (int64, error)
	Update(ctx context.Context, teacherId int64, s domain.StudySetting) error
	Delete(ctx context.Context, teacherId, id int64) error
	List(ctx context.Context, teacherId, teamId int64) ([]domain.StudySetting, error)
	// ExamTagsForTeam 当前处于考试期的学习计划的标签全集，去重。
	// teamId 为 0 或者班级没配置学习计划时返回空集合，不是错误。
	ExamTagsForTeam(ctx context.Context, teamId int64, now time.Time) (map[string]struct{}, error)
}

type curriculumService struct {
	repo    repository.StudySettingRepository
	teamSvc team.Service
}

func NewCurriculumService(repo repository.StudySettingRepository, teamSvc team.Service) CurriculumService {
	return &curriculumService{
		repo:    repo,
		teamSvc: teamSvc,
	}
}

func (svc *curriculumService) Create(ctx context.Context, teacherId int64, s domain.StudySetting) (int64, error) {
	err := svc.verifyTeam(ctx, s.TeamId, teacherId)
	if err != nil {
		return 0, err
	}
	return svc.repo.Create(ctx, s)
}

func (svc *curriculumService) Update(ctx context.Context, teacherId int64, s domain.StudySetting) error {
	old, err := svc.repo.FindById(ctx, s.Id)
	if err != nil {
		return err
	}
	err = svc.verifyTeam(ctx, old.TeamId, teacherId)
	if err != nil {
		return err
	}
	// 学习计划不允许挪到别的班级
	s.TeamId = old.TeamId
	return svc.repo.Update(ctx, s)
}

func (svc *curriculumService) Delete(ctx context.Context, teacherId, id int64) error {
	old, err := svc.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	err = svc.verifyTeam(ctx, old.TeamId, teacherId)
	if err != nil {
		return err
	}
	return svc.repo.Delete(ctx, id)
}

func (svc *curriculumService) List(ctx context.Context, teacherId, teamId int64) ([]domain.StudySetting, error) {
	err := svc.verifyTeam(ctx, teamId, teacherId)
	if err != nil {
		return nil, err
	}
	return svc.repo.FindByTeam(ctx, teamId)
}

func (svc *curriculumService) ExamTagsForTeam(ctx context.Context, teamId int64, now time.Time) (map[string]struct{}, error) {
	res := make(map[string]struct{})
	if teamId == 0 {
		return res, nil
	}
	ss, err := svc.repo.FindByTeam(ctx, teamId)
	if err != nil {
		return nil, err
	}
	for _, s := range ss {
		if !s.ActiveAt(now) {
			continue
		}
		for _, name := range s.Tags {
			res[name] = struct{}{}
		}
	}
	return res, nil
}

func (svc *curriculumService) verifyTeam(ctx context.Context, teamId, teacherId int64) error {
	_, err := svc.teamSvc.VerifyOwner(ctx, teamId, teacherId)
	if errors.Is(err, team.ErrNotOwner) || errors.Is(err, team.ErrTeamNotFound) {
		return ErrNoPermission
	}
	return err
}
