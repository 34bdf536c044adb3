package usecase

import (
	"context"
	"errors"
	"log"

	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/skill"
	"skill-gap/internal/domain/training"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

// TrainingPath pairs the fit score with the course plan that closes its gaps.
type TrainingPath struct {
	Match matching.MatchResult
	Plan  training.TrainingPlan
}

type TrainingUsecase interface {
	BuildPath(ctx context.Context, employeeID, jobID uuid.UUID) (TrainingPath, error)
}

type Training struct {
	employees  repository.EmployeeRepository
	jobs       repository.JobRepository
	courses    repository.CourseRepository
	plans      repository.PlanRepository
	normalizer *skill.Normalizer
	matchCfg   matching.Config
	planCfg    training.Config
	logger     *log.Logger
}

func NewTrainingUsecase(
	employees repository.EmployeeRepository,
	jobs repository.JobRepository,
	courses repository.CourseRepository,
	plans repository.PlanRepository,
	normalizer *skill.Normalizer,
	matchCfg matching.Config,
	planCfg training.Config,
	logger *log.Logger,
) *Training {
	return &Training{
		employees:  employees,
		jobs:       jobs,
		courses:    courses,
		plans:      plans,
		normalizer: normalizer,
		matchCfg:   matchCfg,
		planCfg:    planCfg,
		logger:     logger,
	}
}

func (u *Training) BuildPath(ctx context.Context, employeeID, jobID uuid.UUID) (TrainingPath, error) {
	if employeeID == uuid.Nil || jobID == uuid.Nil {
		return TrainingPath{}, ErrInvalidInput
	}

	emp, err := u.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return TrainingPath{}, ErrEmployeeNotFound
		}
		return TrainingPath{}, ErrInternal
	}

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return TrainingPath{}, ErrJobNotFound
		}
		return TrainingPath{}, ErrInternal
	}

	res, err := matching.Score(employeeProfile(emp, u.normalizer), jobRequirement(job, u.normalizer), u.matchCfg)
	if err != nil {
		return TrainingPath{}, ErrInternal
	}

	catalog, err := u.courses.CatalogForSkills(ctx, res.MissingSkills)
	if err != nil {
		return TrainingPath{}, ErrInternal
	}

	plan := training.BuildPlan(res.MissingSkills, catalog, emp.WeeklyHours, u.planCfg)

	if u.plans != nil {
		if err := u.plans.Save(ctx, employeeID, jobID, plan); err != nil && u.logger != nil {
			u.logger.Printf("[Training] Persist failed | employee=%s job=%s err=%v", employeeID, jobID, err)
		}
	}

	return TrainingPath{Match: res, Plan: plan}, nil
}
