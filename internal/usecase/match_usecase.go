package usecase

import (
	"context"
	"errors"
	"log"

	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/skill"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

type MatchUsecase interface {
	ScoreMatch(ctx context.Context, employeeID, jobID uuid.UUID) (matching.MatchResult, error)
	ScoreEmployee(ctx context.Context, employeeID uuid.UUID) ([]matching.MatchResult, error)
}

type Match struct {
	employees  repository.EmployeeRepository
	jobs       repository.JobRepository
	matches    repository.MatchRepository
	normalizer *skill.Normalizer
	cfg        matching.Config
	logger     *log.Logger
}

func NewMatchUsecase(
	employees repository.EmployeeRepository,
	jobs repository.JobRepository,
	matches repository.MatchRepository,
	normalizer *skill.Normalizer,
	cfg matching.Config,
	logger *log.Logger,
) *Match {
	return &Match{
		employees:  employees,
		jobs:       jobs,
		matches:    matches,
		normalizer: normalizer,
		cfg:        cfg,
		logger:     logger,
	}
}

func (u *Match) ScoreMatch(ctx context.Context, employeeID, jobID uuid.UUID) (matching.MatchResult, error) {
	if employeeID == uuid.Nil || jobID == uuid.Nil {
		return matching.MatchResult{}, ErrInvalidInput
	}

	emp, err := u.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return matching.MatchResult{}, ErrEmployeeNotFound
		}
		return matching.MatchResult{}, ErrInternal
	}

	job, err := u.jobs.FindByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return matching.MatchResult{}, ErrJobNotFound
		}
		return matching.MatchResult{}, ErrInternal
	}

	res, err := matching.Score(employeeProfile(emp, u.normalizer), jobRequirement(job, u.normalizer), u.cfg)
	if err != nil {
		return matching.MatchResult{}, ErrInternal
	}

	if u.matches != nil {
		if err := u.matches.Save(ctx, res); err != nil && u.logger != nil {
			u.logger.Printf("[Match] Persist failed | employee=%s job=%s err=%v", employeeID, jobID, err)
		}
	}

	return res, nil
}

// ScoreEmployee scores one employee against every job, ordered by the job
// listing order.
func (u *Match) ScoreEmployee(ctx context.Context, employeeID uuid.UUID) ([]matching.MatchResult, error) {
	if employeeID == uuid.Nil {
		return nil, ErrInvalidInput
	}

	emp, err := u.employees.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, repository.ErrEmployeeNotFound) {
			return nil, ErrEmployeeNotFound
		}
		return nil, ErrInternal
	}

	jobs, err := u.jobs.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	profile := employeeProfile(emp, u.normalizer)
	out := make([]matching.MatchResult, 0, len(jobs))
	for _, j := range jobs {
		res, err := matching.Score(profile, jobRequirement(j, u.normalizer), u.cfg)
		if err != nil {
			continue
		}
		out = append(out, res)
	}

	if u.matches != nil {
		if err := u.matches.SaveAll(ctx, out); err != nil && u.logger != nil {
			u.logger.Printf("[Match] Persist failed | employee=%s err=%v", employeeID, err)
		}
	}

	return out, nil
}
