package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"skill-gap/internal/domain/advisor"
	"skill-gap/internal/domain/skill"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

const (
	advisoryCachePrefix = "advisory:"
	advisoryCacheTTL    = 10 * time.Minute
)

type AdvisorUsecase interface {
	Advise(ctx context.Context, employeeID uuid.UUID) (advisor.AdvisoryReport, error)
}

type Advisor struct {
	employees  repository.EmployeeRepository
	jobs       repository.JobRepository
	courses    repository.CourseRepository
	positions  PositionUsecase
	normalizer *skill.Normalizer
	cache      Cache
	cfg        advisor.Config
	logger     *log.Logger
}

func NewAdvisorUsecase(
	employees repository.EmployeeRepository,
	jobs repository.JobRepository,
	courses repository.CourseRepository,
	positions PositionUsecase,
	normalizer *skill.Normalizer,
	cache Cache,
	cfg advisor.Config,
	logger *log.Logger,
) *Advisor {
	return &Advisor{
		employees:  employees,
		jobs:       jobs,
		courses:    courses,
		positions:  positions,
		normalizer: normalizer,
		cache:      cache,
		cfg:        cfg,
		logger:     logger,
	}
}

// Advise builds the mentor and gap report for one employee. Every open job
// acts as a target domain, so the gap section mirrors the current vacancy
// landscape.
func (u *Advisor) Advise(ctx context.Context, employeeID uuid.UUID) (advisor.AdvisoryReport, error) {
	if employeeID == uuid.Nil {
		return advisor.AdvisoryReport{}, ErrInvalidInput
	}

	cacheKey := advisoryCachePrefix + employeeID.String()
	if u.cache != nil {
		var cached advisor.AdvisoryReport
		hit, err := u.cache.GetJSON(ctx, cacheKey, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}

	exists, err := u.employees.ExistsByID(ctx, employeeID)
	if err != nil {
		return advisor.AdvisoryReport{}, ErrInternal
	}
	if !exists {
		return advisor.AdvisoryReport{}, ErrEmployeeNotFound
	}

	positions, err := u.positions.PositionMap(ctx)
	if err != nil {
		return advisor.AdvisoryReport{}, ErrInternal
	}

	targets, err := u.domainTargets(ctx)
	if err != nil {
		return advisor.AdvisoryReport{}, ErrInternal
	}

	catalog, err := u.courses.CatalogAll(ctx)
	if err != nil {
		return advisor.AdvisoryReport{}, ErrInternal
	}

	report := advisor.Advise(employeeID, positions, targets, catalog, u.cfg)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, cacheKey, report, advisoryCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Advisor] Cache write failed | employee=%s err=%v", employeeID, err)
		}
	}

	return report, nil
}

func (u *Advisor) domainTargets(ctx context.Context) ([]advisor.DomainTarget, error) {
	jobs, err := u.jobs.ListAll(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrJobNotFound) {
			return []advisor.DomainTarget{}, nil
		}
		return nil, err
	}

	targets := make([]advisor.DomainTarget, 0, len(jobs))
	for _, j := range jobs {
		targets = append(targets, advisor.DomainTarget{
			Name:   j.Title,
			Skills: normalizeTokens(j.RequiredSkills, u.normalizer).Tokens(),
		})
	}
	return targets, nil
}
