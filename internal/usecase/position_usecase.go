package usecase

import (
	"context"
	"log"
	"time"

	"skill-gap/internal/domain/position"
	"skill-gap/internal/domain/skill"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

const (
	positionsCacheKey = "positions:map"
	positionsCacheTTL = 10 * time.Minute
)

type PositionUsecase interface {
	PositionMap(ctx context.Context) ([]position.SkillPosition, error)
	Rebuild(ctx context.Context) ([]position.SkillPosition, error)
	Invalidate(ctx context.Context)
}

type Position struct {
	employees  repository.EmployeeRepository
	normalizer *skill.Normalizer
	cache      Cache
	cfg        position.Config
	logger     *log.Logger
}

func NewPositionUsecase(
	employees repository.EmployeeRepository,
	normalizer *skill.Normalizer,
	cache Cache,
	cfg position.Config,
	logger *log.Logger,
) *Position {
	return &Position{
		employees:  employees,
		normalizer: normalizer,
		cache:      cache,
		cfg:        cfg,
		logger:     logger,
	}
}

// PositionMap serves the cached skill-space map when present and recomputes
// the whole batch otherwise.
func (u *Position) PositionMap(ctx context.Context) ([]position.SkillPosition, error) {
	if u.cache != nil {
		var cached []position.SkillPosition
		hit, err := u.cache.GetJSON(ctx, positionsCacheKey, &cached)
		if err == nil && hit {
			return cached, nil
		}
	}
	return u.Rebuild(ctx)
}

// Rebuild recomputes every employee position from scratch and refreshes the
// cache.
func (u *Position) Rebuild(ctx context.Context) ([]position.SkillPosition, error) {
	employees, err := u.employees.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	texts := make(map[uuid.UUID]string, len(employees))
	for _, e := range employees {
		texts[e.ID] = normalizeTokens(e.Skills, u.normalizer).Join(" ")
	}

	positions := position.BuildPositions(texts, u.cfg)

	if u.cache != nil {
		if err := u.cache.SetJSON(ctx, positionsCacheKey, positions, positionsCacheTTL); err != nil && u.logger != nil {
			u.logger.Printf("[Position] Cache write failed | err=%v", err)
		}
	}

	return positions, nil
}

func (u *Position) Invalidate(ctx context.Context) {
	if u.cache == nil {
		return
	}
	if err := u.cache.Delete(ctx, positionsCacheKey); err != nil && u.logger != nil {
		u.logger.Printf("[Position] Cache invalidate failed | err=%v", err)
	}
	if err := u.cache.DeleteByPattern(ctx, "advisory:*"); err != nil && u.logger != nil {
		u.logger.Printf("[Position] Cache invalidate failed | err=%v", err)
	}
}
