package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/training"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

type stubEmployeeRepo struct {
	employees []repository.Employee
	failWith  error
}

func (s *stubEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Employee, error) {
	if s.failWith != nil {
		return repository.Employee{}, s.failWith
	}
	for _, e := range s.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return repository.Employee{}, repository.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) ListAll(_ context.Context) ([]repository.Employee, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.employees, nil
}

func (s *stubEmployeeRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	if s.failWith != nil {
		return false, s.failWith
	}
	_, err := s.FindByID(ctx, id)
	if errors.Is(err, repository.ErrEmployeeNotFound) {
		return false, nil
	}
	return err == nil, err
}

type stubJobRepo struct {
	jobs     []repository.Job
	failWith error
}

func (s *stubJobRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Job, error) {
	if s.failWith != nil {
		return repository.Job{}, s.failWith
	}
	for _, j := range s.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return repository.Job{}, repository.ErrJobNotFound
}

func (s *stubJobRepo) ListAll(_ context.Context) ([]repository.Job, error) {
	if s.failWith != nil {
		return nil, s.failWith
	}
	return s.jobs, nil
}

func (s *stubJobRepo) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := s.FindByID(ctx, id)
	if errors.Is(err, repository.ErrJobNotFound) {
		return false, nil
	}
	return err == nil, err
}

type stubMatchRepo struct {
	saved []matching.MatchResult
}

func (s *stubMatchRepo) Save(_ context.Context, res matching.MatchResult) error {
	s.saved = append(s.saved, res)
	return nil
}

func (s *stubMatchRepo) SaveAll(_ context.Context, results []matching.MatchResult) error {
	s.saved = append(s.saved, results...)
	return nil
}

type stubCourseRepo struct {
	catalog map[string][]training.CourseRecord
}

func (s *stubCourseRepo) CatalogForSkills(_ context.Context, tokens []string) (map[string][]training.CourseRecord, error) {
	out := make(map[string][]training.CourseRecord, len(tokens))
	for _, t := range tokens {
		if cs, ok := s.catalog[t]; ok {
			out[t] = cs
		}
	}
	return out, nil
}

func (s *stubCourseRepo) CatalogAll(_ context.Context) (map[string][]training.CourseRecord, error) {
	return s.catalog, nil
}

func (s *stubCourseRepo) UpsertCourses(_ context.Context, _ []repository.CourseUpsert) error {
	return nil
}

func (s *stubCourseRepo) EnsureSource(_ context.Context, _, _ string) (uuid.UUID, error) {
	return uuid.New(), nil
}

type stubPlanRepo struct {
	saves int
}

func (s *stubPlanRepo) Save(_ context.Context, _, _ uuid.UUID, _ training.TrainingPlan) error {
	s.saves++
	return nil
}

type memCache struct {
	store map[string][]byte
}

func newMemCache() *memCache {
	return &memCache{store: make(map[string][]byte)}
}

func (c *memCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	b, ok := c.store[key]
	if !ok {
		return false, nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return false, err
	}
	return true, nil
}

func (c *memCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.store[key] = b
	return nil
}

func (c *memCache) Delete(_ context.Context, key string) error {
	delete(c.store, key)
	return nil
}

func (c *memCache) DeleteByPattern(_ context.Context, pattern string) error {
	if len(pattern) > 0 && pattern[len(pattern)-1] == '*' {
		prefix := pattern[:len(pattern)-1]
		for k := range c.store {
			if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
				delete(c.store, k)
			}
		}
	}
	return nil
}

func (c *memCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	if _, ok := c.store[key]; ok {
		return false, nil
	}
	c.store[key] = []byte(value)
	return true, nil
}
