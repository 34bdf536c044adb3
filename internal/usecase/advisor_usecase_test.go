package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-gap/internal/domain/advisor"
	"skill-gap/internal/domain/position"
	"skill-gap/internal/domain/training"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

func advisorFixture() (*Advisor, []repository.Employee, *memCache) {
	employees := positionEmployees()
	jobs := []repository.Job{
		{ID: uuid.New(), Title: "Data Engineer", RequiredSkills: []string{"python", "sql", "docker"}},
	}
	catalog := map[string][]training.CourseRecord{
		"docker": {
			{ID: "crs-dck-101", Skill: "docker", Title: "Docker Basics", Hours: 24, Difficulty: 0.3, Rating: 4.5},
		},
	}
	cache := newMemCache()
	positionsUC := NewPositionUsecase(&stubEmployeeRepo{employees: employees}, testNormalizer(), cache, position.DefaultConfig(), nil)
	u := NewAdvisorUsecase(
		&stubEmployeeRepo{employees: employees},
		&stubJobRepo{jobs: jobs},
		&stubCourseRepo{catalog: catalog},
		positionsUC,
		testNormalizer(),
		cache,
		advisor.DefaultConfig(),
		nil,
	)
	return u, employees, cache
}

func TestAdviseBuildsReport(t *testing.T) {
	u, employees, _ := advisorFixture()
	target := employees[0].ID

	report, err := u.Advise(context.Background(), target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Found {
		t.Fatalf("expected the employee to be found in the map")
	}
	if report.EmployeeID != target {
		t.Fatalf("expected report for %s, got %s", target, report.EmployeeID)
	}
	if len(report.Mentors) == 0 {
		t.Fatalf("expected at least one mentor")
	}
	if len(report.Gaps) != 1 {
		t.Fatalf("expected one gap per open job, got %d", len(report.Gaps))
	}

	gap := report.Gaps[0]
	if gap.Domain != "Data Engineer" {
		t.Fatalf("expected job title as domain, got %q", gap.Domain)
	}
	if len(gap.Missing) == 0 {
		t.Fatalf("expected missing skills against the vacancy")
	}
	if report.Narrative == "" {
		t.Fatalf("expected a narrative")
	}
}

func TestAdviseServesFromCache(t *testing.T) {
	u, employees, cache := advisorFixture()
	target := employees[0].ID

	first, err := u.Advise(context.Background(), target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := cache.store[advisoryCachePrefix+target.String()]; !ok {
		t.Fatalf("expected advisory cache entry")
	}

	second, err := u.Advise(context.Background(), target)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.Narrative != second.Narrative {
		t.Fatalf("expected identical cached report")
	}
}

func TestAdviseUnknownEmployee(t *testing.T) {
	u, _, _ := advisorFixture()

	_, err := u.Advise(context.Background(), uuid.New())
	if !errors.Is(err, ErrEmployeeNotFound) {
		t.Fatalf("expected ErrEmployeeNotFound, got %v", err)
	}
}
