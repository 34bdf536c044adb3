package usecase

import (
	"context"
	"errors"
	"testing"

	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/training"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

func trainingFixture(weeklyHours float64) (*Training, repository.Employee, repository.Job, *stubPlanRepo) {
	emp := repository.Employee{
		ID:          uuid.New(),
		Skills:      []string{"python"},
		WeeklyHours: weeklyHours,
	}
	job := repository.Job{
		ID:             uuid.New(),
		Title:          "DevOps Engineer",
		RequiredSkills: []string{"python", "docker"},
	}
	catalog := map[string][]training.CourseRecord{
		"docker": {
			{ID: "crs-dck-101", Skill: "docker", Title: "Docker Basics", Hours: 24, Difficulty: 0.3, Rating: 4.5},
			{ID: "crs-dck-301", Skill: "docker", Title: "Advanced Docker", Hours: 60, Difficulty: 0.8, Rating: 4.8},
		},
	}
	plans := &stubPlanRepo{}
	u := NewTrainingUsecase(
		&stubEmployeeRepo{employees: []repository.Employee{emp}},
		&stubJobRepo{jobs: []repository.Job{job}},
		&stubCourseRepo{catalog: catalog},
		plans,
		testNormalizer(),
		matching.DefaultConfig(),
		training.DefaultConfig(),
		nil,
	)
	return u, emp, job, plans
}

func TestBuildPathClosesMissingSkills(t *testing.T) {
	u, emp, job, plans := trainingFixture(10)

	path, err := u.BuildPath(context.Background(), emp.ID, job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(path.Match.MissingSkills) != 1 || path.Match.MissingSkills[0] != "docker" {
		t.Fatalf("expected [docker] missing, got %v", path.Match.MissingSkills)
	}
	if len(path.Plan.IntroCourses) != 1 {
		t.Fatalf("expected one intro course, got %d", len(path.Plan.IntroCourses))
	}
	if len(path.Plan.DeepCourses) != 2 {
		t.Fatalf("expected two deep courses, got %d", len(path.Plan.DeepCourses))
	}
	if path.Plan.IntroWeeks == training.WeeksUndetermined {
		t.Fatalf("expected determinate weeks with a weekly budget")
	}
	if plans.saves != 1 {
		t.Fatalf("expected one persisted plan, got %d", plans.saves)
	}
}

func TestBuildPathWithoutWeeklyBudget(t *testing.T) {
	u, emp, job, _ := trainingFixture(0)

	path, err := u.BuildPath(context.Background(), emp.ID, job.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if path.Plan.IntroWeeks != training.WeeksUndetermined {
		t.Fatalf("expected undetermined intro weeks, got %d", path.Plan.IntroWeeks)
	}
	if path.Plan.DeepWeeks != training.WeeksUndetermined {
		t.Fatalf("expected undetermined deep weeks, got %d", path.Plan.DeepWeeks)
	}
}

func TestBuildPathUnknownJob(t *testing.T) {
	u, emp, _, _ := trainingFixture(10)

	_, err := u.BuildPath(context.Background(), emp.ID, uuid.New())
	if !errors.Is(err, ErrJobNotFound) {
		t.Fatalf("expected ErrJobNotFound, got %v", err)
	}
}
