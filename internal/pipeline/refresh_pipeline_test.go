package pipeline

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/position"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

type fakeEmployeeRepo struct {
	employees []repository.Employee
}

func (f *fakeEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Employee, error) {
	for _, e := range f.employees {
		if e.ID == id {
			return e, nil
		}
	}
	return repository.Employee{}, repository.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) ListAll(_ context.Context) ([]repository.Employee, error) {
	return f.employees, nil
}

func (f *fakeEmployeeRepo) ExistsByID(_ context.Context, _ uuid.UUID) (bool, error) {
	return true, nil
}

type fakeJobRepo struct {
	jobs []repository.Job
}

func (f *fakeJobRepo) FindByID(_ context.Context, id uuid.UUID) (repository.Job, error) {
	for _, j := range f.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return repository.Job{}, repository.ErrJobNotFound
}

func (f *fakeJobRepo) ListAll(_ context.Context) ([]repository.Job, error) {
	return f.jobs, nil
}

func (f *fakeJobRepo) ExistsByID(_ context.Context, _ uuid.UUID) (bool, error) {
	return true, nil
}

type countingMatcher struct {
	mu    sync.Mutex
	pairs int
}

func (m *countingMatcher) ScoreMatch(_ context.Context, employeeID, jobID uuid.UUID) (matching.MatchResult, error) {
	m.mu.Lock()
	m.pairs++
	m.mu.Unlock()
	return matching.MatchResult{EmployeeID: employeeID, JobID: jobID}, nil
}

func (m *countingMatcher) ScoreEmployee(_ context.Context, _ uuid.UUID) ([]matching.MatchResult, error) {
	return nil, nil
}

type fakePositions struct {
	rebuilt     int
	invalidated int
	out         []position.SkillPosition
}

func (f *fakePositions) PositionMap(_ context.Context) ([]position.SkillPosition, error) {
	return f.out, nil
}

func (f *fakePositions) Rebuild(_ context.Context) ([]position.SkillPosition, error) {
	f.rebuilt++
	return f.out, nil
}

func (f *fakePositions) Invalidate(_ context.Context) {
	f.invalidated++
}

func TestRefreshScoresEveryPair(t *testing.T) {
	employees := []repository.Employee{{ID: uuid.New()}, {ID: uuid.New()}, {ID: uuid.New()}}
	jobs := []repository.Job{{ID: uuid.New()}, {ID: uuid.New()}}
	matcher := &countingMatcher{}
	positions := &fakePositions{out: []position.SkillPosition{{EmployeeID: employees[0].ID}}}

	p := NewRefreshPipeline(&fakeEmployeeRepo{employees: employees}, &fakeJobRepo{jobs: jobs}, matcher, positions, nil)
	if err := p.Run(context.Background(), Params{ScoringWorkers: 4}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if matcher.pairs != len(employees)*len(jobs) {
		t.Fatalf("expected %d scored pairs, got %d", len(employees)*len(jobs), matcher.pairs)
	}
	if positions.rebuilt != 1 {
		t.Fatalf("expected one rebuild, got %d", positions.rebuilt)
	}
	if positions.invalidated != 1 {
		t.Fatalf("expected one invalidation, got %d", positions.invalidated)
	}

	st := p.Status()
	if st.State != StateIdle {
		t.Fatalf("expected idle state after run, got %q", st.State)
	}
	if st.Pairs != len(employees)*len(jobs) {
		t.Fatalf("expected status pairs %d, got %d", len(employees)*len(jobs), st.Pairs)
	}
}

func TestTryRunRejectsConcurrentRun(t *testing.T) {
	p := NewRefreshPipeline(nil, nil, nil, nil, nil)

	p.mu.Lock()
	p.status.State = StateRunning
	p.mu.Unlock()

	if p.TryRun(context.Background(), Params{}) {
		t.Fatalf("expected TryRun to reject while a run is in flight")
	}
}

type heldLockCache struct{}

func (heldLockCache) GetJSON(_ context.Context, _ string, _ any) (bool, error) { return false, nil }
func (heldLockCache) SetJSON(_ context.Context, _ string, _ any, _ time.Duration) error {
	return nil
}
func (heldLockCache) Delete(_ context.Context, _ string) error          { return nil }
func (heldLockCache) DeleteByPattern(_ context.Context, _ string) error { return nil }
func (heldLockCache) SetIfNotExists(_ context.Context, _ string, _ string, _ time.Duration) (bool, error) {
	return false, nil
}

func TestRunRespectsSharedLock(t *testing.T) {
	p := NewRefreshPipeline(nil, nil, nil, nil, nil)
	p.SetLockCache(heldLockCache{})

	if err := p.Run(context.Background(), Params{}); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}
	if p.TryRun(context.Background(), Params{}) {
		t.Fatalf("expected TryRun to yield while the shared lock is held")
	}
}

func TestRunRejectsConcurrentRun(t *testing.T) {
	p := NewRefreshPipeline(nil, nil, nil, nil, nil)

	p.mu.Lock()
	p.status.State = StateRunning
	p.mu.Unlock()

	if err := p.Run(context.Background(), Params{}); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning for overlapping Run, got %v", err)
	}
}

func TestRefreshScoresLargePopulation(t *testing.T) {
	employees := make([]repository.Employee, 0, 120)
	for i := 0; i < 120; i++ {
		employees = append(employees, repository.Employee{ID: uuid.New()})
	}
	jobs := make([]repository.Job, 0, 100)
	for i := 0; i < 100; i++ {
		jobs = append(jobs, repository.Job{ID: uuid.New()})
	}
	matcher := &countingMatcher{}
	positions := &fakePositions{}

	p := NewRefreshPipeline(&fakeEmployeeRepo{employees: employees}, &fakeJobRepo{jobs: jobs}, matcher, positions, nil)
	done := make(chan error, 1)
	go func() {
		done <- p.Run(context.Background(), Params{ScoringWorkers: 8})
	}()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	case <-time.After(30 * time.Second):
		t.Fatalf("refresh did not finish; scoring fan-out is stalled")
	}

	want := len(employees) * len(jobs)
	if matcher.pairs != want {
		t.Fatalf("expected %d scored pairs, got %d", want, matcher.pairs)
	}
	if st := p.Status(); st.Pairs != want || st.State != StateIdle {
		t.Fatalf("unexpected status after large run: %+v", st)
	}
}
