package pipeline

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"skill-gap/internal/repository"
	"skill-gap/internal/usecase"
	"skill-gap/internal/ws"
)

const (
	StateIdle    = "idle"
	StateRunning = "running"
)

const (
	refreshLockKey = "pipeline:refresh:lock"
	refreshLockTTL = 30 * time.Minute
)

var ErrAlreadyRunning = errors.New("refresh already running")

type Status struct {
	State      string    `json:"state"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Pairs      int       `json:"pairs"`
	Failed     int       `json:"failed"`
	Employees  int       `json:"employees"`
}

type Params struct {
	ScoringWorkers int
}

// RefreshPipeline recomputes every derived artifact: all employee-to-job fit
// scores, then the skill-space map. The whole batch runs from scratch; there
// is no incremental path.
type RefreshPipeline struct {
	employees repository.EmployeeRepository
	jobs      repository.JobRepository
	matcher   usecase.MatchUsecase
	positions usecase.PositionUsecase
	locks     usecase.Cache

	mu     sync.Mutex
	status Status

	log *log.Logger
}

func NewRefreshPipeline(
	employees repository.EmployeeRepository,
	jobs repository.JobRepository,
	matcher usecase.MatchUsecase,
	positions usecase.PositionUsecase,
	logger *log.Logger,
) *RefreshPipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &RefreshPipeline{
		employees: employees,
		jobs:      jobs,
		matcher:   matcher,
		positions: positions,
		status:    Status{State: StateIdle},
		log:       logger,
	}
}

// SetLockCache arms a shared run lock so only one instance recomputes at a
// time. Without it the in-process mutex is the only guard.
func (p *RefreshPipeline) SetLockCache(cache usecase.Cache) {
	p.locks = cache
}

func (p *RefreshPipeline) acquireLock(ctx context.Context) bool {
	if p.locks == nil {
		return true
	}
	ok, err := p.locks.SetIfNotExists(ctx, refreshLockKey, "1", refreshLockTTL)
	if err != nil {
		p.log.Printf("pipeline=refresh step=lock status=error err=%v", err)
		return true
	}
	return ok
}

func (p *RefreshPipeline) releaseLock(ctx context.Context) {
	if p.locks == nil {
		return
	}
	if err := p.locks.Delete(ctx, refreshLockKey); err != nil {
		p.log.Printf("pipeline=refresh step=lock status=error err=%v", err)
	}
}

func (p *RefreshPipeline) Status() Status {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.status
}

// TryRun starts a run unless one is already in flight.
func (p *RefreshPipeline) TryRun(ctx context.Context, params Params) bool {
	p.mu.Lock()
	if p.status.State == StateRunning {
		p.mu.Unlock()
		return false
	}
	if !p.acquireLock(ctx) {
		p.mu.Unlock()
		return false
	}
	p.status = Status{State: StateRunning, StartedAt: time.Now().UTC()}
	p.mu.Unlock()

	go func() {
		p.run(ctx, params)
	}()
	return true
}

// Run executes the batch synchronously. Callers that need fire-and-forget
// semantics use TryRun instead.
func (p *RefreshPipeline) Run(ctx context.Context, params Params) error {
	p.mu.Lock()
	if p.status.State == StateRunning {
		p.mu.Unlock()
		return ErrAlreadyRunning
	}
	if !p.acquireLock(ctx) {
		p.mu.Unlock()
		return ErrAlreadyRunning
	}
	p.status = Status{State: StateRunning, StartedAt: time.Now().UTC()}
	p.mu.Unlock()
	p.run(ctx, params)
	return nil
}

func (p *RefreshPipeline) run(ctx context.Context, params Params) {
	start := time.Now()
	defer p.releaseLock(ctx)
	p.log.Printf("pipeline=refresh status=started")

	pairs, failed := p.runScoring(ctx, params)
	employees := p.runPositions(ctx)

	p.mu.Lock()
	p.status = Status{
		State:      StateIdle,
		StartedAt:  p.status.StartedAt,
		FinishedAt: time.Now().UTC(),
		Pairs:      pairs,
		Failed:     failed,
		Employees:  employees,
	}
	p.mu.Unlock()

	p.log.Printf("pipeline=refresh status=finished pairs=%d failed=%d employees=%d duration=%s",
		pairs, failed, employees, time.Since(start))
}

func (p *RefreshPipeline) runScoring(ctx context.Context, params Params) (pairs, failed int) {
	if p.matcher == nil || p.employees == nil || p.jobs == nil {
		return 0, 0
	}

	stepStart := time.Now()
	p.log.Printf("pipeline=refresh step=scoring status=started")
	defer func() {
		p.log.Printf("pipeline=refresh step=scoring status=finished duration=%s", time.Since(stepStart))
	}()

	employees, err := p.employees.ListAll(ctx)
	if err != nil {
		p.log.Printf("pipeline=refresh step=scoring status=error err=%v", err)
		return 0, 0
	}
	jobs, err := p.jobs.ListAll(ctx)
	if err != nil {
		p.log.Printf("pipeline=refresh step=scoring status=error err=%v", err)
		return 0, 0
	}
	if len(employees) == 0 || len(jobs) == 0 {
		return 0, 0
	}

	workers := params.ScoringWorkers
	if workers <= 0 {
		workers = 10
	}

	total := len(employees) * len(jobs)
	p.log.Printf("pipeline=refresh step=scoring status=info employees=%d jobs=%d total_pairs=%d workers=%d",
		len(employees), len(jobs), total, workers)

	pool := NewWorkerPool(workers, workers*2)
	results := pool.Run(ctx)

	// Submission runs on its own goroutine so the result channel is drained
	// while pairs are still being queued. Draining after Close would stall
	// every worker once the channel fills on large populations.
	go func() {
		for _, emp := range employees {
			eid := emp.ID
			for _, job := range jobs {
				jid := job.ID
				pool.Submit(ctx, func(ctx context.Context) error {
					if _, err := p.matcher.ScoreMatch(ctx, eid, jid); err != nil {
						p.log.Printf("pipeline=refresh step=scoring status=error employee_id=%s job_id=%s err=%v", eid, jid, err)
						return err
					}
					return nil
				})
			}
		}
		pool.Close()
	}()

	for r := range results {
		if r.Err != nil {
			failed++
		}
	}

	p.log.Printf("pipeline=refresh step=scoring summary total=%d failed=%d", total, failed)
	return total, failed
}

func (p *RefreshPipeline) runPositions(ctx context.Context) int {
	if p.positions == nil {
		return 0
	}

	stepStart := time.Now()
	p.log.Printf("pipeline=refresh step=positions status=started")
	defer func() {
		p.log.Printf("pipeline=refresh step=positions status=finished duration=%s", time.Since(stepStart))
	}()

	p.positions.Invalidate(ctx)
	positions, err := p.positions.Rebuild(ctx)
	if err != nil {
		p.log.Printf("pipeline=refresh step=positions status=error err=%v", err)
		return 0
	}

	ws.NotifyPositionsUpdated(len(positions))
	return len(positions)
}
