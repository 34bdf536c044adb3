package pipeline

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestWorkerPoolNilSafe(t *testing.T) {
	var p *WorkerPool

	results := p.Run(context.Background())
	p.Submit(context.Background(), func(context.Context) error { return nil })
	p.Close()

	if _, open := <-results; open {
		t.Fatalf("expected a closed result channel from a nil pool")
	}
}

func TestWorkerPoolDrainsMoreTasksThanBuffer(t *testing.T) {
	const tasks = 5000

	pool := NewWorkerPool(2, 4)
	results := pool.Run(context.Background())

	var ran int64
	go func() {
		for i := 0; i < tasks; i++ {
			pool.Submit(context.Background(), func(context.Context) error {
				atomic.AddInt64(&ran, 1)
				return nil
			})
		}
		pool.Close()
	}()

	var got int
	timeout := time.After(30 * time.Second)
	for got < tasks {
		select {
		case _, open := <-results:
			if !open {
				t.Fatalf("result channel closed after %d of %d results", got, tasks)
			}
			got++
		case <-timeout:
			t.Fatalf("pool stalled after %d of %d results", got, tasks)
		}
	}
	if _, open := <-results; open {
		t.Fatalf("expected channel to close after the final result")
	}
	if atomic.LoadInt64(&ran) != tasks {
		t.Fatalf("expected %d tasks to run, got %d", tasks, ran)
	}
}

func TestWorkerPoolSubmitYieldsOnCancel(t *testing.T) {
	pool := NewWorkerPool(1, 0)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan struct{})
	go func() {
		pool.Submit(ctx, func(context.Context) error { return nil })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatalf("Submit blocked on a cancelled context")
	}
}
