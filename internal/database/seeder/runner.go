package seeder

import (
	"context"
	"errors"
	"fmt"
	"log"

	"skill-gap/internal/database"
)

// Runner executes seeders in order and stops at the first failure.
type Runner struct {
	Seeders []Seeder
	Log     *log.Logger
}

func (r Runner) Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return errors.New("nil db")
	}
	var ran int
	for _, s := range r.Seeders {
		if s == nil {
			continue
		}
		if err := s.Run(ctx, db); err != nil {
			return fmt.Errorf("seed %s: %w", s.Name(), err)
		}
		ran++
	}
	if r.Log != nil {
		r.Log.Printf("[Seed] Done | seeders=%d", ran)
	}
	return nil
}
