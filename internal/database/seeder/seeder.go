// Package seeder loads the baseline rows the engine needs before the first
// catalog ingest, like the skill dictionary and the catalog sources.
package seeder

import (
	"context"

	"skill-gap/internal/database"
)

// Seeder loads one dataset. Implementations are idempotent so reruns are
// safe.
type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) error
}
