package seeder

import (
	"context"
	"fmt"

	"skill-gap/internal/database"
)

type CatalogSourcesSeeder struct{}

func (CatalogSourcesSeeder) Name() string { return "catalog_sources" }

func (CatalogSourcesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "catalog_sources", "id", "name", "base_url", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name    string
		BaseURL string
	}{
		{Name: "Coursera", BaseURL: "https://www.coursera.org"},
		{Name: "Class Central", BaseURL: "https://www.classcentral.com"},
		{Name: "Udemy", BaseURL: "https://www.udemy.com"},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO catalog_sources (id, name, base_url) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
			it.Name,
			it.BaseURL,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
