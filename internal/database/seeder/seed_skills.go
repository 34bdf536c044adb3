package seeder

import (
	"context"
	"fmt"
	"strings"

	"skill-gap/internal/database"
	"skill-gap/internal/domain/skill"
)

type SkillsSeeder struct{}

func (SkillsSeeder) Name() string { return "skills" }

func (SkillsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "skills", "id", "token", "keywords", "created_at"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, c := range skill.DefaultCategories() {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO skills (id, token, keywords) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (token) DO NOTHING`,
			c.Name,
			strings.Join(c.Keywords, ","),
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
