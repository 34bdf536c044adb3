package seeder

import (
	"context"
	"fmt"

	"skill-gap/internal/database"
)

type JobSeeder struct{}

func (JobSeeder) Name() string { return "jobs" }

func (JobSeeder) Run(ctx context.Context, db database.DB) error {
	if err := ensureTableColumns(ctx, db, "jobs",
		"id", "title", "description", "required_education", "required_experience", "created_at",
	); err != nil {
		return err
	}
	if err := ensureTableColumns(ctx, db, "job_required_skills", "job_id", "token", "ordinal"); err != nil {
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
		Title              string
		Description        string
		RequiredEducation  string
		RequiredExperience float64
		Skills             []string
	}{
		{
			Title:              "Data Engineer",
			Description:        "Design data pipelines and warehouse models on a modern cloud stack.",
			RequiredEducation:  "Bachelor",
			RequiredExperience: 3,
			Skills:             []string{"python", "sql", "docker", "aws"},
		},
		{
			Title:              "Platform Engineer",
			Description:        "Own the container platform, CI/CD and infrastructure automation.",
			RequiredEducation:  "Bachelor",
			RequiredExperience: 4,
			Skills:             []string{"go", "kubernetes", "docker", "ci/cd", "linux"},
		},
		{
			Title:              "Growth Manager",
			Description:        "Lead acquisition campaigns and analytics-driven growth experiments.",
			RequiredEducation:  "Bachelor",
			RequiredExperience: 3,
			Skills:             []string{"marketing", "data analysis", "leadership"},
		},
	}

	for _, it := range items {
		row := tx.QueryRow(ctx,
			`INSERT INTO jobs (id, title, description, required_education, required_experience)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4)
			 ON CONFLICT (title) DO UPDATE SET description = EXCLUDED.description
			 RETURNING id`,
			it.Title, it.Description, it.RequiredEducation, it.RequiredExperience,
		)
		var id string
		if err := row.Scan(&id); err != nil {
			return fmt.Errorf("seed job %s: %w", it.Title, err)
		}
		for i, tok := range it.Skills {
			if _, err := tx.Exec(ctx,
				`INSERT INTO job_required_skills (job_id, token, ordinal) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`,
				id, tok, i,
			); err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
