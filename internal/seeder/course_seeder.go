package seeder

import (
	"context"
	"fmt"

	"skill-gap/internal/database"
)

type CourseSeeder struct{}

func (CourseSeeder) Name() string { return "courses" }

func (CourseSeeder) Run(ctx context.Context, db database.DB) error {
	if err := ensureTableColumns(ctx, db, "courses",
		"id", "external_id", "skill_token", "title", "hours", "difficulty", "rating", "created_at",
	); err != nil {
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
		ExternalID string
		Skill      string
		Title      string
		Hours      float64
		Difficulty float64
		Rating     float64
	}{
		{ExternalID: "crs-py-101", Skill: "python", Title: "Python for Everybody", Hours: 20, Difficulty: 0.2, Rating: 4.8},
		{ExternalID: "crs-py-301", Skill: "python", Title: "Advanced Python Patterns", Hours: 45, Difficulty: 0.8, Rating: 4.6},
		{ExternalID: "crs-sql-101", Skill: "sql", Title: "SQL Fundamentals", Hours: 12, Difficulty: 0.2, Rating: 4.5},
		{ExternalID: "crs-dck-101", Skill: "docker", Title: "Docker Basics", Hours: 24, Difficulty: 0.3, Rating: 4.5},
		{ExternalID: "crs-dck-301", Skill: "docker", Title: "Advanced Docker", Hours: 60, Difficulty: 0.8, Rating: 4.8},
		{ExternalID: "crs-k8s-201", Skill: "kubernetes", Title: "Kubernetes in Practice", Hours: 40, Difficulty: 0.7, Rating: 4.7},
		{ExternalID: "crs-aws-101", Skill: "aws", Title: "AWS Cloud Practitioner", Hours: 30, Difficulty: 0.4, Rating: 4.6},
		{ExternalID: "crs-mkt-101", Skill: "marketing", Title: "Digital Marketing Essentials", Hours: 15, Difficulty: 0.2, Rating: 4.3},
		{ExternalID: "crs-lead-201", Skill: "leadership", Title: "Leading Technical Teams", Hours: 18, Difficulty: 0.5, Rating: 4.4},
	}

	for _, it := range items {
		if _, err := tx.Exec(ctx,
			`INSERT INTO courses (id, external_id, skill_token, title, hours, difficulty, rating)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)
			 ON CONFLICT (external_id) DO UPDATE SET title = EXCLUDED.title, hours = EXCLUDED.hours, difficulty = EXCLUDED.difficulty, rating = EXCLUDED.rating`,
			it.ExternalID, it.Skill, it.Title, it.Hours, it.Difficulty, it.Rating,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
