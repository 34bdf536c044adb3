package seeder

import (
	"context"
	"fmt"

	"skill-gap/internal/database"
)

// EmployeeSeeder loads a small demo population so the matching and
// positioning endpoints have something to work with on a fresh database.
type EmployeeSeeder struct{}

func (EmployeeSeeder) Name() string { return "employees" }

func (EmployeeSeeder) Run(ctx context.Context, db database.DB) error {
	if err := ensureTableColumns(ctx, db, "employees",
		"id", "full_name", "position_title", "desired_title", "education",
		"years_experience", "openness", "weekly_hours", "created_at",
	); err != nil {
		return err
	}
	if err := ensureTableColumns(ctx, db, "employee_skills", "employee_id", "token"); err != nil {
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
		FullName        string
		PositionTitle   string
		DesiredTitle    string
		Education       string
		YearsExperience float64
		Openness        float64
		WeeklyHours     float64
		Skills          []string
	}{
		{
			FullName:        "Ayu Lestari",
			PositionTitle:   "Data Analyst",
			DesiredTitle:    "Data Engineer",
			Education:       "Bachelor of Statistics",
			YearsExperience: 3,
			Openness:        0.8,
			WeeklyHours:     6,
			Skills:          []string{"python", "sql", "excel"},
		},
		{
			FullName:        "Budi Santoso",
			PositionTitle:   "Backend Engineer",
			DesiredTitle:    "Platform Engineer",
			Education:       "Bachelor of Computer Science",
			YearsExperience: 5,
			Openness:        0.6,
			WeeklyHours:     4,
			Skills:          []string{"go", "sql", "docker", "kubernetes"},
		},
		{
			FullName:        "Citra Dewi",
			PositionTitle:   "Marketing Specialist",
			DesiredTitle:    "Growth Manager",
			Education:       "S1 Komunikasi",
			YearsExperience: 2,
			Openness:        0.9,
			WeeklyHours:     8,
			Skills:          []string{"marketing", "communication"},
		},
		{
			FullName:        "Dimas Pratama",
			PositionTitle:   "QA Engineer",
			DesiredTitle:    "SDET",
			Education:       "D3 Teknik Informatika",
			YearsExperience: 4,
			Openness:        0.5,
			WeeklyHours:     5,
			Skills:          []string{"testing", "python", "git"},
		},
	}

	for _, it := range items {
		row := tx.QueryRow(ctx,
			`INSERT INTO employees (id, full_name, position_title, desired_title, education, years_experience, openness, weekly_hours)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7)
			 ON CONFLICT (full_name) DO UPDATE SET position_title = EXCLUDED.position_title
			 RETURNING id`,
			it.FullName, it.PositionTitle, it.DesiredTitle, it.Education,
			it.YearsExperience, it.Openness, it.WeeklyHours,
		)
		var id string
		if err := row.Scan(&id); err != nil {
			return fmt.Errorf("seed employee %s: %w", it.FullName, err)
		}
		for _, tok := range it.Skills {
			if _, err := tx.Exec(ctx,
				`INSERT INTO employee_skills (employee_id, token) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
				id, tok,
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
