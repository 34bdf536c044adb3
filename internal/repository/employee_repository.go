package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-gap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrEmployeeNotFound = errors.New("employee not found")

type Employee struct {
	ID              uuid.UUID
	FullName        string
	PositionTitle   string
	DesiredTitle    string
	Education       string
	YearsExperience float64
	Openness        *float64
	WeeklyHours     float64
	Skills          []string
}

type EmployeeRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Employee, error)
	ListAll(ctx context.Context) ([]Employee, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresEmployeeRepository struct {
	db database.DB
}

func NewPostgresEmployeeRepository(db database.DB) *PostgresEmployeeRepository {
	return &PostgresEmployeeRepository{db: db}
}

func (r *PostgresEmployeeRepository) FindByID(ctx context.Context, id uuid.UUID) (Employee, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, full_name, position_title, desired_title, education, years_experience, openness, weekly_hours
		 FROM employees WHERE id = $1`,
		id,
	)

	var e Employee
	if err := row.Scan(&e.ID, &e.FullName, &e.PositionTitle, &e.DesiredTitle, &e.Education, &e.YearsExperience, &e.Openness, &e.WeeklyHours); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Employee{}, ErrEmployeeNotFound
		}
		return Employee{}, err
	}

	skills, err := r.skillsFor(ctx, e.ID)
	if err != nil {
		return Employee{}, err
	}
	e.Skills = skills
	return e, nil
}

func (r *PostgresEmployeeRepository) ListAll(ctx context.Context) ([]Employee, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, full_name, position_title, desired_title, education, years_experience, openness, weekly_hours
		 FROM employees ORDER BY full_name ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Employee, 0)
	for rows.Next() {
		var e Employee
		if err := rows.Scan(&e.ID, &e.FullName, &e.PositionTitle, &e.DesiredTitle, &e.Education, &e.YearsExperience, &e.Openness, &e.WeeklyHours); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		skills, err := r.skillsFor(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].Skills = skills
	}
	return out, nil
}

func (r *PostgresEmployeeRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM employees WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresEmployeeRepository) skillsFor(ctx context.Context, id uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT token FROM employee_skills WHERE employee_id = $1 ORDER BY token ASC`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var tok string
		if err := rows.Scan(&tok); err != nil {
			return nil, err
		}
		out = append(out, tok)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
