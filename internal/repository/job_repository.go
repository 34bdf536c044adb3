package repository

import (
	"context"
	"database/sql"
	"errors"

	"skill-gap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrJobNotFound = errors.New("job not found")

type Job struct {
	ID                 uuid.UUID
	Title              string
	Description        string
	RequiredEducation  string
	RequiredExperience float64
	RequiredSkills     []string
}

type JobRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (Job, error)
	ListAll(ctx context.Context) ([]Job, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
}

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

func (r *PostgresJobRepository) FindByID(ctx context.Context, id uuid.UUID) (Job, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, title, description, required_education, required_experience
		 FROM jobs WHERE id = $1`,
		id,
	)

	var j Job
	if err := row.Scan(&j.ID, &j.Title, &j.Description, &j.RequiredEducation, &j.RequiredExperience); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Job{}, ErrJobNotFound
		}
		return Job{}, err
	}

	skills, err := r.requiredSkillsFor(ctx, j.ID)
	if err != nil {
		return Job{}, err
	}
	j.RequiredSkills = skills
	return j, nil
}

func (r *PostgresJobRepository) ListAll(ctx context.Context) ([]Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, title, description, required_education, required_experience
		 FROM jobs ORDER BY title ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Job, 0)
	for rows.Next() {
		var j Job
		if err := rows.Scan(&j.ID, &j.Title, &j.Description, &j.RequiredEducation, &j.RequiredExperience); err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range out {
		skills, err := r.requiredSkillsFor(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
		out[i].RequiredSkills = skills
	}
	return out, nil
}

func (r *PostgresJobRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM jobs WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// requiredSkillsFor keeps the job's declared skill order via the ordinal
// column; the scorer and plan builder depend on that order.
func (r *PostgresJobRepository) requiredSkillsFor(ctx context.Context, id uuid.UUID) ([]string, error) {
	rows, err := r.db.Query(ctx,
		`SELECT token FROM job_required_skills WHERE job_id = $1 ORDER BY ordinal ASC, token ASC`,
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
