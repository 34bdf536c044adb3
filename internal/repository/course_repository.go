package repository

import (
	"context"
	"strings"
	"time"

	"skill-gap/internal/database"
	"skill-gap/internal/domain/training"

	"github.com/google/uuid"
)

type CourseUpsert struct {
	SourceID   uuid.UUID
	ExternalID string
	SkillToken string
	Title      string
	URL        string
	Hours      float64
	Difficulty float64
	Rating     float64
}

type CourseRepository interface {
	CatalogForSkills(ctx context.Context, tokens []string) (map[string][]training.CourseRecord, error)
	CatalogAll(ctx context.Context) (map[string][]training.CourseRecord, error)
	UpsertCourses(ctx context.Context, items []CourseUpsert) error
	EnsureSource(ctx context.Context, name, baseURL string) (uuid.UUID, error)
}

type PostgresCourseRepository struct {
	db database.DB
}

func NewPostgresCourseRepository(db database.DB) *PostgresCourseRepository {
	return &PostgresCourseRepository{db: db}
}

func (r *PostgresCourseRepository) CatalogForSkills(ctx context.Context, tokens []string) (map[string][]training.CourseRecord, error) {
	out := make(map[string][]training.CourseRecord, len(tokens))
	if len(tokens) == 0 {
		return out, nil
	}

	rows, err := r.db.Query(ctx,
		`SELECT external_id, skill_token, title, hours, difficulty, rating
		 FROM courses WHERE skill_token = ANY($1)
		 ORDER BY skill_token ASC, external_id ASC`,
		tokens,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCatalog(rows, out)
}

func (r *PostgresCourseRepository) CatalogAll(ctx context.Context) (map[string][]training.CourseRecord, error) {
	rows, err := r.db.Query(ctx,
		`SELECT external_id, skill_token, title, hours, difficulty, rating
		 FROM courses ORDER BY skill_token ASC, external_id ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCatalog(rows, make(map[string][]training.CourseRecord))
}

func scanCatalog(rows database.Rows, out map[string][]training.CourseRecord) (map[string][]training.CourseRecord, error) {
	for rows.Next() {
		var c training.CourseRecord
		if err := rows.Scan(&c.ID, &c.Skill, &c.Title, &c.Hours, &c.Difficulty, &c.Rating); err != nil {
			return nil, err
		}
		out[c.Skill] = append(out[c.Skill], c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresCourseRepository) UpsertCourses(ctx context.Context, items []CourseUpsert) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range items {
		if strings.TrimSpace(it.ExternalID) == "" || strings.TrimSpace(it.SkillToken) == "" {
			continue
		}
		var sourceID any
		if it.SourceID != uuid.Nil {
			sourceID = it.SourceID
		}
		_, err := tx.Exec(ctx,
			`INSERT INTO courses (id, source_id, external_id, skill_token, title, url, hours, difficulty, rating, created_at)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9)
			 ON CONFLICT (external_id) DO UPDATE SET
			   skill_token = EXCLUDED.skill_token,
			   title = EXCLUDED.title,
			   url = EXCLUDED.url,
			   hours = EXCLUDED.hours,
			   difficulty = EXCLUDED.difficulty,
			   rating = EXCLUDED.rating`,
			sourceID, it.ExternalID, it.SkillToken, it.Title, it.URL, it.Hours, it.Difficulty, it.Rating, time.Now().UTC(),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *PostgresCourseRepository) EnsureSource(ctx context.Context, name, baseURL string) (uuid.UUID, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return uuid.Nil, ErrInvalidInput
	}

	_, _ = r.db.Exec(ctx,
		`INSERT INTO catalog_sources (id, name, base_url) VALUES (gen_random_uuid(), $1, $2) ON CONFLICT (name) DO NOTHING`,
		name, baseURL,
	)

	row := r.db.QueryRow(ctx, `SELECT id FROM catalog_sources WHERE name = $1 LIMIT 1`, name)
	var id uuid.UUID
	if err := row.Scan(&id); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}
