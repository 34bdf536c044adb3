package repository

import (
	"context"
	"strings"
	"time"

	"skill-gap/internal/database"
	"skill-gap/internal/domain/matching"
)

type MatchRepository interface {
	Save(ctx context.Context, result matching.MatchResult) error
	SaveAll(ctx context.Context, results []matching.MatchResult) error
}

type PostgresMatchRepository struct {
	db database.DB
}

func NewPostgresMatchRepository(db database.DB) *PostgresMatchRepository {
	return &PostgresMatchRepository{db: db}
}

func (r *PostgresMatchRepository) Save(ctx context.Context, result matching.MatchResult) error {
	return r.SaveAll(ctx, []matching.MatchResult{result})
}

func (r *PostgresMatchRepository) SaveAll(ctx context.Context, results []matching.MatchResult) error {
	if len(results) == 0 {
		return nil
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	now := time.Now().UTC()
	for _, res := range results {
		_, err := tx.Exec(ctx,
			`INSERT INTO match_results
			   (employee_id, job_id, skill_overlap, education_match, experience_score,
			    position_similarity, intent_score, match_score, match_mark,
			    matched_skills, missing_skills, computed_at)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			 ON CONFLICT (employee_id, job_id) DO UPDATE SET
			   skill_overlap = EXCLUDED.skill_overlap,
			   education_match = EXCLUDED.education_match,
			   experience_score = EXCLUDED.experience_score,
			   position_similarity = EXCLUDED.position_similarity,
			   intent_score = EXCLUDED.intent_score,
			   match_score = EXCLUDED.match_score,
			   match_mark = EXCLUDED.match_mark,
			   matched_skills = EXCLUDED.matched_skills,
			   missing_skills = EXCLUDED.missing_skills,
			   computed_at = EXCLUDED.computed_at`,
			res.EmployeeID, res.JobID, res.SkillOverlap, res.EducationMatch, res.ExperienceScore,
			res.PositionSimilarity, res.IntentScore, res.MatchScore, res.MatchMark,
			strings.Join(res.MatchedSkills, ","), strings.Join(res.MissingSkills, ","), now,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
