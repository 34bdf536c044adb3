package repository

import (
	"context"
	"strings"
	"time"

	"skill-gap/internal/database"
	"skill-gap/internal/domain/training"

	"github.com/google/uuid"
)

type PlanRepository interface {
	Save(ctx context.Context, employeeID, jobID uuid.UUID, plan training.TrainingPlan) error
}

type PostgresPlanRepository struct {
	db database.DB
}

func NewPostgresPlanRepository(db database.DB) *PostgresPlanRepository {
	return &PostgresPlanRepository{db: db}
}

func (r *PostgresPlanRepository) Save(ctx context.Context, employeeID, jobID uuid.UUID, plan training.TrainingPlan) error {
	if employeeID == uuid.Nil || jobID == uuid.Nil {
		return ErrInvalidInput
	}

	_, err := r.db.Exec(ctx,
		`INSERT INTO training_plans
		   (employee_id, job_id, intro_course_ids, deep_course_ids, intro_hours, deep_hours, intro_weeks, deep_weeks, computed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 ON CONFLICT (employee_id, job_id) DO UPDATE SET
		   intro_course_ids = EXCLUDED.intro_course_ids,
		   deep_course_ids = EXCLUDED.deep_course_ids,
		   intro_hours = EXCLUDED.intro_hours,
		   deep_hours = EXCLUDED.deep_hours,
		   intro_weeks = EXCLUDED.intro_weeks,
		   deep_weeks = EXCLUDED.deep_weeks,
		   computed_at = EXCLUDED.computed_at`,
		employeeID, jobID,
		strings.Join(courseIDs(plan.IntroCourses), ","),
		strings.Join(courseIDs(plan.DeepCourses), ","),
		plan.IntroHours, plan.DeepHours, plan.IntroWeeks, plan.DeepWeeks,
		time.Now().UTC(),
	)
	return err
}

func courseIDs(courses []training.CourseRecord) []string {
	out := make([]string, 0, len(courses))
	for _, c := range courses {
		out = append(out, c.ID)
	}
	return out
}
