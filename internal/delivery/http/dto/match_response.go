package dto

import "github.com/google/uuid"

type MatchResultResponse struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	JobID      uuid.UUID `json:"job_id"`

	SkillOverlap       float64 `json:"skill_overlap"`
	EducationMatch     float64 `json:"education_match"`
	ExperienceScore    float64 `json:"experience_score"`
	PositionSimilarity float64 `json:"position_similarity"`
	IntentScore        float64 `json:"intent_score"`

	MatchScore float64 `json:"match_score"`
	MatchMark  string  `json:"match_mark"`

	MatchedSkills []string `json:"matched_skills"`
	MissingSkills []string `json:"missing_skills"`
}
