package matching

import (
	"errors"
	"math"

	"skill-gap/internal/domain/skill"

	"github.com/google/uuid"
)

var ErrInvalidRecord = errors.New("invalid record")

type EmployeeProfile struct {
	ID               uuid.UUID
	PositionTitle    string
	DesiredTitle     string
	Skills           skill.Set
	Education        skill.EducationLevel
	YearsExperience  float64
	OpennessToChange *float64
	WeeklyHours      float64
}

type JobRequirement struct {
	ID                 uuid.UUID
	Title              string
	RequiredSkills     skill.Set
	RequiredEducation  skill.EducationLevel
	RequiredExperience float64
	Description        string
}

type MatchResult struct {
	EmployeeID uuid.UUID
	JobID      uuid.UUID

	SkillOverlap       float64
	EducationMatch     float64
	ExperienceScore    float64
	PositionSimilarity float64
	IntentScore        float64

	MatchScore float64
	MatchMark  string

	MatchedSkills []string
	MissingSkills []string
}

const (
	MarkExcellent = "excellent"
	MarkGood      = "good"
	MarkFair      = "fair"
	MarkPoor      = "poor"
)

// Config carries the sub-score weights and mark thresholds. Weights must sum
// to 1; the skill overlap weight dominates because it is the most direct
// signal of fit.
type Config struct {
	SkillWeight      float64
	EducationWeight  float64
	ExperienceWeight float64
	PositionWeight   float64
	IntentWeight     float64

	ExcellentThreshold float64
	GoodThreshold      float64
	FairThreshold      float64

	ExperienceEpsilon float64
	NeutralIntent     float64
}

func DefaultConfig() Config {
	return Config{
		SkillWeight:        0.40,
		EducationWeight:    0.20,
		ExperienceWeight:   0.15,
		PositionWeight:     0.15,
		IntentWeight:       0.10,
		ExcellentThreshold: 0.80,
		GoodThreshold:      0.60,
		FairThreshold:      0.40,
		ExperienceEpsilon:  0.25,
		NeutralIntent:      0.50,
	}
}

// Score computes the composite employee-to-job fit. A MatchResult is always
// produced for well-formed inputs; only records with missing identifiers are
// rejected.
func Score(e EmployeeProfile, j JobRequirement, cfg Config) (MatchResult, error) {
	if e.ID == uuid.Nil || j.ID == uuid.Nil {
		return MatchResult{}, ErrInvalidRecord
	}

	res := MatchResult{EmployeeID: e.ID, JobID: j.ID}

	matched := j.RequiredSkills.Intersect(e.Skills)
	missing := j.RequiredSkills.Difference(e.Skills)
	res.MatchedSkills = matched.Tokens()
	res.MissingSkills = missing.Tokens()

	// A job with no required skills is vacuously satisfied by any employee.
	if j.RequiredSkills.IsEmpty() {
		res.SkillOverlap = 1.0
	} else {
		res.SkillOverlap = float64(matched.Len()) / float64(j.RequiredSkills.Len())
	}

	res.EducationMatch = educationMatch(e.Education, j.RequiredEducation)
	res.ExperienceScore = experienceScore(e.YearsExperience, j.RequiredExperience, cfg.ExperienceEpsilon)
	res.PositionSimilarity = positionSimilarity(e, j)
	res.IntentScore = intentScore(e.OpennessToChange, cfg.NeutralIntent)

	res.MatchScore = clamp01(cfg.SkillWeight*res.SkillOverlap +
		cfg.EducationWeight*res.EducationMatch +
		cfg.ExperienceWeight*res.ExperienceScore +
		cfg.PositionWeight*res.PositionSimilarity +
		cfg.IntentWeight*res.IntentScore)

	res.MatchMark = markFor(res.MatchScore, cfg)

	return res, nil
}

func educationMatch(have, need skill.EducationLevel) float64 {
	if need == skill.EducationUnknown {
		return 1.0
	}
	if have >= need {
		return 1.0
	}
	// One level short earns half credit; two or more levels short earns none.
	if need-have == 1 {
		return 0.5
	}
	return 0.0
}

func experienceScore(have, need, epsilon float64) float64 {
	if have < 0 {
		have = 0
	}
	if epsilon <= 0 {
		epsilon = 0.25
	}
	denom := need
	if denom < epsilon {
		denom = epsilon
	}
	return math.Min(1.0, have/denom)
}

// positionSimilarity is the best Jaccard overlap of the employee's current or
// desired title against the job title, so an exact aspiration match scores 1.
func positionSimilarity(e EmployeeProfile, j JobRequirement) float64 {
	jobWords := skill.TitleWords(j.Title)
	current := jaccard(skill.TitleWords(e.PositionTitle), jobWords)
	desired := jaccard(skill.TitleWords(e.DesiredTitle), jobWords)
	return math.Max(current, desired)
}

func jaccard(a, b skill.Set) float64 {
	if a.IsEmpty() || b.IsEmpty() {
		return 0
	}
	inter := a.Intersect(b).Len()
	union := a.Union(b).Len()
	if union == 0 {
		return 0
	}
	return float64(inter) / float64(union)
}

func intentScore(openness *float64, neutral float64) float64 {
	if openness == nil {
		return clamp01(neutral)
	}
	return clamp01(*openness)
}

func markFor(score float64, cfg Config) string {
	switch {
	case score >= cfg.ExcellentThreshold:
		return MarkExcellent
	case score >= cfg.GoodThreshold:
		return MarkGood
	case score >= cfg.FairThreshold:
		return MarkFair
	default:
		return MarkPoor
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
