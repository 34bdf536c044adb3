package matching

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"skill-gap/internal/domain/skill"

	"github.com/google/uuid"
)

func employee(skills ...string) EmployeeProfile {
	return EmployeeProfile{
		ID:              uuid.New(),
		PositionTitle:   "Backend Engineer",
		DesiredTitle:    "Senior Backend Engineer",
		Skills:          skill.NewSet(skills...),
		Education:       skill.EducationBachelor,
		YearsExperience: 3,
	}
}

func job(skills ...string) JobRequirement {
	return JobRequirement{
		ID:                 uuid.New(),
		Title:              "Backend Engineer",
		RequiredSkills:     skill.NewSet(skills...),
		RequiredEducation:  skill.EducationBachelor,
		RequiredExperience: 3,
	}
}

func TestScore_SubScoresInRange(t *testing.T) {
	e := employee("python", "sql")
	e.YearsExperience = 40
	open := 1.5
	e.OpennessToChange = &open

	j := job("python", "docker")
	j.RequiredExperience = 0.1

	res, err := Score(e, j, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	for name, v := range map[string]float64{
		"skill_overlap":       res.SkillOverlap,
		"education_match":     res.EducationMatch,
		"experience_score":    res.ExperienceScore,
		"position_similarity": res.PositionSimilarity,
		"intent_score":        res.IntentScore,
		"match_score":         res.MatchScore,
	} {
		if v < 0 || v > 1 {
			t.Fatalf("%s out of range: %v", name, v)
		}
	}
}

func TestScore_SkillOverlapAndMissing(t *testing.T) {
	e := employee("python", "sql")
	j := job("python", "sql", "docker")

	res, err := Score(e, j, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if want := 2.0 / 3.0; math.Abs(res.SkillOverlap-want) > 1e-9 {
		t.Fatalf("skill_overlap = %v, want %v", res.SkillOverlap, want)
	}
	if !reflect.DeepEqual(res.MissingSkills, []string{"docker"}) {
		t.Fatalf("missing = %v, want [docker]", res.MissingSkills)
	}
	if !reflect.DeepEqual(res.MatchedSkills, []string{"python", "sql"}) {
		t.Fatalf("matched = %v", res.MatchedSkills)
	}
}

func TestScore_SupersetFullOverlap(t *testing.T) {
	e := employee("python", "sql", "docker", "aws")
	j := job("python", "sql")

	res, err := Score(e, j, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SkillOverlap != 1.0 {
		t.Fatalf("skill_overlap = %v, want 1", res.SkillOverlap)
	}
	if len(res.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %v", res.MissingSkills)
	}
}

func TestScore_MissingSkillsPreserveJobOrder(t *testing.T) {
	e := employee("sql")
	j := job("docker", "python", "sql", "aws")

	res, err := Score(e, j, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if want := []string{"docker", "python", "aws"}; !reflect.DeepEqual(res.MissingSkills, want) {
		t.Fatalf("missing = %v, want %v", res.MissingSkills, want)
	}
}

func TestScore_EmptyRequiredSkillsVacuouslySatisfied(t *testing.T) {
	e := employee()
	j := job()

	res, err := Score(e, j, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.SkillOverlap != 1.0 {
		t.Fatalf("skill_overlap = %v, want 1 for empty requirement", res.SkillOverlap)
	}
	if len(res.MissingSkills) != 0 {
		t.Fatalf("expected no missing skills, got %v", res.MissingSkills)
	}
}

func TestScore_EducationMatch(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		have, need skill.EducationLevel
		want       float64
	}{
		{skill.EducationMaster, skill.EducationBachelor, 1.0},
		{skill.EducationBachelor, skill.EducationBachelor, 1.0},
		{skill.EducationDiploma, skill.EducationBachelor, 0.5},
		{skill.EducationHighSchool, skill.EducationBachelor, 0.0},
		{skill.EducationUnknown, skill.EducationUnknown, 1.0},
	}
	for _, tc := range cases {
		e := employee("python")
		e.Education = tc.have
		j := job("python")
		j.RequiredEducation = tc.need
		res, err := Score(e, j, cfg)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if res.EducationMatch != tc.want {
			t.Fatalf("education %v vs %v = %v, want %v", tc.have, tc.need, res.EducationMatch, tc.want)
		}
	}
}

func TestScore_ExperienceSaturates(t *testing.T) {
	e := employee("python")
	e.YearsExperience = 10
	j := job("python")
	j.RequiredExperience = 4

	res, err := Score(e, j, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.ExperienceScore != 1.0 {
		t.Fatalf("experience_score = %v, want 1", res.ExperienceScore)
	}

	e.YearsExperience = 2
	res, _ = Score(e, j, DefaultConfig())
	if res.ExperienceScore != 0.5 {
		t.Fatalf("experience_score = %v, want 0.5", res.ExperienceScore)
	}
}

func TestScore_IntentDefaultsNeutral(t *testing.T) {
	e := employee("python")
	e.OpennessToChange = nil
	res, err := Score(e, job("python"), DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.IntentScore != 0.5 {
		t.Fatalf("intent_score = %v, want 0.5", res.IntentScore)
	}
}

func TestScore_DesiredTitleExactMatchScoresOne(t *testing.T) {
	e := employee("python")
	e.PositionTitle = "Warehouse Operator"
	e.DesiredTitle = "Data Analyst"
	j := job("python")
	j.Title = "Data Analyst"

	res, err := Score(e, j, DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.PositionSimilarity != 1.0 {
		t.Fatalf("position_similarity = %v, want 1", res.PositionSimilarity)
	}
}

func TestScore_MarkThresholds(t *testing.T) {
	cfg := DefaultConfig()
	cases := []struct {
		score float64
		want  string
	}{
		{0.85, MarkExcellent},
		{0.80, MarkExcellent},
		{0.65, MarkGood},
		{0.45, MarkFair},
		{0.10, MarkPoor},
	}
	for _, tc := range cases {
		if got := markFor(tc.score, cfg); got != tc.want {
			t.Fatalf("markFor(%v) = %q, want %q", tc.score, got, tc.want)
		}
	}
}

func TestScore_MissingIdentifiersRejected(t *testing.T) {
	e := employee("python")
	e.ID = uuid.Nil
	if _, err := Score(e, job("python"), DefaultConfig()); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}

	j := job("python")
	j.ID = uuid.Nil
	if _, err := Score(employee("python"), j, DefaultConfig()); !errors.Is(err, ErrInvalidRecord) {
		t.Fatalf("expected ErrInvalidRecord, got %v", err)
	}
}

func TestDefaultConfig_WeightsSumToOne(t *testing.T) {
	cfg := DefaultConfig()
	sum := cfg.SkillWeight + cfg.EducationWeight + cfg.ExperienceWeight + cfg.PositionWeight + cfg.IntentWeight
	if math.Abs(sum-1.0) > 1e-9 {
		t.Fatalf("weights sum to %v, want 1", sum)
	}
	if cfg.SkillWeight < 0.4 {
		t.Fatalf("skill weight %v should dominate", cfg.SkillWeight)
	}
}
