package training

import (
	"math"
	"sort"
)

// WeeksUndetermined marks a completion estimate that cannot be computed
// because the employee has no weekly learning budget. It is never the result
// of a division.
const WeeksUndetermined = -1

const deepHoursCap = 60.0

type CourseRecord struct {
	ID         string
	Skill      string
	Title      string
	Hours      float64
	Difficulty float64
	Rating     float64
}

type Config struct {
	MaxIntroPerSkill int
	MaxDeepPerSkill  int
}

func DefaultConfig() Config {
	return Config{
		MaxIntroPerSkill: 1,
		MaxDeepPerSkill:  2,
	}
}

type TrainingPlan struct {
	IntroCourses []CourseRecord
	DeepCourses  []CourseRecord

	IntroHours float64
	DeepHours  float64

	IntroWeeks int
	DeepWeeks  int
}

// BuildPlan selects introductory and deep-dive courses for every missing
// skill. Skills are processed independently; a skill absent from the catalog
// contributes zero courses. Identical inputs always produce an identical plan.
func BuildPlan(missingSkills []string, catalog map[string][]CourseRecord, weeklyHours float64, cfg Config) TrainingPlan {
	if cfg.MaxIntroPerSkill <= 0 && cfg.MaxDeepPerSkill <= 0 {
		cfg = DefaultConfig()
	}

	plan := TrainingPlan{
		IntroCourses: make([]CourseRecord, 0),
		DeepCourses:  make([]CourseRecord, 0),
	}

	for _, sk := range missingSkills {
		candidates := catalog[sk]
		if len(candidates) == 0 {
			continue
		}

		intro := rankBy(candidates, introScore)
		if len(intro) > cfg.MaxIntroPerSkill {
			intro = intro[:cfg.MaxIntroPerSkill]
		}
		deep := rankBy(candidates, deepScore)
		if len(deep) > cfg.MaxDeepPerSkill {
			deep = deep[:cfg.MaxDeepPerSkill]
		}

		for _, c := range intro {
			plan.IntroCourses = append(plan.IntroCourses, c)
			plan.IntroHours += c.Hours
		}
		for _, c := range deep {
			plan.DeepCourses = append(plan.DeepCourses, c)
			plan.DeepHours += c.Hours
		}
	}

	plan.IntroWeeks = estimateWeeks(plan.IntroHours, weeklyHours)
	plan.DeepWeeks = estimateWeeks(plan.DeepHours, weeklyHours)

	return plan
}

// introScore favors short, highly rated, easy courses.
func introScore(c CourseRecord) float64 {
	perHour := 0.0
	if c.Hours > 0 {
		perHour = 1.0 / c.Hours
	}
	return 0.5*normRating(c.Rating) + 0.4*perHour + 0.1*(1.0-c.Difficulty)
}

// deepScore favors long, hard, well-rated courses, with the length term
// capped so very long courses do not dominate.
func deepScore(c CourseRecord) float64 {
	length := 0.0
	if c.Hours > 0 {
		length = math.Min(c.Hours/deepHoursCap, 1.0)
	}
	return 0.5*normRating(c.Rating) + 0.3*c.Difficulty + 0.2*length
}

// normRating maps the 0-5 quality rating onto [0,1] so it weighs on the same
// scale as the other terms.
func normRating(rating float64) float64 {
	r := rating / 5.0
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}

func rankBy(candidates []CourseRecord, score func(CourseRecord) float64) []CourseRecord {
	ranked := make([]CourseRecord, len(candidates))
	copy(ranked, candidates)
	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := score(ranked[i]), score(ranked[j])
		if si != sj {
			return si > sj
		}
		return ranked[i].ID < ranked[j].ID
	})
	return ranked
}

func estimateWeeks(totalHours, weeklyHours float64) int {
	if weeklyHours <= 0 {
		return WeeksUndetermined
	}
	if totalHours <= 0 {
		return 0
	}
	return int(math.Ceil(totalHours / weeklyHours))
}
