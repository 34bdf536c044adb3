package training

import (
	"reflect"
	"testing"
)

func dockerCatalog() map[string][]CourseRecord {
	return map[string][]CourseRecord{
		"docker": {
			{ID: "C1", Skill: "docker", Title: "Docker Basics", Hours: 24, Rating: 4.5, Difficulty: 0.3},
			{ID: "C2", Skill: "docker", Title: "Advanced Docker", Hours: 60, Rating: 4.8, Difficulty: 0.8},
		},
	}
}

func TestBuildPlan_IntroAndDeepSelection(t *testing.T) {
	cfg := Config{MaxIntroPerSkill: 1, MaxDeepPerSkill: 1}
	plan := BuildPlan([]string{"docker"}, dockerCatalog(), 10, cfg)

	if len(plan.IntroCourses) != 1 || plan.IntroCourses[0].ID != "C1" {
		t.Fatalf("expected intro [C1], got %v", plan.IntroCourses)
	}
	if len(plan.DeepCourses) != 1 || plan.DeepCourses[0].ID != "C2" {
		t.Fatalf("expected deep [C2], got %v", plan.DeepCourses)
	}
	if plan.IntroWeeks != 3 {
		t.Fatalf("intro weeks = %d, want ceil(24/10)=3", plan.IntroWeeks)
	}
	if plan.DeepWeeks != 6 {
		t.Fatalf("deep weeks = %d, want ceil(60/10)=6", plan.DeepWeeks)
	}
}

func TestBuildPlan_ZeroWeeklyHoursSentinel(t *testing.T) {
	cfg := Config{MaxIntroPerSkill: 1, MaxDeepPerSkill: 1}
	plan := BuildPlan([]string{"docker"}, dockerCatalog(), 0, cfg)

	if plan.IntroWeeks != WeeksUndetermined {
		t.Fatalf("intro weeks = %d, want sentinel", plan.IntroWeeks)
	}
	if plan.DeepWeeks != WeeksUndetermined {
		t.Fatalf("deep weeks = %d, want sentinel", plan.DeepWeeks)
	}

	plan = BuildPlan([]string{"docker"}, dockerCatalog(), -5, cfg)
	if plan.IntroWeeks != WeeksUndetermined || plan.DeepWeeks != WeeksUndetermined {
		t.Fatalf("negative weekly hours must also yield the sentinel")
	}
}

func TestBuildPlan_SkillAbsentFromCatalog(t *testing.T) {
	plan := BuildPlan([]string{"quantum computing"}, dockerCatalog(), 10, DefaultConfig())
	if len(plan.IntroCourses) != 0 || len(plan.DeepCourses) != 0 {
		t.Fatalf("absent skill must contribute zero courses")
	}
	if plan.IntroHours != 0 || plan.DeepHours != 0 {
		t.Fatalf("expected zero hours")
	}
	if plan.IntroWeeks != 0 || plan.DeepWeeks != 0 {
		t.Fatalf("zero hours with positive budget completes in zero weeks")
	}
}

func TestBuildPlan_Idempotent(t *testing.T) {
	catalog := map[string][]CourseRecord{
		"python": {
			{ID: "P3", Skill: "python", Hours: 10, Rating: 4.0, Difficulty: 0.2},
			{ID: "P1", Skill: "python", Hours: 10, Rating: 4.0, Difficulty: 0.2},
			{ID: "P2", Skill: "python", Hours: 30, Rating: 4.6, Difficulty: 0.7},
		},
		"sql": {
			{ID: "S1", Skill: "sql", Hours: 8, Rating: 3.9, Difficulty: 0.1},
		},
	}
	missing := []string{"python", "sql"}

	first := BuildPlan(missing, catalog, 6, DefaultConfig())
	for i := 0; i < 10; i++ {
		if again := BuildPlan(missing, catalog, 6, DefaultConfig()); !reflect.DeepEqual(first, again) {
			t.Fatalf("plan differs on run %d", i)
		}
	}
}

func TestBuildPlan_TieBreakByCourseID(t *testing.T) {
	catalog := map[string][]CourseRecord{
		"go": {
			{ID: "B", Skill: "go", Hours: 12, Rating: 4.0, Difficulty: 0.5},
			{ID: "A", Skill: "go", Hours: 12, Rating: 4.0, Difficulty: 0.5},
		},
	}
	plan := BuildPlan([]string{"go"}, catalog, 10, Config{MaxIntroPerSkill: 1, MaxDeepPerSkill: 1})
	if plan.IntroCourses[0].ID != "A" {
		t.Fatalf("tie must break by id asc, got %q", plan.IntroCourses[0].ID)
	}
	if plan.DeepCourses[0].ID != "A" {
		t.Fatalf("deep tie must break by id asc, got %q", plan.DeepCourses[0].ID)
	}
}

func TestBuildPlan_HoursAggregateAcrossSkills(t *testing.T) {
	catalog := map[string][]CourseRecord{
		"docker": {{ID: "D1", Skill: "docker", Hours: 10, Rating: 4.0, Difficulty: 0.4}},
		"aws":    {{ID: "A1", Skill: "aws", Hours: 14, Rating: 4.2, Difficulty: 0.5}},
	}
	plan := BuildPlan([]string{"docker", "aws"}, catalog, 8, Config{MaxIntroPerSkill: 1, MaxDeepPerSkill: 1})
	if plan.IntroHours != 24 {
		t.Fatalf("intro hours = %v, want 24", plan.IntroHours)
	}
	if plan.IntroWeeks != 3 {
		t.Fatalf("intro weeks = %d, want 3", plan.IntroWeeks)
	}
}

func TestIntroDeepScoreShapes(t *testing.T) {
	short := CourseRecord{ID: "S", Hours: 5, Rating: 4.0, Difficulty: 0.2}
	long := CourseRecord{ID: "L", Hours: 80, Rating: 4.0, Difficulty: 0.9}

	if introScore(short) <= introScore(long) {
		t.Fatalf("intro score must favor the short easy course")
	}
	if deepScore(long) <= deepScore(short) {
		t.Fatalf("deep score must favor the long hard course")
	}

	verylong := CourseRecord{ID: "V", Hours: 400, Rating: 4.0, Difficulty: 0.9}
	if deepScore(verylong) != deepScore(CourseRecord{ID: "V", Hours: 60, Rating: 4.0, Difficulty: 0.9}) {
		t.Fatalf("deep length term must cap at %v hours", 60.0)
	}
}
