package advisor

import (
	"reflect"
	"strings"
	"testing"

	"skill-gap/internal/domain/position"
	"skill-gap/internal/domain/training"

	"github.com/google/uuid"
)

func pos(id uuid.UUID, x, y float64, cluster int, skills ...string) position.SkillPosition {
	sw := make([]position.SkillWeight, 0, len(skills))
	for i, s := range skills {
		sw = append(sw, position.SkillWeight{Token: s, Weight: 1.0 - float64(i)*0.1})
	}
	return position.SkillPosition{EmployeeID: id, X: x, Y: y, Cluster: cluster, TopSkills: sw}
}

func TestAdvise_UnknownEmployeeReturnsNotFound(t *testing.T) {
	report := Advise(uuid.New(), []position.SkillPosition{
		pos(uuid.New(), 0, 0, 0, "python"),
	}, nil, nil, DefaultConfig())
	if report.Found {
		t.Fatalf("expected not-found report")
	}
	if len(report.Mentors) != 0 || report.Narrative != "" {
		t.Fatalf("not-found report must be empty")
	}
}

func TestAdvise_MentorsRankedByDistance(t *testing.T) {
	self := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	near := uuid.MustParse("00000000-0000-0000-0000-000000000002")
	mid := uuid.MustParse("00000000-0000-0000-0000-000000000003")
	far := uuid.MustParse("00000000-0000-0000-0000-000000000004")

	positions := []position.SkillPosition{
		pos(self, 0, 0, 0, "python", "sql"),
		pos(far, 5, 5, 1, "marketing"),
		pos(near, 0.1, 0, 0, "python", "sql", "docker"),
		pos(mid, 1, 1, 0, "python"),
	}

	report := Advise(self, positions, nil, nil, DefaultConfig())
	if !report.Found {
		t.Fatalf("expected found")
	}
	if len(report.Mentors) != 3 {
		t.Fatalf("expected 3 mentors, got %d", len(report.Mentors))
	}
	if report.Mentors[0].EmployeeID != near || report.Mentors[1].EmployeeID != mid || report.Mentors[2].EmployeeID != far {
		t.Fatalf("unexpected mentor order: %v", report.Mentors)
	}
	if report.Mentors[0].SharedSkills != 2 {
		t.Fatalf("expected 2 shared skills with nearest mentor, got %d", report.Mentors[0].SharedSkills)
	}
}

func TestAdvise_MentorCapAndRadius(t *testing.T) {
	self := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	positions := []position.SkillPosition{pos(self, 0, 0, 0, "python")}
	for i := 0; i < 10; i++ {
		positions = append(positions, pos(uuid.New(), float64(i+1), 0, 0, "python"))
	}

	cfg := DefaultConfig()
	report := Advise(self, positions, nil, nil, cfg)
	if len(report.Mentors) != cfg.Mentors {
		t.Fatalf("expected %d mentors, got %d", cfg.Mentors, len(report.Mentors))
	}

	cfg.MaxRadius = 2.5
	report = Advise(self, positions, nil, nil, cfg)
	if len(report.Mentors) != 2 {
		t.Fatalf("expected 2 mentors within radius, got %d", len(report.Mentors))
	}
}

func TestAdvise_DomainGapsPreserveOrder(t *testing.T) {
	self := uuid.New()
	positions := []position.SkillPosition{pos(self, 0, 0, 0, "python", "sql")}

	targets := []DomainTarget{
		{Name: "data engineering", Skills: []string{"docker", "python", "airflow", "sql"}},
	}

	report := Advise(self, positions, targets, nil, DefaultConfig())
	if len(report.Gaps) != 1 {
		t.Fatalf("expected 1 gap, got %d", len(report.Gaps))
	}
	gap := report.Gaps[0]
	if want := []string{"docker", "airflow"}; !reflect.DeepEqual(gap.Missing, want) {
		t.Fatalf("missing = %v, want %v", gap.Missing, want)
	}
	if want := []string{"python", "sql"}; !reflect.DeepEqual(gap.Present, want) {
		t.Fatalf("present = %v, want %v", gap.Present, want)
	}
}

func TestAdvise_CourseRecommendations(t *testing.T) {
	self := uuid.New()
	positions := []position.SkillPosition{pos(self, 0, 0, 0, "python")}
	targets := []DomainTarget{{Name: "devops", Skills: []string{"docker", "kubernetes"}}}
	catalog := map[string][]training.CourseRecord{
		"docker": {
			{ID: "C2", Skill: "docker", Title: "Zeta Docker"},
			{ID: "C1", Skill: "docker", Title: "Alpha Docker"},
		},
		"kubernetes": {
			{ID: "C3", Skill: "kubernetes", Title: "Kube Intro"},
		},
	}

	cfg := DefaultConfig()
	cfg.CourseRecs = 2
	report := Advise(self, positions, targets, catalog, cfg)
	courses := report.Gaps[0].Courses
	if len(courses) != 2 {
		t.Fatalf("expected 2 course recs, got %d", len(courses))
	}
	// Equal coverage ties break by title ascending.
	if courses[0].Title != "Alpha Docker" {
		t.Fatalf("unexpected first rec: %q", courses[0].Title)
	}
}

func TestAdvise_NarrativeDeterministic(t *testing.T) {
	self := uuid.MustParse("00000000-0000-0000-0000-0000000000ff")
	other := uuid.MustParse("00000000-0000-0000-0000-0000000000fe")
	positions := []position.SkillPosition{
		pos(self, 0, 0, 2, "python", "sql"),
		pos(other, 1, 0, 2, "python"),
	}
	targets := []DomainTarget{{Name: "backend", Skills: []string{"go", "sql"}}}

	first := Advise(self, positions, targets, nil, DefaultConfig())
	if first.Narrative == "" {
		t.Fatalf("expected narrative")
	}
	if !strings.Contains(first.Narrative, "cluster 2") {
		t.Fatalf("narrative missing cluster: %q", first.Narrative)
	}
	if !strings.Contains(first.Narrative, "go") {
		t.Fatalf("narrative missing gap call-out: %q", first.Narrative)
	}
	for i := 0; i < 5; i++ {
		again := Advise(self, positions, targets, nil, DefaultConfig())
		if again.Narrative != first.Narrative {
			t.Fatalf("narrative differs on run %d", i)
		}
	}
}
