package ingest

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"skill-gap/internal/domain/skill"
	"skill-gap/internal/domain/training"
	"skill-gap/internal/repository"

	"github.com/google/uuid"
)

func newTestNormalizer() *skill.Normalizer {
	return skill.NewNormalizer(skill.DefaultCategories())
}

type fakeCourseRepo struct {
	mu      sync.Mutex
	byID    map[string]repository.CourseUpsert
	sources map[string]uuid.UUID
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{
		byID:    map[string]repository.CourseUpsert{},
		sources: map[string]uuid.UUID{},
	}
}

func (f *fakeCourseRepo) CatalogForSkills(_ context.Context, _ []string) (map[string][]training.CourseRecord, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeCourseRepo) CatalogAll(_ context.Context) (map[string][]training.CourseRecord, error) {
	return nil, fmt.Errorf("not implemented")
}

func (f *fakeCourseRepo) UpsertCourses(_ context.Context, items []repository.CourseUpsert) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, it := range items {
		f.byID[it.ExternalID] = it
	}
	return nil
}

func (f *fakeCourseRepo) EnsureSource(_ context.Context, name, _ string) (uuid.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if id, ok := f.sources[name]; ok {
		return id, nil
	}
	id := uuid.New()
	f.sources[name] = id
	return id, nil
}

func TestCourseraFetchAttributesSkills(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/courses.v1", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("start") != "0" {
			_, _ = w.Write([]byte(`{"elements":[]}`))
			return
		}
		_, _ = w.Write([]byte(`{"elements":[
			{"id":"c1","slug":"python-for-everybody","name":"Python for Everybody","workload":"Approx. 20 hours","courseDifficultyLevel":"Beginner","averageFiveStarRating":4.8},
			{"id":"c2","slug":"underwater-basket","name":"Underwater Basket Weaving","workload":"5 hours","courseDifficultyLevel":"Beginner","averageFiveStarRating":4.0}
		]}`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := NewCourseraScraper(newTestNormalizer())
	s.apiBase = server.URL
	s.siteBase = server.URL

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	items, err := s.Fetch(ctx, 2)
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 attributable course, got %d", len(items))
	}

	got := items[0]
	if got.SkillToken != "python" {
		t.Fatalf("expected python token, got %q", got.SkillToken)
	}
	if got.Hours != 20 {
		t.Fatalf("expected 20 hours, got %v", got.Hours)
	}
	if got.Difficulty != 0.2 {
		t.Fatalf("expected beginner difficulty 0.2, got %v", got.Difficulty)
	}
	if got.ExternalID != "coursera-c1" {
		t.Fatalf("unexpected external id %q", got.ExternalID)
	}
}

func TestClassCentralFetch(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/subjects", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><a href="/course/sql-101">SQL Fundamentals</a></body></html>`))
	})
	mux.HandleFunc("/course/sql-101", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body>
			<h1>SQL Fundamentals</h1>
			<span data-field="workload">12 hours</span>
			<span data-field="level">Beginner</span>
			<span data-field="rating">4.5</span>
			<span data-field="subject">Databases and SQL</span>
		</body></html>`))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	s := NewClassCentralScraperWithBaseURL(newTestNormalizer(), server.URL)

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	items, err := s.Fetch(ctx, 1)
	if err != nil {
		t.Fatalf("fetch error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 course, got %d", len(items))
	}

	got := items[0]
	if got.SkillToken != "sql" {
		t.Fatalf("expected sql token, got %q", got.SkillToken)
	}
	if got.Hours != 12 {
		t.Fatalf("expected 12 hours, got %v", got.Hours)
	}
	if got.Rating != 4.5 {
		t.Fatalf("expected rating 4.5, got %v", got.Rating)
	}
	if !strings.Contains(got.URL, "/course/sql-101") {
		t.Fatalf("unexpected url %q", got.URL)
	}
}

type staticSource struct {
	name  string
	items []repository.CourseUpsert
	err   error
}

func (s staticSource) Name() string { return s.name }

func (s staticSource) Fetch(_ context.Context, _ int) ([]repository.CourseUpsert, error) {
	return s.items, s.err
}

func TestCatalogServiceDedupes(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCatalogService(repo, nil,
		staticSource{name: "A", items: []repository.CourseUpsert{
			{ExternalID: "x1", SkillToken: "python", Title: "Python Course"},
			{ExternalID: "x2", SkillToken: "sql", Title: "SQL Course"},
		}},
		staticSource{name: "B", items: []repository.CourseUpsert{
			{ExternalID: "x1", SkillToken: "python", Title: "Python Course Again"},
		}},
		staticSource{name: "C", err: fmt.Errorf("provider down")},
	)

	n, err := svc.Refresh(context.Background(), 1)
	if err != nil {
		t.Fatalf("refresh error: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 upserted courses, got %d", n)
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()
	if len(repo.byID) != 2 {
		t.Fatalf("expected 2 stored courses, got %d", len(repo.byID))
	}
	if _, ok := repo.sources["A"]; !ok {
		t.Fatalf("expected source A registered")
	}
}

func TestCatalogServiceAllSourcesFailing(t *testing.T) {
	repo := newFakeCourseRepo()
	svc := NewCatalogService(repo, nil, staticSource{name: "A", err: fmt.Errorf("down")})

	if _, err := svc.Refresh(context.Background(), 1); err == nil {
		t.Fatalf("expected error when every source fails")
	}
}

func TestParseHours(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"Approx. 24 hours", 24},
		{"10 jam", 10},
		{"1.5 hours per week", 1.5},
		{"self paced", 0},
		{"", 0},
	}
	for _, tc := range cases {
		if got := parseHours(tc.in); got != tc.want {
			t.Fatalf("parseHours(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDifficultyFromLevel(t *testing.T) {
	if got := difficultyFromLevel("Beginner"); got != 0.2 {
		t.Fatalf("beginner difficulty = %v", got)
	}
	if got := difficultyFromLevel("ADVANCED"); got != 0.8 {
		t.Fatalf("advanced difficulty = %v", got)
	}
	if got := difficultyFromLevel("mystery"); got != 0.5 {
		t.Fatalf("unknown difficulty = %v", got)
	}
}
