package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"skill-gap/internal/domain/skill"
	"skill-gap/internal/repository"
)

type CourseraScraper struct {
	normalizer *skill.Normalizer
	client     *http.Client
	apiBase    string
	siteBase   string
}

func NewCourseraScraper(normalizer *skill.Normalizer) *CourseraScraper {
	return &CourseraScraper{
		normalizer: normalizer,
		client: &http.Client{
			Timeout: 25 * time.Second,
		},
		apiBase:  "https://api.coursera.org",
		siteBase: "https://www.coursera.org",
	}
}

func (s *CourseraScraper) Name() string { return "Coursera" }

type courseraCourse struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Name        string   `json:"name"`
	Workload    string   `json:"workload"`
	Level       string   `json:"courseDifficultyLevel"`
	Description string   `json:"description"`
	Domains     []string `json:"domainTypes"`
	Rating      float64  `json:"averageFiveStarRating"`
}

type courseraPage struct {
	Elements []courseraCourse `json:"elements"`
}

func (s *CourseraScraper) Fetch(ctx context.Context, pages int) ([]repository.CourseUpsert, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scraper")
	}
	if pages <= 0 {
		pages = 1
	}

	const perPage = 100

	out := make([]repository.CourseUpsert, 0)
	for page := 0; page < pages; page++ {
		courses, err := s.fetchPage(ctx, page*perPage, perPage)
		if err != nil {
			return out, err
		}
		if len(courses) == 0 {
			break
		}
		for _, c := range courses {
			item, ok := s.toUpsert(c)
			if !ok {
				continue
			}
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *CourseraScraper) fetchPage(ctx context.Context, start, limit int) ([]courseraCourse, error) {
	url := fmt.Sprintf(
		"%s/api/courses.v1?start=%d&limit=%d&fields=slug,name,workload,courseDifficultyLevel,description,averageFiveStarRating",
		strings.TrimRight(s.apiBase, "/"), start, limit,
	)
	body, err := httpGetWithRetry(ctx, s.client, url, 3)
	if err != nil {
		return nil, err
	}
	var page courseraPage
	if err := json.Unmarshal(body, &page); err != nil {
		return nil, err
	}
	return page.Elements, nil
}

func (s *CourseraScraper) toUpsert(c courseraCourse) (repository.CourseUpsert, bool) {
	if strings.TrimSpace(c.ID) == "" || strings.TrimSpace(c.Name) == "" {
		return repository.CourseUpsert{}, false
	}
	token, ok := attributeSkill(s.normalizer, c.Name, c.Description)
	if !ok {
		return repository.CourseUpsert{}, false
	}
	return repository.CourseUpsert{
		ExternalID: "coursera-" + strings.TrimSpace(c.ID),
		SkillToken: token,
		Title:      strings.TrimSpace(c.Name),
		URL:        strings.TrimRight(s.siteBase, "/") + "/learn/" + strings.TrimSpace(c.Slug),
		Hours:      parseHours(c.Workload),
		Difficulty: difficultyFromLevel(c.Level),
		Rating:     clampRating(c.Rating),
	}, true
}
