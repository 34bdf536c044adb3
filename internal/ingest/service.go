package ingest

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"skill-gap/internal/repository"
)

type catalogSource interface {
	Name() string
	Fetch(ctx context.Context, pages int) ([]repository.CourseUpsert, error)
}

type CatalogService interface {
	Refresh(ctx context.Context, pages int) (int, error)
}

// DefaultCatalogService fans the fetch out over every provider, dedupes the
// haul by external id and writes it through the course repository.
type DefaultCatalogService struct {
	courses repository.CourseRepository
	sources []catalogSource
	logger  *log.Logger
}

func NewCatalogService(courses repository.CourseRepository, logger *log.Logger, sources ...catalogSource) *DefaultCatalogService {
	return &DefaultCatalogService{courses: courses, sources: sources, logger: logger}
}

func (s *DefaultCatalogService) Refresh(ctx context.Context, pages int) (int, error) {
	if s == nil || s.courses == nil {
		return 0, nil
	}

	type res struct {
		source string
		items  []repository.CourseUpsert
		err    error
	}

	outCh := make(chan res, len(s.sources))
	wg := sync.WaitGroup{}

	for _, src := range s.sources {
		src := src
		wg.Add(1)
		go func() {
			defer wg.Done()
			ctx2, cancel := context.WithTimeout(ctx, 120*time.Second)
			defer cancel()

			items, err := src.Fetch(ctx2, pages)
			outCh <- res{source: src.Name(), items: items, err: err}
		}()
	}

	wg.Wait()
	close(outCh)

	all := make([]repository.CourseUpsert, 0)
	var okCount int
	var lastErr error

	for r := range outCh {
		if r.err != nil {
			lastErr = r.err
			if s.logger != nil {
				s.logger.Printf("catalog source=%s error=%v", r.source, r.err)
			}
			continue
		}
		okCount++
		if s.logger != nil {
			s.logger.Printf("catalog source=%s courses=%d", r.source, len(r.items))
		}

		sourceID, err := s.courses.EnsureSource(ctx, r.source, "")
		if err == nil {
			for i := range r.items {
				r.items[i].SourceID = sourceID
			}
		}
		all = append(all, r.items...)
	}

	if okCount == 0 && lastErr != nil {
		return 0, lastErr
	}

	dedup := make(map[string]repository.CourseUpsert)
	order := make([]string, 0, len(all))
	for _, c := range all {
		k := strings.TrimSpace(c.ExternalID)
		if k == "" {
			continue
		}
		if _, ok := dedup[k]; ok {
			continue
		}
		dedup[k] = c
		order = append(order, k)
	}

	items := make([]repository.CourseUpsert, 0, len(dedup))
	for _, k := range order {
		items = append(items, dedup[k])
	}

	if err := s.courses.UpsertCourses(ctx, items); err != nil {
		return 0, err
	}
	return len(items), nil
}

var _ CatalogService = (*DefaultCatalogService)(nil)
