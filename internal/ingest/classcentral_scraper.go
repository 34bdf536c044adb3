package ingest

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"skill-gap/internal/domain/skill"
	"skill-gap/internal/repository"

	"github.com/gocolly/colly/v2"
)

type ClassCentralScraper struct {
	normalizer  *skill.Normalizer
	baseURL     string
	allowedHost string
	workers     int
}

func NewClassCentralScraper(normalizer *skill.Normalizer) *ClassCentralScraper {
	return NewClassCentralScraperWithBaseURL(normalizer, "https://www.classcentral.com")
}

func NewClassCentralScraperWithBaseURL(normalizer *skill.Normalizer, baseURL string) *ClassCentralScraper {
	s := &ClassCentralScraper{normalizer: normalizer, baseURL: strings.TrimSpace(baseURL), workers: 3}
	if s.baseURL == "" {
		s.baseURL = "https://www.classcentral.com"
	}
	s.allowedHost = hostFromBaseURL(s.baseURL)
	return s
}

func (s *ClassCentralScraper) Name() string { return "Class Central" }

type classCentralDetail struct {
	title    string
	workload string
	level    string
	rating   string
	subject  string
}

func (s *ClassCentralScraper) Fetch(ctx context.Context, pages int) ([]repository.CourseUpsert, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scraper")
	}
	if pages <= 0 {
		pages = 1
	}

	links := make([]string, 0)
	for page := 1; page <= pages; page++ {
		listURL := fmt.Sprintf("%s/subjects?page=%d", strings.TrimRight(s.baseURL, "/"), page)
		pageLinks, err := s.scrapeListingPage(ctx, listURL)
		if err != nil {
			if page == 1 {
				return nil, err
			}
			break
		}
		links = append(links, pageLinks...)
	}

	pool := NewWorkerPool(s.workers, s.workers*2)
	pool.SetRateLimit(4)
	results := pool.Run(ctx)

	var mu sync.Mutex
	out := make([]repository.CourseUpsert, 0, len(links))

	go func() {
		for _, link := range links {
			link := link
			pool.Submit(ctx, func(ctx context.Context) error {
				detail, err := s.scrapeDetailPage(ctx, link)
				if err != nil {
					return err
				}
				item, ok := s.toUpsert(link, detail)
				if !ok {
					return nil
				}
				mu.Lock()
				out = append(out, item)
				mu.Unlock()
				return nil
			})
		}
		pool.Close()
	}()

	var lastErr error
	for r := range results {
		if r.Err != nil {
			lastErr = r.Err
		}
	}
	if len(out) == 0 && lastErr != nil {
		return nil, lastErr
	}
	return out, nil
}

func (s *ClassCentralScraper) scrapeListingPage(ctx context.Context, listURL string) ([]string, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 750 * time.Millisecond, Delay: 400 * time.Millisecond})

	links := make([]string, 0)

	c.OnHTML("a", func(e *colly.HTMLElement) {
		href := strings.TrimSpace(e.Attr("href"))
		if href == "" {
			return
		}
		if !strings.Contains(href, "/course/") {
			return
		}
		abs := e.Request.AbsoluteURL(href)
		if abs == "" {
			return
		}
		links = append(links, abs)
	})

	var reqErr error
	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if err := c.Visit(listURL); err != nil {
		return nil, err
	}
	c.Wait()
	if reqErr != nil {
		return nil, reqErr
	}

	dedup := map[string]struct{}{}
	out := make([]string, 0, len(links))
	for _, l := range links {
		if _, ok := dedup[l]; ok {
			continue
		}
		dedup[l] = struct{}{}
		out = append(out, l)
	}
	return out, nil
}

func (s *ClassCentralScraper) scrapeDetailPage(ctx context.Context, courseURL string) (classCentralDetail, error) {
	c := colly.NewCollector(
		colly.AllowedDomains(s.allowedHost),
	)
	_ = c.Limit(&colly.LimitRule{DomainGlob: "*", Parallelism: 2, RandomDelay: 850 * time.Millisecond, Delay: 450 * time.Millisecond})

	var out classCentralDetail
	var reqErr error

	c.OnRequest(func(r *colly.Request) {
		for k, v := range httpHeaders() {
			r.Headers.Set(k, v)
		}
	})

	c.OnHTML("h1", func(e *colly.HTMLElement) {
		if strings.TrimSpace(out.title) == "" {
			out.title = strings.TrimSpace(e.Text)
		}
	})

	c.OnHTML("[data-field=workload]", func(e *colly.HTMLElement) {
		out.workload = strings.TrimSpace(e.Text)
	})

	c.OnHTML("[data-field=level]", func(e *colly.HTMLElement) {
		out.level = strings.TrimSpace(e.Text)
	})

	c.OnHTML("[data-field=rating]", func(e *colly.HTMLElement) {
		out.rating = strings.TrimSpace(e.Text)
	})

	c.OnHTML("[data-field=subject]", func(e *colly.HTMLElement) {
		out.subject = strings.TrimSpace(e.Text)
	})

	c.OnError(func(r *colly.Response, err error) {
		reqErr = err
	})

	if ctx.Err() != nil {
		return classCentralDetail{}, ctx.Err()
	}
	if err := c.Visit(courseURL); err != nil {
		return classCentralDetail{}, err
	}
	c.Wait()
	if reqErr != nil {
		return classCentralDetail{}, reqErr
	}
	return out, nil
}

func (s *ClassCentralScraper) toUpsert(courseURL string, d classCentralDetail) (repository.CourseUpsert, bool) {
	title := strings.TrimSpace(d.title)
	if title == "" {
		return repository.CourseUpsert{}, false
	}
	token, ok := attributeSkill(s.normalizer, title, d.subject)
	if !ok {
		return repository.CourseUpsert{}, false
	}

	rating := 0.0
	if v, err := strconv.ParseFloat(strings.TrimSpace(d.rating), 64); err == nil {
		rating = clampRating(v)
	}

	return repository.CourseUpsert{
		ExternalID: stableExternalIDFromURL(courseURL),
		SkillToken: token,
		Title:      title,
		URL:        courseURL,
		Hours:      parseHours(d.workload),
		Difficulty: difficultyFromLevel(d.level),
		Rating:     rating,
	}, true
}

func httpHeaders() map[string]string {
	return map[string]string{
		"User-Agent":      "SkillGapCatalog/0.1",
		"Accept-Language": "en-US,en;q=0.9,id;q=0.8",
	}
}

func hostFromBaseURL(base string) string {
	base = strings.TrimSpace(base)
	u, err := url.Parse(base)
	if err != nil {
		return "www.classcentral.com"
	}
	host := u.Host
	if host == "" {
		return "www.classcentral.com"
	}
	if h, _, err := net.SplitHostPort(host); err == nil {
		return h
	}
	return host
}
