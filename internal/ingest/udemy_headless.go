package ingest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"skill-gap/internal/domain/skill"
	"skill-gap/internal/repository"

	"github.com/chromedp/chromedp"
)

// UdemyScraper renders the provider's JavaScript-only listing in a headless
// browser and lifts course links straight out of the DOM.
type UdemyScraper struct {
	normalizer *skill.Normalizer
	siteBase   string
	limit      int
}

func NewUdemyScraper(normalizer *skill.Normalizer) *UdemyScraper {
	return &UdemyScraper{
		normalizer: normalizer,
		siteBase:   "https://www.udemy.com",
		limit:      30,
	}
}

func (s *UdemyScraper) Name() string { return "Udemy" }

type udemyListItem struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

func (s *UdemyScraper) Fetch(ctx context.Context, pages int) ([]repository.CourseUpsert, error) {
	if s == nil {
		return nil, fmt.Errorf("nil scraper")
	}
	if pages <= 0 {
		pages = 1
	}

	out := make([]repository.CourseUpsert, 0)
	seen := map[string]struct{}{}
	for page := 1; page <= pages; page++ {
		items, err := s.fetchListingHeadless(ctx, page)
		if err != nil {
			if page == 1 {
				return nil, err
			}
			break
		}
		for _, it := range items {
			item, ok := s.toUpsert(it)
			if !ok {
				continue
			}
			if _, dup := seen[item.ExternalID]; dup {
				continue
			}
			seen[item.ExternalID] = struct{}{}
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *UdemyScraper) fetchListingHeadless(ctx context.Context, page int) ([]udemyListItem, error) {
	base := strings.TrimRight(s.siteBase, "/")
	url := fmt.Sprintf("%s/courses/development/?p=%d", base, page)

	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.Flag("headless", true),
			chromedp.Flag("disable-gpu", true),
			chromedp.Flag("no-sandbox", true),
			chromedp.Flag("disable-dev-shm-usage", true),
			chromedp.UserAgent("Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/122.0.0.0 Safari/537.36"),
		)...,
	)
	defer allocCancel()

	browserCtx, browserCancel := chromedp.NewContext(allocCtx)
	defer browserCancel()

	reqCtx, reqCancel := context.WithTimeout(browserCtx, 25*time.Second)
	defer reqCancel()

	var items []udemyListItem
	err := chromedp.Run(reqCtx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(1500*time.Millisecond),
		chromedp.EvaluateAsDevTools(`Array.from(document.querySelectorAll('a[href*="/course/"]'))
			.map(a => ({url: a.getAttribute('href'), title: (a.textContent || '').trim()}))
			.filter(it => it.url && it.title)`, &items),
	)
	if err != nil {
		return nil, err
	}

	base = strings.TrimRight(s.siteBase, "/")
	out := make([]udemyListItem, 0, len(items))
	for _, it := range items {
		if len(out) >= s.limit {
			break
		}
		u := strings.TrimSpace(it.URL)
		if u == "" || strings.TrimSpace(it.Title) == "" {
			continue
		}
		if strings.HasPrefix(u, "/") {
			u = base + u
		} else if !strings.HasPrefix(u, "http://") && !strings.HasPrefix(u, "https://") {
			u = base + "/" + u
		}
		out = append(out, udemyListItem{URL: u, Title: strings.TrimSpace(it.Title)})
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("no course urls found (headless)")
	}
	return out, nil
}

func (s *UdemyScraper) toUpsert(it udemyListItem) (repository.CourseUpsert, bool) {
	token, ok := attributeSkill(s.normalizer, it.Title)
	if !ok {
		return repository.CourseUpsert{}, false
	}
	return repository.CourseUpsert{
		ExternalID: stableExternalIDFromURL(it.URL),
		SkillToken: token,
		Title:      it.Title,
		URL:        it.URL,
		Difficulty: difficultyFromLevel(""),
	}, true
}
