package ingest

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"skill-gap/internal/domain/skill"
)

// attributeSkill maps free-form course text onto one canonical skill token.
// Courses no category claims are skipped rather than stored untagged.
func attributeSkill(norm *skill.Normalizer, texts ...string) (string, bool) {
	for _, t := range texts {
		if tok, ok := norm.Categorize(t); ok {
			return tok, true
		}
	}
	return "", false
}

var hoursRe = regexp.MustCompile(`(?i)(\d+(?:[.,]\d+)?)\s*(?:hour|hr|jam)`)

// parseHours pulls a workload figure out of provider strings like
// "Approx. 24 hours" or "10 jam". Zero means unknown.
func parseHours(raw string) float64 {
	m := hoursRe.FindStringSubmatch(raw)
	if len(m) < 2 {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", "."), 64)
	if err != nil || v < 0 {
		return 0
	}
	return v
}

// difficultyFromLevel folds provider level labels onto the [0,1] scale the
// plan builder scores with.
func difficultyFromLevel(level string) float64 {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "beginner", "introductory", "basic", "pemula":
		return 0.2
	case "intermediate", "menengah":
		return 0.5
	case "advanced", "expert", "mahir":
		return 0.8
	default:
		return 0.5
	}
}

func clampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

func stableExternalIDFromURL(u string) string {
	u = strings.TrimSpace(u)
	if u == "" {
		return ""
	}
	h := sha1.Sum([]byte(u))
	return "urlsha1-" + hex.EncodeToString(h[:])
}

func pickNonEmpty(a, b string) string {
	a = strings.TrimSpace(a)
	if a != "" {
		return a
	}
	return strings.TrimSpace(b)
}

func httpGetWithRetry(ctx context.Context, client *http.Client, url string, attempts int) ([]byte, error) {
	if attempts <= 0 {
		attempts = 1
	}
	var body []byte
	var lastErr error
	for i := 0; i < attempts; i++ {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", "SkillGapCatalog/0.1")
		resp, err := client.Do(req)
		if err != nil {
			lastErr = err
			time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
			continue
		}
		func() {
			defer resp.Body.Close()
			if resp.StatusCode < 200 || resp.StatusCode >= 300 {
				lastErr = fmt.Errorf("status %d", resp.StatusCode)
				return
			}
			b, err := readAllLimit(resp.Body, 5<<20)
			if err != nil {
				lastErr = err
				return
			}
			lastErr = nil
			body = b
		}()
		if lastErr == nil {
			return body, nil
		}
		time.Sleep(time.Duration(300*(i+1)) * time.Millisecond)
	}
	return nil, lastErr
}

func readAllLimit(r io.Reader, max int64) ([]byte, error) {
	lr := &io.LimitedReader{R: r, N: max}
	b, err := io.ReadAll(lr)
	if err != nil {
		return nil, err
	}
	if lr.N <= 0 {
		return nil, fmt.Errorf("response too large")
	}
	return b, nil
}
