package skill

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Category maps one canonical skill token to the substring keywords that
// attribute it. Categories are evaluated in declaration order so that
// Categorize's first-match-wins rule is reproducible across runs.
type Category struct {
	Name     string
	Keywords []string
}

type Normalizer struct {
	categories []Category
	folded     [][]string
}

func NewNormalizer(categories []Category) *Normalizer {
	n := &Normalizer{
		categories: make([]Category, 0, len(categories)),
		folded:     make([][]string, 0, len(categories)),
	}
	for _, c := range categories {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		keywords := make([]string, 0, len(c.Keywords))
		foldedKeywords := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			kw = strings.TrimSpace(kw)
			if kw == "" {
				continue
			}
			keywords = append(keywords, kw)
			foldedKeywords = append(foldedKeywords, Fold(kw))
		}
		if len(keywords) == 0 {
			continue
		}
		n.categories = append(n.categories, Category{Name: name, Keywords: keywords})
		n.folded = append(n.folded, foldedKeywords)
	}
	return n
}

// Normalize tags the text with every category whose keywords occur as a
// substring, case and accent insensitive. The returned set preserves the
// category declaration order.
func (n *Normalizer) Normalize(text string) Set {
	if n == nil {
		return NewSet()
	}
	haystack := Fold(text)
	if haystack == "" {
		return NewSet()
	}

	matched := make([]string, 0, 4)
	for i, c := range n.categories {
		for _, kw := range n.folded[i] {
			if strings.Contains(haystack, kw) {
				matched = append(matched, c.Name)
				break
			}
		}
	}
	return NewSet(matched...)
}

// Categorize returns the first category whose keywords match the text.
// Iteration order over categories is fixed, so the result is deterministic.
func (n *Normalizer) Categorize(text string) (string, bool) {
	if n == nil {
		return "", false
	}
	haystack := Fold(text)
	if haystack == "" {
		return "", false
	}
	for i, c := range n.categories {
		for _, kw := range n.folded[i] {
			if strings.Contains(haystack, kw) {
				return c.Name, true
			}
		}
	}
	return "", false
}

func (n *Normalizer) Categories() []Category {
	if n == nil {
		return nil
	}
	out := make([]Category, len(n.categories))
	copy(out, n.categories)
	return out
}

var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Fold lowercases the text and strips combining diacritical marks.
func Fold(text string) string {
	text = strings.TrimSpace(strings.ToLower(text))
	if text == "" {
		return ""
	}
	out, _, err := transform.String(foldTransformer, text)
	if err != nil {
		return text
	}
	return out
}

// TitleWords splits a job or position title into folded comparison words.
func TitleWords(title string) Set {
	folded := Fold(title)
	if folded == "" {
		return NewSet()
	}
	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
	return NewSet(words...)
}
