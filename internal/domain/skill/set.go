package skill

import "strings"

// Set is an ordered, duplicate-free collection of canonical skill tokens.
// Order is the declaration order of the first occurrence of each token.
type Set struct {
	tokens []string
	index  map[string]struct{}
}

func NewSet(tokens ...string) Set {
	s := Set{
		tokens: make([]string, 0, len(tokens)),
		index:  make(map[string]struct{}, len(tokens)),
	}
	for _, t := range tokens {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := s.index[t]; ok {
			continue
		}
		s.index[t] = struct{}{}
		s.tokens = append(s.tokens, t)
	}
	return s
}

func (s Set) Len() int {
	return len(s.tokens)
}

func (s Set) IsEmpty() bool {
	return len(s.tokens) == 0
}

func (s Set) Contains(token string) bool {
	if s.index == nil {
		return false
	}
	_, ok := s.index[token]
	return ok
}

func (s Set) Tokens() []string {
	out := make([]string, len(s.tokens))
	copy(out, s.tokens)
	return out
}

// Intersect keeps the tokens of s that are also in other, preserving s's order.
func (s Set) Intersect(other Set) Set {
	kept := make([]string, 0, len(s.tokens))
	for _, t := range s.tokens {
		if other.Contains(t) {
			kept = append(kept, t)
		}
	}
	return NewSet(kept...)
}

// Difference keeps the tokens of s that are not in other, preserving s's order.
func (s Set) Difference(other Set) Set {
	kept := make([]string, 0, len(s.tokens))
	for _, t := range s.tokens {
		if !other.Contains(t) {
			kept = append(kept, t)
		}
	}
	return NewSet(kept...)
}

func (s Set) Union(other Set) Set {
	merged := make([]string, 0, len(s.tokens)+other.Len())
	merged = append(merged, s.tokens...)
	merged = append(merged, other.tokens...)
	return NewSet(merged...)
}

func (s Set) Join(sep string) string {
	return strings.Join(s.tokens, sep)
}
