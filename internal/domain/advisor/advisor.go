package advisor

import (
	"math"
	"sort"

	"skill-gap/internal/domain/position"
	"skill-gap/internal/domain/skill"
	"skill-gap/internal/domain/training"

	"github.com/google/uuid"
)

type Config struct {
	Mentors    int
	MaxRadius  float64
	CourseRecs int
}

func DefaultConfig() Config {
	return Config{
		Mentors:    5,
		MaxRadius:  0,
		CourseRecs: 5,
	}
}

// DomainTarget names a target skill domain and its required skills in
// declared order. An ordered slice, not a map, so gap reports are
// reproducible.
type DomainTarget struct {
	Name   string
	Skills []string
}

type Mentor struct {
	EmployeeID   uuid.UUID
	Distance     float64
	SharedSkills int
	Cluster      int
}

type DomainGap struct {
	Domain  string
	Present []string
	Missing []string
	Courses []training.CourseRecord
}

type AdvisoryReport struct {
	EmployeeID uuid.UUID
	Found      bool

	Cluster       int
	ClusterSkills []string
	TopSkills     []string

	Mentors   []Mentor
	Gaps      []DomainGap
	Narrative string
}

// Advise combines the skill-space positions, domain targets and course
// catalog into one report. An employee absent from the positions yields a
// structured not-found report; no error escapes to the caller.
func Advise(employeeID uuid.UUID, positions []position.SkillPosition, targets []DomainTarget, catalog map[string][]training.CourseRecord, cfg Config) AdvisoryReport {
	report := AdvisoryReport{EmployeeID: employeeID}

	var self position.SkillPosition
	found := false
	for _, p := range positions {
		if p.EmployeeID == employeeID {
			self = p
			found = true
			break
		}
	}
	if !found {
		return report
	}
	report.Found = true
	report.Cluster = self.Cluster

	selfSkills := skillTokens(self)
	report.TopSkills = selfSkills.Tokens()
	report.ClusterSkills = clusterSkills(positions, self.Cluster, cfg.CourseRecs)

	report.Mentors = nearestMentors(self, positions, selfSkills, cfg)
	report.Gaps = domainGaps(selfSkills, targets, catalog, cfg)
	report.Narrative = renderNarrative(report)

	return report
}

// nearestMentors ranks every other employee by Euclidean distance in the 2-D
// embedding. Skill overlap with the target employee is reported as a
// secondary signal but never affects the ranking.
func nearestMentors(self position.SkillPosition, positions []position.SkillPosition, selfSkills skill.Set, cfg Config) []Mentor {
	k := cfg.Mentors
	if k <= 0 {
		k = DefaultConfig().Mentors
	}

	candidates := make([]Mentor, 0, len(positions))
	for _, p := range positions {
		if p.EmployeeID == self.EmployeeID {
			continue
		}
		d := math.Hypot(p.X-self.X, p.Y-self.Y)
		if cfg.MaxRadius > 0 && d > cfg.MaxRadius {
			continue
		}
		candidates = append(candidates, Mentor{
			EmployeeID:   p.EmployeeID,
			Distance:     d,
			SharedSkills: skillTokens(p).Intersect(selfSkills).Len(),
			Cluster:      p.Cluster,
		})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Distance != candidates[j].Distance {
			return candidates[i].Distance < candidates[j].Distance
		}
		return candidates[i].EmployeeID.String() < candidates[j].EmployeeID.String()
	})

	if len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}

func domainGaps(selfSkills skill.Set, targets []DomainTarget, catalog map[string][]training.CourseRecord, cfg Config) []DomainGap {
	n := cfg.CourseRecs
	if n <= 0 {
		n = DefaultConfig().CourseRecs
	}

	gaps := make([]DomainGap, 0, len(targets))
	for _, target := range targets {
		domainSet := skill.NewSet(target.Skills...)
		present := domainSet.Intersect(selfSkills)
		missing := domainSet.Difference(selfSkills)

		gaps = append(gaps, DomainGap{
			Domain:  target.Name,
			Present: present.Tokens(),
			Missing: missing.Tokens(),
			Courses: recommendCourses(missing, catalog, n),
		})
	}
	return gaps
}

// recommendCourses ranks catalog courses by how many of the missing skills
// they cover, tie-broken by title ascending.
func recommendCourses(missing skill.Set, catalog map[string][]training.CourseRecord, n int) []training.CourseRecord {
	if missing.IsEmpty() {
		return []training.CourseRecord{}
	}

	type scored struct {
		course  training.CourseRecord
		covered int
	}

	seen := make(map[string]struct{})
	candidates := make([]scored, 0)
	for _, tok := range missing.Tokens() {
		for _, c := range catalog[tok] {
			if _, ok := seen[c.ID]; ok {
				continue
			}
			seen[c.ID] = struct{}{}
			covered := 0
			for _, m := range missing.Tokens() {
				if c.Skill == m {
					covered++
				}
			}
			candidates = append(candidates, scored{course: c, covered: covered})
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].covered != candidates[j].covered {
			return candidates[i].covered > candidates[j].covered
		}
		if candidates[i].course.Title != candidates[j].course.Title {
			return candidates[i].course.Title < candidates[j].course.Title
		}
		return candidates[i].course.ID < candidates[j].course.ID
	})

	if len(candidates) > n {
		candidates = candidates[:n]
	}
	out := make([]training.CourseRecord, 0, len(candidates))
	for _, s := range candidates {
		out = append(out, s.course)
	}
	return out
}

func clusterSkills(positions []position.SkillPosition, cluster, n int) []string {
	if n <= 0 {
		n = DefaultConfig().CourseRecs
	}

	totals := make(map[string]float64)
	for _, p := range positions {
		if p.Cluster != cluster {
			continue
		}
		for _, sw := range p.TopSkills {
			totals[sw.Token] += sw.Weight
		}
	}

	type entry struct {
		token  string
		weight float64
	}
	entries := make([]entry, 0, len(totals))
	for tok, w := range totals {
		entries = append(entries, entry{token: tok, weight: w})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].weight != entries[j].weight {
			return entries[i].weight > entries[j].weight
		}
		return entries[i].token < entries[j].token
	})

	if len(entries) > n {
		entries = entries[:n]
	}
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.token)
	}
	return out
}

func skillTokens(p position.SkillPosition) skill.Set {
	tokens := make([]string, 0, len(p.TopSkills))
	for _, sw := range p.TopSkills {
		tokens = append(tokens, sw.Token)
	}
	return skill.NewSet(tokens...)
}
