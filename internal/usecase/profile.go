package usecase

import (
	"skill-gap/internal/domain/matching"
	"skill-gap/internal/domain/skill"
	"skill-gap/internal/repository"
)

// employeeProfile maps a stored employee onto the scorer's input. Raw skill
// strings are normalized into canonical tokens; a string no category claims
// keeps its folded form so it still counts toward overlap.
func employeeProfile(e repository.Employee, norm *skill.Normalizer) matching.EmployeeProfile {
	return matching.EmployeeProfile{
		ID:               e.ID,
		PositionTitle:    e.PositionTitle,
		DesiredTitle:     e.DesiredTitle,
		Skills:           normalizeTokens(e.Skills, norm),
		Education:        skill.ParseEducation(e.Education),
		YearsExperience:  e.YearsExperience,
		OpennessToChange: e.Openness,
		WeeklyHours:      e.WeeklyHours,
	}
}

func jobRequirement(j repository.Job, norm *skill.Normalizer) matching.JobRequirement {
	return matching.JobRequirement{
		ID:                 j.ID,
		Title:              j.Title,
		RequiredSkills:     normalizeTokens(j.RequiredSkills, norm),
		RequiredEducation:  skill.ParseEducation(j.RequiredEducation),
		RequiredExperience: j.RequiredExperience,
		Description:        j.Description,
	}
}

func normalizeTokens(raw []string, norm *skill.Normalizer) skill.Set {
	out := skill.NewSet()
	for _, r := range raw {
		tagged := norm.Normalize(r)
		if tagged.IsEmpty() {
			folded := skill.Fold(r)
			if folded == "" {
				continue
			}
			tagged = skill.NewSet(folded)
		}
		out = out.Union(tagged)
	}
	return out
}
