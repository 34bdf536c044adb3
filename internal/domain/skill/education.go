package skill

import "strings"

type EducationLevel int

const (
	EducationUnknown EducationLevel = iota
	EducationHighSchool
	EducationDiploma
	EducationBachelor
	EducationMaster
	EducationDoctorate
)

func (l EducationLevel) String() string {
	switch l {
	case EducationHighSchool:
		return "high school"
	case EducationDiploma:
		return "diploma"
	case EducationBachelor:
		return "bachelor"
	case EducationMaster:
		return "master"
	case EducationDoctorate:
		return "doctorate"
	default:
		return "unknown"
	}
}

// educationKeywords is ordered highest level first so that e.g.
// "PhD in progress, holds a master" resolves to the highest mentioned level.
var educationKeywords = []struct {
	level    EducationLevel
	keywords []string
}{
	{EducationDoctorate, []string{"phd", "ph.d", "doctor", "doktor", "s3"}},
	{EducationMaster, []string{"master", "msc", "m.sc", "mba", "magister", "s2"}},
	{EducationBachelor, []string{"bachelor", "bsc", "b.sc", "undergraduate", "sarjana", "s1", "licenciatura"}},
	{EducationDiploma, []string{"diploma", "associate", "vocational", "d3", "d4"}},
	{EducationHighSchool, []string{"high school", "highschool", "secondary", "sma", "smk"}},
}

// ParseEducation maps free-text education descriptions to the ordinal scale.
// Unrecognized text yields EducationUnknown.
func ParseEducation(text string) EducationLevel {
	haystack := Fold(text)
	if haystack == "" {
		return EducationUnknown
	}
	for _, e := range educationKeywords {
		for _, kw := range e.keywords {
			if strings.Contains(haystack, kw) {
				return e.level
			}
		}
	}
	return EducationUnknown
}
