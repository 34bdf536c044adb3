package dto

type CourseResponse struct {
	ID         string  `json:"id"`
	Skill      string  `json:"skill"`
	Title      string  `json:"title"`
	Hours      float64 `json:"hours"`
	Difficulty float64 `json:"difficulty"`
	Rating     float64 `json:"rating"`
}

type TrainingPlanResponse struct {
	IntroCourses []CourseResponse `json:"intro_courses"`
	DeepCourses  []CourseResponse `json:"deep_courses"`

	IntroHours float64 `json:"intro_hours"`
	DeepHours  float64 `json:"deep_hours"`

	// Week estimates are -1 when the employee has no weekly learning budget.
	IntroWeeks int `json:"intro_weeks"`
	DeepWeeks  int `json:"deep_weeks"`
}

type TrainingPathResponse struct {
	Match MatchResultResponse  `json:"match"`
	Plan  TrainingPlanResponse `json:"plan"`
}
