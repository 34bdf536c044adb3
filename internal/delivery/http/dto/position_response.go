package dto

import "github.com/google/uuid"

type SkillWeightResponse struct {
	Token  string  `json:"token"`
	Weight float64 `json:"weight"`
}

type PositionResponse struct {
	EmployeeID uuid.UUID             `json:"employee_id"`
	X          float64               `json:"x"`
	Y          float64               `json:"y"`
	Cluster    int                   `json:"cluster"`
	TopSkills  []SkillWeightResponse `json:"top_skills"`
}
