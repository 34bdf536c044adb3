package dto

import "github.com/google/uuid"

type MentorResponse struct {
	EmployeeID   uuid.UUID `json:"employee_id"`
	Distance     float64   `json:"distance"`
	SharedSkills int       `json:"shared_skills"`
	Cluster      int       `json:"cluster"`
}

type DomainGapResponse struct {
	Domain  string           `json:"domain"`
	Present []string         `json:"present"`
	Missing []string         `json:"missing"`
	Courses []CourseResponse `json:"courses"`
}

type AdvisoryResponse struct {
	EmployeeID uuid.UUID `json:"employee_id"`
	Found      bool      `json:"found"`

	Cluster       int      `json:"cluster"`
	ClusterSkills []string `json:"cluster_skills"`
	TopSkills     []string `json:"top_skills"`

	Mentors   []MentorResponse    `json:"mentors"`
	Gaps      []DomainGapResponse `json:"gaps"`
	Narrative string              `json:"narrative"`
}
