package dto

import "time"

type PipelineStatusResponse struct {
	State      string    `json:"state"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Pairs      int       `json:"pairs"`
	Failed     int       `json:"failed"`
	Employees  int       `json:"employees"`
}
