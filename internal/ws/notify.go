package ws

import (
	"encoding/json"
	"sync/atomic"
	"time"
)

type PositionsUpdatedEvent struct {
	Type      string `json:"type"`
	Employees int    `json:"employees"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

// NotifyPositionsUpdated tells every connected dashboard that the skill-space
// map was recomputed.
func NotifyPositionsUpdated(employees int) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	evt := PositionsUpdatedEvent{
		Type:      "positions_updated",
		Employees: employees,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
