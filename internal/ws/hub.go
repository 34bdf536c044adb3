package ws

import (
	"log"
	"sync"
)

// Hub fans pipeline events out to every connected dashboard. All channel
// traffic is handled by the single Run goroutine; the mutex only guards the
// connection set for readers like ClientCount.
type Hub struct {
	mu    sync.Mutex
	conns map[*Client]struct{}

	join   chan *Client
	leave  chan *Client
	events chan []byte

	logger *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		conns:  make(map[*Client]struct{}),
		join:   make(chan *Client, 128),
		leave:  make(chan *Client, 128),
		events: make(chan []byte, 1024),
		logger: logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.join:
			if client == nil {
				continue
			}
			h.mu.Lock()
			h.conns[client] = struct{}{}
			total := len(h.conns)
			h.mu.Unlock()
			h.logf("[WS] Client joined | clients=%d", total)

		case client := <-h.leave:
			if client == nil {
				continue
			}
			h.mu.Lock()
			if _, ok := h.conns[client]; ok {
				delete(h.conns, client)
				close(client.send)
			}
			total := len(h.conns)
			h.mu.Unlock()
			h.logf("[WS] Client left | clients=%d", total)

		case event := <-h.events:
			h.fanout(event)
		}
	}
}

// fanout delivers one event to every client. A client whose send buffer is
// full is considered stuck and gets evicted rather than stalling the hub.
func (h *Hub) fanout(event []byte) {
	h.mu.Lock()
	targets := make([]*Client, 0, len(h.conns))
	for c := range h.conns {
		targets = append(targets, c)
	}
	h.mu.Unlock()

	for _, client := range targets {
		select {
		case client.send <- event:
		default:
			h.leave <- client
		}
	}

	h.logf("[WS] Broadcast | clients=%d", len(targets))
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.join <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.leave <- client
}

func (h *Hub) Broadcast(event []byte) {
	if h == nil {
		return
	}
	select {
	case h.events <- event:
	default:
		h.logf("[WS] Event dropped | reason=buffer_full")
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *Hub) logf(format string, args ...any) {
	if h.logger == nil {
		return
	}
	h.logger.Printf(format, args...)
}
