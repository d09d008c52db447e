// Package hub fans regenerated report snapshots out to live subscribers.
package hub

import (
	"log"
	"sync"

	"github.com/hawkarabdulhaq/quakescope/internal/stats"
)

const subscriberBuffer = 16

// Hub broadcasts report snapshots to all subscribers. Slow consumers drop
// snapshots rather than blocking regeneration; a newer report always
// supersedes a missed one.
type Hub struct {
	mu          sync.RWMutex
	subscribers []chan stats.Report
	dropped     int64
	closed      bool
}

// New creates an empty Hub.
func New() *Hub {
	return &Hub{}
}

// Subscribe returns a buffered channel that will receive report snapshots.
// Multiple consumers can subscribe; each gets a copy of every report.
func (h *Hub) Subscribe() <-chan stats.Report {
	ch := make(chan stats.Report, subscriberBuffer)
	h.mu.Lock()
	h.subscribers = append(h.subscribers, ch)
	h.mu.Unlock()
	return ch
}

// Publish sends a report to all subscribers. If a subscriber's channel is
// full, the report is dropped for that subscriber.
func (h *Hub) Publish(rep stats.Report) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	for _, ch := range h.subscribers {
		select {
		case ch <- rep:
		default:
			h.dropped++
			log.Printf("hub: dropped report for slow consumer (total dropped: %d)", h.dropped)
		}
	}
}

// Dropped returns the total number of reports dropped due to slow consumers.
func (h *Hub) Dropped() int64 {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.dropped
}

// Close closes all subscriber channels. Publish becomes a no-op.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return
	}
	h.closed = true
	for _, ch := range h.subscribers {
		close(ch)
	}
	h.subscribers = nil
}
