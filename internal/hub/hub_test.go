package hub

import (
	"testing"

	"github.com/hawkarabdulhaq/quakescope/internal/stats"
)

func TestPublishReachesAllSubscribers(t *testing.T) {
	h := New()
	a := h.Subscribe()
	b := h.Subscribe()

	h.Publish(stats.Report{Source: "earthquakes.csv", Rows: 42})

	for name, ch := range map[string]<-chan stats.Report{"a": a, "b": b} {
		select {
		case rep := <-ch:
			if rep.Rows != 42 {
				t.Errorf("subscriber %s: expected 42 rows, got %d", name, rep.Rows)
			}
		default:
			t.Errorf("subscriber %s received nothing", name)
		}
	}
}

func TestSlowSubscriberDrops(t *testing.T) {
	h := New()
	_ = h.Subscribe()

	// Overflow the subscriber buffer; the excess must drop, not block.
	for i := 0; i < subscriberBuffer+5; i++ {
		h.Publish(stats.Report{Rows: i})
	}

	if h.Dropped() != 5 {
		t.Errorf("expected 5 dropped reports, got %d", h.Dropped())
	}
}

func TestCloseStopsDelivery(t *testing.T) {
	h := New()
	ch := h.Subscribe()

	h.Close()
	h.Publish(stats.Report{Rows: 1}) // must not panic on closed channels

	if _, ok := <-ch; ok {
		t.Error("expected subscriber channel to be closed")
	}
}
