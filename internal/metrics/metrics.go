// Package metrics holds in-process counters surfaced by the admin stats endpoint.
package metrics

import (
	"sync/atomic"
	"time"
)

// Counter is safe for concurrent use; the zero value is ready.
type Counter struct {
	value atomic.Uint64
}

func (c *Counter) Inc() {
	c.value.Add(1)
}

func (c *Counter) Add(n uint64) {
	c.value.Add(n)
}

func (c *Counter) Load() uint64 {
	return c.value.Load()
}

// Latency accumulates observed durations; the zero value is ready.
type Latency struct {
	count atomic.Uint64
	total atomic.Int64
	max   atomic.Int64
}

type LatencyStats struct {
	Count     uint64  `json:"count"`
	AvgMillis float64 `json:"avg_ms"`
	MaxMillis float64 `json:"max_ms"`
}

func (l *Latency) Observe(d time.Duration) {
	l.count.Add(1)
	l.total.Add(int64(d))
	for {
		cur := l.max.Load()
		if int64(d) <= cur || l.max.CompareAndSwap(cur, int64(d)) {
			return
		}
	}
}

func (l *Latency) Snapshot() LatencyStats {
	count := l.count.Load()
	s := LatencyStats{
		Count:     count,
		MaxMillis: millis(time.Duration(l.max.Load())),
	}
	if count > 0 {
		s.AvgMillis = millis(time.Duration(l.total.Load() / int64(count)))
	}
	return s
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

type Timer struct {
	start time.Time
}

func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

func (t *Timer) Duration() time.Duration {
	return time.Since(t.start)
}

// ObserveInto records the elapsed time on l and returns it.
func (t *Timer) ObserveInto(l *Latency) time.Duration {
	d := t.Duration()
	l.Observe(d)
	return d
}
