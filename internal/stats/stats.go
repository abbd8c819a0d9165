// Package stats keeps rolling latency figures for navigation operations.
package stats

import (
	"slices"
	"sync"
	"time"
)

type sample struct {
	timestamp time.Time
	micros    int64
}

// Snapshot is a point-in-time aggregate of one operation's latencies, in
// microseconds.
type Snapshot struct {
	Count int     `json:"count"`
	MinUs int64   `json:"min_us"`
	MaxUs int64   `json:"max_us"`
	AvgUs float64 `json:"avg_us"`
	P50Us float64 `json:"p50_us"`
	P95Us float64 `json:"p95_us"`
	P99Us float64 `json:"p99_us"`
}

// Latency tracks recent operation latencies within a rolling window, keyed
// by operation name.
type Latency struct {
	mu      sync.Mutex
	samples map[string][]sample
	maxAge  time.Duration
	now     func() time.Time
}

func NewLatency(maxAge time.Duration) *Latency {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Latency{
		samples: make(map[string][]sample),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// Record adds one sample for op. Negative durations count as zero.
func (l *Latency) Record(op string, d time.Duration) {
	us := d.Microseconds()
	if us < 0 {
		us = 0
	}
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	l.samples[op] = append(prune(l.samples[op], now.Add(-l.maxAge)), sample{timestamp: now, micros: us})
}

// Snapshot aggregates every operation with samples inside the window.
func (l *Latency) Snapshot() map[string]Snapshot {
	cutoff := l.now().Add(-l.maxAge)

	l.mu.Lock()
	defer l.mu.Unlock()

	out := make(map[string]Snapshot, len(l.samples))
	for op, ss := range l.samples {
		ss = prune(ss, cutoff)
		if len(ss) == 0 {
			delete(l.samples, op)
			continue
		}
		l.samples[op] = ss
		out[op] = aggregate(ss)
	}
	return out
}

func aggregate(ss []sample) Snapshot {
	values := make([]int64, 0, len(ss))
	var sum int64
	for _, s := range ss {
		values = append(values, s.micros)
		sum += s.micros
	}
	slices.Sort(values)

	return Snapshot{
		Count: len(values),
		MinUs: values[0],
		MaxUs: values[len(values)-1],
		AvgUs: float64(sum) / float64(len(values)),
		P50Us: percentile(values, 50),
		P95Us: percentile(values, 95),
		P99Us: percentile(values, 99),
	}
}

// prune drops samples older than cutoff in place.
func prune(ss []sample, cutoff time.Time) []sample {
	kept := ss[:0]
	for _, s := range ss {
		if !s.timestamp.Before(cutoff) {
			kept = append(kept, s)
		}
	}
	return kept
}

// percentile interpolates linearly between the two nearest ranks.
func percentile(sorted []int64, pct float64) float64 {
	switch {
	case len(sorted) == 0:
		return 0
	case pct <= 0:
		return float64(sorted[0])
	case pct >= 100:
		return float64(sorted[len(sorted)-1])
	}

	index := float64(len(sorted)-1) * pct / 100
	lower := int(index)
	if lower+1 >= len(sorted) {
		return float64(sorted[lower])
	}
	lo, hi := float64(sorted[lower]), float64(sorted[lower+1])
	return lo + (hi-lo)*(index-float64(lower))
}
