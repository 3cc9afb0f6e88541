// Package stats keeps a rolling window of generation timings.
package stats

import (
	"slices"
	"sync"
	"time"
)

type sample struct {
	at       time.Time
	micros   int64
	bytes    int
	language string
}

// Snapshot aggregates the samples currently inside the window.
type Snapshot struct {
	Count      int            `json:"count"`
	MinUs      int64          `json:"min_us"`
	MaxUs      int64          `json:"max_us"`
	AvgUs      float64        `json:"avg_us"`
	P50Us      float64        `json:"p50_us"`
	P95Us      float64        `json:"p95_us"`
	P99Us      float64        `json:"p99_us"`
	TotalBytes int64          `json:"total_bytes"`
	ByLanguage map[string]int `json:"by_language"`
}

// Window records how long document generation takes, dropping samples
// older than its max age.
type Window struct {
	mu      sync.Mutex
	samples []sample
	maxAge  time.Duration
	now     func() time.Time
}

func NewWindow(maxAge time.Duration) *Window {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &Window{
		samples: make([]sample, 0, 256),
		maxAge:  maxAge,
		now:     time.Now,
	}
}

// Record adds one generated document. Negative durations count as zero.
func (w *Window) Record(language string, d time.Duration, bytes int) {
	us := d.Microseconds()
	if us < 0 {
		us = 0
	}
	now := w.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pruneLocked(now)
	w.samples = append(w.samples, sample{at: now, micros: us, bytes: bytes, language: language})
}

func (w *Window) Snapshot() Snapshot {
	now := w.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pruneLocked(now)
	snap := Snapshot{ByLanguage: map[string]int{}}
	if len(w.samples) == 0 {
		return snap
	}

	values := make([]int64, 0, len(w.samples))
	var sum int64
	for _, sm := range w.samples {
		values = append(values, sm.micros)
		sum += sm.micros
		snap.TotalBytes += int64(sm.bytes)
		snap.ByLanguage[sm.language]++
	}
	slices.Sort(values)

	snap.Count = len(values)
	snap.MinUs = values[0]
	snap.MaxUs = values[len(values)-1]
	snap.AvgUs = float64(sum) / float64(len(values))
	snap.P50Us = percentile(values, 50)
	snap.P95Us = percentile(values, 95)
	snap.P99Us = percentile(values, 99)
	return snap
}

func (w *Window) pruneLocked(now time.Time) {
	cutoff := now.Add(-w.maxAge)
	w.samples = slices.DeleteFunc(w.samples, func(sm sample) bool {
		return sm.at.Before(cutoff)
	})
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
