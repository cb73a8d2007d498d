package handler

import (
	"sync/atomic"

	"github.com/philipp01105/nslog/core"
)

// Stats tracks per-level handler statistics
type Stats struct {
	processed [len(core.Levels) + 1]atomic.Uint64
	failed    [len(core.Levels) + 1]atomic.Uint64
}

// NewStats creates a new Stats instance
func NewStats() *Stats {
	return &Stats{}
}

func slot(level core.Level) int {
	if level < core.NoLevel || int(level) > len(core.Levels) {
		return int(core.NoLevel)
	}
	return int(level)
}

// IncrementProcessed atomically increments the processed counter for a level
func (s *Stats) IncrementProcessed(level core.Level) {
	s.processed[slot(level)].Add(1)
}

// IncrementFailed atomically increments the failed counter for a level
func (s *Stats) IncrementFailed(level core.Level) {
	s.failed[slot(level)].Add(1)
}

// GetProcessed returns the processed count for a level
func (s *Stats) GetProcessed(level core.Level) uint64 {
	return s.processed[slot(level)].Load()
}

// GetFailed returns the failed count for a level
func (s *Stats) GetFailed(level core.Level) uint64 {
	return s.failed[slot(level)].Load()
}

// Reset resets all counters to zero
func (s *Stats) Reset() {
	for i := range s.processed {
		s.processed[i].Store(0)
		s.failed[i].Store(0)
	}
}

// Snapshot is a point-in-time copy of Stats
type Snapshot struct {
	Processed      map[core.Level]uint64
	Failed         map[core.Level]uint64
	ProcessedTotal uint64
	FailedTotal    uint64
}

// GetSnapshot returns a snapshot of current statistics
func (s *Stats) GetSnapshot() Snapshot {
	snap := Snapshot{
		Processed: make(map[core.Level]uint64, len(s.processed)),
		Failed:    make(map[core.Level]uint64, len(s.failed)),
	}
	for i := range s.processed {
		p, f := s.processed[i].Load(), s.failed[i].Load()
		snap.Processed[core.Level(i)] = p
		snap.Failed[core.Level(i)] = f
		snap.ProcessedTotal += p
		snap.FailedTotal += f
	}
	return snap
}

// StatsProvider is implemented by handlers that keep Stats
type StatsProvider interface {
	Stats() Snapshot
}

// Add accumulates o into s
func (s *Snapshot) Add(o Snapshot) {
	if s.Processed == nil {
		s.Processed = make(map[core.Level]uint64, len(o.Processed))
	}
	if s.Failed == nil {
		s.Failed = make(map[core.Level]uint64, len(o.Failed))
	}
	for level, n := range o.Processed {
		s.Processed[level] += n
	}
	for level, n := range o.Failed {
		s.Failed[level] += n
	}
	s.ProcessedTotal += o.ProcessedTotal
	s.FailedTotal += o.FailedTotal
}
