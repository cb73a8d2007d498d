package handler

import (
	"testing"

	"github.com/philipp01105/nslog/core"
)

func TestSinkFunc(t *testing.T) {
	var got string
	h := SinkFunc(func(msg string) { got = msg })

	entry := core.GetEntry()
	entry.Message = "hello"
	defer core.PutEntry(entry)

	if err := h.Handle(entry); err != nil {
		t.Errorf("Handle() error = %v", err)
	}
	if got != "hello" {
		t.Errorf("SinkFunc received %q, want hello", got)
	}
	if err := h.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNoop(t *testing.T) {
	if err := Noop.Handle(&core.Entry{Message: "x"}); err != nil {
		t.Errorf("Noop.Handle() error = %v", err)
	}
	if err := Noop.Close(); err != nil {
		t.Errorf("Noop.Close() error = %v", err)
	}
}

func TestStats(t *testing.T) {
	s := NewStats()

	s.IncrementProcessed(core.InfoLevel)
	s.IncrementProcessed(core.InfoLevel)
	s.IncrementProcessed(core.NoLevel)
	s.IncrementFailed(core.ErrorLevel)
	// Out-of-range levels are counted as NoLevel
	s.IncrementProcessed(core.Level(99))

	if got := s.GetProcessed(core.InfoLevel); got != 2 {
		t.Errorf("GetProcessed(Info) = %d, want 2", got)
	}
	if got := s.GetProcessed(core.NoLevel); got != 2 {
		t.Errorf("GetProcessed(NoLevel) = %d, want 2", got)
	}
	if got := s.GetFailed(core.ErrorLevel); got != 1 {
		t.Errorf("GetFailed(Error) = %d, want 1", got)
	}

	snap := s.GetSnapshot()
	if snap.ProcessedTotal != 4 {
		t.Errorf("ProcessedTotal = %d, want 4", snap.ProcessedTotal)
	}
	if snap.FailedTotal != 1 {
		t.Errorf("FailedTotal = %d, want 1", snap.FailedTotal)
	}

	s.Reset()
	if s.GetSnapshot().ProcessedTotal != 0 {
		t.Error("Reset() did not clear processed counters")
	}
}

func TestSnapshot_Add(t *testing.T) {
	a, b := NewStats(), NewStats()
	a.IncrementProcessed(core.InfoLevel)
	b.IncrementProcessed(core.InfoLevel)
	b.IncrementFailed(core.ErrorLevel)

	var total Snapshot
	total.Add(a.GetSnapshot())
	total.Add(b.GetSnapshot())

	if total.Processed[core.InfoLevel] != 2 {
		t.Errorf("Processed[info] = %d, want 2", total.Processed[core.InfoLevel])
	}
	if total.Failed[core.ErrorLevel] != 1 {
		t.Errorf("Failed[error] = %d, want 1", total.Failed[core.ErrorLevel])
	}
	if total.ProcessedTotal != 2 || total.FailedTotal != 1 {
		t.Errorf("totals = %d/%d, want 2/1", total.ProcessedTotal, total.FailedTotal)
	}
}
