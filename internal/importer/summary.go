package importer

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/surj/an-import/internal/core"
)

// Summary reports the outcome of a run. It is returned even when the run
// stops early.
type Summary struct {
	RunID       string
	Chapter     string
	DryRun      bool
	StartedAt   time.Time
	Duration    time.Duration
	Processed   int
	Skipped     int
	SkipReasons map[core.SkipReason]int
	UnknownTags []string
	LastRow     int // last data row examined
}

func newSummary(runID, chapter string, dryRun bool) Summary {
	return Summary{
		RunID:       runID,
		Chapter:     chapter,
		DryRun:      dryRun,
		StartedAt:   time.Now(),
		SkipReasons: make(map[core.SkipReason]int),
	}
}

func (s *Summary) skip(reason core.SkipReason) {
	s.Skipped++
	s.SkipReasons[reason]++
}

// Rate returns processed records per second. ok is false when nothing was
// processed.
func (s Summary) Rate() (rate float64, ok bool) {
	if s.Processed == 0 {
		return 0, false
	}
	secs := s.Duration.Seconds()
	if secs <= 0 {
		secs = time.Microsecond.Seconds()
	}
	return float64(s.Processed) / secs, true
}

// Log writes the end-of-run lines.
func (s Summary) Log(logger *slog.Logger) {
	logger.Info(fmt.Sprintf("Processed %d activists in %s", s.Processed, s.Duration),
		"processed", s.Processed,
		"skipped", s.Skipped,
		"unknown_tags", len(s.UnknownTags),
		"duration", s.Duration,
	)
	if rate, ok := s.Rate(); ok {
		logger.Info(fmt.Sprintf("Activists per second: %.0f", rate))
	}
}
