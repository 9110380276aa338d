package importer

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSummaryRate(t *testing.T) {
	s := Summary{Processed: 10, Duration: 2 * time.Second}
	rate, ok := s.Rate()
	assert.True(t, ok)
	assert.InDelta(t, 5.0, rate, 1e-9)

	_, ok = Summary{Duration: time.Second}.Rate()
	assert.False(t, ok)

	rate, ok = Summary{Processed: 1}.Rate()
	assert.True(t, ok)
	assert.Greater(t, rate, 0.0)
}

func TestSummaryLog(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	Summary{Processed: 4, Duration: 2 * time.Second}.Log(logger)
	assert.Contains(t, buf.String(), "Processed 4 activists in 2s")
	assert.Contains(t, buf.String(), "Activists per second: 2")

	buf.Reset()
	Summary{}.Log(logger)
	assert.Contains(t, buf.String(), "Processed 0 activists")
	assert.NotContains(t, buf.String(), "Activists per second")
}
