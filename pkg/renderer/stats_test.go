package renderer

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestSamplesPerSecond(t *testing.T) {
	stats := RenderStats{TotalSamples: 1000, Duration: 2 * time.Second}
	if got := stats.SamplesPerSecond(); got != 500 {
		t.Errorf("Expected 500 samples/s, got %f", got)
	}

	if got := (RenderStats{TotalSamples: 10}).SamplesPerSecond(); got != 0 {
		t.Errorf("Expected 0 samples/s for a zero duration, got %f", got)
	}
}

func TestWriteStatsTable(t *testing.T) {
	stats := RenderStats{
		Width:        40,
		Height:       30,
		Workers:      4,
		TotalPixels:  1200,
		TotalSamples: 4800,
		NaNSamples:   3,
		Duration:     1500 * time.Millisecond,
	}

	var buf bytes.Buffer
	WriteStatsTable(&buf, stats)
	out := buf.String()

	for _, want := range []string{"Resolution", "40x30", "1200", "4800", "3200", "TOTAL", "1.5s"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected table to contain %q, got:\n%s", want, out)
		}
	}
}
