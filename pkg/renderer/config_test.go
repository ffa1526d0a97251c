package renderer

import (
	"runtime"
	"testing"
)

func TestSamplingConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		config  SamplingConfig
		wantErr bool
	}{
		{"defaults", DefaultSamplingConfig(), false},
		{"one sample", SamplingConfig{SamplesPerPixel: 1, MaxDepth: 1}, false},
		{"explicit workers", SamplingConfig{SamplesPerPixel: 16, MaxDepth: 5, NumWorkers: 3}, false},
		{"zero samples", SamplingConfig{SamplesPerPixel: 0, MaxDepth: 5}, true},
		{"not a perfect square", SamplingConfig{SamplesPerPixel: 10, MaxDepth: 5}, true},
		{"zero depth", SamplingConfig{SamplesPerPixel: 4, MaxDepth: 0}, true},
		{"negative workers", SamplingConfig{SamplesPerPixel: 4, MaxDepth: 5, NumWorkers: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSamplingConfigSqrtSamples(t *testing.T) {
	for spp, expected := range map[int]int{1: 1, 4: 2, 100: 10, 400: 20} {
		config := SamplingConfig{SamplesPerPixel: spp}
		if got := config.SqrtSamples(); got != expected {
			t.Errorf("SqrtSamples() for %d spp = %d, expected %d", spp, got, expected)
		}
	}
}

func TestSamplingConfigWorkers(t *testing.T) {
	if got := (SamplingConfig{}).Workers(); got != runtime.NumCPU() {
		t.Errorf("Expected default workers %d, got %d", runtime.NumCPU(), got)
	}
	if got := (SamplingConfig{NumWorkers: 2}).Workers(); got != 2 {
		t.Errorf("Expected 2 workers, got %d", got)
	}
}
