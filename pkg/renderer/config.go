package renderer

import (
	"fmt"
	"math"
	"runtime"
)

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int   // Number of rays per pixel, must be a perfect square
	MaxDepth        int   // Maximum ray bounce depth
	Seed            int64 // Base seed, each row derives its own generator from it
	NumWorkers      int   // Rows rendered concurrently, 0 means one per CPU
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
		Seed:            42,
	}
}

// SqrtSamples returns the side of the stratification grid
func (c SamplingConfig) SqrtSamples() int {
	return int(math.Round(math.Sqrt(float64(c.SamplesPerPixel))))
}

// Workers returns the effective number of concurrent rows
func (c SamplingConfig) Workers() int {
	if c.NumWorkers <= 0 {
		return runtime.NumCPU()
	}
	return c.NumWorkers
}

// Validate reports configuration values the renderer cannot use
func (c SamplingConfig) Validate() error {
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if n := c.SqrtSamples(); n*n != c.SamplesPerPixel {
		return fmt.Errorf("samples per pixel must be a perfect square, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth < 1 {
		return fmt.Errorf("max depth must be at least 1, got %d", c.MaxDepth)
	}
	if c.NumWorkers < 0 {
		return fmt.Errorf("number of workers cannot be negative, got %d", c.NumWorkers)
	}
	return nil
}
