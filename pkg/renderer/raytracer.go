package renderer

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/log"
)

var logger = log.New("renderer")

// PixelWriter receives finished rows of linear RGB pixels, already averaged
// over the samples, strictly in order from row 0 (top) to the last row
type PixelWriter interface {
	WriteRow(y int, pixels []core.Vec3) error
}

// Raytracer renders a scene through a camera with a light transport integrator
type Raytracer struct {
	camera     *Camera
	world      geometry.Shape
	lights     *geometry.ShapeList
	integrator integrator.Integrator
	config     SamplingConfig
}

// NewRaytracer creates a new raytracer. lights may be nil when the scene has
// no importance sampled shapes.
func NewRaytracer(camera *Camera, world geometry.Shape, lights *geometry.ShapeList, integ integrator.Integrator, config SamplingConfig) (*Raytracer, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid sampling config: %w", err)
	}

	return &Raytracer{
		camera:     camera,
		world:      world,
		lights:     lights,
		integrator: integ,
		config:     config,
	}, nil
}

// rowResult holds a rendered row until it is its turn to be written
type rowResult struct {
	pixels     []core.Vec3
	nanSamples int
	done       chan struct{}
}

// Render renders every row in parallel and hands them to out in row order.
// Each row uses its own generator derived from the seed, so the image does not
// depend on scheduling.
func (rt *Raytracer) Render(ctx context.Context, out PixelWriter) (RenderStats, error) {
	start := time.Now()
	width, height := rt.camera.Width, rt.camera.Height

	stats := RenderStats{
		Width:        width,
		Height:       height,
		Workers:      rt.config.Workers(),
		TotalPixels:  width * height,
		TotalSamples: width * height * rt.config.SamplesPerPixel,
	}

	rows := make([]rowResult, height)
	for j := range rows {
		rows[j].done = make(chan struct{})
	}

	logger.Infof("rendering %dx%d at %d spp with %d workers", width, height, rt.config.SamplesPerPixel, stats.Workers)

	eg, ctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(int64(stats.Workers))

	// Writer: emits rows in order as soon as each one is ready
	eg.Go(func() error {
		for j := range rows {
			select {
			case <-rows[j].done:
			case <-ctx.Done():
				return ctx.Err()
			}

			if err := out.WriteRow(j, rows[j].pixels); err != nil {
				return fmt.Errorf("while writing row %d: %w", j, err)
			}
			stats.NaNSamples += rows[j].nanSamples
			rows[j].pixels = nil

			logger.Debugf("row %d/%d done", j+1, height)
		}
		return nil
	})

	for j := range rows {
		if err := sem.Acquire(ctx, 1); err != nil {
			break
		}

		j := j
		eg.Go(func() error {
			defer sem.Release(1)
			if err := ctx.Err(); err != nil {
				return err
			}

			sampler := core.NewSeededSampler(rowSeed(rt.config.Seed, j))
			rows[j].pixels, rows[j].nanSamples = rt.renderRow(j, sampler)
			close(rows[j].done)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return stats, fmt.Errorf("render: %w", err)
	}

	stats.Duration = time.Since(start)
	if stats.NaNSamples > 0 {
		logger.Warningf("%d samples produced NaN or infinite radiance and were counted as black", stats.NaNSamples)
	}
	logger.Infof("render finished in %s", stats.Duration)

	return stats, nil
}

// renderRow computes the averaged color of every pixel in row j
func (rt *Raytracer) renderRow(j int, sampler core.Sampler) ([]core.Vec3, int) {
	pixels := make([]core.Vec3, rt.camera.Width)
	nanSamples := 0
	for i := range pixels {
		var n int
		pixels[i], n = rt.renderPixel(i, j, sampler)
		nanSamples += n
	}
	return pixels, nanSamples
}

// renderPixel takes one jittered sample per stratum and averages them.
// NaN and infinite components are replaced by zero before accumulation.
func (rt *Raytracer) renderPixel(i, j int, sampler core.Sampler) (core.Vec3, int) {
	sqrtSpp := rt.config.SqrtSamples()
	colorAccum := core.Vec3{X: 0, Y: 0, Z: 0}
	nanSamples := 0

	for sj := 0; sj < sqrtSpp; sj++ {
		for si := 0; si < sqrtSpp; si++ {
			ray := rt.camera.GetRay(i, j, si, sj, sqrtSpp, sampler)
			color := rt.integrator.RayColor(ray, rt.world, rt.lights, rt.config.MaxDepth, sampler)
			if !color.IsFinite() {
				nanSamples++
				color = color.ZeroNonFinite()
			}
			colorAccum = colorAccum.Add(color)
		}
	}

	return colorAccum.Multiply(1.0 / float64(sqrtSpp*sqrtSpp)), nanSamples
}

// rowSeed mixes the base seed with the row index
func rowSeed(seed int64, row int) int64 {
	return int64(uint64(seed) ^ (uint64(row)+1)*0x9E3779B97F4A7C15)
}
