package renderer

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// CameraConfig contains all parameters needed to create a camera
type CameraConfig struct {
	Center        core.Vec3 // Camera position
	LookAt        core.Vec3 // Point the camera is looking at
	Up            core.Vec3 // Up direction (usually (0,1,0))
	Width         int       // Image width in pixels, height is derived from AspectRatio
	AspectRatio   float64   // Width / height ratio
	VFov          float64   // Vertical field of view in degrees
	Aperture      float64   // Lens diameter, 0 disables depth of field
	FocusDistance float64   // Distance to the plane in perfect focus, 0 means the distance to LookAt
}

// Camera generates primary rays with stratified jitter, defocus blur and random time
type Camera struct {
	config       CameraConfig
	Width        int
	Height       int
	center       core.Vec3
	pixel00      core.Vec3 // Center of the top-left pixel
	pixelDeltaU  core.Vec3 // Offset to the pixel to the right
	pixelDeltaV  core.Vec3 // Offset to the pixel below
	defocusDiskU core.Vec3
	defocusDiskV core.Vec3
}

// NewCamera creates a camera with the given configuration
func NewCamera(config CameraConfig) *Camera {
	width := max(1, config.Width)
	height := max(1, int(float64(width)/config.AspectRatio))

	focusDistance := config.FocusDistance
	if focusDistance <= 0 {
		focusDistance = config.Center.Subtract(config.LookAt).Length()
	}

	// Viewport dimensions at the focus plane
	h := math.Tan(core.DegreesToRadians(config.VFov) / 2)
	viewportHeight := 2 * h * focusDistance
	viewportWidth := viewportHeight * float64(width) / float64(height)

	// Orthonormal camera frame
	w := config.Center.Subtract(config.LookAt).Normalize()
	u := config.Up.Cross(w).Normalize()
	v := w.Cross(u)

	// Viewport edges: U runs left to right, V runs top to bottom
	viewportU := u.Multiply(viewportWidth)
	viewportV := v.Negate().Multiply(viewportHeight)
	pixelDeltaU := viewportU.Multiply(1.0 / float64(width))
	pixelDeltaV := viewportV.Multiply(1.0 / float64(height))

	upperLeft := config.Center.
		Subtract(w.Multiply(focusDistance)).
		Subtract(viewportU.Multiply(0.5)).
		Subtract(viewportV.Multiply(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Multiply(0.5))

	defocusRadius := config.Aperture / 2

	return &Camera{
		config:       config,
		Width:        width,
		Height:       height,
		center:       config.Center,
		pixel00:      pixel00,
		pixelDeltaU:  pixelDeltaU,
		pixelDeltaV:  pixelDeltaV,
		defocusDiskU: u.Multiply(defocusRadius),
		defocusDiskV: v.Multiply(defocusRadius),
	}
}

// Config returns the configuration the camera was built from
func (c *Camera) Config() CameraConfig {
	return c.config
}

// GetRay generates a ray for pixel (i, j) through stratum (si, sj) of a
// sqrtSpp x sqrtSpp grid. Row j=0 is the top of the image.
func (c *Camera) GetRay(i, j, si, sj, sqrtSpp int, sampler core.Sampler) core.Ray {
	jitter := sampler.Get2D()
	recipSqrtSpp := 1.0 / float64(sqrtSpp)
	offsetX := (float64(si)+jitter.X)*recipSqrtSpp - 0.5
	offsetY := (float64(sj)+jitter.Y)*recipSqrtSpp - 0.5

	pixelSample := c.pixel00.
		Add(c.pixelDeltaU.Multiply(float64(i) + offsetX)).
		Add(c.pixelDeltaV.Multiply(float64(j) + offsetY))

	origin := c.center
	if c.config.Aperture > 0 {
		p := core.SamplePointInUnitDisk(sampler.Get2D())
		origin = origin.Add(c.defocusDiskU.Multiply(p.X)).Add(c.defocusDiskV.Multiply(p.Y))
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}
