package integrator

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
)

// Integrator defines the interface for light transport algorithms
type Integrator interface {
	// RayColor estimates the radiance arriving along ray.
	// lights are the shapes importance sampled for direct lighting and may be nil.
	RayColor(ray core.Ray, world geometry.Shape, lights *geometry.ShapeList, depth int, sampler core.Sampler) core.Vec3
}
