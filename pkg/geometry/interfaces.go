package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Shape interface for objects that can be hit by rays
type Shape interface {
	// Hit returns the closest intersection with t strictly inside rayT.
	// sampler is only consumed by stochastic shapes such as participating media.
	Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool)
	BoundingBox() core.AABB
}

// Sampleable is a shape that can be importance sampled as a light target
type Sampleable interface {
	Shape
	// Density returns the solid angle density of direction as seen from origin
	Density(origin, direction core.Vec3) float64
	// SampleDirection draws a direction from origin toward the shape
	SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// wrapper is implemented by decorators so sampleability can be resolved
// through any depth of wrapping
type wrapper interface {
	Unwrap() Shape
}

// canSample reports whether shape supports direction sampling, looking
// through decorators to the innermost shape
func canSample(shape Shape) bool {
	if _, ok := shape.(Sampleable); !ok {
		return false
	}
	if w, ok := shape.(wrapper); ok {
		return canSample(w.Unwrap())
	}
	if list, ok := shape.(*ShapeList); ok {
		return list.CanSample()
	}
	return true
}
