package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// mediumExitOffset separates the entry hit from the search for the exit hit
const mediumExitOffset = 0.0001

// ConstantMedium is a volume of uniform density bounded by a closed shape,
// such as smoke or fog
type ConstantMedium struct {
	Boundary      Shape
	PhaseFunction material.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium with the given phase function material
func NewConstantMedium(boundary Shape, density float64, phase material.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phase,
		negInvDensity: -1.0 / density,
	}
}

// NewConstantMediumColor creates a medium scattering isotropically with the given albedo
func NewConstantMediumColor(boundary Shape, density float64, albedo core.Vec3) *ConstantMedium {
	return NewConstantMedium(boundary, density, material.NewIsotropic(albedo))
}

// Hit finds where the ray enters and leaves the boundary and scatters at a random
// free-flight distance between them
func (m *ConstantMedium) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, core.UniverseInterval, sampler)
	if !ok {
		return nil, false
	}
	exit, ok := m.Boundary.Hit(ray, core.NewInterval(entry.T+mediumExitOffset, math.Inf(1)), sampler)
	if !ok {
		return nil, false
	}

	t1 := math.Max(entry.T, rayT.Min)
	t2 := math.Min(exit.T, rayT.Max)
	if t1 >= t2 {
		return nil, false
	}
	t1 = math.Max(t1, 0)

	rayLength := ray.Direction.Length()
	distanceInside := (t2 - t1) * rayLength
	hitDistance := m.negInvDensity * math.Log(sampler.Get1D())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := t1 + hitDistance/rayLength
	if !rayT.Surrounds(t) {
		return nil, false
	}

	// Normal and face are arbitrary for an isotropic phase function
	return &material.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0),
		FrontFace: true,
		Material:  m.PhaseFunction,
	}, true
}

// BoundingBox returns the boundary's bounding box
func (m *ConstantMedium) BoundingBox() core.AABB {
	return m.Boundary.BoundingBox()
}
