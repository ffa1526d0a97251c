package geometry

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// ShapeList is a linear collection of shapes. It serves both as the scene
// aggregate and as a set of light sampling targets.
type ShapeList struct {
	Shapes     []Shape
	sampleable []Sampleable
	bbox       core.AABB
}

// NewShapeList creates a list from the given shapes
func NewShapeList(shapes ...Shape) *ShapeList {
	list := &ShapeList{bbox: core.EmptyAABB}
	list.Add(shapes...)
	return list
}

// Add appends shapes to the list
func (l *ShapeList) Add(shapes ...Shape) {
	for _, shape := range shapes {
		l.Shapes = append(l.Shapes, shape)
		l.bbox = core.UnionAABB(l.bbox, shape.BoundingBox())
		if canSample(shape) {
			l.sampleable = append(l.sampleable, shape.(Sampleable))
		}
	}
}

// Len returns the number of shapes in the list
func (l *ShapeList) Len() int {
	return len(l.Shapes)
}

// CanSample reports whether at least one member supports direction sampling
func (l *ShapeList) CanSample() bool {
	return len(l.sampleable) > 0
}

// Hit sweeps every shape, narrowing the upper bound to the closest hit so far
func (l *ShapeList) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	var closest *material.HitRecord
	closestSoFar := rayT.Max

	for _, shape := range l.Shapes {
		if hit, ok := shape.Hit(ray, core.NewInterval(rayT.Min, closestSoFar), sampler); ok {
			closestSoFar = hit.T
			closest = hit
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of the member bounding boxes
func (l *ShapeList) BoundingBox() core.AABB {
	return l.bbox
}

// Density returns the equally weighted average of the sampleable members' densities
func (l *ShapeList) Density(origin, direction core.Vec3) float64 {
	if len(l.sampleable) == 0 {
		return 0
	}

	weight := 1.0 / float64(len(l.sampleable))
	sum := 0.0
	for _, shape := range l.sampleable {
		sum += weight * shape.Density(origin, direction)
	}
	return sum
}

// SampleDirection picks one sampleable member uniformly and delegates to it.
// Callers must check CanSample first.
func (l *ShapeList) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	n := len(l.sampleable)
	index := min(int(sampler.Get1D()*float64(n)), n-1)
	return l.sampleable[index].SampleDirection(origin, sampler)
}
