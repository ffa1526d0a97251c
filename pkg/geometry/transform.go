package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Translate moves a shape by a fixed offset
type Translate struct {
	Object Shape
	Offset core.Vec3
	bbox   core.AABB
}

// NewTranslate wraps object so it appears moved by offset
func NewTranslate(object Shape, offset core.Vec3) *Translate {
	return &Translate{
		Object: object,
		Offset: offset,
		bbox:   object.BoundingBox().Translate(offset),
	}
}

// Hit moves the ray into object space, intersects, and moves the hit point back
func (t *Translate) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	local := core.NewRayAtTime(ray.Origin.Subtract(t.Offset), ray.Direction, ray.Time)

	hit, ok := t.Object.Hit(local, rayT, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = hit.Point.Add(t.Offset)
	return hit, true
}

// BoundingBox returns the translated bounding box
func (t *Translate) BoundingBox() core.AABB {
	return t.bbox
}

// Unwrap returns the translated shape
func (t *Translate) Unwrap() Shape {
	return t.Object
}

// Density forwards to the wrapped shape from the object-space origin
func (t *Translate) Density(origin, direction core.Vec3) float64 {
	sampleable, ok := t.Object.(Sampleable)
	if !ok {
		return 0
	}
	return sampleable.Density(origin.Subtract(t.Offset), direction)
}

// SampleDirection forwards to the wrapped shape from the object-space origin
func (t *Translate) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return t.Object.(Sampleable).SampleDirection(origin.Subtract(t.Offset), sampler)
}

// RotateY rotates a shape about the Y axis
type RotateY struct {
	Object   Shape
	sinTheta float64
	cosTheta float64
	bbox     core.AABB
}

// NewRotateY wraps object so it appears rotated by angle degrees about the Y axis
func NewRotateY(object Shape, angle float64) *RotateY {
	radians := core.DegreesToRadians(angle)
	r := &RotateY{
		Object:   object,
		sinTheta: math.Sin(radians),
		cosTheta: math.Cos(radians),
	}

	// Bounding box of the eight rotated corners
	box := object.BoundingBox()
	minCorner := core.NewVec3(math.Inf(1), math.Inf(1), math.Inf(1))
	maxCorner := core.NewVec3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				x := float64(i)*box.X.Max + float64(1-i)*box.X.Min
				y := float64(j)*box.Y.Max + float64(1-j)*box.Y.Min
				z := float64(k)*box.Z.Max + float64(1-k)*box.Z.Min

				rotated := r.toWorld(core.NewVec3(x, y, z))
				minCorner = core.NewVec3(math.Min(minCorner.X, rotated.X), math.Min(minCorner.Y, rotated.Y), math.Min(minCorner.Z, rotated.Z))
				maxCorner = core.NewVec3(math.Max(maxCorner.X, rotated.X), math.Max(maxCorner.Y, rotated.Y), math.Max(maxCorner.Z, rotated.Z))
			}
		}
	}
	r.bbox = core.NewAABBFromPoints(minCorner, maxCorner)

	return r
}

func (r *RotateY) toWorld(v core.Vec3) core.Vec3 {
	return v.RotateY(r.sinTheta, r.cosTheta)
}

func (r *RotateY) toObject(v core.Vec3) core.Vec3 {
	return v.RotateY(-r.sinTheta, r.cosTheta)
}

// Hit rotates the ray into object space, intersects, and rotates the result back
func (r *RotateY) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	local := core.NewRayAtTime(r.toObject(ray.Origin), r.toObject(ray.Direction), ray.Time)

	hit, ok := r.Object.Hit(local, rayT, sampler)
	if !ok {
		return nil, false
	}

	hit.Point = r.toWorld(hit.Point)
	hit.Normal = r.toWorld(hit.Normal)
	return hit, true
}

// BoundingBox returns the box enclosing the rotated shape
func (r *RotateY) BoundingBox() core.AABB {
	return r.bbox
}

// Unwrap returns the rotated shape
func (r *RotateY) Unwrap() Shape {
	return r.Object
}

// Density forwards to the wrapped shape in object space
func (r *RotateY) Density(origin, direction core.Vec3) float64 {
	sampleable, ok := r.Object.(Sampleable)
	if !ok {
		return 0
	}
	return sampleable.Density(r.toObject(origin), r.toObject(direction))
}

// SampleDirection forwards to the wrapped shape and rotates the result to world space
func (r *RotateY) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return r.toWorld(r.Object.(Sampleable).SampleDirection(r.toObject(origin), sampler))
}
