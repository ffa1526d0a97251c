package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Triangle represents a single triangle defined by three vertices
type Triangle struct {
	V0, V1, V2 core.Vec3         // The three vertices
	Material   material.Material // Material of the triangle
	normal     core.Vec3         // Cached normal vector
	area       float64           // Cached surface area
	bbox       core.AABB         // Cached bounding box
}

// NewTriangle creates a new triangle from three vertices. The front face is
// the side from which the vertices appear counter-clockwise.
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	n := v1.Subtract(v0).Cross(v2.Subtract(v0))

	return &Triangle{
		V0:       v0,
		V1:       v1,
		V2:       v2,
		Material: mat,
		normal:   n.Normalize(),
		area:     n.Length() / 2,
		bbox:     core.UnionAABB(core.NewAABBFromPoints(v0, v1), core.NewAABBFromPoints(v1, v2)),
	}
}

// Hit tests if a ray intersects with the triangle using the Möller-Trumbore algorithm.
// UV holds the barycentric weights of V1 and V2.
func (t *Triangle) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	const epsilon = 1e-8

	edge1 := t.V1.Subtract(t.V0)
	edge2 := t.V2.Subtract(t.V0)

	h := ray.Direction.Cross(edge2)
	a := edge1.Dot(h)

	// Ray lies in the plane of the triangle
	if a > -epsilon && a < epsilon {
		return nil, false
	}

	f := 1.0 / a
	s := ray.Origin.Subtract(t.V0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return nil, false
	}

	q := s.Cross(edge1)
	v := f * ray.Direction.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return nil, false
	}

	tParam := f * edge2.Dot(q)
	if !rayT.Surrounds(tParam) {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        tParam,
		Point:    ray.At(tParam),
		Material: t.Material,
		UV:       core.NewVec2(u, v),
	}
	hit.SetFaceNormal(ray, t.normal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this triangle
func (t *Triangle) BoundingBox() core.AABB {
	return t.bbox
}

// Normal returns the triangle's unit normal
func (t *Triangle) Normal() core.Vec3 {
	return t.normal
}

// Density converts the uniform area density of the triangle to solid angle
func (t *Triangle) Density(origin, direction core.Vec3) float64 {
	hit, ok := t.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(t.normal)) / direction.Length()
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * t.area)
}

// SampleDirection picks a uniform point on the triangle and returns the direction to it
func (t *Triangle) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()

	// Square to triangle warp
	su := math.Sqrt(sample.X)
	b1 := 1 - su
	b2 := sample.Y * su

	point := t.V0.Add(t.V1.Subtract(t.V0).Multiply(b1)).Add(t.V2.Subtract(t.V0).Multiply(b2))
	return point.Subtract(origin)
}
