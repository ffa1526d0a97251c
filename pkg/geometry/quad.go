package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Quad represents a parallelogram defined by a corner and two edge vectors
type Quad struct {
	Corner   core.Vec3         // One corner of the quad
	U        core.Vec3         // First edge vector
	V        core.Vec3         // Second edge vector
	Normal   core.Vec3         // Unit normal (U × V normalized)
	Material material.Material // Material of the quad
	D        float64           // Plane equation constant: normal · p = D
	W        core.Vec3         // n / (n · n) with n = U × V, for planar coordinates
	Area     float64
	bbox     core.AABB
}

// NewQuad creates a new quad from a corner point and two edge vectors
func NewQuad(corner, u, v core.Vec3, mat material.Material) *Quad {
	n := u.Cross(v)
	normal := n.Normalize()

	// Bounding box of all four vertices
	diagonal1 := core.NewAABBFromPoints(corner, corner.Add(u).Add(v))
	diagonal2 := core.NewAABBFromPoints(corner.Add(u), corner.Add(v))

	return &Quad{
		Corner:   corner,
		U:        u,
		V:        v,
		Normal:   normal,
		Material: mat,
		D:        normal.Dot(corner),
		W:        n.Multiply(1.0 / n.Dot(n)),
		Area:     n.Length(),
		bbox:     core.UnionAABB(diagonal1, diagonal2),
	}
}

// Hit tests if a ray intersects with the quad
func (q *Quad) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	denominator := q.Normal.Dot(ray.Direction)

	// Ray parallel to the plane
	if math.Abs(denominator) < 1e-8 {
		return nil, false
	}

	t := (q.D - q.Normal.Dot(ray.Origin)) / denominator
	if !rayT.Surrounds(t) {
		return nil, false
	}

	// Planar coordinates of the hit point relative to the quad's edges
	hitPoint := ray.At(t)
	planar := hitPoint.Subtract(q.Corner)
	alpha := q.W.Dot(planar.Cross(q.V))
	beta := q.W.Dot(q.U.Cross(planar))

	if alpha < 0 || alpha > 1 || beta < 0 || beta > 1 {
		return nil, false
	}

	hit := &material.HitRecord{
		T:        t,
		Point:    hitPoint,
		Material: q.Material,
		UV:       core.NewVec2(alpha, beta),
	}
	hit.SetFaceNormal(ray, q.Normal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this quad
func (q *Quad) BoundingBox() core.AABB {
	return q.bbox
}

// Density converts the uniform area density of the quad to solid angle as seen
// from origin: dist² / (|cos θ| · area)
func (q *Quad) Density(origin, direction core.Vec3) float64 {
	hit, ok := q.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(q.Normal)) / direction.Length()
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * q.Area)
}

// SampleDirection picks a uniform point on the quad and returns the direction to it
func (q *Quad) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	sample := sampler.Get2D()
	point := q.Corner.Add(q.U.Multiply(sample.X)).Add(q.V.Multiply(sample.Y))
	return point.Subtract(origin)
}
