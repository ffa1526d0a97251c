package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Disc represents a circular disc in 3D space
type Disc struct {
	Center   core.Vec3         // Center of the disc
	Normal   core.Vec3         // Normal vector (pointing "up" from the disc)
	Radius   float64           // Radius of the disc
	Material material.Material // Material of the disc
	Right    core.Vec3         // Right vector (perpendicular to normal)
	Up       core.Vec3         // Up vector (perpendicular to normal and right)
	bbox     core.AABB
}

// NewDisc creates a new disc
func NewDisc(center, normal core.Vec3, radius float64, mat material.Material) *Disc {
	frame := core.NewONB(normal)

	// Extent of the disc along each axis
	extent := core.NewVec3(
		radius*math.Sqrt(math.Max(0, 1-frame.W.X*frame.W.X)),
		radius*math.Sqrt(math.Max(0, 1-frame.W.Y*frame.W.Y)),
		radius*math.Sqrt(math.Max(0, 1-frame.W.Z*frame.W.Z)),
	)

	return &Disc{
		Center:   center,
		Normal:   frame.W,
		Radius:   radius,
		Material: mat,
		Right:    frame.U,
		Up:       frame.V,
		bbox:     core.NewAABBFromPoints(center.Subtract(extent), center.Add(extent)),
	}
}

// Hit tests the ray against the disc's plane and radius. UV holds the
// normalized radius and the angle around the normal as a fraction of a turn.
func (d *Disc) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	denom := d.Normal.Dot(ray.Direction)
	if math.Abs(denom) < 1e-8 {
		return nil, false // Ray is parallel to disc
	}

	t := d.Normal.Dot(d.Center.Subtract(ray.Origin)) / denom
	if !rayT.Surrounds(t) {
		return nil, false
	}

	hitPoint := ray.At(t)
	centerToHit := hitPoint.Subtract(d.Center)
	distanceSquared := centerToHit.LengthSquared()
	if distanceSquared > d.Radius*d.Radius {
		return nil, false
	}

	phi := math.Atan2(centerToHit.Dot(d.Up), centerToHit.Dot(d.Right))
	if phi < 0 {
		phi += 2 * math.Pi
	}

	hit := &material.HitRecord{
		Point:    hitPoint,
		T:        t,
		Material: d.Material,
		UV:       core.NewVec2(math.Sqrt(distanceSquared)/d.Radius, phi/(2*math.Pi)),
	}
	hit.SetFaceNormal(ray, d.Normal)

	return hit, true
}

// BoundingBox returns the axis-aligned bounding box for this disc
func (d *Disc) BoundingBox() core.AABB {
	return d.bbox
}

// Density converts the uniform area density of the disc to solid angle
func (d *Disc) Density(origin, direction core.Vec3) float64 {
	hit, ok := d.Hit(core.NewRay(origin, direction), core.NewInterval(0.001, math.Inf(1)), nil)
	if !ok {
		return 0
	}

	distanceSquared := hit.T * hit.T * direction.LengthSquared()
	cosine := math.Abs(direction.Dot(d.Normal)) / direction.Length()
	if cosine < 1e-8 {
		return 0
	}

	return distanceSquared / (cosine * math.Pi * d.Radius * d.Radius)
}

// SampleDirection picks a uniform point on the disc and returns the direction to it
func (d *Disc) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	return d.SampleUniform(sampler.Get2D()).Subtract(origin)
}

// SampleUniform maps a unit square sample to a uniform point on the disc
func (d *Disc) SampleUniform(sample core.Vec2) core.Vec3 {
	r := math.Sqrt(sample.X) * d.Radius
	theta := 2.0 * math.Pi * sample.Y

	x := r * math.Cos(theta)
	y := r * math.Sin(theta)

	return d.Center.Add(d.Right.Multiply(x)).Add(d.Up.Multiply(y))
}
