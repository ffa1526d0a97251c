package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// Sphere represents a sphere whose center may move linearly over ray time
type Sphere struct {
	center   core.Ray // Center at time 0 is Origin, at time 1 is Origin+Direction
	Radius   float64
	Material material.Material
	bbox     core.AABB
}

// NewSphere creates a new stationary sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return NewMovingSphere(center, center, radius, mat)
}

// NewMovingSphere creates a sphere moving from center1 at time 0 to center2 at time 1
func NewMovingSphere(center1, center2 core.Vec3, radius float64, mat material.Material) *Sphere {
	radius = math.Max(0, radius)
	rvec := core.NewVec3(radius, radius, radius)
	box1 := core.NewAABBFromPoints(center1.Subtract(rvec), center1.Add(rvec))
	box2 := core.NewAABBFromPoints(center2.Subtract(rvec), center2.Add(rvec))

	return &Sphere{
		center:   core.NewRay(center1, center2.Subtract(center1)),
		Radius:   radius,
		Material: mat,
		bbox:     core.UnionAABB(box1, box2),
	}
}

// Center returns the sphere center at the given time
func (s *Sphere) Center(time float64) core.Vec3 {
	return s.center.At(time)
}

// Hit tests if a ray intersects with the sphere
func (s *Sphere) Hit(ray core.Ray, rayT core.Interval, sampler core.Sampler) (*material.HitRecord, bool) {
	center := s.center.At(ray.Time)

	// Quadratic equation coefficients: at² + 2ht + c = 0
	oc := ray.Origin.Subtract(center)
	a := ray.Direction.LengthSquared()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return nil, false
	}
	sqrtD := math.Sqrt(discriminant)

	// Try the closer intersection point first
	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return nil, false
		}
	}

	point := ray.At(root)
	outwardNormal := point.Subtract(center).Multiply(1.0 / s.Radius)

	hit := &material.HitRecord{
		T:        root,
		Point:    point,
		Material: s.Material,
		UV:       sphereUV(outwardNormal),
	}
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the box enclosing the sphere over its whole motion
func (s *Sphere) BoundingBox() core.AABB {
	return s.bbox
}

// Density returns the inverse solid angle of the cone subtended by the sphere,
// or 0 when direction misses it
func (s *Sphere) Density(origin, direction core.Vec3) float64 {
	ray := core.NewRay(origin, direction)
	if _, ok := s.Hit(ray, core.NewInterval(0.001, math.Inf(1)), nil); !ok {
		return 0
	}

	distanceSquared := s.center.At(0).Subtract(origin).LengthSquared()
	radiusSquared := s.Radius * s.Radius
	if distanceSquared <= radiusSquared {
		// Origin inside the sphere sees it in every direction
		return 1.0 / (4.0 * math.Pi)
	}

	cosThetaMax := math.Sqrt(1 - radiusSquared/distanceSquared)
	solidAngle := 2 * math.Pi * (1 - cosThetaMax)
	return 1.0 / solidAngle
}

// SampleDirection draws a direction uniformly over the cone subtended by the sphere
func (s *Sphere) SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	direction := s.center.At(0).Subtract(origin)
	distanceSquared := direction.LengthSquared()
	if distanceSquared <= s.Radius*s.Radius {
		return core.SampleOnUnitSphere(sampler.Get2D())
	}

	uvw := core.NewONB(direction)
	return uvw.Transform(core.RandomToSphere(s.Radius, distanceSquared, sampler.Get2D()))
}

// sphereUV maps a point on the unit sphere to texture coordinates:
// u is the angle around the Y axis from X=-1, v the angle from Y=-1 to Y=+1
func sphereUV(p core.Vec3) core.Vec2 {
	theta := math.Acos(max(-1.0, min(1.0, -p.Y)))
	phi := math.Atan2(-p.Z, p.X) + math.Pi
	return core.NewVec2(phi/(2*math.Pi), theta/math.Pi)
}
