package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// Material interface for objects that can scatter or emit light
type Material interface {
	// Scatter reports how an incoming ray interacts with the surface.
	// Returns false when the surface absorbs the ray.
	Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool)

	// Emitted returns the radiance leaving the surface at the hit point
	Emitted(rayIn core.Ray, hit HitRecord) core.Vec3

	// ScatteringPDF returns the material's own density for the scattered direction,
	// used to reweight directions drawn from a different distribution
	ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64
}

// ScatterRecord contains the result of material scattering
type ScatterRecord struct {
	Attenuation core.Vec3 // Color attenuation
	Scattered   core.Ray  // Outgoing ray, only set for specular scattering
	PDF         pdf.PDF   // Sampling density, nil for specular scattering
}

// IsSpecular returns true if the record carries an explicit ray instead of a density
func (s ScatterRecord) IsSpecular() bool {
	return s.PDF == nil
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     core.Vec3 // Point of intersection
	Normal    core.Vec3 // Unit surface normal, facing against the incoming ray
	T         float64   // Parameter t along the ray
	FrontFace bool      // Whether ray hit the front face
	Material  Material  // Material of the hit object
	UV        core.Vec2 // Surface texture coordinates
}

// SetFaceNormal sets the normal vector and determines front/back face.
// outwardNormal must be unit length.
func (h *HitRecord) SetFaceNormal(ray core.Ray, outwardNormal core.Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// nonEmitter provides the defaults shared by most materials:
// no emitted light and no scattering density
type nonEmitter struct{}

func (nonEmitter) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	return core.Vec3{X: 0, Y: 0, Z: 0}
}

func (nonEmitter) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 0
}
