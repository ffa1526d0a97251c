package material

import (
	"github.com/df07/go-pathtracer/pkg/core"
)

// Metal represents a metallic material with specular reflection
type Metal struct {
	nonEmitter
	Albedo   ColorSource // Metal color
	Fuzzness float64     // 0.0 = perfect mirror, 1.0 = very fuzzy
}

// NewMetal creates a new metal material with a solid color
func NewMetal(albedo core.Vec3, fuzzness float64) *Metal {
	return NewTexturedMetal(NewSolidColor(albedo), fuzzness)
}

// NewTexturedMetal creates a new metal material with a textured albedo
func NewTexturedMetal(albedo ColorSource, fuzzness float64) *Metal {
	// Clamp fuzzness to valid range
	fuzzness = max(0.0, min(1.0, fuzzness))
	return &Metal{Albedo: albedo, Fuzzness: fuzzness}
}

// Scatter mirrors the incoming ray, perturbed by a random point in a sphere of radius Fuzzness
func (m *Metal) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	reflected := core.Reflect(rayIn.Direction.Normalize(), hit.Normal)

	if m.Fuzzness > 0 {
		perturbation := core.SamplePointInUnitSphere(sampler.Get3D()).Multiply(m.Fuzzness)
		reflected = reflected.Add(perturbation)
	}

	// Perturbed into the surface: absorbed
	if reflected.Dot(hit.Normal) <= 0 {
		return ScatterRecord{}, false
	}

	return ScatterRecord{
		Attenuation: m.Albedo.Evaluate(hit.UV, hit.Point),
		Scattered:   core.NewRayAtTime(hit.Point, reflected, rayIn.Time),
	}, true
}
