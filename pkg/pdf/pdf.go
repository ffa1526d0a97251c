package pdf

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PDF is a direction distribution that can both draw samples and report its own density
type PDF interface {
	// Value returns the probability density of sampling direction
	Value(direction core.Vec3) float64
	// Generate draws a direction from the distribution
	Generate(sampler core.Sampler) core.Vec3
}

// Target is anything that can be importance sampled as seen from a point,
// typically a light shape or a collection of them
type Target interface {
	Density(origin, direction core.Vec3) float64
	SampleDirection(origin core.Vec3, sampler core.Sampler) core.Vec3
}

// CosinePDF is a cosine-weighted hemisphere around a normal
type CosinePDF struct {
	uvw core.ONB
}

// NewCosinePDF creates a cosine-weighted distribution around w
func NewCosinePDF(w core.Vec3) *CosinePDF {
	return &CosinePDF{uvw: core.NewONB(w)}
}

// Value returns max(0, cos(θ)/π)
func (p *CosinePDF) Value(direction core.Vec3) float64 {
	cosTheta := direction.Normalize().Dot(p.uvw.W)
	return math.Max(0, cosTheta/math.Pi)
}

// Generate draws a cosine-weighted direction in the hemisphere
func (p *CosinePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.uvw.Transform(core.RandomCosineDirection(sampler.Get2D()))
}

// SpherePDF is uniform over the whole sphere of directions
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere distribution
func NewSpherePDF() SpherePDF {
	return SpherePDF{}
}

// Value returns 1/(4π) for every direction
func (SpherePDF) Value(direction core.Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate draws a uniformly distributed unit direction
func (SpherePDF) Generate(sampler core.Sampler) core.Vec3 {
	return core.SampleOnUnitSphere(sampler.Get2D())
}

// HittablePDF samples directions toward a target as seen from origin.
// The target must not be an empty collection.
type HittablePDF struct {
	origin  core.Vec3
	objects Target
}

// NewHittablePDF creates a distribution over directions from origin toward objects
func NewHittablePDF(objects Target, origin core.Vec3) *HittablePDF {
	return &HittablePDF{origin: origin, objects: objects}
}

// Value delegates to the target's density query
func (p *HittablePDF) Value(direction core.Vec3) float64 {
	return p.objects.Density(p.origin, direction)
}

// Generate delegates to the target's direction sampling
func (p *HittablePDF) Generate(sampler core.Sampler) core.Vec3 {
	return p.objects.SampleDirection(p.origin, sampler)
}

// MixturePDF is an equal-weight combination of two distributions
type MixturePDF struct {
	p, q PDF
}

// NewMixturePDF creates a 50/50 mixture of p and q
func NewMixturePDF(p, q PDF) *MixturePDF {
	return &MixturePDF{p: p, q: q}
}

// Value returns 0.5·p(d) + 0.5·q(d)
func (m *MixturePDF) Value(direction core.Vec3) float64 {
	return 0.5*m.p.Value(direction) + 0.5*m.q.Value(direction)
}

// Generate picks either component with equal probability and samples it
func (m *MixturePDF) Generate(sampler core.Sampler) core.Vec3 {
	if sampler.Get1D() < 0.5 {
		return m.p.Generate(sampler)
	}
	return m.q.Generate(sampler)
}
