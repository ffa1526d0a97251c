package material

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// DiffuseLight represents a light-emitting material
type DiffuseLight struct {
	nonEmitter
	Emit ColorSource // Emitted light color/intensity
}

// NewDiffuseLight creates a new emissive material with a solid color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emit: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a new emissive material with a texture
func NewTexturedDiffuseLight(emit ColorSource) *DiffuseLight {
	return &DiffuseLight{Emit: emit}
}

// Scatter never scatters - lights absorb all incoming rays
func (l *DiffuseLight) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}

// Emitted returns the emission on the front face only
func (l *DiffuseLight) Emitted(rayIn core.Ray, hit HitRecord) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}
	return l.Emit.Evaluate(hit.UV, hit.Point)
}

// Isotropic is the phase function of a participating medium
type Isotropic struct {
	nonEmitter
	Albedo ColorSource
}

// NewIsotropic creates an isotropic phase function with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic phase function with a texture
func NewTexturedIsotropic(albedo ColorSource) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Scatter returns the albedo and a uniform sphere density
func (i *Isotropic) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{
		Attenuation: i.Albedo.Evaluate(hit.UV, hit.Point),
		PDF:         pdf.NewSpherePDF(),
	}, true
}

// ScatteringPDF returns 1/(4π) for every direction
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Empty never scatters and never emits. Shapes carrying it are invisible
// but can still serve as light sampling targets.
type Empty struct {
	nonEmitter
}

// NewEmpty creates an empty material
func NewEmpty() *Empty {
	return &Empty{}
}

// Scatter always absorbs
func (e *Empty) Scatter(rayIn core.Ray, hit HitRecord, sampler core.Sampler) (ScatterRecord, bool) {
	return ScatterRecord{}, false
}
