package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestLambertian_ScatterRecord(t *testing.T) {
	albedo := core.NewVec3(0.5, 0.7, 0.9)
	lambertian := NewLambertian(albedo)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	scatter, didScatter := lambertian.Scatter(ray, upHit(lambertian), sampler)
	if !didScatter {
		t.Fatal("Lambertian should always scatter")
	}

	if scatter.Attenuation != albedo {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}

	if scatter.IsSpecular() {
		t.Fatal("Lambertian should provide a sampling density")
	}

	// The density must be the cosine density about the hit normal
	up := core.NewVec3(0, 1, 0)
	if got := scatter.PDF.Value(up); math.Abs(got-1/math.Pi) > 1e-10 {
		t.Errorf("Expected density 1/π along the normal, got %f", got)
	}
}

func TestLambertian_ScatteringPDF(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	hit := upHit(lambertian)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	tests := []struct {
		name      string
		direction core.Vec3
		expected  float64
	}{
		{"along normal", core.NewVec3(0, 1, 0), 1 / math.Pi},
		{"unnormalized along normal", core.NewVec3(0, 5, 0), 1 / math.Pi},
		{"60 degrees", core.NewVec3(math.Sqrt(3)/2, 0.5, 0), 0.5 / math.Pi},
		{"tangent", core.NewVec3(1, 0, 0), 0},
		{"below surface", core.NewVec3(0, -1, 0), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scattered := core.NewRay(hit.Point, tt.direction)
			got := lambertian.ScatteringPDF(rayIn, hit, scattered)
			if math.Abs(got-tt.expected) > 1e-10 {
				t.Errorf("Expected %f, got %f", tt.expected, got)
			}
		})
	}
}

func TestLambertian_ScatteringPDFIntegratesToOne(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.8, 0.8, 0.8))
	hit := upHit(lambertian)
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))

	// Uniform sphere estimate: E[pdf(d)] * 4π ≈ 1
	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		d := core.SampleOnUnitSphere(sampler.Get2D())
		sum += lambertian.ScatteringPDF(rayIn, hit, core.NewRay(hit.Point, d))
	}
	integral := sum / n * 4 * math.Pi

	if math.Abs(integral-1) > 0.02 {
		t.Errorf("Scattering density should integrate to 1, got %f", integral)
	}
}

func TestLambertian_TexturedAlbedo(t *testing.T) {
	checker := NewCheckerTextureColors(1.0, core.NewVec3(1, 1, 1), core.NewVec3(0, 0, 0))
	lambertian := NewTexturedLambertian(checker)
	ray := core.NewRay(core.NewVec3(0.5, 1, 0.5), core.NewVec3(0, -1, 0))

	hit := upHit(lambertian)
	hit.Point = core.NewVec3(0.5, 0.0, 0.5)
	scatter, _ := lambertian.Scatter(ray, hit, fixedSampler{value: 0.5})
	if scatter.Attenuation != core.NewVec3(1, 1, 1) {
		t.Errorf("Expected even cell color, got %v", scatter.Attenuation)
	}

	hit.Point = core.NewVec3(1.5, 0.0, 0.5)
	scatter, _ = lambertian.Scatter(ray, hit, fixedSampler{value: 0.5})
	if scatter.Attenuation != core.NewVec3(0, 0, 0) {
		t.Errorf("Expected odd cell color, got %v", scatter.Attenuation)
	}
}
