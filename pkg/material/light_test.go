package material

import (
	"math"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDiffuseLight_EmitsFrontFaceOnly(t *testing.T) {
	emission := core.NewVec3(15, 15, 15)
	light := NewDiffuseLight(emission)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	front := upHit(light)
	if got := light.Emitted(ray, front); !got.Equals(emission) {
		t.Errorf("Front face should emit %v, got %v", emission, got)
	}

	back := front
	back.FrontFace = false
	if got := light.Emitted(ray, back); !got.Equals(core.Vec3{}) {
		t.Errorf("Back face should not emit, got %v", got)
	}
}

func TestDiffuseLight_NeverScatters(t *testing.T) {
	light := NewDiffuseLight(core.NewVec3(4, 4, 4))
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))

	if _, scattered := light.Scatter(ray, upHit(light), fixedSampler{value: 0.5}); scattered {
		t.Error("Diffuse light should never scatter")
	}
}

func TestIsotropic(t *testing.T) {
	albedo := core.NewVec3(0.3, 0.4, 0.5)
	iso := NewIsotropic(albedo)
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := upHit(iso)

	scatter, scattered := iso.Scatter(ray, hit, fixedSampler{value: 0.3})
	if !scattered {
		t.Fatal("Isotropic should always scatter")
	}
	if !scatter.Attenuation.Equals(albedo) {
		t.Errorf("Expected attenuation %v, got %v", albedo, scatter.Attenuation)
	}
	if scatter.IsSpecular() {
		t.Fatal("Isotropic should provide a sampling density")
	}

	expected := 1 / (4 * math.Pi)
	for _, dir := range []core.Vec3{
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, -1, 0),
		core.NewVec3(1, 1, 1).Normalize(),
	} {
		if got := scatter.PDF.Value(dir); math.Abs(got-expected) > 1e-12 {
			t.Errorf("Density for %v: expected %f, got %f", dir, expected, got)
		}
		if got := iso.ScatteringPDF(ray, hit, core.NewRay(hit.Point, dir)); math.Abs(got-expected) > 1e-12 {
			t.Errorf("Scattering density for %v: expected %f, got %f", dir, expected, got)
		}
	}
}

func TestEmpty(t *testing.T) {
	empty := NewEmpty()
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := upHit(empty)

	if _, scattered := empty.Scatter(ray, hit, fixedSampler{value: 0.5}); scattered {
		t.Error("Empty should never scatter")
	}
	if got := empty.Emitted(ray, hit); !got.Equals(core.Vec3{}) {
		t.Errorf("Empty should never emit, got %v", got)
	}
}

func TestSetFaceNormal(t *testing.T) {
	outward := core.NewVec3(0, 1, 0)

	tests := []struct {
		name           string
		direction      core.Vec3
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{"from outside", core.NewVec3(0, -1, 0), true, outward},
		{"from inside", core.NewVec3(0, 1, 0), false, outward.Negate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var hit HitRecord
			hit.SetFaceNormal(core.NewRay(core.Vec3{}, tt.direction), outward)
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected FrontFace %v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if !hit.Normal.Equals(tt.expectedNormal) {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}
