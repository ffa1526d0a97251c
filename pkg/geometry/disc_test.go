package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/df07/go-pathtracer/pkg/core"
)

func TestDisc_Hit(t *testing.T) {
	disc := NewDisc(core.NewVec3(0, 1, 0), core.NewVec3(0, 1, 0), 2, testMaterial)

	tests := []struct {
		name      string
		origin    core.Vec3
		shouldHit bool
		radius    float64
	}{
		{"center", core.NewVec3(0, 3, 0), true, 0},
		{"inside", core.NewVec3(1, 3, 0), true, 0.5},
		{"edge", core.NewVec3(0, 3, 1.999), true, 0.9995},
		{"outside", core.NewVec3(2.1, 3, 0), false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := disc.Hit(core.NewRay(tt.origin, core.NewVec3(0, -1, 0)), defaultRayT, nil)
			if isHit != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got %v", tt.shouldHit, isHit)
			}
			if !isHit {
				return
			}
			if math.Abs(hit.T-2) > 1e-9 {
				t.Errorf("Expected t=2, got %f", hit.T)
			}
			if !hit.FrontFace || !vecNear(hit.Normal, core.NewVec3(0, 1, 0), 1e-9) {
				t.Errorf("Expected front face with up normal, got %v %v", hit.FrontFace, hit.Normal)
			}
			if math.Abs(hit.UV.X-tt.radius) > 1e-9 {
				t.Errorf("Expected normalized radius %f, got %f", tt.radius, hit.UV.X)
			}
		})
	}
}

func TestDisc_BoundingBox(t *testing.T) {
	disc := NewDisc(core.NewVec3(1, 2, 3), core.NewVec3(0, 0, 1), 2, testMaterial)
	box := disc.BoundingBox()

	if math.Abs(box.X.Min+1) > 1e-9 || math.Abs(box.X.Max-3) > 1e-9 {
		t.Errorf("Unexpected x extent %+v", box.X)
	}
	if math.Abs(box.Y.Min) > 1e-9 || math.Abs(box.Y.Max-4) > 1e-9 {
		t.Errorf("Unexpected y extent %+v", box.Y)
	}
	if !box.Z.Contains(3) || box.Z.Size() > 0.01 {
		t.Errorf("Expected a thin padded z extent around 3, got %+v", box.Z)
	}
}

func TestDisc_SampleUniformStaysOnDisc(t *testing.T) {
	disc := NewDisc(core.NewVec3(0, 0, 0), core.NewVec3(1, 1, 0), 0.5, testMaterial)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(3)))

	for i := 0; i < 500; i++ {
		p := disc.SampleUniform(sampler.Get2D())
		if p.Length() > 0.5+1e-9 {
			t.Fatalf("Sample %v outside the disc", p)
		}
		if math.Abs(p.Dot(disc.Normal)) > 1e-9 {
			t.Fatalf("Sample %v off the disc plane", p)
		}
	}
}

func TestDisc_DensityMatchesSolidAngle(t *testing.T) {
	// Seen head on from distance h, a disc of radius r subtends 2π(1 - h/√(h²+r²))
	disc := NewDisc(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1), 1, testMaterial)
	origin := core.NewVec3(0, 0, 2)
	solidAngle := 2 * math.Pi * (1 - 2/math.Sqrt(5))

	density := disc.Density(origin, core.NewVec3(0, 0, -1))
	expected := 4.0 / (math.Pi)
	if math.Abs(density-expected) > 1e-9 {
		t.Errorf("Expected density %f at the center, got %f", expected, density)
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(11)))
	const n = 200000
	sum := 0.0
	for i := 0; i < n; i++ {
		dir := core.SampleOnUnitSphere(sampler.Get2D())
		if disc.Density(origin, dir) > 0 {
			sum++
		}
	}
	if estimate := 4 * math.Pi * sum / n; math.Abs(estimate-solidAngle)/solidAngle > 0.05 {
		t.Errorf("Expected solid angle %f, estimated %f", solidAngle, estimate)
	}
}
