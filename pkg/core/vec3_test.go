package core

import (
	"math"
	"testing"
)

func TestVec3_RotateY(t *testing.T) {
	tests := []struct {
		name     string
		vector   Vec3
		degrees  float64
		expected Vec3
	}{
		{
			name:     "No rotation",
			vector:   NewVec3(1, 0, 0),
			degrees:  0,
			expected: NewVec3(1, 0, 0),
		},
		{
			name:     "90 degree rotation",
			vector:   NewVec3(1, 0, 0),
			degrees:  90,
			expected: NewVec3(0, 0, -1),
		},
		{
			name:     "180 degree rotation",
			vector:   NewVec3(1, 2, 0),
			degrees:  180,
			expected: NewVec3(-1, 2, 0),
		},
		{
			name:     "Y component untouched",
			vector:   NewVec3(0, 5, 0),
			degrees:  37,
			expected: NewVec3(0, 5, 0),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			radians := DegreesToRadians(tt.degrees)
			result := tt.vector.RotateY(math.Sin(radians), math.Cos(radians))

			const tolerance = 1e-9
			if result.Subtract(tt.expected).Length() > tolerance {
				t.Errorf("Expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestReflect(t *testing.T) {
	v := NewVec3(1, -1, 0)
	n := NewVec3(0, 1, 0)

	reflected := Reflect(v, n)
	expected := NewVec3(1, 1, 0)
	if reflected.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Reflect(%v, %v) = %v, want %v", v, n, reflected, expected)
	}
}

func TestRefract_NormalIncidenceIsUndeviated(t *testing.T) {
	uv := NewVec3(0, -1, 0)
	n := NewVec3(0, 1, 0)

	refracted := Refract(uv, n, 1.0/1.5)
	if refracted.Subtract(uv).Length() > 1e-12 {
		t.Errorf("Expected straight-through refraction, got %v", refracted)
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	// 45 degree incidence from air into glass
	uv := NewVec3(1, -1, 0).Normalize()
	n := NewVec3(0, 1, 0)
	ratio := 1.0 / 1.5

	refracted := Refract(uv, n, ratio)

	sinIn := math.Sqrt(1 - math.Pow(uv.Negate().Dot(n), 2))
	sinOut := math.Sqrt(1 - math.Pow(refracted.Normalize().Negate().Dot(n), 2))
	if math.Abs(sinOut-ratio*sinIn) > 1e-9 {
		t.Errorf("Snell's law violated: sin(out)=%f, expected %f", sinOut, ratio*sinIn)
	}
	if math.Abs(refracted.Length()-1) > 1e-9 {
		t.Errorf("Refracted vector should be unit length, got %f", refracted.Length())
	}
}

func TestVec3_NearZero(t *testing.T) {
	if !NewVec3(1e-9, -1e-9, 0).NearZero() {
		t.Error("Expected tiny vector to be near zero")
	}
	if NewVec3(1e-3, 0, 0).NearZero() {
		t.Error("Expected 1e-3 vector not to be near zero")
	}
}

func TestVec3_ZeroNonFinite(t *testing.T) {
	tests := []struct {
		name     string
		input    Vec3
		expected Vec3
	}{
		{"NaN", NewVec3(math.NaN(), 0.5, math.NaN()), NewVec3(0, 0.5, 0)},
		{"infinite", NewVec3(math.Inf(1), 0.5, math.Inf(-1)), NewVec3(0, 0.5, 0)},
		{"finite", NewVec3(1, -2, 3), NewVec3(1, -2, 3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cleaned := tt.input.ZeroNonFinite()
			if !cleaned.IsFinite() {
				t.Fatalf("Expected only finite components, got %v", cleaned)
			}
			if cleaned != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, cleaned)
			}
		})
	}

	if NewVec3(math.Inf(1), 0, 0).IsFinite() {
		t.Error("Expected +Inf to be reported as non-finite")
	}
	if !NewVec3(math.NaN(), 0, 0).HasNaN() {
		t.Error("Expected NaN to be reported")
	}
}
