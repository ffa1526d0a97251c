package geometry

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/material"
)

// fixedSampler returns the same value for every dimension
type fixedSampler struct {
	value float64
}

func (s fixedSampler) Get1D() float64 { return s.value }
func (s fixedSampler) Get2D() core.Vec2 {
	return core.NewVec2(s.value, s.value)
}
func (s fixedSampler) Get3D() core.Vec3 {
	return core.NewVec3(s.value, s.value, s.value)
}

var (
	testMaterial = material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	defaultRayT  = core.NewInterval(0.001, math.Inf(1))
)

func vecNear(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() < tolerance
}
