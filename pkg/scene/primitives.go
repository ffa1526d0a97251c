package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewPrimitivesScene creates a triangle mesh pyramid and a glass sphere on a
// checkered floor, lit by an overhead disc light
func NewPrimitivesScene() (*Scene, error) {
	checker := material.NewCheckerTextureColors(1, core.NewVec3(0.2, 0.2, 0.2), core.NewVec3(0.8, 0.8, 0.8))
	copper := material.NewMetal(core.NewVec3(0.85, 0.45, 0.25), 0.15)

	world := geometry.NewShapeList(NewGroundQuad(core.NewVec3(0, 0, 0), 20, material.NewTexturedLambertian(checker)))

	// Square pyramid, faces wound counter-clockwise seen from outside
	vertices := []core.Vec3{
		core.NewVec3(-2, 0, 1),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 0, -1),
		core.NewVec3(-2, 0, -1),
		core.NewVec3(-1, 2, 0), // Apex
	}
	pyramid, err := geometry.NewTriangleMesh(vertices, []int{0, 1, 4, 1, 2, 4, 2, 3, 4, 3, 0, 4}, copper)
	if err != nil {
		return nil, err
	}
	world.Add(pyramid)

	world.Add(geometry.NewSphere(core.NewVec3(1.5, 0.75, 0.5), 0.75, material.NewDielectric(1.5)))

	light := geometry.NewDisc(core.NewVec3(0, 5, 0), core.NewVec3(0, -1, 0), 1.5, material.NewDiffuseLight(core.NewVec3(8, 8, 8)))
	world.Add(light)

	return &Scene{
		Name:   "primitives",
		World:  world,
		Lights: geometry.NewShapeList(light),
		Camera: renderer.CameraConfig{
			Center:      core.NewVec3(0, 3, 7),
			LookAt:      core.NewVec3(0, 1, 0),
			Up:          core.NewVec3(0, 1, 0),
			Width:       400,
			AspectRatio: 16.0 / 9.0,
			VFov:        40,
		},
		Sampling:   renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42},
		Background: core.NewVec3(0.05, 0.05, 0.08),
	}, nil
}
