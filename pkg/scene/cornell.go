package scene

import (
	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Cornell box dimensions (standard 555x555x555 units)
const boxSize = 555.0

// cornellWalls adds the open-fronted box, red on the left and green on the right
func cornellWalls(world *geometry.ShapeList, white material.Material) {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))

	world.Add(
		geometry.NewQuad(core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), green),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(0, boxSize, 0), core.NewVec3(0, 0, boxSize), red),
		geometry.NewQuad(core.NewVec3(0, 0, 0), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, 0, boxSize), white),
		geometry.NewQuad(core.NewVec3(boxSize, boxSize, boxSize), core.NewVec3(-boxSize, 0, 0), core.NewVec3(0, 0, -boxSize), white),
		geometry.NewQuad(core.NewVec3(0, 0, boxSize), core.NewVec3(boxSize, 0, 0), core.NewVec3(0, boxSize, 0), white),
	)
}

func cornellCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      core.NewVec3(278, 278, -800), // Outside the open side of the box
		LookAt:      core.NewVec3(278, 278, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       600,
		AspectRatio: 1.0,
		VFov:        40,
	}
}

// NewCornellScene creates the Cornell box with a rotated box and a glass sphere.
// Both the ceiling light and the glass sphere are importance sampled.
func NewCornellScene() *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	world := geometry.NewShapeList()
	cornellWalls(world, white)

	// The ceiling light faces down
	lightCorner := core.NewVec3(343, 554, 332)
	lightU := core.NewVec3(-130, 0, 0)
	lightV := core.NewVec3(0, 0, -105)
	world.Add(geometry.NewQuad(lightCorner, lightU, lightV, material.NewDiffuseLight(core.NewVec3(15, 15, 15))))

	box := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	world.Add(geometry.NewTranslate(geometry.NewRotateY(box, 15), core.NewVec3(265, 0, 295)))

	glassCenter := core.NewVec3(190, 90, 190)
	world.Add(geometry.NewSphere(glassCenter, 90, material.NewDielectric(1.5)))

	// Sampling targets only, never intersected by the world
	empty := material.NewEmpty()
	lights := geometry.NewShapeList(
		geometry.NewQuad(lightCorner, lightU, lightV, empty),
		geometry.NewSphere(glassCenter, 90, empty),
	)

	return &Scene{
		Name:       "cornell",
		World:      world,
		Lights:     lights,
		Camera:     cornellCamera(),
		Sampling:   renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42},
		Background: core.Vec3{},
	}
}

// NewCornellSmokeScene replaces the boxes of the Cornell box with black and white smoke
func NewCornellSmokeScene() *Scene {
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	world := geometry.NewShapeList()
	cornellWalls(world, white)

	lightCorner := core.NewVec3(113, 554, 127)
	lightU := core.NewVec3(330, 0, 0)
	lightV := core.NewVec3(0, 0, 305)
	world.Add(geometry.NewQuad(lightCorner, lightU, lightV, material.NewDiffuseLight(core.NewVec3(7, 7, 7))))

	tall := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white)
	tallPlaced := geometry.NewTranslate(geometry.NewRotateY(tall, 15), core.NewVec3(265, 0, 295))

	short := geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white)
	shortPlaced := geometry.NewTranslate(geometry.NewRotateY(short, -18), core.NewVec3(130, 0, 65))

	world.Add(
		geometry.NewConstantMediumColor(tallPlaced, 0.01, core.NewVec3(0, 0, 0)),
		geometry.NewConstantMediumColor(shortPlaced, 0.01, core.NewVec3(1, 1, 1)),
	)

	lights := geometry.NewShapeList(geometry.NewQuad(lightCorner, lightU, lightV, material.NewEmpty()))

	return &Scene{
		Name:       "cornell-smoke",
		World:      world,
		Lights:     lights,
		Camera:     cornellCamera(),
		Sampling:   renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42},
		Background: core.Vec3{},
	}
}
