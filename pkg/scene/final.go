package scene

import (
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// NewFinalScene creates the showcase scene: a field of boxes, a moving sphere,
// glass, fuzzy metal, subsurface and global fog, a marble sphere and a rotated
// cluster of small spheres
func NewFinalScene(random *rand.Rand) *Scene {
	world := geometry.NewShapeList()

	// Ground of boxes with random heights
	groundMat := material.NewLambertian(core.NewVec3(0.48, 0.83, 0.53))
	ground := geometry.NewShapeList()
	const boxesPerSide = 20
	for i := 0; i < boxesPerSide; i++ {
		for j := 0; j < boxesPerSide; j++ {
			w := 100.0
			x0 := -1000.0 + float64(i)*w
			z0 := -1000.0 + float64(j)*w
			y1 := 1 + 100*random.Float64()
			ground.Add(geometry.NewBox(core.NewVec3(x0, 0, z0), core.NewVec3(x0+w, y1, z0+w), groundMat))
		}
	}
	world.Add(ground)

	lightCorner := core.NewVec3(123, 554, 147)
	lightU := core.NewVec3(300, 0, 0)
	lightV := core.NewVec3(0, 0, 265)
	world.Add(geometry.NewQuad(lightCorner, lightU, lightV, material.NewDiffuseLight(core.NewVec3(7, 7, 7))))

	movingFrom := core.NewVec3(400, 400, 200)
	movingTo := movingFrom.Add(core.NewVec3(30, 0, 0))
	world.Add(geometry.NewMovingSphere(movingFrom, movingTo, 50, material.NewLambertian(core.NewVec3(0.7, 0.3, 0.1))))

	world.Add(
		geometry.NewSphere(core.NewVec3(260, 150, 45), 50, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(0, 150, 145), 50, material.NewMetal(core.NewVec3(0.8, 0.8, 0.9), 1.0)),
	)

	// Glass shell filled with blue fog
	boundary := geometry.NewSphere(core.NewVec3(360, 150, 145), 70, material.NewDielectric(1.5))
	world.Add(boundary, geometry.NewConstantMediumColor(boundary, 0.2, core.NewVec3(0.2, 0.4, 0.9)))

	// Thin mist over the whole scene
	mist := geometry.NewSphere(core.NewVec3(0, 0, 0), 5000, material.NewDielectric(1.5))
	world.Add(geometry.NewConstantMediumColor(mist, 0.0001, core.NewVec3(1, 1, 1)))

	checker := material.NewCheckerTextureColors(20, core.NewVec3(0.1, 0.2, 0.5), core.NewVec3(0.9, 0.9, 0.9))
	world.Add(geometry.NewSphere(core.NewVec3(400, 200, 400), 100, material.NewTexturedLambertian(checker)))

	marble := material.NewTexturedLambertian(material.NewNoiseTexture(0.2, random))
	world.Add(geometry.NewSphere(core.NewVec3(220, 280, 300), 80, marble))

	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	cluster := geometry.NewShapeList()
	for i := 0; i < 1000; i++ {
		center := core.NewVec3(165*random.Float64(), 165*random.Float64(), 165*random.Float64())
		cluster.Add(geometry.NewSphere(center, 10, white))
	}
	world.Add(geometry.NewTranslate(geometry.NewRotateY(cluster, 15), core.NewVec3(-100, 270, 395)))

	lights := geometry.NewShapeList(geometry.NewQuad(lightCorner, lightU, lightV, material.NewEmpty()))

	return &Scene{
		Name:   "final",
		World:  world,
		Lights: lights,
		Camera: renderer.CameraConfig{
			Center:      core.NewVec3(478, 278, -600),
			LookAt:      core.NewVec3(278, 278, 0),
			Up:          core.NewVec3(0, 1, 0),
			Width:       800,
			AspectRatio: 1.0,
			VFov:        40,
		},
		Sampling:   renderer.SamplingConfig{SamplesPerPixel: 400, MaxDepth: 40, Seed: 42},
		Background: core.Vec3{},
	}
}
