package scene

import (
	"fmt"
	"math/rand"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/imageio"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

var skyBlue = core.NewVec3(0.70, 0.80, 1.00)

// NewDefaultScene creates three spheres on a large ground sphere with depth of field
func NewDefaultScene() *Scene {
	ground := material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))
	center := material.NewLambertian(core.NewVec3(0.1, 0.2, 0.5))
	glass := material.NewDielectric(1.50)
	bubble := material.NewDielectric(1.00 / 1.50)
	gold := material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 1.0)

	world := geometry.NewShapeList(
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, ground),
		geometry.NewSphere(core.NewVec3(0, 0, -1.2), 0.5, center),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, glass),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.4, bubble), // Air bubble inside the glass
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, gold),
	)

	return &Scene{
		Name:  "default",
		World: world,
		Camera: renderer.CameraConfig{
			Center:        core.NewVec3(-2, 2, 1),
			LookAt:        core.NewVec3(0, 0, -1),
			Up:            core.NewVec3(0, 1, 0),
			Width:         400,
			AspectRatio:   16.0 / 9.0,
			VFov:          20,
			Aperture:      0.6,
			FocusDistance: 3.4,
		},
		Sampling:   renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42},
		Background: skyBlue,
	}
}

// NewPerlinScene creates a marble sphere resting on a marble ground sphere
func NewPerlinScene(random *rand.Rand) *Scene {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, random))

	world := geometry.NewShapeList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
	)

	return &Scene{
		Name:       "perlin",
		World:      world,
		Camera:     farCamera(),
		Sampling:   renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42},
		Background: skyBlue,
	}
}

// NewEarthScene creates an image textured globe over a checkered floor
func NewEarthScene(texturePath string) (*Scene, error) {
	if texturePath == "" {
		return nil, fmt.Errorf("the earth scene needs a texture image")
	}
	texture, err := imageio.LoadTexture(texturePath)
	if err != nil {
		return nil, err
	}

	checker := material.NewCheckerTextureColors(0.5, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))

	world := geometry.NewShapeList(
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, material.NewTexturedLambertian(texture)),
		NewGroundQuad(core.NewVec3(0, 0, 0), 40, material.NewTexturedLambertian(checker)),
	)

	return &Scene{
		Name:       "earth",
		World:      world,
		Camera:     farCamera(),
		Sampling:   renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42},
		Background: skyBlue,
	}, nil
}

// NewQuadLightScene creates noise textured spheres lit by an emissive quad and sphere
func NewQuadLightScene(random *rand.Rand) *Scene {
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, random))
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	quadLight := geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light)
	sphereLight := geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light)

	world := geometry.NewShapeList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, marble),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, marble),
		quadLight,
		sphereLight,
	)

	return &Scene{
		Name:       "simple-light",
		World:      world,
		Lights:     geometry.NewShapeList(quadLight, sphereLight),
		Camera:     farCamera(),
		Sampling:   renderer.SamplingConfig{SamplesPerPixel: 100, MaxDepth: 50, Seed: 42},
		Background: core.Vec3{},
	}
}

// farCamera looks at the origin from a distance with a narrow field of view
func farCamera() renderer.CameraConfig {
	return renderer.CameraConfig{
		Center:      core.NewVec3(26, 3, 6),
		LookAt:      core.NewVec3(0, 2, 0),
		Up:          core.NewVec3(0, 1, 0),
		Width:       400,
		AspectRatio: 16.0 / 9.0,
		VFov:        20,
	}
}
