package scene

import (
	"fmt"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering
type Scene struct {
	Name       string
	World      *geometry.ShapeList     // Objects in the scene
	Lights     *geometry.ShapeList     // Shapes importance sampled for direct lighting, may be nil
	Camera     renderer.CameraConfig   // Recommended camera
	Sampling   renderer.SamplingConfig // Recommended sampling settings
	Background core.Vec3               // Radiance of rays that escape the scene
}

// NewRaytracer wires the scene into a path tracing renderer
func (s *Scene) NewRaytracer() (*renderer.Raytracer, error) {
	integ := integrator.NewPathTracingIntegrator(s.Sampling.MaxDepth, s.Background)
	rt, err := renderer.NewRaytracer(renderer.NewCamera(s.Camera), s.World, s.Lights, integ, s.Sampling)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", s.Name, err)
	}
	return rt, nil
}

// ShapeCount returns the number of top level objects in the scene
func (s *Scene) ShapeCount() int {
	if s.World == nil {
		return 0
	}
	return s.World.Len()
}

// NewGroundQuad creates a horizontal quad centered at center with its normal pointing up
func NewGroundQuad(center core.Vec3, size float64, mat material.Material) *geometry.Quad {
	corner := core.NewVec3(center.X-size/2, center.Y, center.Z-size/2)
	// u × v = (0, size², 0) points up
	u := core.NewVec3(0, 0, size)
	v := core.NewVec3(size, 0, 0)
	return geometry.NewQuad(corner, u, v, mat)
}
