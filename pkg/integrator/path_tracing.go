package integrator

import (
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/pdf"
)

// shadowAcneEpsilon keeps secondary rays from re-hitting the surface they leave
const shadowAcneEpsilon = 0.001

// PathTracingIntegrator implements unidirectional path tracing with a 50/50
// mixture of light sampling and material sampling
type PathTracingIntegrator struct {
	MaxDepth   int
	Background core.Vec3 // Radiance returned by rays that escape the scene
}

// NewPathTracingIntegrator creates a new path tracing integrator
func NewPathTracingIntegrator(maxDepth int, background core.Vec3) *PathTracingIntegrator {
	return &PathTracingIntegrator{
		MaxDepth:   maxDepth,
		Background: background,
	}
}

// Radiance estimates the radiance along a camera ray using the configured maximum depth
func (pt *PathTracingIntegrator) Radiance(ray core.Ray, world geometry.Shape, lights *geometry.ShapeList, sampler core.Sampler) core.Vec3 {
	return pt.RayColor(ray, world, lights, pt.MaxDepth, sampler)
}

// RayColor computes the color for a single ray, recursing at most depth bounces
func (pt *PathTracingIntegrator) RayColor(ray core.Ray, world geometry.Shape, lights *geometry.ShapeList, depth int, sampler core.Sampler) core.Vec3 {
	// If we've exceeded the ray bounce limit, no more light is gathered
	if depth <= 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	hit, isHit := world.Hit(ray, core.NewInterval(shadowAcneEpsilon, math.Inf(1)), sampler)
	if !isHit {
		return pt.Background
	}

	colorEmitted := hit.Material.Emitted(ray, *hit)

	scatter, didScatter := hit.Material.Scatter(ray, *hit, sampler)
	if !didScatter {
		// Material absorbed the ray, only return emitted light
		return colorEmitted
	}

	if scatter.IsSpecular() {
		return colorEmitted.Add(pt.calculateSpecularColor(scatter, world, lights, depth, sampler))
	}

	return colorEmitted.Add(pt.calculateDiffuseColor(ray, hit, scatter, world, lights, depth, sampler))
}

// calculateSpecularColor follows the material's explicit scattered ray
func (pt *PathTracingIntegrator) calculateSpecularColor(scatter material.ScatterRecord, world geometry.Shape, lights *geometry.ShapeList, depth int, sampler core.Sampler) core.Vec3 {
	return scatter.Attenuation.MultiplyVec(
		pt.RayColor(scatter.Scattered, world, lights, depth-1, sampler))
}

// calculateDiffuseColor draws one direction from the mixture of light and
// material densities and weights the recursive estimate by
// scatteringPDF / mixturePDF
func (pt *PathTracingIntegrator) calculateDiffuseColor(ray core.Ray, hit *material.HitRecord, scatter material.ScatterRecord, world geometry.Shape, lights *geometry.ShapeList, depth int, sampler core.Sampler) core.Vec3 {
	samplingPDF := scatter.PDF
	if lights != nil && lights.CanSample() {
		samplingPDF = pdf.NewMixturePDF(pdf.NewHittablePDF(lights, hit.Point), scatter.PDF)
	}

	direction := samplingPDF.Generate(sampler)
	pdfValue := samplingPDF.Value(direction)
	if !(pdfValue > 0) {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	scattered := core.NewRayAtTime(hit.Point, direction, ray.Time)
	scatteringPDF := hit.Material.ScatteringPDF(ray, *hit, scattered)
	if scatteringPDF == 0 {
		return core.Vec3{X: 0, Y: 0, Z: 0}
	}

	incoming := pt.RayColor(scattered, world, lights, depth-1, sampler)
	return scatter.Attenuation.MultiplyVec(incoming).Multiply(scatteringPDF / pdfValue)
}
