package scene

import (
	"context"
	"image"
	"image/color"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/imageio"
)

func TestNames(t *testing.T) {
	expected := []string{"cornell", "cornell-smoke", "default", "earth", "final", "perlin", "primitives", "simple-light"}
	if diff := cmp.Diff(expected, Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	if len(ListScenes()) != len(expected) {
		t.Errorf("Expected %d scene infos, got %d", len(expected), len(ListScenes()))
	}
}

func TestCreateUnknownScene(t *testing.T) {
	_, err := Create("teapot", Options{})
	if err == nil || !strings.Contains(err.Error(), "teapot") {
		t.Errorf("Expected an error naming the unknown scene, got %v", err)
	}
}

func TestCreateBuiltinScenes(t *testing.T) {
	for _, name := range Names() {
		if name == "earth" {
			continue
		}
		t.Run(name, func(t *testing.T) {
			s, err := Create(name, Options{Seed: 42})
			if err != nil {
				t.Fatalf("Create(%q) failed: %v", name, err)
			}
			if s.Name != name {
				t.Errorf("Expected scene name %q, got %q", name, s.Name)
			}
			if s.ShapeCount() == 0 {
				t.Error("Expected the scene to contain shapes")
			}
			if err := s.Sampling.Validate(); err != nil {
				t.Errorf("Recommended sampling config is invalid: %v", err)
			}
			if s.Lights != nil && !s.Lights.CanSample() {
				t.Error("Expected every light target to support sampling")
			}
		})
	}
}

func TestCornellLightsIncludeGlassSphere(t *testing.T) {
	s := NewCornellScene()
	if s.Lights.Len() != 2 {
		t.Fatalf("Expected quad light and glass sphere as targets, got %d", s.Lights.Len())
	}

	// The ceiling light faces down into the box
	ray := core.NewRay(core.NewVec3(278, 278, 278), core.NewVec3(0, 1, 0))
	hit, ok := s.World.Hit(ray, core.NewInterval(0.001, 1e9), nil)
	if !ok {
		t.Fatal("Expected to hit the ceiling light")
	}
	emitted := hit.Material.Emitted(ray, *hit)
	if !emitted.Equals(core.NewVec3(15, 15, 15)) {
		t.Errorf("Expected light emission, got %v", emitted)
	}
}

func TestFinalSceneIsDeterministic(t *testing.T) {
	a, err := Create("final", Options{Seed: 7})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	b, err := Create("final", Options{Seed: 7})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if !cmp.Equal(a.World.BoundingBox(), b.World.BoundingBox()) {
		t.Error("Expected the same seed to build the same scene")
	}
}

func TestEarthSceneNeedsTexture(t *testing.T) {
	if _, err := Create("earth", Options{}); err == nil {
		t.Error("Expected an error without a texture path")
	}
	if _, err := Create("earth", Options{TexturePath: filepath.Join(t.TempDir(), "missing.png")}); err == nil {
		t.Error("Expected an error for a missing texture")
	}
}

func TestEarthSceneLoadsTexture(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for x := 0; x < 4; x++ {
		for y := 0; y < 2; y++ {
			img.Set(x, y, color.RGBA{0, 0, 255, 255})
		}
	}
	path := filepath.Join(t.TempDir(), "earth.png")
	if err := imageio.Save(img, path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	s, err := Create("earth", Options{TexturePath: path})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if s.ShapeCount() != 2 {
		t.Errorf("Expected globe and floor, got %d shapes", s.ShapeCount())
	}
}

func TestSceneRendersSmallPreview(t *testing.T) {
	s := NewCornellScene()
	s.Camera.Width = 8
	s.Sampling.SamplesPerPixel = 1
	s.Sampling.MaxDepth = 4
	s.Sampling.NumWorkers = 2

	rt, err := s.NewRaytracer()
	if err != nil {
		t.Fatalf("NewRaytracer failed: %v", err)
	}

	fb := imageio.NewFramebuffer(8, 8)
	stats, err := rt.Render(context.Background(), fb)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if stats.TotalPixels != 64 {
		t.Errorf("Expected 64 pixels, got %d", stats.TotalPixels)
	}
}

func TestNewRaytracerRejectsBadSampling(t *testing.T) {
	s := NewDefaultScene()
	s.Sampling.SamplesPerPixel = 5
	if _, err := s.NewRaytracer(); err == nil {
		t.Error("Expected an error for a non-square sample count")
	}
}
