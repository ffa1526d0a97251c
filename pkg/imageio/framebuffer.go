package imageio

import (
	"fmt"
	"image"

	"github.com/df07/go-pathtracer/pkg/core"
)

// Framebuffer collects rendered rows into an in-memory image
type Framebuffer struct {
	img *image.RGBA
}

// NewFramebuffer creates a black framebuffer of the given size
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// WriteRow encodes one row of linear colors into the image
func (f *Framebuffer) WriteRow(y int, pixels []core.Vec3) error {
	bounds := f.img.Bounds()
	if y < bounds.Min.Y || y >= bounds.Max.Y {
		return fmt.Errorf("row %d outside image of height %d", y, bounds.Dy())
	}
	if len(pixels) != bounds.Dx() {
		return fmt.Errorf("row %d has %d pixels, image width is %d", y, len(pixels), bounds.Dx())
	}

	for x, c := range pixels {
		f.img.SetRGBA(x, y, ToRGBA(c))
	}
	return nil
}

// Image returns the framebuffer contents
func (f *Framebuffer) Image() *image.RGBA {
	return f.img
}
