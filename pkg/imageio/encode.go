package imageio

import (
	"image"
	"image/color"
	"math"

	"github.com/df07/go-pathtracer/pkg/core"
)

// ToRGBA converts a linear color to an 8-bit sRGB-ish pixel using gamma 2.
// NaN components become zero and values are clamped to [0, 0.999] before
// scaling by 256.
func ToRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: toByte(c.X),
		G: toByte(c.Y),
		B: toByte(c.Z),
		A: 255,
	}
}

func toByte(v float64) uint8 {
	if math.IsNaN(v) || v <= 0 {
		return 0
	}
	v = math.Sqrt(v)
	v = math.Min(v, 0.999)
	return uint8(256 * v)
}

// AverageLuminance returns the mean perceptual luminance of an image in [0,1]
func AverageLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}

	total := 0.0
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			pixel := core.NewVec3(float64(r)/65535, float64(g)/65535, float64(b)/65535)
			total += pixel.Luminance()
		}
	}

	return total / float64(bounds.Dx()*bounds.Dy())
}
