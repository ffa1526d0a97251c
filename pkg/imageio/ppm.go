package imageio

import (
	"bufio"
	"fmt"
	"io"

	"github.com/df07/go-pathtracer/pkg/core"
)

// PPMWriter streams rows as a plain-text P3 image
type PPMWriter struct {
	w             *bufio.Writer
	width, height int
	headerWritten bool
}

// NewPPMWriter creates a writer for an image of the given size
func NewPPMWriter(w io.Writer, width, height int) *PPMWriter {
	return &PPMWriter{w: bufio.NewWriter(w), width: width, height: height}
}

// WriteRow writes one row, emitting the header before the first one
func (p *PPMWriter) WriteRow(y int, pixels []core.Vec3) error {
	if len(pixels) != p.width {
		return fmt.Errorf("row %d has %d pixels, image width is %d", y, len(pixels), p.width)
	}

	if !p.headerWritten {
		if _, err := fmt.Fprintf(p.w, "P3\n%d %d\n255\n", p.width, p.height); err != nil {
			return fmt.Errorf("while writing ppm header: %w", err)
		}
		p.headerWritten = true
	}

	for _, c := range pixels {
		rgba := ToRGBA(c)
		if _, err := fmt.Fprintf(p.w, "%d %d %d\n", rgba.R, rgba.G, rgba.B); err != nil {
			return fmt.Errorf("while writing row %d: %w", y, err)
		}
	}
	return nil
}

// Flush writes any buffered rows to the underlying writer
func (p *PPMWriter) Flush() error {
	return p.w.Flush()
}
