package imageio

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/df07/go-pathtracer/pkg/material"
)

// Save writes img to path, picking the format from the file extension
func Save(img image.Image, path string) error {
	if err := imaging.Save(img, path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// Thumbnail scales img to the given width, keeping its aspect ratio
func Thumbnail(img image.Image, width uint) image.Image {
	return resize.Resize(width, 0, img, resize.Bilinear)
}

// LoadTexture decodes an image file into an image texture
func LoadTexture(path string) (*material.ImageTexture, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load texture %s: %w", path, err)
	}
	return material.NewImageTextureFromImage(img), nil
}
