package services

import (
	"fmt"

	"github.com/disintegration/imaging"
)

// Project images are downscaled on upload so a single oversized asset cannot
// blow up page weight.
const (
	MaxImageWidth  = 800
	MaxImageHeight = 600
)

// FitImage rewrites the image at path so it fits within maxWidth x maxHeight,
// preserving aspect ratio. Images already inside the bounding box are left
// untouched.
func FitImage(path string, maxWidth, maxHeight int) error {
	img, err := imaging.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open image: %w", err)
	}

	bounds := img.Bounds()
	if bounds.Dx() <= maxWidth && bounds.Dy() <= maxHeight {
		return nil
	}

	resized := imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
	if err := imaging.Save(resized, path); err != nil {
		return fmt.Errorf("failed to save resized image: %w", err)
	}
	return nil
}
