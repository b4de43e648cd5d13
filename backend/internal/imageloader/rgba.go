package imageloader

import (
	"image"
	"image/draw"
	"time"
	"vincit.fi/image-browser/common/logger"
)

// ConvertToRgba returns the image as *image.RGBA anchored at (0, 0).
// The GUI can upload only RGBA textures.
func ConvertToRgba(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		return rgba
	}

	start := time.Now()
	bounds := img.Bounds()
	rgba := image.NewRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(rgba, rgba.Rect, img, bounds.Min, draw.Src)

	if logger.IsLogLevel(logger.TRACE) {
		logger.Trace.Printf("Converting %T to RGBA: %s", img, time.Since(start))
	}
	return rgba
}
