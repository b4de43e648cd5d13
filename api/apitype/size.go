package apitype

import (
	"image"
	"math"
)

type Size struct {
	width  int
	height int
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeOfRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

func (s Size) Width() int {
	return s.width
}

func (s Size) Height() int {
	return s.height
}

func (s Size) IsValid() bool {
	return s.width > 0 && s.height > 0
}

// ScaleToWidth returns the size with the given width and the height
// that keeps the aspect ratio. Height is at least one pixel.
func (s Size) ScaleToWidth(targetWidth int) Size {
	if !s.IsValid() || targetWidth <= 0 {
		return Size{}
	}
	height := int(math.Round(float64(targetWidth) * float64(s.height) / float64(s.width)))
	if height < 1 {
		height = 1
	}
	return Size{width: targetWidth, height: height}
}

// ScaleToFit returns the largest size with the same aspect ratio as the
// source that fits inside the target.
func ScaleToFit(sourceWidth int, sourceHeight int, targetWidth int, targetHeight int) (int, int) {
	ratio := float32(sourceWidth) / float32(sourceHeight)
	newWidth := int(float32(targetHeight) * ratio)
	newHeight := targetHeight

	if newWidth > targetWidth {
		newWidth = targetWidth
		newHeight = int(float32(targetWidth) / ratio)
	}
	return newWidth, newHeight
}
