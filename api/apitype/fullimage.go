package apitype

import (
	"fmt"
	"image"
)

type FullImage struct {
	path  string
	image *image.RGBA
}

func NewFullImage(path string, img *image.RGBA) *FullImage {
	return &FullImage{
		path:  path,
		image: img,
	}
}

func (s *FullImage) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *FullImage) Image() *image.RGBA {
	if s != nil {
		return s.image
	} else {
		return nil
	}
}

func (s *FullImage) Width() int {
	if s == nil || s.image == nil {
		return 0
	}
	return s.image.Bounds().Dx()
}

func (s *FullImage) Height() int {
	if s == nil || s.image == nil {
		return 0
	}
	return s.image.Bounds().Dy()
}

// DimensionText is shown in the status line, e.g. "1024 x 768".
func (s *FullImage) DimensionText() string {
	return fmt.Sprintf("%d x %d", s.Width(), s.Height())
}
