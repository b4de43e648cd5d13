package widget

import (
	"github.com/AllenDang/giu"
	"vincit.fi/image-browser/api/apitype"
)

const placeholderText = "No image"

// ResizableImageWidget draws the image centered in the available area
// keeping its aspect ratio.
type ResizableImageWidget struct {
	texturedImage *TexturedImage
}

func ResizableImage(image *TexturedImage) *ResizableImageWidget {
	return &ResizableImageWidget{
		texturedImage: image,
	}
}

func (s *ResizableImageWidget) Build() {
	maxW, maxH := giu.GetAvailableRegion()
	s.texturedImage.LoadImageAsTexture(int(maxW), int(maxH))

	texture := s.texturedImage.Texture()
	size := s.texturedImage.Size()
	if texture == nil || !size.IsValid() {
		giu.Label(placeholderText).Build()
		return
	}

	newW, newH := apitype.ScaleToFit(size.Width(), size.Height(), int(maxW), int(maxH))

	offsetW := (maxW - float32(newW)) / 2.0
	offsetH := (maxH - float32(newH)) / 2.0

	giu.Column(
		giu.Dummy(1, offsetH),
		giu.Row(giu.Dummy(offsetW, 1), giu.Image(texture).Size(float32(newW), float32(newH))),
	).Build()
}
