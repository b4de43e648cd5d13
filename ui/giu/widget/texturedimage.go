package widget

import (
	"github.com/AllenDang/giu"
	"github.com/disintegration/imaging"
	"image"
	"vincit.fi/image-browser/api/apitype"
)

// TextureFactory uploads the image and calls loaded with the texture.
// giu.NewTextureFromRgba has this form.
type TextureFactory func(img image.Image, loaded func(*giu.Texture))

// TexturedImage is the texture of the image in the main view. The
// texture is recreated when the image or the available area changes.
// Texture creation runs in the background and the result is handed
// back to the UI thread with post.
type TexturedImage struct {
	source     *image.RGBA
	texture    *giu.Texture
	size       apitype.Size
	lastWidth  int
	lastHeight int
	generation int
	newTexture TextureFactory
	post       func(func())
}

func NewTexturedImage(newTexture TextureFactory, post func(func())) *TexturedImage {
	return &TexturedImage{
		lastWidth:  -1,
		lastHeight: -1,
		newTexture: newTexture,
		post:       post,
	}
}

// ChangeImage keeps showing the old texture until the new one is ready.
func (s *TexturedImage) ChangeImage(source *image.RGBA) {
	if source == s.source {
		return
	}
	s.source = source
	s.lastWidth = -1
	s.lastHeight = -1
	if source == nil {
		s.texture = nil
		s.size = apitype.Size{}
		s.generation++
	}
}

func (s *TexturedImage) Source() *image.RGBA {
	return s.source
}

func (s *TexturedImage) Texture() *giu.Texture {
	return s.texture
}

// Size is the size of the source image, used for the aspect ratio.
func (s *TexturedImage) Size() apitype.Size {
	return s.size
}

// LoadImageAsTexture creates the texture for an area of width x height.
// Images larger than the area are downscaled before upload.
func (s *TexturedImage) LoadImageAsTexture(width int, height int) {
	if s.source == nil || width <= 0 || height <= 0 {
		return
	}
	if width == s.lastWidth && height == s.lastHeight {
		return
	}
	s.lastWidth = width
	s.lastHeight = height
	s.generation++

	source := s.source
	generation := s.generation
	go func() {
		scaled := scaleToArea(source, width, height)
		s.newTexture(scaled, func(texture *giu.Texture) {
			s.post(func() {
				if generation != s.generation {
					return
				}
				s.texture = texture
				s.size = apitype.SizeOfRectangle(source.Bounds())
			})
		})
	}()
}

func scaleToArea(source *image.RGBA, width int, height int) image.Image {
	bounds := source.Bounds()
	if bounds.Dx() <= width && bounds.Dy() <= height {
		return source
	}
	return imaging.Fit(source, width, height, imaging.Linear)
}
