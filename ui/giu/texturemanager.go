package giu

import (
	"github.com/AllenDang/giu"
	"image"
	"vincit.fi/image-browser/api/apitype"
	"vincit.fi/image-browser/common/logger"
	"vincit.fi/image-browser/ui/giu/widget"
)

// TextureManager uploads the thumbnails of the gallery as textures. A
// texture is created once per thumbnail bitmap; giu uploads it in the
// background and the result is stored on the UI thread through post.
type TextureManager struct {
	textures   map[*image.RGBA]*giu.Texture
	loading    map[*image.RGBA]bool
	newTexture widget.TextureFactory
	post       func(func())
}

func NewTextureManager(newTexture widget.TextureFactory, post func(func())) *TextureManager {
	return &TextureManager{
		textures:   map[*image.RGBA]*giu.Texture{},
		loading:    map[*image.RGBA]bool{},
		newTexture: newTexture,
		post:       post,
	}
}

// Thumbnails returns the list items of the entries. Entries whose
// texture is not ready yet have a nil texture. Textures of entries no
// longer in the gallery are released.
func (s *TextureManager) Thumbnails(entries []*apitype.ThumbnailEntry) []widget.Thumbnail {
	thumbnails := make([]widget.Thumbnail, 0, len(entries))
	inUse := make(map[*image.RGBA]bool, len(entries))
	for _, entry := range entries {
		bitmap := entry.Thumbnail()
		inUse[bitmap] = true
		size := entry.Size()
		thumbnails = append(thumbnails, widget.Thumbnail{
			Texture: s.GetTexture(bitmap),
			Width:   size.Width(),
			Height:  size.Height(),
			Label:   entry.Label(),
		})
	}
	s.release(inUse)
	return thumbnails
}

func (s *TextureManager) GetTexture(bitmap *image.RGBA) *giu.Texture {
	if bitmap == nil {
		return nil
	}
	if texture, ok := s.textures[bitmap]; ok {
		return texture
	}
	if !s.loading[bitmap] {
		s.loading[bitmap] = true
		s.newTexture(bitmap, func(texture *giu.Texture) {
			s.post(func() {
				s.loaded(bitmap, texture)
			})
		})
	}
	return nil
}

func (s *TextureManager) loaded(bitmap *image.RGBA, texture *giu.Texture) {
	if !s.loading[bitmap] {
		logger.Trace.Print("Thumbnail released while its texture was loading")
		return
	}
	delete(s.loading, bitmap)
	s.textures[bitmap] = texture
}

func (s *TextureManager) release(inUse map[*image.RGBA]bool) {
	for bitmap := range s.textures {
		if !inUse[bitmap] {
			delete(s.textures, bitmap)
		}
	}
	for bitmap := range s.loading {
		if !inUse[bitmap] {
			delete(s.loading, bitmap)
		}
	}
}

func (s *TextureManager) Len() int {
	return len(s.textures)
}

func (s *TextureManager) IsLoading(bitmap *image.RGBA) bool {
	return s.loading[bitmap]
}
