package apitype

import (
	"image"
)

type ThumbnailEntry struct {
	path      string
	label     string
	thumbnail *image.RGBA
}

func NewThumbnailEntry(candidate *ImageCandidate, thumbnail *image.RGBA) *ThumbnailEntry {
	return &ThumbnailEntry{
		path:      candidate.Path(),
		label:     candidate.FileName(),
		thumbnail: thumbnail,
	}
}

func (s *ThumbnailEntry) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *ThumbnailEntry) Label() string {
	if s != nil {
		return s.label
	} else {
		return ""
	}
}

// Thumbnail must not be modified; it is shared with the UI thread.
func (s *ThumbnailEntry) Thumbnail() *image.RGBA {
	if s != nil {
		return s.thumbnail
	} else {
		return nil
	}
}

func (s *ThumbnailEntry) Size() Size {
	if s == nil || s.thumbnail == nil {
		return Size{}
	}
	return SizeOfRectangle(s.thumbnail.Bounds())
}

func (s *ThumbnailEntry) String() string {
	if s != nil {
		return "ThumbnailEntry{" + s.path + "}"
	} else {
		return "ThumbnailEntry<nil>"
	}
}
