package api

import (
	"image"
	"vincit.fi/image-browser/api/apitype"
)

type ImageLoader interface {
	// LoadThumbnail decodes the image so that its width is exactly width
	// and the height keeps the aspect ratio of the source.
	LoadThumbnail(path string, width int) (*image.RGBA, error)
	LoadFull(path string) (*apitype.FullImage, error)
}
