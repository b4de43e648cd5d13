package api

const DefaultThumbnailWidth = 100

type Settings interface {
	ThumbnailWidth() int
	SetThumbnailWidth(width int) error
}
