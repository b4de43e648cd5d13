package api

type Topic string

const (
	ThumbnailsRequestLoad Topic = "event-thumbnails-request-load"
	ThumbnailReady        Topic = "event-thumbnail-ready"
	ScanComplete          Topic = "event-scan-complete"

	FullImageRequestLoad Topic = "event-full-image-request-load"
	FullImageReady       Topic = "event-full-image-ready"
	FullImageFailed      Topic = "event-full-image-failed"

	ShowError  Topic = "event-show-error"
	ShowNotice Topic = "event-show-notice"
)
