package api

import (
	"vincit.fi/image-browser/api/apitype"
)

type ErrorCommand struct {
	Message string
	apitype.Command
}

type NoticeCommand struct {
	Title   string
	Message string
	apitype.Command
}

type ThumbnailReadyCommand struct {
	SessionId apitype.SessionId
	Entry     *apitype.ThumbnailEntry
	apitype.Command
}

type ScanCompleteCommand struct {
	SessionId apitype.SessionId
	Loaded    int
	Total     int
	apitype.Command
}

type FullImageReadyCommand struct {
	Generation apitype.Generation
	Image      *apitype.FullImage
	apitype.Command
}

type FullImageFailedCommand struct {
	Generation apitype.Generation
	Path       string
	Message    string
	apitype.Command
}

// Gui methods are always called on the UI thread.
type Gui interface {
	AddThumbnail(*ThumbnailReadyCommand)
	CompleteScan(*ScanCompleteCommand)
	SetFullImage(*FullImageReadyCommand)
	FailFullImage(*FullImageFailedCommand)
	ShowError(*ErrorCommand)
	ShowNotice(*NoticeCommand)
	Run()
}
