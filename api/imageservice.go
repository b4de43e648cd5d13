package api

import (
	"vincit.fi/image-browser/api/apitype"
)

type LoadThumbnailsCommand struct {
	SessionId  apitype.SessionId
	Directory  string
	Candidates []*apitype.ImageCandidate
	apitype.Command
}

type LoadFullImageCommand struct {
	Generation apitype.Generation
	Path       string
	apitype.Command
}

type ImageService interface {
	LoadThumbnails(*LoadThumbnailsCommand)
	LoadFullImage(*LoadFullImageCommand)
	Close()
}
