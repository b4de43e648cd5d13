package apitype

import (
	"path/filepath"
)

// ImageCandidate is a file that has a recognized image extension
// but is not yet known to be decodable.
type ImageCandidate struct {
	directory string
	fileName  string
	path      string
}

func NewImageCandidate(directory string, fileName string) *ImageCandidate {
	return &ImageCandidate{
		directory: directory,
		fileName:  fileName,
		path:      filepath.Join(directory, fileName),
	}
}

func (s *ImageCandidate) Path() string {
	if s != nil {
		return s.path
	} else {
		return ""
	}
}

func (s *ImageCandidate) Directory() string {
	if s != nil {
		return s.directory
	} else {
		return ""
	}
}

func (s *ImageCandidate) FileName() string {
	if s != nil {
		return s.fileName
	} else {
		return ""
	}
}

func (s *ImageCandidate) String() string {
	if s != nil {
		return "ImageCandidate{" + s.path + "}"
	} else {
		return "ImageCandidate<nil>"
	}
}
