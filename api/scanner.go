package api

import "vincit.fi/image-browser/api/apitype"

type FolderScanner interface {
	Scan(directory string) ([]*apitype.ImageCandidate, error)
}
