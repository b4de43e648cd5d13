package scanner

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"vincit.fi/image-browser/api"
	"vincit.fi/image-browser/api/apitype"
	"vincit.fi/image-browser/common/logger"
)

var ErrNotDirectory = errors.New("not a directory")

var supportedFileEndings = []string{"bmp", "gif", "jpeg", "jpg", "png", "tiff"}

// FolderScanner lists the image candidates directly inside a directory.
type FolderScanner struct {
	caseInsensitive bool

	api.FolderScanner
}

// NewFolderScanner creates a scanner. With caseInsensitive false only
// lower case extensions like ".jpg" match and ".JPG" is skipped.
func NewFolderScanner(caseInsensitive bool) *FolderScanner {
	return &FolderScanner{
		caseInsensitive: caseInsensitive,
	}
}

// Scan returns the candidates in the order the file system lists them.
// Any read error fails the whole scan.
func (s *FolderScanner) Scan(directory string) ([]*apitype.ImageCandidate, error) {
	logger.Debug.Printf("Scanning directory '%s'", directory)

	dir, err := os.Open(directory)
	if err != nil {
		return nil, fmt.Errorf("could not open directory '%s': %w", directory, err)
	}
	defer dir.Close()

	if info, err := dir.Stat(); err != nil {
		return nil, fmt.Errorf("could not read directory '%s': %w", directory, err)
	} else if !info.IsDir() {
		return nil, fmt.Errorf("'%s': %w", directory, ErrNotDirectory)
	}

	// ReadDir on the handle keeps the OS order; os.ReadDir would sort by name
	entries, err := dir.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("could not read directory '%s': %w", directory, err)
	}

	candidates := make([]*apitype.ImageCandidate, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if s.isSupported(entry.Name()) {
			candidates = append(candidates, apitype.NewImageCandidate(directory, entry.Name()))
		} else {
			logger.Trace.Printf("Skipping '%s'", entry.Name())
		}
	}
	logger.Debug.Printf("Found %d image candidates", len(candidates))

	return candidates, nil
}

func (s *FolderScanner) isSupported(fileName string) bool {
	dot := strings.LastIndexByte(fileName, '.')
	if dot < 0 {
		return false
	}
	extension := fileName[dot+1:]
	if s.caseInsensitive {
		extension = strings.ToLower(extension)
	}
	for _, supported := range supportedFileEndings {
		if extension == supported {
			return true
		}
	}
	return false
}
