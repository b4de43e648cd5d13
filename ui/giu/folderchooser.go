package giu

import (
	"errors"
	"github.com/OpenDiablo2/dialog"
	"vincit.fi/image-browser/common/logger"
)

type browseFunc func(title string) (string, error)

// The directory dialog cannot be given a start directory.
func browseDirectory(title string) (string, error) {
	return dialog.Directory().Title(title).Browse()
}

// FolderChooser opens the native folder dialog without blocking the
// frame loop. The chosen folder is handed to onSelected on the UI thread.
type FolderChooser struct {
	browse     browseFunc
	post       func(func())
	onSelected func(string)
	open       bool
}

func NewFolderChooser(post func(func()), onSelected func(string)) *FolderChooser {
	return &FolderChooser{
		browse:     browseDirectory,
		post:       post,
		onSelected: onSelected,
	}
}

// Open does nothing while a dialog is already open.
func (s *FolderChooser) Open() {
	if s.open {
		return
	}
	s.open = true
	go func() {
		folder, err := s.browse("Open folder")
		s.post(func() {
			s.open = false
			if errors.Is(err, dialog.ErrCancelled) {
				logger.Debug.Print("Folder selection cancelled")
				return
			} else if err != nil {
				logger.Error.Printf("Could not open folder dialog: %s", err)
				return
			}
			s.onSelected(folder)
		})
	}()
}

func (s *FolderChooser) IsOpen() bool {
	return s.open
}
