package presenter

import (
	"fmt"
	"image"
	"path/filepath"
	"vincit.fi/image-browser/api"
	"vincit.fi/image-browser/api/apitype"
	"vincit.fi/image-browser/common/logger"
	"vincit.fi/image-browser/ui/gallery"
)

const (
	NoticeTitle     = "Information"
	NoImagesMessage = "Folder contains no images"
)

// View is the toolkit specific part of the window.
type View interface {
	ShowNotice(title string, message string)
	ShowError(message string)
	// Refresh asks the toolkit to redraw
	Refresh()
}

type scanSession struct {
	id        apitype.SessionId
	received  int
	expected  int
	completed bool
	finalized bool
}

// Presenter owns the gallery and the displayed image. Every method must
// be called on the UI thread.
type Presenter struct {
	scanner    api.FolderScanner
	sender     api.Sender
	view       View
	gallery    *gallery.Store
	folder     string
	session    *scanSession
	generation apitype.Generation
	fullImage  *apitype.FullImage
}

func NewPresenter(scanner api.FolderScanner, sender api.Sender, view View) *Presenter {
	return &Presenter{
		scanner: scanner,
		sender:  sender,
		view:    view,
		gallery: gallery.NewStore(),
	}
}

// OpenFolder scans the folder and starts loading its thumbnails.
// Relative paths are resolved against the working directory. Opening
// the folder that is already shown does nothing.
func (s *Presenter) OpenFolder(directory string) {
	if directory == "" {
		return
	}
	if absolute, err := filepath.Abs(directory); err == nil {
		directory = absolute
	} else {
		logger.Warn.Printf("Could not resolve '%s': %s", directory, err)
		directory = filepath.Clean(directory)
	}
	if directory == s.folder {
		logger.Debug.Printf("Folder '%s' already open", directory)
		return
	}

	candidates, err := s.scanner.Scan(directory)
	if err != nil {
		logger.Error.Printf("Could not scan '%s': %s", directory, err)
		s.view.ShowError(fmt.Sprintf("Could not read folder '%s'\n%s", directory, err))
		return
	}

	s.folder = directory
	s.gallery.Clear()
	s.fullImage = nil
	// Full images still loading belong to the old folder
	s.generation++
	s.session = &scanSession{id: apitype.NewSessionId()}

	logger.Info.Printf("Opened folder '%s' with %d candidates", directory, len(candidates))
	s.sender.SendCommandToTopic(api.ThumbnailsRequestLoad, &api.LoadThumbnailsCommand{
		SessionId:  s.session.id,
		Directory:  directory,
		Candidates: candidates,
	})
	s.view.Refresh()
}

func (s *Presenter) AddThumbnail(command *api.ThumbnailReadyCommand) {
	if !s.isCurrentSession(command.SessionId) {
		logger.Trace.Printf("Dropping thumbnail of an old folder: %s", command.Entry)
		return
	}
	s.gallery.Append(command.Entry)
	s.session.received++
	s.finalizeIfDone()
	s.view.Refresh()
}

func (s *Presenter) CompleteScan(command *api.ScanCompleteCommand) {
	if !s.isCurrentSession(command.SessionId) {
		logger.Trace.Printf("Dropping completion of an old folder")
		return
	}
	logger.Debug.Printf("Scan complete: %d/%d thumbnails", command.Loaded, command.Total)
	s.session.expected = command.Loaded
	s.session.completed = true
	s.finalizeIfDone()
	s.view.Refresh()
}

// The completion may overtake thumbnails on the bus, so finalization
// waits until every loaded thumbnail is in the gallery.
func (s *Presenter) finalizeIfDone() {
	session := s.session
	if !session.completed || session.finalized || session.received < session.expected {
		return
	}
	session.finalized = true

	if s.gallery.IsEmpty() {
		s.fullImage = nil
		s.view.ShowNotice(NoticeTitle, NoImagesMessage)
	} else if !s.gallery.HasSelection() {
		s.Select(0)
	}
}

func (s *Presenter) isCurrentSession(id apitype.SessionId) bool {
	return s.session != nil && s.session.id == id
}

// Select selects the gallery entry at index and starts loading the full
// image. Returns false when the index is not in the gallery.
func (s *Presenter) Select(index int) bool {
	if index == s.gallery.SelectedIndex() {
		return s.gallery.HasSelection()
	}
	if !s.gallery.SelectIndex(index) {
		return false
	}

	entry := s.gallery.Selected()
	s.generation++
	logger.Debug.Printf("Selected '%s'", entry.Path())
	s.sender.SendCommandToTopic(api.FullImageRequestLoad, &api.LoadFullImageCommand{
		Generation: s.generation,
		Path:       entry.Path(),
	})
	s.view.Refresh()
	return true
}

func (s *Presenter) SelectNext() bool {
	return s.selectOffset(1)
}

func (s *Presenter) SelectPrevious() bool {
	return s.selectOffset(-1)
}

func (s *Presenter) selectOffset(offset int) bool {
	if s.gallery.IsEmpty() {
		return false
	}
	if !s.gallery.HasSelection() {
		return s.Select(0)
	}
	index := s.gallery.SelectedIndex() + offset
	if index < 0 || index >= s.gallery.Len() {
		return false
	}
	return s.Select(index)
}

func (s *Presenter) SetFullImage(command *api.FullImageReadyCommand) {
	if command.Generation != s.generation {
		logger.Debug.Printf("Dropping stale full image '%s'", command.Image.Path())
		return
	}
	s.fullImage = command.Image
	s.view.Refresh()
}

func (s *Presenter) FailFullImage(command *api.FullImageFailedCommand) {
	if command.Generation != s.generation {
		logger.Debug.Printf("Dropping stale failure for '%s'", command.Path)
		return
	}
	s.view.ShowError(command.Message)
}

func (s *Presenter) ShowError(command *api.ErrorCommand) {
	s.view.ShowError(command.Message)
}

func (s *Presenter) ShowNotice(command *api.NoticeCommand) {
	s.view.ShowNotice(command.Title, command.Message)
}

func (s *Presenter) Folder() string {
	return s.folder
}

func (s *Presenter) Entries() []*apitype.ThumbnailEntry {
	return s.gallery.Entries()
}

func (s *Presenter) SelectedIndex() int {
	return s.gallery.SelectedIndex()
}

func (s *Presenter) Selected() *apitype.ThumbnailEntry {
	return s.gallery.Selected()
}

func (s *Presenter) FullImage() *apitype.FullImage {
	return s.fullImage
}

// IsLoading is true until every thumbnail of the open folder is attempted.
func (s *Presenter) IsLoading() bool {
	return s.session != nil && !s.session.finalized
}

// DisplayImage is the full image of the selection once loaded and the
// selection's thumbnail until then. Nil shows the placeholder.
func (s *Presenter) DisplayImage() *image.RGBA {
	if s.isFullImageShown() {
		return s.fullImage.Image()
	}
	if selected := s.gallery.Selected(); selected != nil {
		return selected.Thumbnail()
	}
	return nil
}

// DimensionText is "{width} x {height}" of the shown full image, empty
// while none is shown.
func (s *Presenter) DimensionText() string {
	if s.isFullImageShown() {
		return s.fullImage.DimensionText()
	}
	return ""
}

func (s *Presenter) isFullImageShown() bool {
	if s.fullImage == nil {
		return false
	}
	selected := s.gallery.Selected()
	return selected == nil || selected.Path() == s.fullImage.Path()
}
