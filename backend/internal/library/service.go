package library

import (
	"fmt"
	"golang.org/x/sync/errgroup"
	"sync/atomic"
	"time"
	"vincit.fi/image-browser/api"
	"vincit.fi/image-browser/api/apitype"
	"vincit.fi/image-browser/common/logger"
)

// Service decodes thumbnails and full images in the background and
// publishes the results. Every decode runs in its own goroutine.
type Service struct {
	sender               api.Sender
	imageLoader          api.ImageLoader
	settings             api.Settings
	maxConcurrentDecodes int
	closed               atomic.Bool

	api.ImageService
}

// NewImageService creates the service. maxConcurrentDecodes limits the
// thumbnail decodes of one folder; zero or less means no limit.
func NewImageService(sender api.Sender, imageLoader api.ImageLoader, settings api.Settings, maxConcurrentDecodes int) *Service {
	return &Service{
		sender:               sender,
		imageLoader:          imageLoader,
		settings:             settings,
		maxConcurrentDecodes: maxConcurrentDecodes,
	}
}

func (s *Service) LoadThumbnails(command *api.LoadThumbnailsCommand) {
	if s.closed.Load() {
		logger.Debug.Printf("Service closed, ignoring thumbnails for '%s'", command.Directory)
		return
	}
	go s.loadThumbnails(command)
}

func (s *Service) loadThumbnails(command *api.LoadThumbnailsCommand) {
	startTime := time.Now()
	total := len(command.Candidates)
	logger.Info.Printf("Loading %d thumbnails from '%s'", total, command.Directory)

	group := errgroup.Group{}
	if s.maxConcurrentDecodes > 0 {
		group.SetLimit(s.maxConcurrentDecodes)
	}

	var loaded atomic.Int32
	for _, candidate := range command.Candidates {
		candidate := candidate
		group.Go(func() error {
			if entry := s.loadThumbnail(candidate); entry != nil {
				loaded.Add(1)
				s.sender.SendCommandToTopic(api.ThumbnailReady, &api.ThumbnailReadyCommand{
					SessionId: command.SessionId,
					Entry:     entry,
				})
			}
			// Failures never cancel the other decodes
			return nil
		})
	}
	_ = group.Wait()

	logger.Info.Printf("Loaded %d/%d thumbnails from '%s' in %s",
		loaded.Load(), total, command.Directory, time.Since(startTime))
	s.sender.SendCommandToTopic(api.ScanComplete, &api.ScanCompleteCommand{
		SessionId: command.SessionId,
		Loaded:    int(loaded.Load()),
		Total:     total,
	})
}

func (s *Service) loadThumbnail(candidate *apitype.ImageCandidate) *apitype.ThumbnailEntry {
	width := s.settings.ThumbnailWidth()
	thumbnail, err := s.imageLoader.LoadThumbnail(candidate.Path(), width)
	if err != nil {
		logger.Warn.Printf("Skipping '%s': %s", candidate.Path(), err)
		return nil
	}
	return apitype.NewThumbnailEntry(candidate, thumbnail)
}

func (s *Service) LoadFullImage(command *api.LoadFullImageCommand) {
	if s.closed.Load() {
		logger.Debug.Printf("Service closed, ignoring full image '%s'", command.Path)
		return
	}
	go s.loadFullImage(command)
}

func (s *Service) loadFullImage(command *api.LoadFullImageCommand) {
	startTime := time.Now()
	full, err := s.imageLoader.LoadFull(command.Path)
	if err != nil {
		logger.Error.Printf("Could not load full image '%s': %s", command.Path, err)
		s.sender.SendCommandToTopic(api.FullImageFailed, &api.FullImageFailedCommand{
			Generation: command.Generation,
			Path:       command.Path,
			Message:    fmt.Sprintf("Could not load image '%s'\n%s", command.Path, err),
		})
		return
	}

	logger.Debug.Printf("'%s': full image %s loaded in %s", command.Path, full.DimensionText(), time.Since(startTime))
	s.sender.SendCommandToTopic(api.FullImageReady, &api.FullImageReadyCommand{
		Generation: command.Generation,
		Image:      full,
	})
}

// Close stops accepting new work. Decodes already running finish and
// their results are still published.
func (s *Service) Close() {
	logger.Info.Print("Shutting down image service")
	s.closed.Store(true)
}
