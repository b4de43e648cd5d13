package backend

import (
	"fmt"
	"os/user"
	"vincit.fi/image-browser/api"
	"vincit.fi/image-browser/backend/internal/database"
	"vincit.fi/image-browser/backend/internal/imageloader"
	"vincit.fi/image-browser/backend/internal/library"
	"vincit.fi/image-browser/backend/internal/scanner"
	"vincit.fi/image-browser/common"
	"vincit.fi/image-browser/common/event"
	"vincit.fi/image-browser/common/logger"
)

const DatabaseFileName = "settings.db"

type Stores struct {
	Settings  *database.SettingsStore
	homeDirDb *database.Database
}

func (s *Stores) Close() {
	s.homeDirDb.Close()
}

type Services struct {
	FolderScanner api.FolderScanner
	ImageService  api.ImageService
}

func (s *Services) Close() {
	s.ImageService.Close()
}

type Brokers struct {
	Broker     *event.Broker
	Dispatcher *event.GuiDispatcher
}

// InitializeEventBrokers creates the bus and the UI mailbox. wakeUp is
// called whenever the UI thread has work waiting.
func InitializeEventBrokers(eventBusQueueSize int, wakeUp func()) *Brokers {
	logger.Debug.Printf("Initialize event brokers...")
	dispatcher := event.NewGuiDispatcher(wakeUp)
	brokers := &Brokers{
		Broker:     event.InitBus(eventBusQueueSize, dispatcher),
		Dispatcher: dispatcher,
	}
	logger.Debug.Printf("Event brokers initialized")
	return brokers
}

// InitializeStores opens the settings database in settingsDir, or in the
// user's home directory when settingsDir is empty.
func InitializeStores(settingsDir string) (*Stores, error) {
	logger.Debug.Printf("Initialize databases...")
	if settingsDir == "" {
		currentUser, err := user.Current()
		if err != nil {
			return nil, fmt.Errorf("cannot resolve user: %w", err)
		}
		settingsDir = currentUser.HomeDir
	}

	homeDirDb := database.NewDatabase()
	if err := homeDirDb.InitializeForDirectory(settingsDir, DatabaseFileName); err != nil {
		return nil, err
	}
	if _, err := homeDirDb.Migrate(); err != nil {
		homeDirDb.Close()
		return nil, err
	}

	stores := &Stores{
		Settings:  database.NewSettingsStore(homeDirDb),
		homeDirDb: homeDirDb,
	}
	logger.Debug.Printf("Stores and databases initialized")
	return stores, nil
}

// InitializeServices creates the services and subscribes them to the
// request topics of the broker.
func InitializeServices(params *common.Params, settings api.Settings, brokers *Brokers) *Services {
	logger.Debug.Printf("Initialize services...")
	imageLoader := imageloader.NewImageLoader()
	imageService := library.NewImageService(brokers.Broker, imageLoader, settings, params.MaxConcurrentDecodes())

	brokers.Broker.Subscribe(api.ThumbnailsRequestLoad, imageService.LoadThumbnails)
	brokers.Broker.Subscribe(api.FullImageRequestLoad, imageService.LoadFullImage)

	services := &Services{
		FolderScanner: scanner.NewFolderScanner(params.CaseInsensitiveExtensions()),
		ImageService:  imageService,
	}
	logger.Debug.Printf("Services initialized")
	return services
}

// ApplyParams stores settings given on the command line.
func ApplyParams(params *common.Params, settings api.Settings) error {
	if width := params.ThumbnailWidth(); width != 0 {
		if err := settings.SetThumbnailWidth(width); err != nil {
			return err
		}
		logger.Info.Printf("Thumbnail width set to %d", width)
	}
	return nil
}
