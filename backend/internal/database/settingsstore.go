package database

import (
	"errors"
	"fmt"
	"github.com/upper/db/v4"
	"strconv"
	"sync"
	"vincit.fi/image-browser/api"
	"vincit.fi/image-browser/common/logger"
)

type SettingKey string

const (
	ThumbnailWidthKey SettingKey = "thumbnail_width"
)

var ErrInvalidThumbnailWidth = errors.New("thumbnail width must be a positive integer")

// SettingsStore persists the user settings. Values are cached after the
// first read so decoders can read them as often as they like.
type SettingsStore struct {
	database       *Database
	collection     db.Collection
	mux            sync.Mutex
	thumbnailWidth int

	api.Settings
}

func NewSettingsStore(database *Database) *SettingsStore {
	return &SettingsStore{
		database: database,
	}
}

func (s *SettingsStore) getCollection() db.Collection {
	if s.collection == nil {
		s.collection = s.database.Session().Collection("setting")
	}
	return s.collection
}

func (s *SettingsStore) ThumbnailWidth() int {
	s.mux.Lock()
	defer s.mux.Unlock()

	if s.thumbnailWidth <= 0 {
		s.thumbnailWidth = s.loadThumbnailWidth()
	}
	return s.thumbnailWidth
}

func (s *SettingsStore) SetThumbnailWidth(width int) error {
	if width <= 0 {
		return fmt.Errorf("%d: %w", width, ErrInvalidThumbnailWidth)
	}

	s.mux.Lock()
	defer s.mux.Unlock()

	logger.Debug.Printf("Updating %s to %d", ThumbnailWidthKey, width)
	if err := s.put(ThumbnailWidthKey, strconv.Itoa(width)); err != nil {
		return err
	}
	s.thumbnailWidth = width
	return nil
}

func (s *SettingsStore) loadThumbnailWidth() int {
	value, err := s.get(ThumbnailWidthKey)
	if errors.Is(err, db.ErrNoMoreRows) {
		return api.DefaultThumbnailWidth
	} else if err != nil {
		logger.Warn.Printf("Could not read %s, using default: %s", ThumbnailWidthKey, err)
		return api.DefaultThumbnailWidth
	}

	width, err := strconv.Atoi(value)
	if err != nil || width <= 0 {
		logger.Warn.Printf("Invalid %s '%s', using default", ThumbnailWidthKey, value)
		return api.DefaultThumbnailWidth
	}
	return width
}

func (s *SettingsStore) get(key SettingKey) (string, error) {
	var setting Setting
	if err := s.getCollection().Find(db.Cond{"key": key}).One(&setting); err != nil {
		return "", err
	}
	return setting.Value, nil
}

func (s *SettingsStore) put(key SettingKey, value string) error {
	result := s.getCollection().Find(db.Cond{"key": key})
	if exists, err := result.Exists(); err != nil {
		return err
	} else if exists {
		return result.Update(&Setting{Key: key, Value: value})
	} else {
		_, err := s.getCollection().Insert(&Setting{Key: key, Value: value})
		return err
	}
}
