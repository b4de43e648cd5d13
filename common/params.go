package common

import (
	"flag"
	"os"
)

const defaultEventQueueSize = 1000

type Params struct {
	logLevel                  string
	rootPath                  string
	settingsDir               string
	thumbnailWidth            int
	caseInsensitiveExtensions bool
	maxConcurrentDecodes      int
	eventQueueSize            int
}

func NewEmptyParams() *Params {
	return &Params{
		logLevel:                  "",
		rootPath:                  "",
		settingsDir:               "",
		thumbnailWidth:            0,
		caseInsensitiveExtensions: false,
		maxConcurrentDecodes:      0,
		eventQueueSize:            defaultEventQueueSize,
	}
}

func ParseParams() *Params {
	return ParseParamsFrom(flag.CommandLine, nil)
}

// ParseParamsFrom parses the given arguments with the flag set. With nil
// arguments the process arguments are used.
func ParseParamsFrom(flagSet *flag.FlagSet, arguments []string) *Params {
	logLevel := flagSet.String("logLevel", "INFO", "Log level: ERROR, WARN, INFO, DEBUG, TRACE")
	settingsDir := flagSet.String("settingsDir", "", "Directory for the settings database. Defaults to the user's home directory")
	thumbnailWidth := flagSet.Int("thumbnailWidth", 0, "Thumbnail width in pixels. Stored as the new default when given")
	caseInsensitiveExtensions := flagSet.Bool("caseInsensitiveExtensions", false, "Match image file extensions case-insensitively, e.g. also .JPG")
	maxConcurrentDecodes := flagSet.Int("maxConcurrentDecodes", 0, "Maximum number of thumbnails decoded at the same time. 0 means unlimited")
	eventQueueSize := flagSet.Int("eventQueueSize", defaultEventQueueSize, "Queue size of each event bus subscriber")

	if arguments == nil {
		arguments = os.Args[1:]
	}
	_ = flagSet.Parse(arguments)
	rootPath := flagSet.Arg(0)

	return &Params{
		logLevel:                  *logLevel,
		rootPath:                  rootPath,
		settingsDir:               *settingsDir,
		thumbnailWidth:            *thumbnailWidth,
		caseInsensitiveExtensions: *caseInsensitiveExtensions,
		maxConcurrentDecodes:      *maxConcurrentDecodes,
		eventQueueSize:            *eventQueueSize,
	}
}

func (s *Params) LogLevel() string {
	return s.logLevel
}

// RootPath is the folder opened at start up. Empty when not given.
func (s *Params) RootPath() string {
	return s.rootPath
}

func (s *Params) SettingsDir() string {
	return s.settingsDir
}

// ThumbnailWidth is zero when the persisted setting should be used.
func (s *Params) ThumbnailWidth() int {
	return s.thumbnailWidth
}

func (s *Params) CaseInsensitiveExtensions() bool {
	return s.caseInsensitiveExtensions
}

func (s *Params) MaxConcurrentDecodes() int {
	return s.maxConcurrentDecodes
}

func (s *Params) EventQueueSize() int {
	if s.eventQueueSize <= 0 {
		return defaultEventQueueSize
	}
	return s.eventQueueSize
}
