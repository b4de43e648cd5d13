package common

import (
	"flag"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestParseParamsFrom(t *testing.T) {
	a := assert.New(t)

	t.Run("Defaults", func(t *testing.T) {
		params := ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{})

		a.Equal("INFO", params.LogLevel())
		a.Equal("", params.RootPath())
		a.Equal("", params.SettingsDir())
		a.Equal(0, params.ThumbnailWidth())
		a.False(params.CaseInsensitiveExtensions())
		a.Equal(0, params.MaxConcurrentDecodes())
		a.Equal(defaultEventQueueSize, params.EventQueueSize())
	})
	t.Run("All flags and root path", func(t *testing.T) {
		params := ParseParamsFrom(flag.NewFlagSet("test", flag.ContinueOnError), []string{
			"-logLevel", "DEBUG",
			"-settingsDir", "/tmp/settings",
			"-thumbnailWidth", "160",
			"-caseInsensitiveExtensions",
			"-maxConcurrentDecodes", "4",
			"-eventQueueSize", "50",
			"/home/user/Pictures",
		})

		a.Equal("DEBUG", params.LogLevel())
		a.Equal("/home/user/Pictures", params.RootPath())
		a.Equal("/tmp/settings", params.SettingsDir())
		a.Equal(160, params.ThumbnailWidth())
		a.True(params.CaseInsensitiveExtensions())
		a.Equal(4, params.MaxConcurrentDecodes())
		a.Equal(50, params.EventQueueSize())
	})
}

func TestNewEmptyParams(t *testing.T) {
	a := assert.New(t)

	params := NewEmptyParams()
	a.Equal(defaultEventQueueSize, params.EventQueueSize())
	a.Equal("", params.RootPath())
}
