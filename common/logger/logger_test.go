package logger

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestStringToLogLevel(t *testing.T) {
	a := assert.New(t)

	a.Equal(ERROR, StringToLogLevel("error"))
	a.Equal(WARN, StringToLogLevel("WARN"))
	a.Equal(INFO, StringToLogLevel("Info"))
	a.Equal(DEBUG, StringToLogLevel("debug"))
	a.Equal(TRACE, StringToLogLevel("TRACE"))

	t.Run("Unknown level falls back to INFO", func(t *testing.T) {
		a.Equal(INFO, StringToLogLevel("verbose"))
	})
}

func TestInitializeWithWriter(t *testing.T) {
	a := assert.New(t)
	defer InitializeWithWriter(INFO, &NullWriter{})

	buffer := &bytes.Buffer{}
	InitializeWithWriter(WARN, buffer)

	Info.Print("hidden")
	Debug.Print("hidden")
	a.Empty(buffer.String())

	Warn.Print("visible warning")
	Error.Print("visible error")
	a.Contains(buffer.String(), "WARN:  ")
	a.Contains(buffer.String(), "visible warning")
	a.Contains(buffer.String(), "ERROR: ")
	a.Contains(buffer.String(), "visible error")
}

func TestIsLogLevel(t *testing.T) {
	a := assert.New(t)
	defer InitializeWithWriter(INFO, &NullWriter{})

	InitializeWithWriter(DEBUG, &NullWriter{})
	a.True(IsLogLevel(INFO))
	a.True(IsLogLevel(DEBUG))
	a.False(IsLogLevel(TRACE))
}
