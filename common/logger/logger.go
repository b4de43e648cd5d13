package logger

import (
	"io"
	"log"
	"os"
	"strings"
)

type LogLevel int

const (
	ERROR LogLevel = iota
	WARN
	INFO
	DEBUG
	TRACE
)

const logFlags = log.Ldate | log.Ltime | log.Lshortfile

var (
	nullWriter   = &NullWriter{}
	currentLevel = INFO
	Error        *log.Logger
	Warn         *log.Logger
	Info         *log.Logger
	Debug        *log.Logger
	Trace        *log.Logger
)

func StringToLogLevel(value string) LogLevel {
	switch strings.ToLower(value) {
	case "error":
		return ERROR
	case "warn":
		return WARN
	case "info":
		return INFO
	case "debug":
		return DEBUG
	case "trace":
		return TRACE
	}
	log.Printf("Invalid log level: '%s'. Returning INFO", value)
	return INFO
}

func (s LogLevel) String() string {
	switch s {
	case ERROR:
		return "ERROR"
	case WARN:
		return "WARN"
	case INFO:
		return "INFO"
	case DEBUG:
		return "DEBUG"
	case TRACE:
		return "TRACE"
	}
	return "UNKNOWN"
}

type NullWriter struct {
	io.Writer
}

func (s *NullWriter) Write(p []byte) (n int, err error) {
	return len(p), nil
}

// Loggers are usable before Initialize is called but write nowhere.
func init() {
	setWriters(ERROR-1, nullWriter, nullWriter)
}

func Initialize(logLevel LogLevel) {
	log.Printf("Initialize loggers: '%s'", logLevel.String())
	setWriters(logLevel, os.Stderr, os.Stdout)
}

// InitializeWithWriter routes every enabled level to the given writer.
// Used by tests that assert on log output.
func InitializeWithWriter(logLevel LogLevel, writer io.Writer) {
	setWriters(logLevel, writer, writer)
}

func IsLogLevel(logLevel LogLevel) bool {
	return currentLevel >= logLevel
}

func setWriters(logLevel LogLevel, errorWriter io.Writer, writer io.Writer) {
	currentLevel = logLevel

	Error = log.New(writerFor(logLevel, ERROR, errorWriter), "ERROR: ", logFlags)
	Warn = log.New(writerFor(logLevel, WARN, writer), "WARN:  ", logFlags)
	Info = log.New(writerFor(logLevel, INFO, writer), "INFO:  ", logFlags)
	Debug = log.New(writerFor(logLevel, DEBUG, writer), "DEBUG: ", logFlags)
	Trace = log.New(writerFor(logLevel, TRACE, writer), "TRACE: ", logFlags)
}

func writerFor(enabled LogLevel, level LogLevel, writer io.Writer) io.Writer {
	if enabled >= level {
		return writer
	}
	return nullWriter
}
