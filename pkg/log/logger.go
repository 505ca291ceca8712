// Package log provides module-named, leveled loggers shared by the renderer, loaders, scenes and CLI.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level controls which messages reach the sink
type Level int

// The levels that can be passed to SetLevel
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

var backendLevels = map[Level]logging.Level{
	Debug:   logging.DEBUG,
	Info:    logging.INFO,
	Notice:  logging.NOTICE,
	Warning: logging.WARNING,
	Error:   logging.ERROR,
}

var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var (
	leveledBackend logging.LeveledBackend
	currentLevel   = Notice
)

// Logger is the subset of go-logging used across the renderer
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns a logger tagged with the given module name
func New(module string) Logger {
	return logging.MustGetLogger(module)
}

// SetSink redirects all loggers to w, keeping the current level
func SetSink(w io.Writer) {
	backend := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), format)
	leveledBackend = logging.AddModuleLevel(backend)
	logging.SetBackend(leveledBackend)
	SetLevel(currentLevel)
}

// SetLevel sets the minimum level that is written to the sink
func SetLevel(level Level) {
	backendLevel, ok := backendLevels[level]
	if !ok {
		backendLevel = logging.NOTICE
		level = Notice
	}
	currentLevel = level
	leveledBackend.SetLevel(backendLevel, "")
}

// CurrentLevel returns the level set by the last SetLevel call
func CurrentLevel() Level {
	return currentLevel
}

func init() {
	SetSink(os.Stdout)
}
