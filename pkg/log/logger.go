// Package log hands out named go-logging loggers that share one output and
// one verbosity. The render CLI, the viewer and the web server each log under
// their own module name, which appears in every line.
package log

import (
	"io"
	"os"

	"github.com/op/go-logging"
)

// Level is the minimum severity that reaches the sink
type Level logging.Level

const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// lineFormat prints time, module and level ahead of the message, coloured
// when the sink is a terminal.
var lineFormat = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

var backend logging.LeveledBackend

// Logger is the method set of *logging.Logger used here. It includes
// core.Logger, so a named logger can be passed to the renderer as is.
type Logger interface {
	Debugf(format string, v ...interface{})
	Infof(format string, v ...interface{})
	Noticef(format string, v ...interface{})
	Warningf(format string, v ...interface{})
	Errorf(format string, v ...interface{})
}

// New returns the logger for module name. Loggers are cached by name.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink sends all modules to w and sets the level to Info
func SetSink(w io.Writer) {
	backend = newBackend(w)
	logging.SetBackend(backend)
}

// SetLevel changes the verbosity of every module
func SetLevel(level Level) {
	backend.SetLevel(level.backendLevel(), "")
}

func newBackend(w io.Writer) logging.LeveledBackend {
	formatted := logging.NewBackendFormatter(logging.NewLogBackend(w, "", 0), lineFormat)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	return leveled
}

// Unknown levels map to Notice, the default.
func (l Level) backendLevel() logging.Level {
	switch l {
	case Debug:
		return logging.DEBUG
	case Info:
		return logging.INFO
	case Warning:
		return logging.WARNING
	case Error:
		return logging.ERROR
	default:
		return logging.NOTICE
	}
}

func init() {
	SetSink(os.Stdout)
	SetLevel(Notice)
}
