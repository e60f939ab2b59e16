package io

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"
)

// LogModule is the module name loggers are registered under.
const LogModule = "resample"

var logFormat = logging.MustStringFormatter(
	"%{time:15:04:05.000} %{level:.4s} [%{shortfunc}] %{message}",
)

// ParseLogLevel returns the logging level with the given name. The empty
// string is INFO.
func ParseLogLevel(name string) (logging.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return logging.INFO, nil
	}
	level, err := logging.LogLevel(name)
	if err != nil {
		return logging.INFO, fmt.Errorf(
			"Log level '%s' not recognized. Must be one of [ CRITICAL | " +
				"ERROR | WARNING | NOTICE | INFO | DEBUG ].", name,
		)
	}
	return level, nil
}

// NewLogger returns the module logger writing to stderr and to every writer
// in extra, at the given level.
func NewLogger(level logging.Level, extra ...io.Writer) *logging.Logger {
	writers := append([]io.Writer{os.Stderr}, extra...)
	backends := make([]logging.Backend, len(writers))
	for i, w := range writers {
		backend := logging.NewLogBackend(w, "", 0)
		backends[i] = logging.NewBackendFormatter(backend, logFormat)
	}

	leveled := logging.MultiLogger(backends...)
	leveled.SetLevel(level, LogModule)
	logging.SetBackend(leveled)

	return logging.MustGetLogger(LogModule)
}
