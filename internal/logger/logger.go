// Package logger owns the logrus logger shared by the binaries.
package logger

import (
	"io"
	"os"
	"strings"

	"mistery/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the process-wide logger. It is usable before Init and writes to
// stderr until then.
var Log = logrus.New()

// Init replaces Log with one built from cfg. Call it once from main.
func Init(cfg config.LogConfig) {
	Log = New(cfg)
}

// New builds a logger from cfg. An unknown level falls back to info. The
// terminal belongs to the game, so output goes to a rotated file unless
// File is "-" or empty.
func New(cfg config.LogConfig) *logrus.Logger {
	l := logrus.New()

	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	l.SetLevel(level)

	if strings.ToLower(cfg.Format) == "json" {
		l.SetFormatter(&logrus.JSONFormatter{})
	} else {
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	l.SetOutput(output(cfg.File))
	return l
}

func output(file string) io.Writer {
	if file == "" || file == "-" {
		return os.Stderr
	}
	return &lumberjack.Logger{
		Filename:   file,
		MaxSize:    10, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
	}
}
