package logging

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/lmittmann/tint"
	"github.com/sirupsen/logrus"
	"github.com/snowzach/rotatefilehook"
)

// New builds the application logger: colored and verbose in development,
// JSON otherwise.
func New(w io.Writer, development bool) *slog.Logger {
	if development {
		return slog.New(tint.NewHandler(w, &tint.Options{
			Level:      slog.LevelDebug,
			TimeFormat: time.Kitchen,
		}))
	}
	return slog.New(slog.NewJSONHandler(w, nil))
}

// Setup configures a logrus logger the same way. When logFile is not empty a
// rotating file hook is attached as well.
func Setup(log *logrus.Logger, w io.Writer, development bool, logFile string) error {
	level := logrus.InfoLevel
	if development {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	log.SetOutput(w)

	if development {
		log.SetFormatter(&logrus.TextFormatter{ForceColors: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}

	if logFile == "" {
		return nil
	}

	hook, err := rotatefilehook.NewRotateFileHook(rotatefilehook.RotateFileConfig{
		Filename:   logFile,
		MaxSize:    5, // megabytes
		MaxBackups: 3,
		MaxAge:     28, // days
		Level:      level,
		Formatter:  &logrus.JSONFormatter{},
	})
	if err != nil {
		return fmt.Errorf("unable to create log file hook: %w", err)
	}
	log.AddHook(hook)
	return nil
}
