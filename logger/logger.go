package logger

import (
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It works with logrus defaults until Init
// is called.
var Log = logrus.New()

// Options configures Init. Empty fields fall back to LOG_LEVEL and
// LOG_FORMAT, then to "info" and "text".
type Options struct {
	Level  string
	Format string
	Output io.Writer
}

// Init configures Log. It returns the level that was applied.
func Init(opts Options) logrus.Level {
	levelName := opts.Level
	if levelName == "" {
		levelName = os.Getenv("LOG_LEVEL")
	}
	level, err := logrus.ParseLevel(levelName)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	format := opts.Format
	if format == "" {
		format = os.Getenv("LOG_FORMAT")
	}
	if strings.ToLower(format) == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}

	if opts.Output != nil {
		Log.SetOutput(opts.Output)
	} else {
		Log.SetOutput(os.Stdout)
	}
	return level
}

// For returns an entry tagged with the emitting component.
func For(component string) *logrus.Entry {
	return Log.WithField("component", component)
}
