// Package logger configures the process-wide logrus logger.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Log is the global logger. It writes to stdout at info level until InitLogger is called.
var Log = newLogger(os.Stdout, logrus.InfoLevel)

func newLogger(out io.Writer, level logrus.Level) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(level)
	l.SetOutput(out)
	return l
}

// ParseLevel parses a level name, falling back to info.
func ParseLevel(levelStr string) logrus.Level {
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// InitLogger initializes Log with the given level, writing to out and, when
// filePath is set, appending to that file as well. The returned close func
// releases the log file.
func InitLogger(out io.Writer, levelStr string, filePath string) (func() error, error) {
	writers := []io.Writer{out}
	closeFn := func() error { return nil }

	if filePath != "" {
		if logDir := filepath.Dir(filePath); logDir != "." {
			if err := os.MkdirAll(logDir, 0o755); err != nil {
				return closeFn, fmt.Errorf("failed to create log directory: %w", err)
			}
		}

		file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return closeFn, err
		}
		writers = append(writers, file)
		closeFn = file.Close
	}

	Log = newLogger(io.MultiWriter(writers...), ParseLevel(levelStr))
	return closeFn, nil
}
