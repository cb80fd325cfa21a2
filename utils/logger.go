package utils

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

// Logger provides leveled, printf-style logging throughout the application.
type Logger struct {
	log *logrus.Logger
}

// NewLogger creates a Logger at info level writing to stdout.
func NewLogger() *Logger {
	return &Logger{log: newLogrus(logrus.InfoLevel, os.Stdout)}
}

// NewLoggerWithConfig creates a Logger at the given level. When filePath is
// set, output goes to both stdout and the file.
func NewLoggerWithConfig(levelStr, filePath string) (*Logger, error) {
	level, err := logrus.ParseLevel(levelStr)
	if err != nil {
		level = logrus.InfoLevel
	}

	writers := []io.Writer{os.Stdout}
	if filePath != "" {
		if dir := filepath.Dir(filePath); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("logger: create log dir: %w", err)
			}
		}
		f, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o666)
		if err != nil {
			return nil, fmt.Errorf("logger: open %q: %w", filePath, err)
		}
		writers = append(writers, f)
	}

	return &Logger{log: newLogrus(level, io.MultiWriter(writers...))}, nil
}

// NewDiscardLogger returns a Logger that drops everything. Used by tests.
func NewDiscardLogger() *Logger {
	return &Logger{log: newLogrus(logrus.PanicLevel, io.Discard)}
}

func newLogrus(level logrus.Level, out io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	l.SetLevel(level)
	l.SetOutput(out)
	return l
}

// SetOutput redirects log output, e.g. to stderr when stdout carries JSON.
func (l *Logger) SetOutput(w io.Writer) {
	l.log.SetOutput(w)
}

func (l *Logger) Info(format string, args ...any) {
	l.log.Infof(format, args...)
}

func (l *Logger) Warn(format string, args ...any) {
	l.log.Warnf(format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log.Errorf(format, args...)
}

func (l *Logger) Debug(format string, args ...any) {
	l.log.Debugf(format, args...)
}

// WithFields returns a child entry for structured request logging.
func (l *Logger) WithFields(fields map[string]any) *logrus.Entry {
	return l.log.WithFields(logrus.Fields(fields))
}
