package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/shinypath/shinypath/internal/config"
)

// Setup points the standard logrus logger at a rotating log file. The TUI
// owns stdout and stderr, so nothing is written to the terminal. The
// returned closer flushes and closes the file.
func Setup(cfg *config.Config) (io.Closer, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	out := &lumberjack.Logger{
		Filename:   cfg.LogFile,
		MaxSize:    cfg.LogMaxSizeMB,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     30,
		Compress:   true,
	}

	Configure(logrus.StandardLogger(), out, level)
	return out, nil
}

// Configure applies the shared formatter, level and output to l.
func Configure(l *logrus.Logger, out io.Writer, level logrus.Level) {
	l.SetOutput(out)
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02T15:04:05.000Z07:00",
	})
}
