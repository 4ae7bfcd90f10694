package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gashub/internal/config"

	"github.com/sirupsen/logrus"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds a logger from cfg. LOG_FORMAT=text prefers human-readable output;
// LOG_FILE additionally writes to a size-rotated file.
func New(cfg config.LogConfig) (*logrus.Logger, error) {
	l := logrus.New()
	if err := configure(l, cfg); err != nil {
		return nil, err
	}
	return l, nil
}

// Setup applies cfg to the process-wide logrus logger used by every package.
func Setup(cfg config.LogConfig) error {
	return configure(logrus.StandardLogger(), cfg)
}

func configure(l *logrus.Logger, cfg config.LogConfig) error {
	level := strings.TrimSpace(cfg.Level)
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	l.SetLevel(lvl)

	switch strings.ToLower(strings.TrimSpace(cfg.Format)) {
	case "text", "console":
		l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	default:
		l.SetFormatter(&logrus.JSONFormatter{})
	}

	l.SetOutput(output(cfg))
	return nil
}

func output(cfg config.LogConfig) io.Writer {
	if strings.TrimSpace(cfg.File) == "" {
		return os.Stdout
	}
	return io.MultiWriter(os.Stdout, &lumberjack.Logger{
		Filename:   cfg.File,
		MaxSize:    cfg.MaxSize,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge,
		Compress:   true,
	})
}
