package logger

import (
	"log/slog"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/exp/zapslog"
	"go.uber.org/zap/zapcore"
)

// New builds the service logger with the configured level, JSON to stdout or
// to file when one is set.
func New(level, file string) (*zap.Logger, error) {
	parsedLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Invalid log level %q, defaulting to info", level)
		parsedLevel = zapcore.InfoLevel
	}

	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(parsedLevel)
	if file != "" {
		cfg.OutputPaths = []string{file}
		cfg.ErrorOutputPaths = []string{file}
	}
	return cfg.Build()
}

// SetSlogDefault routes the standard library slog through the zap core so
// both logging surfaces share one sink.
func SetSlogDefault(l *zap.Logger) {
	handler := zapslog.NewHandler(l.Core(), &zapslog.HandlerOptions{})
	slog.SetDefault(slog.New(handler))
}
