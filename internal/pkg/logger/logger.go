package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/shegerlabs/transitlive/internal/pkg/models"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger wraps zap with optional file output
type ZapLogger struct {
	*zap.Logger
	sugar    *zap.SugaredLogger
	filePath string
	file     *os.File
}

// InitFromConfig creates a ZapLogger from application configuration and
// installs it as the global logger.
func InitFromConfig(cfg *models.Config) (*ZapLogger, error) {
	level, err := zapcore.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "timestamp"
	encoderCfg.EncodeTime = zapcore.RFC3339TimeEncoder

	var encoder zapcore.Encoder
	if cfg.Logger.Format == "console" {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(os.Stdout), level),
	}

	var file *os.File
	if cfg.Logger.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.Logger.FilePath), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		file, err = os.OpenFile(cfg.Logger.FilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		cores = append(cores, zapcore.NewCore(encoder, zapcore.AddSync(file), level))
	}

	zl := zap.New(zapcore.NewTee(cores...), zap.AddCaller())
	zl = zl.With(zap.String("service", cfg.App.Name))

	logger := &ZapLogger{
		Logger:   zl,
		sugar:    zl.Sugar(),
		filePath: cfg.Logger.FilePath,
		file:     file,
	}
	SetGlobalLogger(logger)
	return logger, nil
}

// Sugar returns the sugared logger for printf-style call sites
func (l *ZapLogger) Sugar() *zap.SugaredLogger {
	return l.sugar
}

// Close flushes buffered entries and closes the log file if any
func (l *ZapLogger) Close() {
	_ = l.Logger.Sync()
	if l.file != nil {
		_ = l.file.Close()
	}
}
