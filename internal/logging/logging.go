// Package logging builds the zap logger used by the abicall CLI.
package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/branched-services/go-abicall/internal/config"
)

// New creates a logger writing human-readable lines to console and, when
// cfg.File is set, JSON lines to a rotated file.
func New(cfg config.LogConfig, console io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}
	if console == nil {
		console = os.Stderr
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(console), zap.NewAtomicLevelAt(level)),
	}

	if cfg.File != "" {
		fileEnc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		writer := zapcore.AddSync(&lumberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxSizeMB, // megabytes
			MaxBackups: cfg.MaxBackups,
			MaxAge:     cfg.MaxAgeDays, // days
			Compress:   cfg.Compress,
		})
		cores = append(cores, zapcore.NewCore(fileEnc, writer, zap.NewAtomicLevelAt(level)))
	}

	return zap.New(zapcore.NewTee(cores...)), nil
}
