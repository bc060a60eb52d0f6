package main

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/formkit/pkg/logger"
	"github.com/dmitrymomot/formkit/pkg/requestid"
)

// appConfig holds process-wide settings that belong to no package.
type appConfig struct {
	Env     string `env:"APP_ENV" envDefault:"development"`
	Service string `env:"SERVICE_NAME" envDefault:"formkit" validate:"required"`

	LogLevel      string `env:"LOG_LEVEL" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	LogFile       string `env:"LOG_FILE"`
	LogFileSizeMB int    `env:"LOG_FILE_MAX_SIZE_MB" envDefault:"100" validate:"gte=1"`
	LogFileKeep   int    `env:"LOG_FILE_MAX_BACKUPS" envDefault:"5" validate:"gte=0"`
	LogFileDays   int    `env:"LOG_FILE_MAX_AGE_DAYS" envDefault:"28" validate:"gte=0"`
	LogFileTee    bool   `env:"LOG_FILE_TEE" envDefault:"true"`
}

func newLogger(cfg appConfig, w io.Writer) *slog.Logger {
	opts := []logger.Option{
		logger.WithOutput(w),
		logger.WithEnvironment(cfg.Env, cfg.Service),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}

	if cfg.LogLevel != "" {
		var lvl slog.Level
		if err := lvl.UnmarshalText([]byte(cfg.LogLevel)); err == nil {
			opts = append(opts, logger.WithLevel(lvl))
		}
	}

	if cfg.LogFile != "" {
		opts = append(opts, logger.WithFile(logger.FileConfig{
			Path:       cfg.LogFile,
			MaxSizeMB:  cfg.LogFileSizeMB,
			MaxBackups: cfg.LogFileKeep,
			MaxAgeDays: cfg.LogFileDays,
			Compress:   true,
		}, cfg.LogFileTee))
	}

	return logger.New(opts...)
}
