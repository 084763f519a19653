package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Options configures New.
type Options struct {
	// File is the log path. Empty disables logging.
	File  string
	Debug bool
	// MaxSizeMB rotates the file once it grows past this size.
	MaxSizeMB  int
	MaxBackups int
}

// New builds a JSON file logger. The terminal belongs to the TUI, so nothing
// is ever written to stdout or stderr.
func New(opts Options) *zap.Logger {
	if opts.File == "" {
		return zap.NewNop()
	}
	if opts.MaxSizeMB <= 0 {
		opts.MaxSizeMB = 10
	}
	if opts.MaxBackups <= 0 {
		opts.MaxBackups = 3
	}

	level := zapcore.InfoLevel
	if opts.Debug {
		level = zapcore.DebugLevel
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   opts.File,
		MaxSize:    opts.MaxSizeMB,
		MaxBackups: opts.MaxBackups,
	})
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), w, level)
	return zap.New(core).Named("admintable")
}
