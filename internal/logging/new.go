package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	DriverSlog = "slog"
	DriverZap  = "zap"
)

// Options selects and tunes a Logger implementation.
type Options struct {
	Driver string // "slog" (default) or "zap"
	Level  string // debug, info, warn, error
	File   string // optional path; rotated by lumberjack and mirrored to Output
	Output io.Writer
}

// New builds a Logger from opts. The returned close function flushes and
// releases the rotating file, if any.
func New(opts Options) (Logger, func() error) {
	var out io.Writer = os.Stdout
	if opts.Output != nil {
		out = opts.Output
	}

	var rotator *lumberjack.Logger
	if opts.File != "" {
		rotator = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		}
		out = io.MultiWriter(out, rotator)
	}

	closeFn := func() error {
		if rotator != nil {
			return rotator.Close()
		}
		return nil
	}

	if strings.EqualFold(opts.Driver, DriverZap) {
		zl := newZap(out, opts.Level)
		return NewZapLogger(zl), func() error {
			_ = zl.Sync()
			return closeFn()
		}
	}

	h := slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slogLevel(opts.Level)})
	return NewSlogLogger(slog.New(h)), closeFn
}

func newZap(out io.Writer, level string) *zap.Logger {
	lvl := zapcore.InfoLevel
	if err := lvl.Set(strings.ToLower(level)); err != nil {
		lvl = zapcore.InfoLevel
	}

	encCfg := zapcore.EncoderConfig{
		MessageKey:  "msg",
		LevelKey:    "level",
		TimeKey:     "ts",
		EncodeLevel: zapcore.LowercaseLevelEncoder,
		EncodeTime:  zapcore.ISO8601TimeEncoder,
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(out), zap.NewAtomicLevelAt(lvl))
	return zap.New(core)
}

func slogLevel(level string) slog.Level {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo
	}
	return l
}

// Nop returns a Logger that discards everything.
func Nop() Logger {
	return NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}
