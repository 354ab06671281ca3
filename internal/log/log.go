// Package log wraps zap.SugaredLogger behind a small interface, used only
// by the CLI driver and demo harness. The threshold packages themselves
// stay free of logging; they report failures through internal/ferr instead.
package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type log struct {
	*zap.SugaredLogger
}

// Logger is the logging surface available to cmd/thresholdctl.
type Logger interface {
	Info(keyvals ...interface{})
	Debug(keyvals ...interface{})
	Warn(keyvals ...interface{})
	Error(keyvals ...interface{})
	Fatal(keyvals ...interface{})
	Infow(msg string, keyvals ...interface{})
	Debugw(msg string, keyvals ...interface{})
	Warnw(msg string, keyvals ...interface{})
	Errorw(msg string, keyvals ...interface{})
	With(args ...interface{}) Logger
	Named(s string) Logger
}

func (l *log) With(args ...interface{}) Logger {
	return &log{l.SugaredLogger.With(args...)}
}

func (l *log) Named(s string) Logger {
	return &log{l.SugaredLogger.Named(s)}
}

const (
	InfoLevel  = int(zapcore.InfoLevel)
	DebugLevel = int(zapcore.DebugLevel)
	ErrorLevel = int(zapcore.ErrorLevel)
)

// New returns a logger that writes JSON-encoded entries at the given level
// to output, or stdout if output is nil.
func New(output zapcore.WriteSyncer, level int) Logger {
	if output == nil {
		output = os.Stdout
	}
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), output, zapcore.Level(level))
	return &log{zap.New(core, zap.WithCaller(true)).Sugar()}
}
