package log_test

import (
	"bytes"
	"testing"

	"go.uber.org/zap/zapcore"

	"github.com/nimbus-labs/threshold/internal/log"
	"github.com/stretchr/testify/require"
)

type buf struct{ *bytes.Buffer }

func (b buf) Sync() error { return nil }

func TestNewLoggerWritesJSON(t *testing.T) {
	var b bytes.Buffer
	l := log.New(zapcore.AddSync(buf{&b}), log.InfoLevel)
	l.Infow("hello", "committee", 3)
	require.Contains(t, b.String(), "hello")
	require.Contains(t, b.String(), "committee")
}

func TestNamedAndWith(t *testing.T) {
	var b bytes.Buffer
	l := log.New(zapcore.AddSync(buf{&b}), log.InfoLevel)
	named := l.Named("thresholdctl").With("round", 1)
	named.Info("signing")
	require.Contains(t, b.String(), "thresholdctl")
	require.Contains(t, b.String(), "signing")
}
