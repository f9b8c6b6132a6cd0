package log

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zapcore.Level
	}{
		{LevelDebug, zapcore.DebugLevel},
		{LevelWarn, zapcore.WarnLevel},
		{LevelError, zapcore.ErrorLevel},
		{"", zapcore.InfoLevel},
		{"verbose", zapcore.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLevel(tt.in))
		})
	}
}

func TestWithAttachesLogger(t *testing.T) {
	l := NewNop()
	ctx := l.With(context.Background(), "dispatch_id", "abc")

	assert.NotNil(t, ctx.Value(loggerKey{}))
	assert.NotPanics(t, func() { l.Infof(ctx, "hello %s", "world") })
}

func TestNilContextPanics(t *testing.T) {
	l := NewNop()
	assert.Panics(t, func() { l.Info(nil, "x") })
}
