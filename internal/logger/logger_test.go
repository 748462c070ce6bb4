package logger

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferConfig(buf *bytes.Buffer, level LogLevel, json bool) *Config {
	return &Config{Level: level, Output: buf, JSON: json}
}

func TestNewLogger_Text(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(bufferConfig(&buf, InfoLevel, false))

	l.Info("generated", "enum", "SampleEnum", "file", "sample_enum_enumconv.go")

	out := buf.String()
	assert.Contains(t, out, "generated")
	assert.Contains(t, out, "enum=SampleEnum")
	assert.NotContains(t, out, "\x1b[", "no colour on a buffer")
}

func TestNewLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(bufferConfig(&buf, InfoLevel, true))

	l.With("enum", "E").Warn("diagnostic", "code", "EC001")

	out := buf.String()
	assert.Contains(t, out, `"msg":"diagnostic"`)
	assert.Contains(t, out, `"enum":"E"`)
	assert.Contains(t, out, `"code":"EC001"`)
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(bufferConfig(&buf, WarnLevel, false))

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.NotContains(t, out, "info message")
	assert.Contains(t, out, "warn message")
	assert.Contains(t, out, "error message")
}

func TestDisabled(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(bufferConfig(&buf, DisabledLevel, false))
	l.Error("error message")

	assert.Empty(t, buf.String())
}

func TestToCharmlogLevel(t *testing.T) {
	assert.Equal(t, -4, int(DebugLevel.ToCharmlogLevel()))
	assert.Equal(t, 0, int(InfoLevel.ToCharmlogLevel()))
	assert.Equal(t, 4, int(WarnLevel.ToCharmlogLevel()))
	assert.Equal(t, 8, int(ErrorLevel.ToCharmlogLevel()))
	assert.Equal(t, 0, int(LogLevel("loud").ToCharmlogLevel()))
}

func TestFromContext(t *testing.T) {
	expected := NewLogger(TestConfig())
	assert.Equal(t, expected, FromContext(ContextWithLogger(context.Background(), expected)))

	fallback := FromContext(context.Background())
	require.NotNil(t, fallback)
	fallback.Debug("fallback logger works")
}
