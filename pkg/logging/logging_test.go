package logging

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level LogLevel
		want  string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(42), "UNKNOWN"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, tc.level.String())
	}
}

func TestInitAndFiltering(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelInfo, &buf)
	useJournal = false // unit tests never talk to the journal

	Debug("Test", "should be filtered out")
	Info("Test", "hello %s", "world")

	out := buf.String()
	assert.NotContains(t, out, "should be filtered out")
	assert.Contains(t, out, "hello world")
	assert.Contains(t, out, "subsystem=Test")
}

func TestErrorIncludesCause(t *testing.T) {
	var buf bytes.Buffer
	Init(LevelDebug, &buf)
	useJournal = false

	Error("Contract", assert.AnError, "request failed")

	out := buf.String()
	assert.Contains(t, out, "request failed")
	assert.Contains(t, out, "level=ERROR")
	assert.True(t, strings.Contains(out, assert.AnError.Error()))
}

func TestUninitializedLoggerIsSilent(t *testing.T) {
	defaultLogger = nil
	assert.NotPanics(t, func() {
		Info("Test", "no logger yet")
	})
}
