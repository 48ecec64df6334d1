package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type logLine struct {
	Level      string            `json:"level"`
	Time       string            `json:"time"`
	Message    string            `json:"message"`
	Properties map[string]string `json:"properties"`
	Trace      string            `json:"trace"`
}

func TestLoggerWritesLeveledLines(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.PrintInfo("page loaded", map[string]string{"page": "authors"})

	var line logLine
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "INFO", line.Level)
	assert.Equal(t, "page loaded", line.Message)
	assert.Equal(t, "authors", line.Properties["page"])
	assert.Empty(t, line.Trace)
}

func TestLoggerIncludesTraceAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.PrintError(errors.New("boom"), nil)

	var line logLine
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line.Level)
	assert.Equal(t, "boom", line.Message)
	assert.NotEmpty(t, line.Trace)
}

func TestLoggerFiltersBelowMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)

	l.PrintInfo("quiet", nil)
	l.PrintWarn("still quiet", nil)
	assert.Zero(t, buf.Len())

	l.PrintError(errors.New("loud"), nil)
	assert.NotZero(t, buf.Len())
}

func TestLoggerSatisfiesWriter(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	n, err := l.Write([]byte("raw message"))
	require.NoError(t, err)
	assert.Greater(t, n, 0)

	var line logLine
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "ERROR", line.Level)
	assert.Equal(t, "raw message", line.Message)
}
