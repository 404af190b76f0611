package app

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLoggerJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &Config{LogFormat: "json"})

	logger.Info("started", "addr", ":8080")

	line := buf.String()
	require.True(t, strings.HasPrefix(line, "{"), "expected JSON output, got: %s", line)
	require.Contains(t, line, `"service":"tilbud"`)
	require.Contains(t, line, `"addr":":8080"`)
}

func TestNewLoggerDefaultsToText(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &Config{LogFormat: "pretty"})

	logger.Info("started")

	line := buf.String()
	require.False(t, strings.HasPrefix(line, "{"))
	require.Contains(t, line, "service=tilbud")
	require.Contains(t, line, "msg=started")
}
