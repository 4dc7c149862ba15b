package logging

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(io.Discard) })

	require.True(t, IsDebugMode())
	Debugf("rows=%d", 3)
	Infof("loaded")
	Warnf("careful")
	Errorf("broken: %v", "x")

	out := buf.String()
	assert.Contains(t, out, "DEBUG rows=3")
	assert.Contains(t, out, "INFO loaded")
	assert.Contains(t, out, "WARN careful")
	assert.Contains(t, out, "ERROR broken: x")
}

func TestDebugSilentWhenDiscarding(t *testing.T) {
	SetOutput(io.Discard)
	assert.False(t, IsDebugMode())
	Debug("nothing to see")
}

func TestSetupLoggingToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")
	cleanup, err := SetupLogging(path)
	require.NoError(t, err)

	Infof("hello %s", "file")
	assert.True(t, IsDebugMode())
	cleanup()
	SetOutput(io.Discard)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "INFO hello file")
	assert.False(t, IsDebugMode())
}

func TestSetupLoggingDisabled(t *testing.T) {
	cleanup, err := SetupLogging("")
	require.NoError(t, err)
	defer cleanup()
	assert.False(t, IsDebugMode())
}
