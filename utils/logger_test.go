package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitLoggerWritesDayStampedFiles(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	require.NoError(t, InitLogger())
	LogInfo("logger smoke entry %d", 1)

	day := time.Now().Format("2006-01-02")
	data, err := os.ReadFile(filepath.Join(dir, "logs", fmt.Sprintf("info-%s.log", day)))
	require.NoError(t, err)
	assert.Contains(t, string(data), "logger smoke entry 1")

	// Debug stream stays off unless LOG_LEVEL=debug.
	LogDebug("hidden entry")
	_, err = os.Stat(filepath.Join(dir, "logs", fmt.Sprintf("debug-%s.log", day)))
	assert.True(t, os.IsNotExist(err))
}
