package logging

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	require.NoError(t, scanner.Err())
	return entries
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "vecontacts.log")

	logger, err := New(Options{FilePath: path})
	require.NoError(t, err)

	logger.Info("Loaded contacts", zap.Int("count", 3))
	logger.Debug("Hidden at info level")
	require.NoError(t, logger.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "INFO", entries[0]["level"])
	assert.Equal(t, "Loaded contacts", entries[0]["message"])
	assert.EqualValues(t, 3, entries[0]["count"])
	assert.Contains(t, entries[0], "timestamp")
}

func TestNewDebugLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vecontacts.log")

	logger, err := New(Options{FilePath: path, Debug: true})
	require.NoError(t, err)

	logger.Named("simulator").Debug("Session opened")
	require.NoError(t, logger.Close())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "DEBUG", entries[0]["level"])
	assert.Equal(t, "simulator", entries[0]["logger"])
}
