package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoadJSON tests the JSON loading functionality
func TestLoadJSON(t *testing.T) {
	t.Run("loads valid JSON file successfully", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "test.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte(`{"name": "test", "value": 42}`), 0600))

		var result struct {
			Name  string `json:"name"`
			Value int    `json:"value"`
		}
		err := LoadJSON(jsonFile, &result)

		assert.NoError(t, err)
		assert.Equal(t, "test", result.Name)
		assert.Equal(t, 42, result.Value)
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		var result map[string]interface{}
		err := LoadJSON("/nonexistent/path/file.json", &result)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read file")
	})

	t.Run("returns error for invalid JSON", func(t *testing.T) {
		jsonFile := filepath.Join(t.TempDir(), "invalid.json")
		require.NoError(t, os.WriteFile(jsonFile, []byte("{invalid json}"), 0600))

		var result map[string]interface{}
		err := LoadJSON(jsonFile, &result)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to unmarshal JSON")
	})
}

// TestSaveJSON tests atomic replacement of JSON files
func TestSaveJSON(t *testing.T) {
	t.Run("creates missing directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dir", "prefs.json")

		require.NoError(t, SaveJSON(path, map[string]int{"CurrentZone": 3}))

		var got map[string]int
		require.NoError(t, LoadJSON(path, &got))
		assert.Equal(t, 3, got["CurrentZone"])
	})

	t.Run("overwrites and leaves no temp files", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "prefs.json")

		require.NoError(t, SaveJSON(path, map[string]int{"HighestZone": 1}))
		require.NoError(t, SaveJSON(path, map[string]int{"HighestZone": 9}))

		var got map[string]int
		require.NoError(t, LoadJSON(path, &got))
		assert.Equal(t, 9, got["HighestZone"])

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("rejects unmarshalable data", func(t *testing.T) {
		err := SaveJSON(filepath.Join(t.TempDir(), "bad.json"), map[string]interface{}{"ch": make(chan int)})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to marshal data")
	})
}
