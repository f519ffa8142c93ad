package configutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type testConfig struct {
	BaseUrl string `json:"base_url"`
	Timeout int    `json:"timeout"`
}

func TestReadConfigMergesLocal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "timetable.json5")

	err := os.WriteFile(path, []byte(`{base_url: "https://example.com", timeout: 10}`), 0644)
	require.NoError(t, err)
	err = os.WriteFile(filepath.Join(dir, "timetable.local.json5"), []byte(`{timeout: 45}`), 0644)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](path)
	require.NoError(t, err)
	require.Equal(t, "https://example.com", config.BaseUrl)
	require.Equal(t, 45, config.Timeout)
}

func TestReadConfigLocalOnly(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, "timetable.local.json5"), []byte(`{timeout: 45}`), 0644)
	require.NoError(t, err)

	config, err := ReadConfig[testConfig](filepath.Join(dir, "timetable.json5"))
	require.NoError(t, err)
	require.Equal(t, 45, config.Timeout)
}

func TestReadConfigNotFound(t *testing.T) {
	_, err := ReadConfig[testConfig](filepath.Join(t.TempDir(), "timetable.json5"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
