package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "warning", cfg.LogLevel)
	assert.True(t, cfg.Color)
	assert.False(t, cfg.PrintTree)
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, "logLevel: debug\ncolor: false\nprintTree: true\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, &Config{LogLevel: "debug", Color: false, PrintTree: true}, cfg)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, logrus.DebugLevel, level)
}

func TestLoadKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "printTree: true\n"))
	require.NoError(t, err)
	assert.Equal(t, "warning", cfg.LogLevel)
	assert.True(t, cfg.Color)
	assert.True(t, cfg.PrintTree)
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		err  error
	}{
		{
			name: "missing file",
			path: func(t *testing.T) string {
				return filepath.Join(t.TempDir(), "nope.yaml")
			},
			err: ErrConfigFileMissing,
		},
		{
			name: "unreadable file",
			path: func(t *testing.T) string {
				return t.TempDir()
			},
			err: ErrConfigFileUnreadable,
		},
		{
			name: "bad yaml",
			path: func(t *testing.T) string {
				return writeConfig(t, "logLevel: [debug\n")
			},
			err: ErrConfigFileUnmarshallable,
		},
		{
			name: "bad level",
			path: func(t *testing.T) string {
				return writeConfig(t, "logLevel: chatty\n")
			},
			err: ErrLogLevelInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.err), "unexpected error: %v", err)
		})
	}
}
