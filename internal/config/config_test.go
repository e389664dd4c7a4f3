package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.ini"))
	require.NoError(t, err)
	require.Equal(t, Default(), *cfg)
	require.Equal(t, 100, cfg.Generate.ChunkSize)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	content := `[generate]
chunk_size = 25
name_column = id
sequence_column = aa

[log]
level = debug
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 25, cfg.Generate.ChunkSize)
	require.Equal(t, "id", cfg.Generate.NameColumn)
	require.Equal(t, "aa", cfg.Generate.SequenceColumn)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Equal(t, FormatText, cfg.Log.Format)
	require.True(t, cfg.History.Enabled)
	require.Equal(t, BackendBolt, cfg.History.Backend)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "zero chunk size", content: "[generate]\nchunk_size = 0\n"},
		{name: "unknown backend", content: "[history]\nbackend = redis\n"},
		{name: "unknown format", content: "[log]\nformat = xml\n"},
		{name: "unknown level", content: "[log]\nlevel = loud\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.ini")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.ini")

	cfg := Default()
	cfg.Generate.ChunkSize = 50
	cfg.Generate.Output = "out/screen.json"
	cfg.History.Backend = BackendSQLite

	require.NoError(t, Save(path, &cfg))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, cfg, *loaded)
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}

	_, err := ParseLevel("verbose")
	require.Error(t, err)
}
