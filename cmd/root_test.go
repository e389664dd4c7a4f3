package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/inovacc/afscreen/internal/config"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

func TestNewLogger(t *testing.T) {
	tests := []struct {
		name     string
		section  config.LogSection
		contains string
	}{
		{name: "text", section: config.LogSection{Level: "info", Format: "text"}, contains: "msg=hello"},
		{name: "json", section: config.LogSection{Level: "info", Format: "JSON"}, contains: `"msg":"hello"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			l, err := newLogger(&buf, tt.section)
			require.NoError(t, err)

			l.Info("hello")
			l.Debug("hidden")

			require.Contains(t, buf.String(), tt.contains)
			require.NotContains(t, buf.String(), "hidden")
		})
	}

	_, err := newLogger(&bytes.Buffer{}, config.LogSection{Level: "chatty"})
	require.Error(t, err)
}

func TestInitApp_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.ini")
	require.NoError(t, os.WriteFile(path, []byte("[generate]\nchunk_size = 7\n[log]\nlevel = error\n"), 0644))

	t.Cleanup(func() {
		cfgFile, logLevel, logFormat = "", "", ""
		appConfig = nil
	})

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringVar(&cfgFile, "config", "", "")
	flags.StringVar(&logLevel, "log-level", "", "")
	flags.StringVar(&logFormat, "log-format", "", "")
	require.NoError(t, flags.Parse([]string{"--config", path, "--log-level", "debug"}))

	var stderr bytes.Buffer
	require.NoError(t, initApp(flags, &stderr))

	cfg := currentConfig()
	require.Equal(t, 7, cfg.Generate.ChunkSize)
	require.Equal(t, "debug", cfg.Log.Level)
	require.Contains(t, stderr.String(), "configuration loaded")
}

func TestInitApp_InvalidFlag(t *testing.T) {
	t.Cleanup(func() {
		cfgFile, logLevel, logFormat = "", "", ""
		appConfig = nil
	})

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringVar(&cfgFile, "config", "", "")
	flags.StringVar(&logLevel, "log-level", "", "")
	flags.StringVar(&logFormat, "log-format", "", "")
	require.NoError(t, flags.Parse([]string{"--config", filepath.Join(t.TempDir(), "none.ini"), "--log-format", "xml"}))

	require.Error(t, initApp(flags, &bytes.Buffer{}))
}

func TestCurrentConfig_Defaults(t *testing.T) {
	appConfig = nil
	require.Equal(t, config.Default(), *currentConfig())
}
