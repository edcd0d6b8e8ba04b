package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Miguelburitica/accounts-project/internal/config"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("uses defaults", func(t *testing.T) {
		chdir(t, t.TempDir())

		cfg, err := config.Load("")
		require.NoError(t, err)
		require.Equal(t, "file", cfg.Store.Driver)
		require.Equal(t, "financial-data", cfg.Store.Key)
		require.Equal(t, "none", cfg.Store.Codec)
		require.Equal(t, "ledger_events", cfg.Kafka.Topic)
		require.Empty(t, cfg.Kafka.Brokers)
		require.Equal(t, "COP", cfg.Display.Currency)
		require.Equal(t, "info", cfg.GetLoggerConfig().Level)
	})

	t.Run("environment overrides", func(t *testing.T) {
		chdir(t, t.TempDir())
		t.Setenv("LEDGER_STORE_DRIVER", "sqlite")
		t.Setenv("LEDGER_STORE_PATH", "ledger.db")
		t.Setenv("LEDGER_KAFKA_BROKERS", "localhost:9092,localhost:9093")
		t.Setenv("LEDGER_LOG_LEVEL", "debug")

		cfg, err := config.Load("")
		require.NoError(t, err)
		require.Equal(t, "sqlite", cfg.Store.Driver)
		require.Equal(t, "ledger.db", cfg.Store.Path)
		require.Equal(t, []string{"localhost:9092", "localhost:9093"}, cfg.Kafka.Brokers)
		require.Equal(t, "debug", cfg.Log.Level)
	})

	t.Run("reads a config file", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "ledger.yaml")
		require.NoError(t, os.WriteFile(path, []byte("store:\n  driver: file\n  codec: zstd\nexport:\n  dir: out\n"), 0o600))

		cfg, err := config.Load(path)
		require.NoError(t, err)
		require.Equal(t, "zstd", cfg.Store.Codec)
		require.Equal(t, "out", cfg.Export.Dir)
	})

	tests := map[string]struct {
		env         map[string]string
		expectedMsg string
	}{
		"unknown driver": {
			env:         map[string]string{"LEDGER_STORE_DRIVER": "redis"},
			expectedMsg: `unknown store driver "redis"`,
		},
		"postgres without dsn": {
			env:         map[string]string{"LEDGER_STORE_DRIVER": "postgres"},
			expectedMsg: "LEDGER_STORE_DSN is required",
		},
		"unknown codec": {
			env:         map[string]string{"LEDGER_STORE_CODEC": "gzip"},
			expectedMsg: `unknown store codec "gzip"`,
		},
	}

	for name, test := range tests {
		name, test := name, test
		t.Run(name, func(t *testing.T) {
			chdir(t, t.TempDir())
			for k, v := range test.env {
				t.Setenv(k, v)
			}

			cfg, err := config.Load("")
			require.Nil(t, cfg)
			require.ErrorContains(t, err, test.expectedMsg)
		})
	}

	t.Run("missing explicit file is an error", func(t *testing.T) {
		_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
		require.ErrorContains(t, err, "read config")
	})
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(wd)) })
}
