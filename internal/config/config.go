package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Miguelburitica/accounts-project/internal/logger"
	"github.com/spf13/viper"
)

type StoreConfig struct {
	Driver string `mapstructure:"driver"` // memory, file, sqlite, postgres
	Path   string `mapstructure:"path"`   // directory for file, database file for sqlite
	DSN    string `mapstructure:"dsn"`    // postgres connection string
	Codec  string `mapstructure:"codec"`  // none, zstd, lz4 (file driver only)
	Key    string `mapstructure:"key"`
}

type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

type DisplayConfig struct {
	Currency string `mapstructure:"currency"`
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	TimeFormat string `mapstructure:"time_format"`
	Output     string `mapstructure:"output"`
}

type Config struct {
	Store   StoreConfig   `mapstructure:"store"`
	Kafka   KafkaConfig   `mapstructure:"kafka"`
	Export  ExportConfig  `mapstructure:"export"`
	Display DisplayConfig `mapstructure:"display"`
	Log     LogConfig     `mapstructure:"log"`
}

// Load reads configuration from the environment (LEDGER_ prefix, e.g.
// LEDGER_STORE_DRIVER) on top of an optional config file. With an empty path a
// "ledger" config file in the working directory is used when present.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if path == "" {
		v.SetConfigName("ledger")
		v.AddConfigPath(".")
	} else {
		v.SetConfigFile(path)
	}

	v.SetEnvPrefix("LEDGER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("store.driver", "file")
	v.SetDefault("store.path", "data")
	v.SetDefault("store.dsn", "")
	v.SetDefault("store.codec", "none")
	v.SetDefault("store.key", "financial-data")
	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "ledger_events")
	v.SetDefault("export.dir", "exports")
	v.SetDefault("display.currency", "COP")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
	v.SetDefault("log.time_format", time.RFC3339)
	v.SetDefault("log.output", "stderr")
}

func (c *Config) validate() error {
	switch c.Store.Driver {
	case "memory", "file", "sqlite":
	case "postgres":
		if c.Store.DSN == "" {
			return fmt.Errorf("LEDGER_STORE_DSN is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unknown store driver %q", c.Store.Driver)
	}

	switch c.Store.Codec {
	case "none", "zstd", "lz4":
	default:
		return fmt.Errorf("unknown store codec %q", c.Store.Codec)
	}

	if c.Store.Key == "" {
		return fmt.Errorf("LEDGER_STORE_KEY must not be empty")
	}
	return nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.Log.Level,
		Format:     c.Log.Format,
		TimeFormat: c.Log.TimeFormat,
		Output:     c.Log.Output,
	}
}
