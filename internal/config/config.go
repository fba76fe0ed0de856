package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Log      LogConfig
	UI       UIConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path           string
	MigrationsPath string `mapstructure:"migrations_path"`
}

// LogConfig holds debug-log settings. The TUI owns the terminal, so logs go
// to a file.
type LogConfig struct {
	Path  string
	Level string
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Actor        string
	TimeFormat   string `mapstructure:"time_format"`
	Capabilities []string
}

// Load reads configuration from file and env. Env var overrides use prefix NIMBUS_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "nimbus", "nimbus.db"))
	v.SetDefault("database.migrations_path", "internal/database/migrations")
	v.SetDefault("log.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "nimbus", "nimbus.log"))
	v.SetDefault("log.level", "info")
	v.SetDefault("ui.actor", "operator")
	v.SetDefault("ui.time_format", "02 Jan 15:04")
	v.SetDefault("ui.capabilities", []string{
		"topology.write",
		"approvals.write",
		"audit.read",
		"notifications.read",
	})

	v.SetConfigType("toml")

	cfgPath := os.Getenv("NIMBUS_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "nimbus"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("NIMBUS")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
