package config

import (
	"fmt"
	"os"
	"strconv"
	"sync"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Address string `mapstructure:"address"`
	Port    int    `mapstructure:"port"`
	Mode    string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Path    string `mapstructure:"path"`
	LogMode bool   `mapstructure:"log_mode"`
}

type LogConfig struct {
	File string `mapstructure:"file"`
}

type BackupConfig struct {
	Dir string `mapstructure:"dir"`
}

type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Log      LogConfig      `mapstructure:"log"`
	Backup   BackupConfig   `mapstructure:"backup"`
}

var (
	appConfig *Config
	once      sync.Once
)

// Load loads configuration from given file path (e.g. "config.yaml").
// If path is empty, it defaults to "config.yaml" in current working directory.
// A missing config file is not fatal: defaults apply, so the binary can run
// with nothing but a PORT env var, like the old hosting setup did.
func Load(path string) (*Config, error) {
	var err error
	once.Do(func() {
		v := viper.New()

		if path == "" {
			v.SetConfigName("config")
			v.SetConfigType("yaml")
			v.AddConfigPath(".")
		} else {
			v.SetConfigFile(path)
		}

		v.SetDefault("server.address", "")
		v.SetDefault("server.port", 4000)
		v.SetDefault("server.mode", "release")
		v.SetDefault("database.path", "./data/data.db")
		v.SetDefault("database.log_mode", false)
		v.SetDefault("log.file", "./logs/server.log")
		v.SetDefault("backup.dir", "./data/backups")

		// environment overrides, e.g. FINZ_SERVER_PORT=9000
		v.SetEnvPrefix("FINZ")
		v.AutomaticEnv()

		if readErr := v.ReadInConfig(); readErr != nil {
			if _, notFound := readErr.(viper.ConfigFileNotFoundError); !notFound {
				if _, statErr := os.Stat(v.ConfigFileUsed()); statErr == nil {
					err = fmt.Errorf("read config: %w", readErr)
					return
				}
			}
		}

		var c Config
		if err = v.Unmarshal(&c); err != nil {
			err = fmt.Errorf("unmarshal config: %w", err)
			return
		}

		// bare PORT wins for the listen port
		if p := os.Getenv("PORT"); p != "" {
			if n, convErr := strconv.Atoi(p); convErr == nil && n > 0 {
				c.Server.Port = n
			}
		}

		appConfig = &c
	})

	if err != nil {
		return nil, err
	}
	return appConfig, nil
}

// Get returns the loaded global configuration.
// Call Load() once at application startup.
func Get() *Config {
	return appConfig
}
