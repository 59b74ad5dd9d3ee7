// Package config loads configuration from an optional YAML file and
// environment variables.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     string `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Name     string `yaml:"name"`
}

type Config struct {
	Database DatabaseConfig `yaml:"database"`

	// MboxPath is the default archive when the CLI gets no --mbox.
	MboxPath string `yaml:"mbox_path"`

	// WatermarkPath is the well-known location of the last-sync file.
	WatermarkPath string `yaml:"watermark_path"`

	// Provider is the keyword the admission filter looks for.
	Provider string `yaml:"provider"`

	HTTPAddr string `yaml:"http_addr"`
	LogLevel string `yaml:"log_level"`
}

// Load reads the YAML file at path when it exists (with ${VAR}
// expansion), then applies environment overrides on top. A missing
// file just means defaults plus environment.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host: "localhost",
			Port: "5432",
			User: "zomalytics",
			Name: "zomalytics",
		},
		MboxPath:      "Zomato.mbox",
		WatermarkPath: "data/last_sync.txt",
		Provider:      "zomato",
		HTTPAddr:      ":8080",
		LogLevel:      "info",
	}

	if data, err := os.ReadFile(path); err == nil {
		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	overrideString(&cfg.Database.Host, "DB_HOST")
	overrideString(&cfg.Database.Port, "DB_PORT")
	overrideString(&cfg.Database.User, "DB_USER")
	overrideString(&cfg.Database.Password, "DB_PASSWORD")
	overrideString(&cfg.Database.Name, "DB_NAME")
	overrideString(&cfg.MboxPath, "MBOX_PATH")
	overrideString(&cfg.WatermarkPath, "WATERMARK_PATH")
	overrideString(&cfg.Provider, "PROVIDER")
	overrideString(&cfg.HTTPAddr, "HTTP_ADDR")
	overrideString(&cfg.LogLevel, "LOG_LEVEL")

	return cfg, nil
}

func overrideString(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}
