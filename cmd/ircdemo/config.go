package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives the demo client.
type Config struct {
	// Server is the "host:port" of the IRC server to connect to.
	Server string `yaml:"server"`

	// Nick is the nickname to register. A random guest nick is generated
	// when empty.
	Nick string `yaml:"nick"`

	// User and RealName fill the USER registration line.
	User     string `yaml:"user"`
	RealName string `yaml:"real_name"`

	// Channels are joined once the server confirms registration (001).
	Channels []string `yaml:"channels"`

	Log LogConfig `yaml:"log"`
}

// LogConfig holds debug log settings.
type LogConfig struct {
	// File receives rotated debug logs. Empty disables file logging.
	File string `yaml:"file"`

	// MaxSizeMB is the rotation threshold for the log file.
	MaxSizeMB int `yaml:"max_size_mb"`

	// MaxBackups is how many rotated files to keep.
	MaxBackups int `yaml:"max_backups"`
}

// loadConfig reads the yaml config at path, falling back to defaults for
// anything left unset. A missing file is not an error; the defaults alone
// are enough to connect somewhere with -server.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{
		User:     "ircdemo",
		RealName: "irclib demo client",
		Log: LogConfig{
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(buf, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}
