package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

type Config interface {
	BasePath() string
}

// LoadConfig resolves the journal location from a .jot config file or the
// JOT_PATH environment variable, defaulting to ~/.jot.db.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.jot.db")
	viper.SetConfigName(".jot") // .yaml is implicit
	viper.SetEnvPrefix("JOT")
	viper.AutomaticEnv()

	if override := os.Getenv("JOT_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}

	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

// PathConfig returns a Config rooted at an explicit path, bypassing the
// config file lookup. Used by tests and the --path flag.
func PathConfig(path string) Config {
	return &fileConfig{Path: path}
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}
