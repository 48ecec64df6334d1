// Package config defines the app configuration and loads it from an optional YAML file.
package config

import (
	"errors"
	"os"

	"gopkg.in/yaml.v3"
)

// Config defines the app configuration.
type Config struct {
	API struct {
		BaseURL string `yaml:"base_url" env:"BASEURL"`
		Timeout string `yaml:"timeout" env:"TIMEOUT"`
	} `yaml:"api"`
	Server struct {
		Port int    `yaml:"port" env:"PORT"`
		Env  string `yaml:"env" env:"ENV"`
	} `yaml:"server"`
	Limiter struct {
		RPS     float64 `yaml:"rps" env:"RPS"`
		Burst   int     `yaml:"burst" env:"BURST"`
		Enabled bool    `yaml:"enabled" env:"LENABLED"`
	} `yaml:"limiter"`
}

// Load reads configuration from the YAML file at path into cfg. A missing file
// is not an error so that flag defaults alone are enough to run.
func Load(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return yaml.Unmarshal(data, cfg)
}
