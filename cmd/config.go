package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

const defaultConfigurationPath = ".luq.yaml"

// Config holds CLI defaults read from .luq.yaml. Flags given on the
// command line win over configuration values.
type Config struct {
	Output  string `yaml:"output"` // "console" or "json"
	NoColor bool   `yaml:"no_color"`
	Workers int    `yaml:"workers"`
}

func defaultConfiguration() Config {
	return Config{Output: "console", Workers: 4}
}

// loadConfiguration reads the configuration file. A missing file is
// only an error when a path was given explicitly.
func loadConfiguration(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		path = defaultConfigurationPath
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !explicit {
			return defaultConfiguration(), nil
		}
		return Config{}, fmt.Errorf("reading configuration %s: %w", path, err)
	}

	config := defaultConfiguration()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("parsing configuration %s: %w", path, err)
	}
	return config, nil
}

func applyConfiguration(config Config) {
	if config.NoColor {
		color.NoColor = true
	}
	if config.Output == "json" && !parseCmd.Flags().Changed("json") {
		parseJSONOutput = true
	}
	if config.Workers > 0 && !batchCmd.Flags().Changed("workers") {
		batchWorkers = config.Workers
	}
}
