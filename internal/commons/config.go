package commons

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"tableside/internal/config"
)

// LoadConfig reads a YAML config file. Deployments that prefer files over
// environment variables point CONFIG_FILE here. The file is overlaid on the
// defaults from config.Load, so keys absent from the file keep their
// defaults instead of zeroing out.
func LoadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config defaults: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return cfg, nil
}
