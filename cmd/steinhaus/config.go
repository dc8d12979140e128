package main

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the optional YAML run configuration. Any field left
// empty keeps the corresponding flag or default value.
type fileConfig struct {
	PX    []float64 `yaml:"px"`
	PY    []float64 `yaml:"py"`
	Level int       `yaml:"level"`
}

// loadConfig parses a YAML run configuration from the given path.
func loadConfig(path string) (*fileConfig, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	defer file.Close()

	return loadConfigFromReader(file)
}

// loadConfigFromReader parses a YAML run configuration from r.
func loadConfigFromReader(r io.Reader) (*fileConfig, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}
