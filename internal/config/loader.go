package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Load reads the configuration, trying sources in order:
//  1. customPath, if non-empty (errors are fatal here: the user asked
//     for this file explicitly)
//  2. ~/.tile2048/config.yaml
//  3. ./configs/tile2048.yaml
//  4. the embedded default
//
// Whatever the source, the result is clamped before being returned.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Config{}, err
		}
		cfg.Clamp()
		return cfg, nil
	}

	for _, path := range searchPaths() {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		cfg, err := loadFile(path)
		if err != nil {
			return Config{}, err
		}
		cfg.Clamp()
		return cfg, nil
	}

	cfg, err := loadEmbedded()
	if err != nil {
		return Config{}, err
	}
	cfg.Clamp()
	return cfg, nil
}

func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".tile2048", "config.yaml"))
	}
	paths = append(paths, filepath.Join("configs", "tile2048.yaml"))
	return paths
}

func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
