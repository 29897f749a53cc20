package config

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/tile2048.yaml
var embeddedDefault []byte

func loadEmbedded() (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(embeddedDefault, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse embedded config: %w", err)
	}
	return cfg, nil
}
