package press

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Config holds the tunables a Scene applies to its trackers.
type Config struct {
	// MaxDistance is the motion limit past which a press is cancelled.
	MaxDistance float64 `yaml:"maxDistance"`
	// Debug enables debug mode (see Scene.SetDebugMode).
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns the configuration used by NewScene.
func DefaultConfig() Config {
	return Config{MaxDistance: DefaultMaxDistance}
}

// LoadConfig parses a YAML (or JSON) document. Omitted fields keep their
// DefaultConfig values.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if cfg.MaxDistance < 0 {
		return Config{}, fmt.Errorf("parse config: maxDistance must not be negative, got %v", cfg.MaxDistance)
	}
	return cfg, nil
}
