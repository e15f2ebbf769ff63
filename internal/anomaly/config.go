package anomaly

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the scorer's training parameters. The zero Threshold
// means "derive it from Contamination": the (1 - contamination)
// quantile of the training scores becomes the cutoff.
type Config struct {
	NumTrees      int     `yaml:"num_trees"`
	SampleSize    int     `yaml:"sample_size"`
	Contamination float64 `yaml:"contamination"`
	Threshold     float64 `yaml:"threshold"`
	Seed          int64   `yaml:"seed"`
}

// DefaultConfig mirrors the parameters the service shipped with:
// 100 trees, 10% expected contamination, seed 42.
func DefaultConfig() Config {
	return Config{
		NumTrees:      100,
		SampleSize:    256,
		Contamination: 0.1,
		Seed:          42,
	}
}

// LoadConfig reads a YAML config file, filling unset fields with
// defaults. An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read scorer config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode scorer config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.NumTrees <= 0 {
		return fmt.Errorf("num_trees must be positive, got %d", c.NumTrees)
	}
	if c.SampleSize <= 1 {
		return fmt.Errorf("sample_size must be greater than 1, got %d", c.SampleSize)
	}
	if c.Contamination <= 0 || c.Contamination >= 0.5 {
		return fmt.Errorf("contamination must be in (0, 0.5), got %g", c.Contamination)
	}
	if c.Threshold < 0 || c.Threshold >= 1 {
		return fmt.Errorf("threshold must be in [0, 1), got %g", c.Threshold)
	}
	return nil
}
