package anomaly

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scorer.yaml")
	content := []byte("num_trees: 50\ncontamination: 0.05\nseed: 7\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.NumTrees)
	assert.Equal(t, 0.05, cfg.Contamination)
	assert.Equal(t, int64(7), cfg.Seed)
	// Unset fields keep their defaults.
	assert.Equal(t, DefaultConfig().SampleSize, cfg.SampleSize)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scorer.yaml")
	require.NoError(t, os.WriteFile(path, []byte("contamination: 0.9\n"), 0o644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(c *Config) {}},
		{name: "explicit threshold", mutate: func(c *Config) { c.Threshold = 0.6 }},
		{name: "zero trees", mutate: func(c *Config) { c.NumTrees = 0 }, wantErr: true},
		{name: "sample size one", mutate: func(c *Config) { c.SampleSize = 1 }, wantErr: true},
		{name: "contamination zero", mutate: func(c *Config) { c.Contamination = 0 }, wantErr: true},
		{name: "contamination half", mutate: func(c *Config) { c.Contamination = 0.5 }, wantErr: true},
		{name: "threshold one", mutate: func(c *Config) { c.Threshold = 1 }, wantErr: true},
		{name: "negative threshold", mutate: func(c *Config) { c.Threshold = -0.1 }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
