package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultDelayMs is the frame delay used when the file does not set one.
const DefaultDelayMs = 100

// Config describes one assembly job.
type Config struct {
	Frames  []string `yaml:"frames"`   // PNG files, key frame first
	DelayMs *int     `yaml:"delay_ms"` // per-frame delay; 0 means as fast as possible
	Output  string   `yaml:"output"`   // destination file (optional)
	Debug   bool     `yaml:"debug"`
}

// Delay returns the validated frame delay in milliseconds.
func (c *Config) Delay() uint16 {
	if c.DelayMs == nil {
		return DefaultDelayMs
	}
	return uint16(*c.DelayMs)
}

// Load reads and parses a YAML configuration file.  Relative frame and
// output paths are resolved against the directory holding the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, err
	}

	dir := filepath.Dir(path)
	for i, f := range cfg.Frames {
		cfg.Frames[i] = resolve(dir, f)
	}
	if cfg.Output != "" {
		cfg.Output = resolve(dir, cfg.Output)
	}
	return cfg, nil
}

// Parse decodes and validates YAML configuration data.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
