package config

import (
	"fmt"
	"math"
)

// Validate checks if the configuration is valid and fills in defaults.
func Validate(cfg *Config) error {
	if len(cfg.Frames) == 0 {
		return fmt.Errorf("frames must list at least one PNG file")
	}
	for i, f := range cfg.Frames {
		if f == "" {
			return fmt.Errorf("frames[%d] is empty", i)
		}
	}

	if cfg.DelayMs == nil {
		d := DefaultDelayMs
		cfg.DelayMs = &d
	}
	if *cfg.DelayMs < 0 || *cfg.DelayMs > math.MaxUint16 {
		return fmt.Errorf("delay_ms must be between 0 and %d", math.MaxUint16)
	}

	return nil
}
