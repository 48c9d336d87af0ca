package config

import (
	"fmt"
	"time"
)

// SpeedPreset represents a named game speed.
type SpeedPreset string

const (
	SpeedSlow   SpeedPreset = "slow"
	SpeedNormal SpeedPreset = "normal"
	SpeedFast   SpeedPreset = "fast"
	SpeedFixed  SpeedPreset = "fixed"
)

// ParseSpeedPreset returns the preset named s.
// An empty name is the fixed preset.
func ParseSpeedPreset(s string) (SpeedPreset, error) {
	switch p := SpeedPreset(s); p {
	case SpeedSlow, SpeedNormal, SpeedFast, SpeedFixed:
		return p, nil
	case "":
		return SpeedFixed, nil
	default:
		return "", fmt.Errorf("config: unknown speed %q (want slow, normal, fast or fixed)", s)
	}
}

// TickForPreset returns the tick delay for a preset.
// The fixed preset keeps the configured delay.
func TickForPreset(preset SpeedPreset, configured time.Duration) time.Duration {
	switch preset {
	case SpeedSlow:
		return 150 * time.Millisecond
	case SpeedNormal:
		return 100 * time.Millisecond
	case SpeedFast:
		return 60 * time.Millisecond
	default:
		return configured
	}
}

// IsFixedPreset returns true if the preset keeps the configured tick.
func IsFixedPreset(preset SpeedPreset) bool {
	return preset == SpeedFixed || preset == ""
}

// ApplySpeedPreset modifies the config based on a speed preset name.
func ApplySpeedPreset(cfg *Config, name string) error {
	preset, err := ParseSpeedPreset(name)
	if err != nil {
		return err
	}
	cfg.Speed = preset
	return nil
}
