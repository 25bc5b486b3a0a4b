package config

import (
	"fmt"
	"os"

	"bench3d/internal/interaction"

	"gopkg.in/yaml.v3"
)

// Config is the interaction tuning file. Every field has a sensible default
// so a missing file or a partial file still yields a playable setup.
type Config struct {
	Probe struct {
		MaxDistance float32 `yaml:"maxDistance"`
	} `yaml:"probe"`

	Carry struct {
		MinDistance     float32 `yaml:"minDistance"`
		MaxDistance     float32 `yaml:"maxDistance"`
		DefaultDistance float32 `yaml:"defaultDistance"`
		ZoomSpeed       float32 `yaml:"zoomSpeed"`
		FollowRate      float32 `yaml:"followRate"`
		RotateSpeed     float32 `yaml:"rotateSpeed"`
	} `yaml:"carry"`

	Drop struct {
		ProbeRadius float32 `yaml:"probeRadius"`
		PushStep    float32 `yaml:"pushStep"`
	} `yaml:"drop"`

	Place struct {
		MaxDistance float32 `yaml:"maxDistance"`
	} `yaml:"place"`

	Detach struct {
		Forward    float32 `yaml:"forward"`
		Up         float32 `yaml:"up"`
		ViewerBias float32 `yaml:"viewerBias"`
	} `yaml:"detach"`
}

func Default() *Config {
	c := &Config{}
	c.Probe.MaxDistance = 3.0

	t := interaction.DefaultHolderTuning()
	c.Carry.MinDistance = t.MinDistance
	c.Carry.MaxDistance = t.MaxDistance
	c.Carry.DefaultDistance = t.DefaultDistance
	c.Carry.ZoomSpeed = t.ZoomSpeed
	c.Carry.FollowRate = t.FollowRate
	c.Carry.RotateSpeed = t.RotateSpeed
	c.Drop.ProbeRadius = t.DropProbeRadius
	c.Drop.PushStep = t.DropPushStep
	c.Place.MaxDistance = t.MaxPlaceDistance

	c.Detach.Forward = 0.25
	c.Detach.Up = 0.15
	c.Detach.ViewerBias = 0.3
	return c
}

// Load reads and validates a tuning file, starting from defaults so omitted
// keys keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Carry.MinDistance <= 0 || c.Carry.MaxDistance <= 0 {
		return fmt.Errorf("carry distances must be positive")
	}
	if c.Carry.MinDistance > c.Carry.MaxDistance {
		return fmt.Errorf("carry minDistance %v exceeds maxDistance %v",
			c.Carry.MinDistance, c.Carry.MaxDistance)
	}
	if c.Carry.DefaultDistance < c.Carry.MinDistance || c.Carry.DefaultDistance > c.Carry.MaxDistance {
		return fmt.Errorf("carry defaultDistance %v outside [%v, %v]",
			c.Carry.DefaultDistance, c.Carry.MinDistance, c.Carry.MaxDistance)
	}
	if c.Probe.MaxDistance <= 0 {
		return fmt.Errorf("probe maxDistance must be positive")
	}
	return nil
}

// HolderTuning maps the carry/drop/place sections onto the holder's knobs.
func (c *Config) HolderTuning() interaction.HolderTuning {
	return interaction.HolderTuning{
		MinDistance:      c.Carry.MinDistance,
		MaxDistance:      c.Carry.MaxDistance,
		DefaultDistance:  c.Carry.DefaultDistance,
		ZoomSpeed:        c.Carry.ZoomSpeed,
		FollowRate:       c.Carry.FollowRate,
		RotateSpeed:      c.Carry.RotateSpeed,
		DropProbeRadius:  c.Drop.ProbeRadius,
		DropPushStep:     c.Drop.PushStep,
		MaxPlaceDistance: c.Place.MaxDistance,
	}
}
