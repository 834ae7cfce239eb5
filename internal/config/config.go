package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/particlefield/internal/forces"
	"github.com/san-kum/particlefield/internal/world"
)

const (
	DefaultParticles      = 1000
	DefaultColor          = "#00ccff"
	DefaultThickness      = 50.0
	DefaultLinearDamping  = 0.25
	DefaultAngularDamping = 0.25
	DefaultFriction       = 0.2
	DefaultRestitution    = 0.6
)

type Config struct {
	Particles          int     `yaml:"particles"`
	ParticleRadius     float64 `yaml:"particle_radius"`
	PushRadius         float64 `yaml:"push_radius"`
	PushStrength       float64 `yaml:"push_strength"`
	AttractionRadius   float64 `yaml:"attraction_radius"`
	AttractionStrength float64 `yaml:"attraction_strength"`
	Color              string  `yaml:"color"`
	Thickness          float64 `yaml:"thickness"`
	LinearDamping      float64 `yaml:"linear_damping"`
	AngularDamping     float64 `yaml:"angular_damping"`
	Friction           float64 `yaml:"friction"`
	Restitution        float64 `yaml:"restitution"`
	Broadphase         string  `yaml:"broadphase"` // "naive" or "grid"
	Seed               int64   `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		Particles:          DefaultParticles,
		ParticleRadius:     forces.DefaultParticleRadius,
		PushRadius:         forces.DefaultPushRadius,
		PushStrength:       forces.DefaultPushStrength,
		AttractionRadius:   forces.DefaultAttractionRadius,
		AttractionStrength: forces.DefaultAttractionStrength,
		Color:              DefaultColor,
		Thickness:          DefaultThickness,
		LinearDamping:      DefaultLinearDamping,
		AngularDamping:     DefaultAngularDamping,
		Friction:           DefaultFriction,
		Restitution:        DefaultRestitution,
		Broadphase:         "naive",
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate reports the first contract violation. Frame code never
// re-checks these; they are caller preconditions.
func (c *Config) Validate() error {
	if c.Particles < 0 {
		return world.ErrBadCount
	}
	if err := c.ForceParams().Validate(); err != nil {
		return err
	}
	if c.Thickness <= 0 {
		return fmt.Errorf("config: thickness must be positive, got %v", c.Thickness)
	}
	for _, d := range []float64{c.LinearDamping, c.AngularDamping} {
		if math.IsNaN(d) || d < 0 || d >= 1 {
			return fmt.Errorf("config: damping must be in [0,1), got %v", d)
		}
	}
	switch c.Broadphase {
	case "naive", "grid":
	default:
		return fmt.Errorf("config: unknown broadphase %q", c.Broadphase)
	}
	return nil
}

func (c *Config) ForceParams() forces.Params {
	return forces.Params{
		ParticleRadius:     c.ParticleRadius,
		PushRadius:         c.PushRadius,
		PushStrength:       c.PushStrength,
		AttractionRadius:   c.AttractionRadius,
		AttractionStrength: c.AttractionStrength,
	}
}

// BroadphaseMode maps the config string to the world selection.
func (c *Config) BroadphaseMode() world.Broadphase {
	if c.Broadphase == "grid" {
		return world.BroadphaseGrid
	}
	return world.BroadphaseNaive
}
