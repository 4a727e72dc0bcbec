// Package config provides YAML-based configuration loading for the game
// and the SSH server.
package config

import (
	"time"

	"github.com/vovakirdan/flappy-tui/internal/engine"
)

// Config is the full file layout. Every section is optional in the YAML;
// zero values are filled from the embedded defaults by Normalize.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Physics PhysicsConfig `yaml:"physics"`
	Pipes   PipesConfig   `yaml:"pipes"`
	Bird    BirdConfig    `yaml:"bird"`
	Serve   ServeConfig   `yaml:"serve"`
}

// WorldConfig defines the simulation canvas.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig defines the bird's motion parameters.
type PhysicsConfig struct {
	Gravity float64 `yaml:"gravity"`
	Impulse float64 `yaml:"impulse"` // Negative = up
}

// PipesConfig defines the obstacle stream.
type PipesConfig struct {
	Width        float64 `yaml:"width"`
	Gap          float64 `yaml:"gap"`
	Speed        float64 `yaml:"speed"`
	SpawnAhead   float64 `yaml:"spawn_ahead"`
	TopMargin    float64 `yaml:"top_margin"`
	BottomMargin float64 `yaml:"bottom_margin"`
}

// BirdConfig defines the player hitbox.
type BirdConfig struct {
	X    float64 `yaml:"x"`
	Size float64 `yaml:"size"`
}

// ServeConfig defines the SSH server settings.
type ServeConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Default returns the reference configuration, matching engine.DefaultParams.
func Default() Config {
	p := engine.DefaultParams()
	return Config{
		World:   WorldConfig{Width: p.CanvasW, Height: p.CanvasH},
		Physics: PhysicsConfig{Gravity: p.Gravity, Impulse: p.Impulse},
		Pipes: PipesConfig{
			Width:        p.PipeW,
			Gap:          p.PipeGap,
			Speed:        p.PipeSpeed,
			SpawnAhead:   p.SpawnAhead,
			TopMargin:    p.TopMargin,
			BottomMargin: p.BottomMargin,
		},
		Bird: BirdConfig{X: p.BirdX, Size: p.BirdSize},
		Serve: ServeConfig{
			Address:            ":23234",
			HostKey:            "",
			IdleTimeoutMinutes: 30,
		},
	}
}

// EngineParams converts the config into engine tunables.
func (c Config) EngineParams() engine.Params {
	return engine.Params{
		CanvasW:      c.World.Width,
		CanvasH:      c.World.Height,
		BirdX:        c.Bird.X,
		BirdSize:     c.Bird.Size,
		Gravity:      c.Physics.Gravity,
		Impulse:      c.Physics.Impulse,
		PipeW:        c.Pipes.Width,
		PipeGap:      c.Pipes.Gap,
		PipeSpeed:    c.Pipes.Speed,
		SpawnAhead:   c.Pipes.SpawnAhead,
		TopMargin:    c.Pipes.TopMargin,
		BottomMargin: c.Pipes.BottomMargin,
	}
}

// IdleTimeout returns the server idle timeout as a duration.
func (c ServeConfig) IdleTimeout() time.Duration {
	return time.Duration(c.IdleTimeoutMinutes) * time.Minute
}

// Normalize fills zero or nonsense values from the defaults so a sparse or
// hand-edited YAML file cannot produce a degenerate world.
func (c *Config) Normalize() {
	def := Default()

	if c.World.Width <= 0 {
		c.World.Width = def.World.Width
	}
	if c.World.Height <= 0 {
		c.World.Height = def.World.Height
	}
	if c.Physics.Gravity <= 0 {
		c.Physics.Gravity = def.Physics.Gravity
	}
	if c.Physics.Impulse >= 0 {
		c.Physics.Impulse = def.Physics.Impulse
	}
	if c.Pipes.Width <= 0 {
		c.Pipes.Width = def.Pipes.Width
	}
	if c.Pipes.Gap <= 0 {
		c.Pipes.Gap = def.Pipes.Gap
	}
	if c.Pipes.Speed <= 0 {
		c.Pipes.Speed = def.Pipes.Speed
	}
	if c.Pipes.SpawnAhead <= 0 {
		c.Pipes.SpawnAhead = def.Pipes.SpawnAhead
	}
	if c.Pipes.TopMargin <= 0 {
		c.Pipes.TopMargin = def.Pipes.TopMargin
	}
	if c.Pipes.BottomMargin <= 0 {
		c.Pipes.BottomMargin = def.Pipes.BottomMargin
	}
	if c.Bird.X <= 0 {
		c.Bird.X = def.Bird.X
	}
	if c.Bird.Size <= 0 {
		c.Bird.Size = def.Bird.Size
	}
	if c.Serve.Address == "" {
		c.Serve.Address = def.Serve.Address
	}
	if c.Serve.IdleTimeoutMinutes <= 0 {
		c.Serve.IdleTimeoutMinutes = def.Serve.IdleTimeoutMinutes
	}
}
