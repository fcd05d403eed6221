// Package config resolves startup settings from defaults, the environment
// and command-line flags, in increasing order of precedence.
package config

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"
)

const (
	EnvSeed   = "FLYGAME_SEED"
	EnvSprite = "FLYGAME_SPRITE"
	EnvSave   = "FLYGAME_SAVE"
	EnvScale  = "FLYGAME_SCALE"
)

// Config holds the startup settings.
type Config struct {
	// Seed feeds the road generator. Zero picks a seed from the clock.
	Seed uint64
	// SpritePath overrides the embedded ship sprite when set.
	SpritePath  string
	WindowScale int
	SavePath    string
	Title       string
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		WindowScale: 1,
		SavePath:    "flygame-save.json",
		Title:       "Fly Game",
	}
}

// Load builds the configuration from the environment and args, which
// excludes the program name. Flag errors are written to output.
func Load(args []string, output io.Writer) (Config, error) {
	cfg := Default()
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet("flygame", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Uint64Var(&cfg.Seed, "seed", cfg.Seed, "road seed, 0 for a random road")
	fs.StringVar(&cfg.SpritePath, "sprite", cfg.SpritePath, "path to a ship sprite image")
	fs.IntVar(&cfg.WindowScale, "scale", cfg.WindowScale, "window scale factor")
	fs.StringVar(&cfg.SavePath, "save", cfg.SavePath, "snapshot file for F5/F9")
	fs.StringVar(&cfg.Title, "title", cfg.Title, "window title")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}

	if cfg.WindowScale < 1 {
		return cfg, fmt.Errorf("invalid window scale %d", cfg.WindowScale)
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := GetEnv(EnvSeed, ""); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvSeed, err)
		}
		c.Seed = seed
	}
	if v := GetEnv(EnvScale, ""); v != "" {
		scale, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", EnvScale, err)
		}
		c.WindowScale = scale
	}
	if v := GetEnv(EnvSprite, ""); v != "" {
		c.SpritePath = v
	}
	if v := GetEnv(EnvSave, ""); v != "" {
		c.SavePath = v
	}
	return nil
}

// RoadSeed returns the seed to use, drawing one from the clock when unset.
func (c Config) RoadSeed() uint64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return uint64(time.Now().UnixNano())
}
