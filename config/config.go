// Package config resolves presentation and ambient settings
// Precedence: command-line flags, process environment, .env file, defaults
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/lixenwraith/tint-arena/parameter"
)

// EnvPrefix namespaces every environment variable
const EnvPrefix = "TINT_ARENA_"

// DefaultEnvFile is read from the working directory when present
const DefaultEnvFile = ".env"

// Color modes for the terminal front-end
const (
	ColorAuto      = "auto"
	ColorTrueColor = "truecolor"
	Color256       = "256"
)

var ErrInvalidValue = errors.New("invalid config value")

// Config holds runtime settings; simulation constants are not configurable
type Config struct {
	Debug      bool          // Write logs to LogDir
	LogDir     string        // Debug log directory
	Mute       bool          // Disable the tint chime
	Volume     float64       // Master volume, 0.0 - 1.0
	Fullscreen bool          // Borderless fullscreen window
	ColorMode  string        // auto, truecolor, 256
	HoldWindow time.Duration // Terminal key-hold emulation window
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		LogDir:     "logs",
		Volume:     0.5,
		Fullscreen: true,
		ColorMode:  ColorAuto,
		HoldWindow: parameter.KeyHoldWindow,
	}
}

// Load resolves settings from envFile (missing file is fine), the environment and args
func Load(name string, args []string, envFile string) (Config, error) {
	cfg := Default()

	fileVars := map[string]string{}
	if envFile != "" {
		vars, err := godotenv.Read(envFile)
		switch {
		case err == nil:
			fileVars = vars
		case errors.Is(err, os.ErrNotExist):
		default:
			return cfg, fmt.Errorf("read %s: %w", envFile, err)
		}
	}
	lookup := func(key string) (string, bool) {
		if v, ok := os.LookupEnv(EnvPrefix + key); ok {
			return v, true
		}
		v, ok := fileVars[EnvPrefix+key]
		return v, ok
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return cfg, err
	}

	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "write debug log file")
	fs.StringVar(&cfg.LogDir, "log-dir", cfg.LogDir, "debug log directory")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "disable audio")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "master volume 0.0-1.0")
	fs.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "borderless fullscreen window")
	fs.StringVar(&cfg.ColorMode, "color", cfg.ColorMode, "color mode: auto, truecolor, 256")
	fs.DurationVar(&cfg.HoldWindow, "hold", cfg.HoldWindow, "terminal key-hold window")
	if err := fs.Parse(args); err != nil {
		return cfg, fmt.Errorf("parse flags: %w", err)
	}

	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	bools := []struct {
		key string
		dst *bool
	}{
		{"DEBUG", &c.Debug},
		{"MUTE", &c.Mute},
		{"FULLSCREEN", &c.Fullscreen},
	}
	for _, b := range bools {
		if v, ok := lookup(b.key); ok {
			parsed, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("%s%s=%q: %w", EnvPrefix, b.key, v, ErrInvalidValue)
			}
			*b.dst = parsed
		}
	}

	if v, ok := lookup("LOG_DIR"); ok {
		c.LogDir = v
	}
	if v, ok := lookup("COLOR"); ok {
		c.ColorMode = v
	}
	if v, ok := lookup("VOLUME"); ok {
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%sVOLUME=%q: %w", EnvPrefix, v, ErrInvalidValue)
		}
		c.Volume = parsed
	}
	if v, ok := lookup("HOLD_WINDOW"); ok {
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sHOLD_WINDOW=%q: %w", EnvPrefix, v, ErrInvalidValue)
		}
		c.HoldWindow = parsed
	}
	return nil
}

// Validate rejects out-of-range settings
func (c Config) Validate() error {
	switch c.ColorMode {
	case ColorAuto, ColorTrueColor, Color256:
	default:
		return fmt.Errorf("color mode %q: %w", c.ColorMode, ErrInvalidValue)
	}
	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume %v: %w", c.Volume, ErrInvalidValue)
	}
	if c.HoldWindow <= 0 {
		return fmt.Errorf("hold window %v: %w", c.HoldWindow, ErrInvalidValue)
	}
	if c.Debug && c.LogDir == "" {
		return fmt.Errorf("debug logging needs a log directory: %w", ErrInvalidValue)
	}
	return nil
}
