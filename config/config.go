// Package config loads run settings from defaults, an optional config file,
// SNAKE_* environment variables and command-line flags, in increasing priority.
package config

import (
	"fmt"
	"strings"

	"the-snake/game/types"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

const (
	BackendRaylib   = "raylib"
	BackendTerminal = "terminal"
)

type Config struct {
	Backend        string       `mapstructure:"backend"`
	TicksPerSecond int          `mapstructure:"tps"`
	Seed           uint64       `mapstructure:"seed"`
	Sound          bool         `mapstructure:"sound"`
	Screen         ScreenConfig `mapstructure:"screen"`
	Log            LogConfig    `mapstructure:"log"`
}

type ScreenConfig struct {
	Width    int `mapstructure:"width"`
	Height   int `mapstructure:"height"`
	CellSize int `mapstructure:"cell"`
}

// Grid is the board the screen settings produce.
func (s ScreenConfig) Grid() types.Grid {
	return types.NewGrid(s.Width, s.Height, s.CellSize)
}

type LogConfig struct {
	Level      string `mapstructure:"level"`
	File       string `mapstructure:"file"`
	MaxSize    int    `mapstructure:"max_size"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAge     int    `mapstructure:"max_age"`
	Compress   bool   `mapstructure:"compress"`
	Dev        bool   `mapstructure:"dev"`
	// Console is turned off by main when the terminal backend owns stderr.
	Console bool `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend", BackendRaylib)
	v.SetDefault("tps", 8)
	v.SetDefault("seed", 0)
	v.SetDefault("sound", true)
	v.SetDefault("screen.width", types.ScreenWidth)
	v.SetDefault("screen.height", types.ScreenHeight)
	v.SetDefault("screen.cell", types.CellSize)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")
	v.SetDefault("log.max_size", 10)
	v.SetDefault("log.max_backups", 3)
	v.SetDefault("log.max_age", 7)
	v.SetDefault("log.compress", false)
	v.SetDefault("log.dev", false)
}

// Flags declares the command-line flags Load understands.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("snake", pflag.ContinueOnError)
	fs.String("config", "", "path to a config file (toml, yaml or json)")
	fs.String("backend", BackendRaylib, "display backend: raylib or terminal")
	fs.Int("tps", 8, "game ticks per second")
	fs.Uint64("seed", 0, "food placement seed, 0 seeds from the clock")
	fs.Bool("sound", true, "play a chime when food is eaten")
	fs.Int("screen.width", types.ScreenWidth, "window width in pixels")
	fs.Int("screen.height", types.ScreenHeight, "window height in pixels")
	fs.Int("screen.cell", types.CellSize, "cell size in pixels, must divide width and height")
	fs.String("log.level", "info", "log level: debug, info, warn or error")
	fs.String("log.file", "", "also write JSON logs to this file")
	fs.Int("log.max_size", 10, "log file size in megabytes before rotation")
	fs.Int("log.max_backups", 3, "rotated log files to keep")
	fs.Int("log.max_age", 7, "days to keep rotated log files")
	fs.Bool("log.compress", false, "gzip rotated log files")
	fs.Bool("log.dev", false, "development logging with stack traces on warnings")
	return fs
}

// Load parses args against fs and merges every source into a validated Config.
func Load(fs *pflag.FlagSet, args []string) (*Config, error) {
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("SNAKE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path, _ := fs.GetString("config"); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	// Only flags set on the command line override the lower layers.
	var bindErr error
	fs.Visit(func(f *pflag.Flag) {
		if f.Name == "config" || bindErr != nil {
			return
		}
		bindErr = v.BindPFlag(f.Name, f)
	})
	if bindErr != nil {
		return nil, fmt.Errorf("bind flags: %w", bindErr)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Log.Console = true

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects settings the game cannot run with.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendRaylib, BackendTerminal:
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
	if c.TicksPerSecond <= 0 {
		return fmt.Errorf("tps must be positive, got %d", c.TicksPerSecond)
	}
	if c.Screen.CellSize <= 0 {
		return fmt.Errorf("screen.cell must be positive, got %d", c.Screen.CellSize)
	}
	if c.Screen.Width < c.Screen.CellSize || c.Screen.Height < c.Screen.CellSize {
		return fmt.Errorf("screen %dx%d is smaller than one %dpx cell",
			c.Screen.Width, c.Screen.Height, c.Screen.CellSize)
	}
	if c.Screen.Width%c.Screen.CellSize != 0 || c.Screen.Height%c.Screen.CellSize != 0 {
		return fmt.Errorf("screen %dx%d is not a whole number of %dpx cells",
			c.Screen.Width, c.Screen.Height, c.Screen.CellSize)
	}
	if _, err := zapcore.ParseLevel(strings.ToLower(c.Log.Level)); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}
