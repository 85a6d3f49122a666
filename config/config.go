// Package config loads program settings from defaults, a TOML file, .env, the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/lixenwraith/pixel-portfolio/constants"
	"github.com/lixenwraith/pixel-portfolio/theme"
)

// EnvPrefix namespaces every environment variable
const EnvPrefix = "PORTFOLIO_"

// Defaults not owned by other packages
const (
	DefaultPrefsPath = "portfolio.db"
	DefaultAddr      = ":8080"
	DefaultEnvFile   = ".env"
	DefaultColorMode = "auto"
)

// Color modes accepted by the terminal renderer
var colorModes = []string{"auto", "truecolor", "256"}

// Config is the merged configuration of both binaries
type Config struct {
	Debug     bool     `toml:"debug" env:"DEBUG"`
	LogDir    string   `toml:"log_dir" env:"LOG_DIR"`
	ColorMode string   `toml:"color" env:"COLOR"`
	Theme     string   `toml:"theme" env:"THEME"`
	Sound     Sound    `toml:"sound" envPrefix:"SOUND_"`
	PrefsPath string   `toml:"prefs_path" env:"PREFS_PATH"`
	HTTP      HTTP     `toml:"http" envPrefix:"HTTP_"`
	Viewport  Viewport `toml:"viewport" envPrefix:"VIEWPORT_"`
	// Seed 0 seeds the ball from the clock
	Seed uint64 `toml:"seed" env:"SEED"`
}

type Sound struct {
	Enabled bool    `toml:"enabled" env:"ENABLED"`
	Volume  float64 `toml:"volume" env:"VOLUME"`
}

type HTTP struct {
	Addr string `toml:"addr" env:"ADDR"`
}

// Viewport is the surface size for headless hosts
type Viewport struct {
	Width  int `toml:"width" env:"WIDTH"`
	Height int `toml:"height" env:"HEIGHT"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		LogDir:    constants.DefaultLogDir,
		ColorMode: DefaultColorMode,
		Theme:     string(theme.ModeLight),
		Sound:     Sound{Enabled: true, Volume: constants.DefaultVolume},
		PrefsPath: DefaultPrefsPath,
		HTTP:      HTTP{Addr: DefaultAddr},
		Viewport: Viewport{
			Width:  constants.DefaultViewportWidth,
			Height: constants.DefaultViewportHeight,
		},
	}
}

// Validate rejects settings no component can run with
func (c Config) Validate() error {
	var errs []error
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, fmt.Errorf("viewport %dx%d must be positive", c.Viewport.Width, c.Viewport.Height))
	}
	if c.Sound.Volume < 0 || c.Sound.Volume > 1 {
		errs = append(errs, fmt.Errorf("sound volume %v outside [0, 1]", c.Sound.Volume))
	}
	if _, err := theme.ParseMode(c.Theme); err != nil {
		errs = append(errs, err)
	}
	if !validColorMode(c.ColorMode) {
		errs = append(errs, fmt.Errorf("unknown color mode %q", c.ColorMode))
	}
	if strings.TrimSpace(c.HTTP.Addr) == "" {
		errs = append(errs, errors.New("http address is required"))
	}
	if strings.TrimSpace(c.LogDir) == "" {
		errs = append(errs, errors.New("log directory is required"))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func validColorMode(m string) bool {
	for _, v := range colorModes {
		if strings.EqualFold(m, v) {
			return true
		}
	}
	return false
}

// ThemeMode returns the parsed default theme
func (c Config) ThemeMode() theme.Mode {
	m, err := theme.ParseMode(c.Theme)
	if err != nil {
		return theme.ModeLight
	}
	return m
}

// Load merges, in increasing precedence: defaults, the TOML file, the .env file, the environment, then flags
// -config and -env name the files; a missing .env is ignored, a missing -config is an error
func Load(name string, args []string) (Config, error) {
	cfg := Default()

	fset, fv := newFlagSet(name)
	if err := fset.Parse(args); err != nil {
		return cfg, fmt.Errorf("parse flags: %w", err)
	}

	if fv.configPath != "" {
		if _, err := toml.DecodeFile(fv.configPath, &cfg); err != nil {
			return cfg, fmt.Errorf("load config %s: %w", fv.configPath, err)
		}
	}

	if err := godotenv.Load(fv.envPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("load env file %s: %w", fv.envPath, err)
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	fv.apply(fset, &cfg)

	return cfg, cfg.Validate()
}

// flagValues holds parsed flags until the lower layers are merged
type flagValues struct {
	configPath string
	envPath    string

	debug     bool
	logDir    string
	color     string
	theme     string
	sound     bool
	volume    float64
	prefsPath string
	addr      string
	width     int
	height    int
	seed      uint64
}

func newFlagSet(name string) (*flag.FlagSet, *flagValues) {
	fv := &flagValues{}
	def := Default()

	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(io.Discard)

	fset.StringVar(&fv.configPath, "config", "", "TOML config file")
	fset.StringVar(&fv.envPath, "env", DefaultEnvFile, ".env file")
	fset.BoolVar(&fv.debug, "debug", def.Debug, "Write logs to the log directory")
	fset.StringVar(&fv.logDir, "log-dir", def.LogDir, "Log directory")
	fset.StringVar(&fv.color, "color", def.ColorMode, "Color mode: auto, truecolor, 256")
	fset.StringVar(&fv.theme, "theme", def.Theme, "Default theme when none is saved: dark, light")
	fset.BoolVar(&fv.sound, "sound", def.Sound.Enabled, "Default sound setting when none is saved")
	fset.Float64Var(&fv.volume, "volume", def.Sound.Volume, "Default volume 0..1 when none is saved")
	fset.StringVar(&fv.prefsPath, "prefs", def.PrefsPath, "Preference database path")
	fset.StringVar(&fv.addr, "addr", def.HTTP.Addr, "HTTP listen address")
	fset.IntVar(&fv.width, "width", def.Viewport.Width, "Headless viewport width")
	fset.IntVar(&fv.height, "height", def.Viewport.Height, "Headless viewport height")
	fset.Uint64Var(&fv.seed, "seed", def.Seed, "Random seed, 0 for time-based")

	return fset, fv
}

// apply copies only the flags given on the command line
func (fv *flagValues) apply(fset *flag.FlagSet, cfg *Config) {
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = fv.debug
		case "log-dir":
			cfg.LogDir = fv.logDir
		case "color":
			cfg.ColorMode = fv.color
		case "theme":
			cfg.Theme = fv.theme
		case "sound":
			cfg.Sound.Enabled = fv.sound
		case "volume":
			cfg.Sound.Volume = fv.volume
		case "prefs":
			cfg.PrefsPath = fv.prefsPath
		case "addr":
			cfg.HTTP.Addr = fv.addr
		case "width":
			cfg.Viewport.Width = fv.width
		case "height":
			cfg.Viewport.Height = fv.height
		case "seed":
			cfg.Seed = fv.seed
		}
	})
}
