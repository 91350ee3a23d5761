// Package config loads the tunable constants of the comparison board from a TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"log"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"CompareBoard/internal/engine"
	"CompareBoard/internal/state"
)

// DefaultPath is used when no -config flag is given.
const DefaultPath = "compareboard.toml"

// Duration is a time.Duration written as a string such as "30ms" in TOML.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

type Matcher struct {
	Tolerance float32 `toml:"tolerance"`
}

type Fade struct {
	Step     float64  `toml:"step"`
	Interval Duration `toml:"interval"`
}

type Animation struct {
	Frames        int      `toml:"frames"`
	FrameInterval Duration `toml:"frame_interval"`
	Settle        Duration `toml:"settle"`
}

type Stroke struct {
	OuterWidth float32 `toml:"outer_width"`
	InnerWidth float32 `toml:"inner_width"`
	OuterColor string  `toml:"outer_color"`
	InnerColor string  `toml:"inner_color"`
}

type Glyph struct {
	Scale float32 `toml:"scale"`
}

type Stacks struct {
	Max     int     `toml:"max"`
	One     int     `toml:"one"`
	Two     int     `toml:"two"`
	Square  float32 `toml:"square"`
	Padding float32 `toml:"padding"`
}

type Audio struct {
	Enabled bool    `toml:"enabled"`
	Volume  float64 `toml:"volume"`
}

type Window struct {
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

type Config struct {
	Matcher   Matcher   `toml:"matcher"`
	Fade      Fade      `toml:"fade"`
	Animation Animation `toml:"animation"`
	Stroke    Stroke    `toml:"stroke"`
	Glyph     Glyph     `toml:"glyph"`
	Stacks    Stacks    `toml:"stacks"`
	Audio     Audio     `toml:"audio"`
	Window    Window    `toml:"window"`
}

func Default() Config {
	return Config{
		Matcher: Matcher{Tolerance: state.DefaultTolerance},
		Fade: Fade{
			Step:     engine.DefaultFadeStep,
			Interval: Duration{engine.DefaultFadeInterval},
		},
		Animation: Animation{
			Frames:        engine.DefaultFrames,
			FrameInterval: Duration{engine.DefaultFrameInterval},
			Settle:        Duration{engine.DefaultSettle},
		},
		Stroke: Stroke{
			OuterWidth: state.DefaultStrokeStyle.OuterWidth,
			InnerWidth: state.DefaultStrokeStyle.InnerWidth,
			OuterColor: "#ffffff",
			InnerColor: "#add8e6",
		},
		Glyph: Glyph{Scale: state.DefaultGlyphScale},
		Stacks: Stacks{
			Max:     state.DefaultMaxStack,
			One:     3,
			Two:     2,
			Square:  state.DefaultStackLayout.Square,
			Padding: state.DefaultStackLayout.Padding,
		},
		Audio:  Audio{Enabled: true, Volume: 0.5},
		Window: Window{Width: 1024, Height: 768},
	}
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("[CONFIG] %s not found, using defaults", path)
		return Default(), nil
	}
	if err != nil {
		return Default(), fmt.Errorf("failed to load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}
		log.Printf("[CONFIG] Ignoring unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid config %s: %w", path, err)
	}
	log.Printf("[CONFIG] Loaded %s", path)
	return cfg, nil
}

// Save writes cfg as TOML.
func Save(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	log.Printf("[CONFIG] Wrote %s", path)
	return nil
}

func (c Config) Validate() error {
	switch {
	case c.Matcher.Tolerance <= 0:
		return errors.New("matcher.tolerance must be positive")
	case c.Fade.Step <= 0 || c.Fade.Step > 1:
		return errors.New("fade.step must be in (0, 1]")
	case c.Fade.Interval.Duration <= 0:
		return errors.New("fade.interval must be positive")
	case c.Animation.Frames <= 0:
		return errors.New("animation.frames must be positive")
	case c.Animation.FrameInterval.Duration <= 0:
		return errors.New("animation.frame_interval must be positive")
	case c.Animation.Settle.Duration < 0:
		return errors.New("animation.settle must not be negative")
	case c.Stacks.Max < 1:
		return errors.New("stacks.max must be at least 1")
	case c.Stacks.One < 1 || c.Stacks.One > c.Stacks.Max || c.Stacks.Two < 1 || c.Stacks.Two > c.Stacks.Max:
		return fmt.Errorf("stacks.one and stacks.two must be between 1 and %d", c.Stacks.Max)
	case c.Stacks.Square <= 0 || c.Stacks.Padding < 0:
		return errors.New("stacks.square must be positive and stacks.padding not negative")
	case c.Glyph.Scale <= 0 || c.Glyph.Scale > 1:
		return errors.New("glyph.scale must be in (0, 1]")
	case c.Stroke.OuterWidth <= 0 || c.Stroke.InnerWidth <= 0:
		return errors.New("stroke.outer_width and stroke.inner_width must be positive")
	case c.Audio.Volume < 0:
		return errors.New("audio.volume must not be negative")
	}
	if _, err := ParseColor(c.Stroke.OuterColor); err != nil {
		return fmt.Errorf("stroke.outer_color: %w", err)
	}
	if _, err := ParseColor(c.Stroke.InnerColor); err != nil {
		return fmt.Errorf("stroke.inner_color: %w", err)
	}
	return nil
}

// Engine returns the engine options described by c.
func (c Config) Engine() engine.Options {
	return engine.Options{
		Tolerance:     c.Matcher.Tolerance,
		FadeStep:      c.Fade.Step,
		FadeInterval:  c.Fade.Interval.Duration,
		Frames:        c.Animation.Frames,
		FrameInterval: c.Animation.FrameInterval.Duration,
		Settle:        c.Animation.Settle.Duration,
		GlyphScale:    c.Glyph.Scale,
		Style:         state.StrokeStyle{OuterWidth: c.Stroke.OuterWidth, InnerWidth: c.Stroke.InnerWidth},
	}
}

func (c Config) Layout() state.StackLayout {
	return state.StackLayout{Square: c.Stacks.Square, Padding: c.Stacks.Padding}
}

// ParseColor accepts "#rrggbb" or "#rrggbbaa".
func ParseColor(s string) (color.NRGBA, error) {
	c := color.NRGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		err = fmt.Errorf("%q is not a #rrggbb colour", s)
	}
	return c, err
}
