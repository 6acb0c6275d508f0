// Package config loads flycam settings from flycam.yaml and FLYCAM_* environment variables.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-flycam/engine/camera"
	"github.com/Carmen-Shannon/oxy-flycam/engine/grid"
	"github.com/Carmen-Shannon/oxy-flycam/engine/input"
	"github.com/Carmen-Shannon/oxy-flycam/engine/proximity"
	"github.com/Carmen-Shannon/oxy-flycam/engine/scene"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

const (
	// FileName is the configuration file name without extension.
	FileName = "flycam"
	// EnvPrefix prefixes environment overrides, e.g. FLYCAM_GRID_SIZEX.
	EnvPrefix = "FLYCAM"
)

// GridConfig holds the world extents and line spacing.
type GridConfig struct {
	SizeX     float32 `mapstructure:"sizeX"`
	SizeY     float32 `mapstructure:"sizeY"`
	IntervalX float32 `mapstructure:"intervalX"`
	IntervalY float32 `mapstructure:"intervalY"`
}

// CameraConfig holds the start pose and motion rates.
type CameraConfig struct {
	Position     []float32 `mapstructure:"position"`
	LookAt       []float32 `mapstructure:"lookAt"`
	TurnRate     float32   `mapstructure:"turnRate"`
	MoveSpeed    float32   `mapstructure:"moveSpeed"`
	PitchEpsilon float32   `mapstructure:"pitchEpsilon"`
	Fov          float32   `mapstructure:"fov"`
}

// LandmarkConfig holds the landmark cuboid and its proximity colours.
type LandmarkConfig struct {
	Position        []float32 `mapstructure:"position"`
	Size            []float32 `mapstructure:"size"`
	ActionRadius    float32   `mapstructure:"actionRadius"`
	NormalColour    []int     `mapstructure:"normalColour"`
	HighlightColour []int     `mapstructure:"highlightColour"`
}

// BindingsConfig selects a key binding preset and optional per-action overrides.
type BindingsConfig struct {
	Preset    string            `mapstructure:"preset"`
	Overrides map[string]string `mapstructure:"overrides"`
}

// WindowConfig holds the GLFW window settings.
type WindowConfig struct {
	Title  string `mapstructure:"title"`
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	VSync  bool   `mapstructure:"vsync"`
}

// Config is the full flycam configuration.
type Config struct {
	LogLevel string `mapstructure:"logLevel"`
	LogFile  string `mapstructure:"logFile"`

	// TickRate is the number of controller updates per second.
	TickRate int `mapstructure:"tickRate"`
	// ReportInterval is the readout refresh period.
	ReportInterval time.Duration `mapstructure:"reportInterval"`
	// Ground adds a disc under the grid.
	Ground bool `mapstructure:"ground"`

	Grid     GridConfig     `mapstructure:"grid"`
	Camera   CameraConfig   `mapstructure:"camera"`
	Landmark LandmarkConfig `mapstructure:"landmark"`
	Bindings BindingsConfig `mapstructure:"bindings"`
	Window   WindowConfig   `mapstructure:"window"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("logFile", "")
	v.SetDefault("tickRate", 60)
	v.SetDefault("reportInterval", "100ms")
	v.SetDefault("ground", false)

	v.SetDefault("grid.sizeX", 100)
	v.SetDefault("grid.sizeY", 1000)
	v.SetDefault("grid.intervalX", 10)
	v.SetDefault("grid.intervalY", 10)

	v.SetDefault("camera.position", []float32{0, 20, 40})
	v.SetDefault("camera.lookAt", []float32{0, 0, 0})
	v.SetDefault("camera.turnRate", 1)
	v.SetDefault("camera.moveSpeed", 1)
	v.SetDefault("camera.pitchEpsilon", camera.PitchEpsilon)
	v.SetDefault("camera.fov", 45)

	v.SetDefault("landmark.position", []float32{0, 10, 0})
	v.SetDefault("landmark.size", []float32{1, 20, 1})
	v.SetDefault("landmark.actionRadius", proximity.DefaultRadius)
	v.SetDefault("landmark.normalColour", []int{0, 0, 255})
	v.SetDefault("landmark.highlightColour", []int{255, 0, 0})

	v.SetDefault("bindings.preset", input.DefaultPreset)
	v.SetDefault("bindings.overrides", map[string]string{})

	v.SetDefault("window.title", "flycam")
	v.SetDefault("window.width", 1280)
	v.SetDefault("window.height", 720)
	v.SetDefault("window.vsync", true)
}

// Load reads flycam.yaml from dir when present, applies FLYCAM_* environment overrides and
// validates the result. A missing file is not an error.
//
// Parameters:
//   - dir: directory to search for the configuration file; empty searches the working directory
//
// Returns:
//   - Config: the loaded configuration
//   - error: a read/decode error, or one wrapping ErrInvalidConfig
func Load(dir string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if dir == "" {
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Default returns the built-in configuration, ignoring files and the environment.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		panic(fmt.Sprintf("config: decoding defaults: %v", err))
	}
	return c
}

// Validate checks every section and wraps the first problem found in ErrInvalidConfig.
//
// Returns:
//   - error: nil when the configuration is usable
func (c Config) Validate() error {
	invalid := func(format string, args ...any) error {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, fmt.Sprintf(format, args...))
	}

	if _, err := grid.New(c.Grid.SizeX, c.Grid.SizeY, c.Grid.IntervalX, c.Grid.IntervalY); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.TickRate <= 0 {
		return invalid("tickRate must be positive, got %d", c.TickRate)
	}
	if c.ReportInterval <= 0 {
		return invalid("reportInterval must be positive, got %s", c.ReportInterval)
	}

	for name, vec := range map[string][]float32{
		"camera.position":   c.Camera.Position,
		"camera.lookAt":     c.Camera.LookAt,
		"landmark.position": c.Landmark.Position,
		"landmark.size":     c.Landmark.Size,
	} {
		if len(vec) != 3 {
			return invalid("%s must have 3 components, got %d", name, len(vec))
		}
	}
	if c.Camera.TurnRate <= 0 || c.Camera.MoveSpeed <= 0 {
		return invalid("camera rates must be positive")
	}
	if c.Camera.PitchEpsilon <= 0 || c.Camera.PitchEpsilon >= math.Pi/2 {
		return invalid("camera.pitchEpsilon must be in (0, pi/2), got %v", c.Camera.PitchEpsilon)
	}
	if c.Camera.Fov <= 0 || c.Camera.Fov >= 180 {
		return invalid("camera.fov must be in (0, 180) degrees, got %v", c.Camera.Fov)
	}

	if c.Landmark.ActionRadius <= 0 {
		return invalid("landmark.actionRadius must be positive, got %v", c.Landmark.ActionRadius)
	}
	for name, rgb := range map[string][]int{
		"landmark.normalColour":    c.Landmark.NormalColour,
		"landmark.highlightColour": c.Landmark.HighlightColour,
	} {
		if len(rgb) != 3 {
			return invalid("%s must have 3 components, got %d", name, len(rgb))
		}
		for _, ch := range rgb {
			if ch < 0 || ch > 255 {
				return invalid("%s components must be 0-255, got %v", name, rgb)
			}
		}
	}

	if _, err := c.KeyBindings(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return invalid("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	return nil
}

// WorldGrid returns the configured grid.
func (c Config) WorldGrid() grid.Grid {
	return grid.Grid{
		SizeX:     c.Grid.SizeX,
		SizeY:     c.Grid.SizeY,
		IntervalX: c.Grid.IntervalX,
		IntervalY: c.Grid.IntervalY,
	}
}

// Limits returns the camera rates and bounds.
func (c Config) Limits() camera.Limits {
	return camera.Limits{
		Bounds:     c.WorldGrid().Bounds(),
		TurnRate:   c.Camera.TurnRate,
		MoveSpeed:  c.Camera.MoveSpeed,
		PitchLimit: math.Pi/2 - c.Camera.PitchEpsilon,
	}
}

// KeyBindings resolves the binding preset and overrides.
func (c Config) KeyBindings() (input.Bindings, error) {
	return input.ParseBindings(c.Bindings.Preset, c.Bindings.Overrides)
}

// SceneOptions returns the scene options for the configured landmark and camera.
func (c Config) SceneOptions() scene.Options {
	opts := scene.DefaultOptions()
	opts.Ground = c.Ground
	opts.LandmarkPosition = vec3(c.Landmark.Position)
	opts.LandmarkSize = vec3(c.Landmark.Size)
	opts.LandmarkColour = rgba(c.Landmark.NormalColour)
	opts.Camera = scene.CameraStart{
		Position: vec3(c.Camera.Position),
		LookAt:   vec3(c.Camera.LookAt),
	}
	return opts
}

// Highlighter returns the proximity check for the configured landmark.
func (c Config) Highlighter() proximity.Highlighter {
	return proximity.Highlighter{
		Landmark:    vec3(c.Landmark.Position),
		Radius:      c.Landmark.ActionRadius,
		Normal:      rgba(c.Landmark.NormalColour),
		Highlighted: rgba(c.Landmark.HighlightColour),
	}
}

// FovRadians returns the vertical field of view in radians.
func (c Config) FovRadians() float32 {
	return mgl32.DegToRad(c.Camera.Fov)
}

func vec3(v []float32) mgl32.Vec3 {
	var out mgl32.Vec3
	copy(out[:], v)
	return out
}

func rgba(c []int) color.RGBA {
	out := color.RGBA{A: 255}
	if len(c) == 3 {
		out.R, out.G, out.B = uint8(c[0]), uint8(c[1]), uint8(c[2])
	}
	return out
}
