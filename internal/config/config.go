// Package config handles viewer configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/Faultbox/durham-house/internal/engine/camera"
	"github.com/Faultbox/durham-house/internal/engine/lighting"
	"github.com/Faultbox/durham-house/internal/engine/texture"
	"github.com/Faultbox/durham-house/internal/sim"
	"github.com/Faultbox/durham-house/pkg/math"
)

// Config holds all viewer settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Camera     CameraConfig     `yaml:"camera"`
	Lighting   LightingConfig   `yaml:"lighting"`
	Simulation SimulationConfig `yaml:"simulation"`
	Assets     AssetsConfig     `yaml:"assets"`
	Debug      DebugConfig      `yaml:"debug"`
	Logging    LoggingConfig    `yaml:"logging"`

	// Source is the file the config was read from, empty for defaults.
	Source string `yaml:"-"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [3]float32 `yaml:"clear_color"`
}

// CameraConfig holds the initial camera and its control steps.
type CameraConfig struct {
	FOV       float32    `yaml:"fov"`
	Eye       [3]float32 `yaml:"eye"`
	Center    [3]float32 `yaml:"center"`
	Near      float32    `yaml:"near"`
	Far       float32    `yaml:"far"`
	AngleStep float32    `yaml:"angle_step"`
	ZoomStep  float32    `yaml:"zoom_step"`
}

// LightingConfig holds the point light and ambient term.
type LightingConfig struct {
	Color    [3]float32 `yaml:"color"`
	Position [3]float32 `yaml:"position"`
	Ambient  [3]float32 `yaml:"ambient"`
}

// SimulationConfig holds animation speeds and the random seed.
type SimulationConfig struct {
	RedSpeed   float32 `yaml:"red_speed"`
	GreenSpeed float32 `yaml:"green_speed"`
	WalkSpeed  float32 `yaml:"walk_speed"`
	Seed       int64   `yaml:"seed"` // 0 seeds from the clock
}

// AssetsConfig holds texture locations.
type AssetsConfig struct {
	TextureDir string `yaml:"texture_dir"`
	// Procedural generates stand-ins for texture files that fail to load.
	Procedural bool `yaml:"procedural"`
}

// DebugConfig holds developer settings.
type DebugConfig struct {
	ScreenshotDir string `yaml:"screenshot_dir"`
	WatchConfig   bool   `yaml:"watch_config"`
	ShowFPS       bool   `yaml:"show_fps"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with the scene's original settings.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
		},
		Camera: CameraConfig{
			FOV:       20,
			Eye:       [3]float32{0, 0, 15},
			Center:    [3]float32{0, 0, -100},
			Near:      1,
			Far:       100,
			AngleStep: 3,
			ZoomStep:  2,
		},
		Lighting: LightingConfig{
			Color:    [3]float32{1, 1, 1},
			Position: [3]float32{2.3, 4.0, 3.5},
			Ambient:  [3]float32{0.2, 0.2, 0.2},
		},
		Simulation: SimulationConfig{
			RedSpeed:   0.04,
			GreenSpeed: 0.06,
			WalkSpeed:  0.02,
		},
		Assets: AssetsConfig{
			TextureDir: "src",
		},
		Debug: DebugConfig{
			ScreenshotDir: "screenshots",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate reports settings the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Camera.FOV <= 1 || c.Camera.FOV >= 51 {
		errs = append(errs, fmt.Errorf("camera: fov %g outside (1,51)", c.Camera.FOV))
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		errs = append(errs, fmt.Errorf("camera: invalid clip range [%g, %g]", c.Camera.Near, c.Camera.Far))
	}
	if c.Camera.AngleStep <= 0 || c.Camera.ZoomStep <= 0 {
		errs = append(errs, errors.New("camera: steps must be positive"))
	}
	s := c.Simulation
	if s.RedSpeed <= 0 || s.GreenSpeed <= 0 || s.WalkSpeed <= 0 {
		errs = append(errs, fmt.Errorf("simulation: speeds (%g, %g, %g) must be positive", s.RedSpeed, s.GreenSpeed, s.WalkSpeed))
	}
	if c.Assets.TextureDir == "" {
		errs = append(errs, errors.New("assets: texture_dir is empty"))
	}
	return errors.Join(errs...)
}

// CameraSettings converts the camera section for the camera package.
func (c *Config) CameraSettings() camera.Config {
	cc := camera.DefaultConfig()
	cc.FOV = c.Camera.FOV
	cc.Eye = vec3(c.Camera.Eye)
	cc.Center = vec3(c.Camera.Center)
	cc.Near = c.Camera.Near
	cc.Far = c.Camera.Far
	cc.AngleStep = c.Camera.AngleStep
	cc.ZoomStep = c.Camera.ZoomStep
	return cc
}

// SimSettings converts the simulation section for the sim package.
func (c *Config) SimSettings() sim.Config {
	return sim.Config{
		RedSpeed:   c.Simulation.RedSpeed,
		GreenSpeed: c.Simulation.GreenSpeed,
		WalkSpeed:  c.Simulation.WalkSpeed,
	}
}

// LightSettings converts the lighting section for the renderer.
func (c *Config) LightSettings() lighting.Light {
	return lighting.Light{
		Color:    c.Lighting.Color,
		Position: c.Lighting.Position,
		Ambient:  c.Lighting.Ambient,
	}
}

// TextureSettings converts the assets section for the texture registry.
func (c *Config) TextureSettings() texture.Config {
	return texture.Config{
		Dir:        c.Assets.TextureDir,
		Procedural: c.Assets.Procedural,
	}
}

func vec3(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}
