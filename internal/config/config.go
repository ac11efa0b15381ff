// Package config handles demo configuration loading and management.
package config

import (
	"errors"
	"fmt"
)

// Config holds all demo settings.
type Config struct {
	Graphics   GraphicsConfig   `yaml:"graphics"`
	Camera     CameraConfig     `yaml:"camera"`
	Input      InputConfig      `yaml:"input"`
	Picking    PickingConfig    `yaml:"picking"`
	Outline    OutlineConfig    `yaml:"outline"`
	DebugLines DebugLinesConfig `yaml:"debug_lines"`
	Scene      SceneConfig      `yaml:"scene"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// GraphicsConfig holds display settings.
type GraphicsConfig struct {
	Width      int        `yaml:"width"`
	Height     int        `yaml:"height"`
	Fullscreen bool       `yaml:"fullscreen"`
	VSync      bool       `yaml:"vsync"`
	ClearColor [3]float32 `yaml:"clear_color"`
}

// CameraConfig holds the free-fly camera starting state and clip planes.
type CameraConfig struct {
	Position    [3]float32 `yaml:"position"`
	Yaw         float32    `yaml:"yaw"`
	Pitch       float32    `yaml:"pitch"`
	Speed       float32    `yaml:"speed"`
	Sensitivity float32    `yaml:"sensitivity"`
	Zoom        float32    `yaml:"zoom"`
	Near        float32    `yaml:"near"`
	Far         float32    `yaml:"far"`
}

// InputConfig holds movement modifiers and key bindings.
type InputConfig struct {
	SpeedMult    float32 `yaml:"speed_mult"`
	SpeedMultMin float32 `yaml:"speed_mult_min"`
	SpeedMultMax float32 `yaml:"speed_mult_max"`
	// Bindings maps action names (see controls.ParseAction) to SDL key names.
	// Missing entries keep the built-in binding.
	Bindings map[string]string `yaml:"bindings"`
}

// PickingConfig holds selection behaviour.
type PickingConfig struct {
	ClearOnRelease bool `yaml:"clear_on_release"`
	LogRays        bool `yaml:"log_rays"`
}

// OutlineConfig holds stencil outline settings.
type OutlineConfig struct {
	Enabled            bool       `yaml:"enabled"`
	Scale              float32    `yaml:"scale"`
	Color              [3]float32 `yaml:"color"`
	ReplaceOnDepthFail bool       `yaml:"replace_on_depth_fail"`
}

// DebugLinesConfig holds the cast-ray line buffer settings.
type DebugLinesConfig struct {
	Capacity   int  `yaml:"capacity"` // in floats, 6 per segment
	ShowBounds bool `yaml:"show_bounds"`
}

// SphereConfig places one pickable sphere.
type SphereConfig struct {
	Name       string     `yaml:"name"`
	Position   [3]float32 `yaml:"position"`
	Dimensions [3]float32 `yaml:"dimensions"`
}

// SceneConfig holds object placement.
type SceneConfig struct {
	Spheres    []SphereConfig `yaml:"spheres"`
	FloorRows  int            `yaml:"floor_rows"`
	FloorY     float32        `yaml:"floor_y"`
	PropBorder bool           `yaml:"prop_border"`
}

// ScreenshotConfig holds screenshot output settings.
type ScreenshotConfig struct {
	Dir    string  `yaml:"dir"`
	Prefix string  `yaml:"prefix"`
	Scale  float32 `yaml:"scale"` // resize factor applied before saving
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1600,
			Height:     900,
			Fullscreen: false,
			VSync:      true,
			ClearColor: [3]float32{0.05, 0.05, 0.05},
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 3},
			Yaw:         -90,
			Pitch:       0,
			Speed:       2.5,
			Sensitivity: 0.1,
			Zoom:        45,
			Near:        0.1,
			Far:         1000,
		},
		Input: InputConfig{
			SpeedMult:    3,
			SpeedMultMin: 1,
			SpeedMultMax: 50,
		},
		Picking: PickingConfig{
			ClearOnRelease: false,
			LogRays:        false,
		},
		Outline: OutlineConfig{
			Enabled:            true,
			Scale:              1.02,
			Color:              [3]float32{0.04, 0.28, 0.26},
			ReplaceOnDepthFail: false,
		},
		DebugLines: DebugLinesConfig{
			Capacity:   120,
			ShowBounds: false,
		},
		Scene: SceneConfig{
			Spheres: []SphereConfig{
				{Name: "sphere-east", Position: [3]float32{3, 0, -12}, Dimensions: [3]float32{1, 1, 1}},
				{Name: "sphere-west", Position: [3]float32{-3, 0, -16}, Dimensions: [3]float32{1, 1, 1}},
			},
			FloorRows:  20,
			FloorY:     -3,
			PropBorder: true,
		},
		Screenshot: ScreenshotConfig{
			Dir:    "screenshots",
			Prefix: "pickdemo",
			Scale:  1,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// segmentFloats is the number of floats one debug line occupies.
const segmentFloats = 6

// Validate reports settings the renderer cannot work with.
func (c *Config) Validate() error {
	var errs []error
	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}
	if c.Camera.Near <= 0 {
		errs = append(errs, fmt.Errorf("camera: near plane %g must be positive", c.Camera.Near))
	}
	if c.Camera.Near >= c.Camera.Far {
		errs = append(errs, fmt.Errorf("camera: near plane %g must be less than far plane %g", c.Camera.Near, c.Camera.Far))
	}
	if c.Input.SpeedMultMin <= 0 || c.Input.SpeedMultMin > c.Input.SpeedMultMax {
		errs = append(errs, fmt.Errorf("input: speed_mult range [%g, %g] is invalid", c.Input.SpeedMultMin, c.Input.SpeedMultMax))
	}
	if c.Outline.Scale <= 1 {
		errs = append(errs, fmt.Errorf("outline: scale %g must be greater than 1", c.Outline.Scale))
	}
	if c.DebugLines.Capacity < segmentFloats {
		errs = append(errs, fmt.Errorf("debug_lines: capacity %d must hold at least one segment (%d floats)", c.DebugLines.Capacity, segmentFloats))
	}
	if c.Screenshot.Scale <= 0 || c.Screenshot.Scale > 4 {
		errs = append(errs, fmt.Errorf("screenshot: scale %g must be in (0, 4]", c.Screenshot.Scale))
	}
	return errors.Join(errs...)
}
