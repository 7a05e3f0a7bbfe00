// Package config loads job options for autoframe from TOML files and maps
// them onto the engine configuration. Out-of-range values are clamped by the
// engine rather than rejected here: a reframing job must produce output for
// a full video no matter how it was configured.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/clipforge/autoframe/pkg/reframe"
)

//go:embed sample_config.toml
var sampleConfig string

// Source describes the decoded video the observations were taken from.
type Source struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	FPS    float64 `toml:"fps"`
}

// Tracking holds the externally adjustable reframing options. Field names
// match the job options the surrounding system passes along with a video.
type Tracking struct {
	Sensitivity     int     `toml:"tracking_sensitivity"`
	CameraSmoothing float64 `toml:"camera_smoothing"`
	ZoomThreshold   float64 `toml:"zoom_threshold"`
	ZoomLevel       float64 `toml:"zoom_level"`
}

// Options is the full job options file.
type Options struct {
	Source   Source   `toml:"source"`
	Tracking Tracking `toml:"tracking"`
}

// Default returns options matching the engine defaults.
func Default() *Options {
	cfg := reframe.DefaultConfig()
	return &Options{
		Source: Source{
			Width:  cfg.FrameWidth,
			Height: cfg.FrameHeight,
			FPS:    cfg.FPS,
		},
		Tracking: Tracking{
			Sensitivity:     cfg.Sensitivity,
			CameraSmoothing: cfg.CameraSmoothing,
			ZoomThreshold:   cfg.ZoomThreshold,
			ZoomLevel:       cfg.MaxZoom,
		},
	}
}

// Load reads options from a TOML file, with defaults for anything omitted.
func Load(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	opts := Default()
	if err := toml.Unmarshal(data, opts); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return opts, nil
}

// EngineConfig maps the options onto an engine configuration.
func (o *Options) EngineConfig() reframe.Config {
	return reframe.Config{
		FrameWidth:      o.Source.Width,
		FrameHeight:     o.Source.Height,
		FPS:             o.Source.FPS,
		Sensitivity:     o.Tracking.Sensitivity,
		CameraSmoothing: o.Tracking.CameraSmoothing,
		ZoomThreshold:   o.Tracking.ZoomThreshold,
		MaxZoom:         o.Tracking.ZoomLevel,
	}
}

// WriteSample writes the annotated sample config to path. It refuses to
// overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}

// Sample returns the annotated sample config contents.
func Sample() string {
	return sampleConfig
}
