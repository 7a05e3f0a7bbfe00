package reframe

// Config holds all tunable parameters for one reframing job. Values outside
// the documented ranges are clamped, never rejected: a job must produce a
// crop for every frame of the video regardless of how it was configured.
type Config struct {
	// Source geometry
	FrameWidth  int     // source frame width in pixels
	FrameHeight int     // source frame height in pixels
	FPS         float64 // source frame rate

	// Output
	AspectRatio float64 // target width/height ratio, 9:16 portrait by default

	// Switching
	Sensitivity int // 1-10; higher switches faster and enables dialog mode

	// Camera motion
	CameraSmoothing float64 // lateral smoothing rate, 0.05-0.5
	ZoomThreshold   float64 // mouth opening (px) that forces full zoom
	MaxZoom         float64 // zoom ceiling, 1.0-1.5
}

// Documented ranges and defaults for the externally configurable options.
const (
	MinSensitivity = 1
	MaxSensitivity = 10

	MinCameraSmoothing = 0.05
	MaxCameraSmoothing = 0.5

	MinMaxZoom = 1.0
	MaxMaxZoom = 1.5

	defaultSensitivity     = 5
	defaultCameraSmoothing = 0.2
	defaultZoomThreshold   = 20.0
	defaultMaxZoom         = 1.2
	defaultFPS             = 30.0
	portraitAspect         = 9.0 / 16.0
)

// DefaultConfig returns the recommended configuration for a 1080p source.
func DefaultConfig() Config {
	return Config{
		FrameWidth:      1920,
		FrameHeight:     1080,
		FPS:             defaultFPS,
		AspectRatio:     portraitAspect,
		Sensitivity:     defaultSensitivity,
		CameraSmoothing: defaultCameraSmoothing,
		ZoomThreshold:   defaultZoomThreshold,
		MaxZoom:         defaultMaxZoom,
	}
}

// PodcastConfig returns a configuration tuned for two-person conversations:
// high sensitivity activates dialog-mode switching, and the camera pans a
// little faster to keep up with the exchange.
func PodcastConfig() Config {
	cfg := DefaultConfig()
	cfg.Sensitivity = 9
	cfg.CameraSmoothing = 0.25
	return cfg
}

// DocumentaryConfig returns a configuration for slow, deliberate reframing
// with infrequent switches.
func DocumentaryConfig() Config {
	cfg := DefaultConfig()
	cfg.Sensitivity = 3
	cfg.CameraSmoothing = 0.1
	cfg.MaxZoom = 1.1
	return cfg
}

// clamped returns a copy of the config normalized into the documented ranges,
// with zero values replaced by defaults.
func (c Config) clamped() Config {
	if c.FrameWidth <= 0 {
		c.FrameWidth = 1920
	}
	if c.FrameHeight <= 0 {
		c.FrameHeight = 1080
	}
	if c.FPS <= 0 {
		c.FPS = defaultFPS
	}
	if c.AspectRatio <= 0 {
		c.AspectRatio = portraitAspect
	}
	if c.Sensitivity == 0 {
		c.Sensitivity = defaultSensitivity
	}
	c.Sensitivity = clampInt(c.Sensitivity, MinSensitivity, MaxSensitivity)
	if c.CameraSmoothing == 0 {
		c.CameraSmoothing = defaultCameraSmoothing
	}
	c.CameraSmoothing = clamp(c.CameraSmoothing, MinCameraSmoothing, MaxCameraSmoothing)
	if c.ZoomThreshold <= 0 {
		c.ZoomThreshold = defaultZoomThreshold
	}
	if c.MaxZoom == 0 {
		c.MaxZoom = defaultMaxZoom
	}
	c.MaxZoom = clamp(c.MaxZoom, MinMaxZoom, MaxMaxZoom)
	return c
}

// requiredSustainSeconds is how long a bucket must stay active before it may
// win a switch in normal mode: 3.0s at sensitivity 1 down to 0.5s at 10.
func requiredSustainSeconds(sensitivity int) float64 {
	return lerpBySensitivity(sensitivity, 3.0, 0.5)
}

// switchCooldownSeconds is the minimum time between switch evaluations in
// normal mode: 2.5s at sensitivity 1 down to 0.5s at 10.
func switchCooldownSeconds(sensitivity int) float64 {
	return lerpBySensitivity(sensitivity, 2.5, 0.5)
}

// lerpBySensitivity maps sensitivity 1..10 linearly from atOne to atTen.
func lerpBySensitivity(sensitivity int, atOne, atTen float64) float64 {
	s := clampInt(sensitivity, MinSensitivity, MaxSensitivity)
	t := float64(s-MinSensitivity) / float64(MaxSensitivity-MinSensitivity)
	return atOne + t*(atTen-atOne)
}

// clamp limits a value to a range.
func clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

func clampInt(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
