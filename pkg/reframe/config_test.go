package reframe

import "testing"

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Sensitivity != 5 {
		t.Errorf("Sensitivity = %d, want 5", cfg.Sensitivity)
	}
	if cfg.CameraSmoothing != 0.2 {
		t.Errorf("CameraSmoothing = %v, want 0.2", cfg.CameraSmoothing)
	}
	if cfg.MaxZoom != 1.2 {
		t.Errorf("MaxZoom = %v, want 1.2", cfg.MaxZoom)
	}
	if cfg.ZoomThreshold != 20.0 {
		t.Errorf("ZoomThreshold = %v, want 20", cfg.ZoomThreshold)
	}
	if cfg.AspectRatio != 9.0/16.0 {
		t.Errorf("AspectRatio = %v, want 9:16", cfg.AspectRatio)
	}
}

func TestPodcastConfig_EnablesDialogMode(t *testing.T) {
	cfg := PodcastConfig()
	if cfg.Sensitivity < dialogSensitivity {
		t.Errorf("Sensitivity = %d, want >= %d so dialog mode can activate",
			cfg.Sensitivity, dialogSensitivity)
	}
}

func TestDocumentaryConfig_IsSlower(t *testing.T) {
	cfg := DocumentaryConfig()
	def := DefaultConfig()
	if cfg.Sensitivity >= def.Sensitivity {
		t.Errorf("Sensitivity = %d, want below default %d", cfg.Sensitivity, def.Sensitivity)
	}
	if cfg.CameraSmoothing >= def.CameraSmoothing {
		t.Errorf("CameraSmoothing = %v, want below default %v", cfg.CameraSmoothing, def.CameraSmoothing)
	}
}

func TestConfigClamped(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		chk  func(t *testing.T, c Config)
	}{
		{
			"zero values get defaults",
			Config{},
			func(t *testing.T, c Config) {
				if c.Sensitivity != 5 || c.CameraSmoothing != 0.2 || c.MaxZoom != 1.2 {
					t.Errorf("defaults not applied: %+v", c)
				}
				if c.FrameWidth != 1920 || c.FrameHeight != 1080 || c.FPS != 30 {
					t.Errorf("source defaults not applied: %+v", c)
				}
			},
		},
		{
			"sensitivity clamps both ways",
			Config{Sensitivity: -3},
			func(t *testing.T, c Config) {
				if c.Sensitivity != MinSensitivity {
					t.Errorf("Sensitivity = %d, want %d", c.Sensitivity, MinSensitivity)
				}
			},
		},
		{
			"smoothing below range clamps up",
			Config{CameraSmoothing: 0.001},
			func(t *testing.T, c Config) {
				if c.CameraSmoothing != MinCameraSmoothing {
					t.Errorf("CameraSmoothing = %v, want %v", c.CameraSmoothing, MinCameraSmoothing)
				}
			},
		},
		{
			"zoom below one clamps up",
			Config{MaxZoom: 0.5},
			func(t *testing.T, c Config) {
				if c.MaxZoom != MinMaxZoom {
					t.Errorf("MaxZoom = %v, want %v", c.MaxZoom, MinMaxZoom)
				}
			},
		},
		{
			"negative zoom threshold gets default",
			Config{ZoomThreshold: -1},
			func(t *testing.T, c Config) {
				if c.ZoomThreshold != 20.0 {
					t.Errorf("ZoomThreshold = %v, want 20", c.ZoomThreshold)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.chk(t, tt.in.clamped())
		})
	}
}

func TestSwitchCooldownSeconds(t *testing.T) {
	if got := switchCooldownSeconds(1); !almostEq(got, 2.5) {
		t.Errorf("cooldown at sensitivity 1 = %v, want 2.5", got)
	}
	if got := switchCooldownSeconds(10); !almostEq(got, 0.5) {
		t.Errorf("cooldown at sensitivity 10 = %v, want 0.5", got)
	}
	if switchCooldownSeconds(2) <= switchCooldownSeconds(9) {
		t.Error("cooldown must shrink as sensitivity grows")
	}
}
