package reframe

import (
	"math"
	"testing"
)

func TestZoom_BoundsAndRatePerFrame(t *testing.T) {
	cfg := DefaultConfig()
	e, _ := newTestEngine(t, cfg)

	maxDelta := zoomSmoothingRate*(cfg.MaxZoom-1.0) + 1e-9
	prev := e.State().CurrentZoom

	for i := 0; i < 400; i++ {
		// Mouth opening sweeps between silent and shouting to exercise every
		// zoom target branch.
		mouth := float64(i % 31)
		e.Step(frameOf(face(560, mouth)))

		z := e.State().CurrentZoom
		if z < 1.0 || z > cfg.MaxZoom {
			t.Fatalf("frame %d: zoom %v outside [1, %v]", i, z, cfg.MaxZoom)
		}
		if math.Abs(z-prev) > maxDelta {
			t.Fatalf("frame %d: zoom moved %v in one frame, max %v", i, math.Abs(z-prev), maxDelta)
		}
		prev = z
	}
}

func TestTargetZoom(t *testing.T) {
	cfg := DefaultConfig() // MaxZoom 1.2, ZoomThreshold 20
	e, _ := newTestEngine(t, cfg)
	e.state.Scanning = false
	e.state.CurrentBucket = 3

	cur := func(mouth, instant float64) []faceScore {
		return []faceScore{{face: face(560, mouth), bucket: 3, instant: instant}}
	}

	tests := []struct {
		name   string
		scores []faceScore
		locked bool
		d      decision
		want   float64
	}{
		{"switch punches in", cur(0, 0), false, decision{switched: true}, 1.2},
		{"recovery pulls back", cur(0, 0), false, decision{recovered: true}, 1.0},
		{"mouth at threshold forces max", cur(20, 4), false, decision{}, 1.2},
		{"locked scales with activity", cur(1, 5), true, decision{}, 1.1},
		{"locked clamps at max", cur(1, 50), true, decision{}, 1.2},
		{"moderate mouth interpolates", cur(10, 0.1), false, decision{}, 1.1},
		{"silent face stays neutral", cur(0, 0), false, decision{}, 1.0},
		{"target unseen eases out", nil, true, decision{}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e.state.Locked = tt.locked
			if got := e.targetZoom(tt.scores, tt.d); !almostEq(got, tt.want) {
				t.Errorf("targetZoom = %v, want %v", got, tt.want)
			}
		})
	}
}
