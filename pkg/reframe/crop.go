package reframe

import "math"

// Window is the per-frame output: the crop rectangle in source-pixel
// coordinates plus the zoom it was derived from. The renderer crops, scales,
// and encodes; the engine only ever varies the center and the zoom.
type Window struct {
	X      int     `json:"x"`
	Y      int     `json:"y"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Zoom   float64 `json:"zoom"`
}

// baseCrop is the largest window with the target aspect ratio that fits the
// source at zoom 1. Sources narrower than the target aspect fall back to
// full width with reduced height.
func baseCrop(cfg Config) (w, h float64) {
	w = float64(cfg.FrameHeight) * cfg.AspectRatio
	h = float64(cfg.FrameHeight)
	if w > float64(cfg.FrameWidth) {
		w = float64(cfg.FrameWidth)
		h = w / cfg.AspectRatio
	}
	return w, h
}

// buildWindow turns the smoothed crop center and current zoom into a pixel
// rectangle. The center is clamped, not the size, so output dimensions stay
// consistent for a given zoom across the whole job.
func buildWindow(centerX, zoom float64, cfg Config) Window {
	bw, bh := baseCrop(cfg)
	w := bw / zoom
	h := bh / zoom

	cx := clamp(centerX, w/2, float64(cfg.FrameWidth)-w/2)
	x := cx - w/2
	y := (float64(cfg.FrameHeight) - h) / 2

	wi := int(math.Round(w))
	hi := int(math.Round(h))
	xi := int(math.Round(x))
	yi := int(math.Round(y))

	// Rounding must not push the rectangle outside the source.
	if xi+wi > cfg.FrameWidth {
		xi = cfg.FrameWidth - wi
	}
	if yi+hi > cfg.FrameHeight {
		yi = cfg.FrameHeight - hi
	}
	if xi < 0 {
		xi = 0
	}
	if yi < 0 {
		yi = 0
	}

	return Window{X: xi, Y: yi, Width: wi, Height: hi, Zoom: zoom}
}
