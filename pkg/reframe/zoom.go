package reframe

// zoomSmoothingRate is the fixed exponential smoothing rate for zoom,
// independent of the configurable camera smoothing: viewers tolerate faster
// zoom changes than faster pans.
const zoomSmoothingRate = 0.08

// lockZoomGain converts instantaneous activity to extra zoom while locked.
const lockZoomGain = 0.02

// targetZoom derives the zoom target for this frame. A switch punches in to
// max zoom as a cue that the speaker changed; a recovery pulls back to 1.0.
func (e *Engine) targetZoom(scores []faceScore, d decision) float64 {
	st := &e.state
	cfg := e.cfg

	if d.switched {
		return cfg.MaxZoom
	}
	if d.recovered || st.Scanning {
		return 1.0
	}

	cur, ok := findBucket(scores, st.CurrentBucket)
	if !ok {
		// Target unseen this frame; ease back toward neutral.
		return 1.0
	}
	if cur.face.MouthOpenPx >= cfg.ZoomThreshold {
		return cfg.MaxZoom
	}
	if st.Locked {
		return clamp(1.0+cur.instant*lockZoomGain, 1.0, cfg.MaxZoom)
	}
	if cur.face.MouthOpenPx > 0 {
		return 1.0 + cur.face.MouthOpenPx/cfg.ZoomThreshold*(cfg.MaxZoom-1.0)
	}
	return 1.0
}

// updateZoom smooths the actual zoom toward the target and keeps it inside
// [1, MaxZoom].
func (e *Engine) updateZoom(scores []faceScore, d decision) {
	st := &e.state
	target := e.targetZoom(scores, d)
	st.CurrentZoom += zoomSmoothingRate * (target - st.CurrentZoom)
	st.CurrentZoom = clamp(st.CurrentZoom, 1.0, e.cfg.MaxZoom)
}
