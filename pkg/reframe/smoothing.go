package reframe

// driftBlend is how much of the newly observed position flows into the
// tracked position each frame while following the same bucket. Deliberately
// slow, so micro-movements of a stationary speaker do not move the crop.
const driftBlend = 0.05

// updatePosition applies the two smoothing stages: drift blending of the
// tracked face position, then camera smoothing of the visible crop center.
// When no face is visible at all the crop holds exactly where it is; it
// never snaps back to frame center on detection loss.
func (e *Engine) updatePosition(scores []faceScore, d decision, visibleFaces int) {
	st := &e.state
	if visibleFaces == 0 {
		return
	}
	if !d.switched && !d.recovered {
		if cur, ok := findBucket(scores, st.CurrentBucket); ok {
			st.TrackedX = (1-driftBlend)*st.TrackedX + driftBlend*cur.face.CenterX
		}
	}
	st.SmoothedCropX += e.cfg.CameraSmoothing * (st.TrackedX - st.SmoothedCropX)
}
