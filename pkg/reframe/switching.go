package reframe

// decision is what the switch state machine resolved for one frame. The zoom
// and position stages need to know, because a switch punches the zoom in and
// both a switch and a recovery retarget the tracked position directly.
type decision struct {
	switched  bool
	recovered bool
}

// findBucket returns the score entry for a bucket, if that bucket was
// observed this frame.
func findBucket(scores []faceScore, bucket int) (*faceScore, bool) {
	for i := range scores {
		if scores[i].bucket == bucket {
			return &scores[i], true
		}
	}
	return nil, false
}

// decideSwitch runs the per-frame switch state machine while tracking.
func (e *Engine) decideSwitch(scores []faceScore, visibleFaces int) decision {
	st := &e.state

	cur, curSeen := findBucket(scores, st.CurrentBucket)
	var curInstant, curRanking float64
	if curSeen {
		curInstant = cur.instant
		curRanking = cur.ranking
	} else {
		st.FramesSinceTargetSeen++
	}

	// Recovery: the target has been unseen long enough that its activity
	// history is stale, so the largest currently visible face is the safer
	// fallback than the most recently active one. With no face visible at
	// all we keep waiting and hold position.
	if st.FramesSinceTargetSeen >= maxFramesWithoutFace && len(scores) > 0 {
		best := &scores[0]
		for i := range scores[1:] {
			if scores[i+1].face.Area() > best.face.Area() {
				best = &scores[i+1]
			}
		}
		from := st.CurrentBucket
		st.CurrentBucket = best.bucket
		st.TrackedX = best.face.CenterX
		st.FramesSinceTargetSeen = 0
		st.Locked = false
		e.emit(Event{Type: EventRecovery, Frame: st.Frame, Bucket: best.bucket, FromBucket: from})
		return decision{recovered: true}
	}
	if curSeen {
		st.FramesSinceTargetSeen = 0
	}

	// Lock hysteresis: confidently active locks, near-silence unlocks, the
	// band in between leaves the flag alone.
	if curInstant > activityHigh {
		st.Locked = true
	} else if curInstant < activityLow {
		st.Locked = false
	}

	// Candidate: the highest-ranking bucket other than the current one.
	// Scores are in ascending bucket order and the comparison is strict, so
	// ties break to the lowest bucket.
	var cand *faceScore
	for i := range scores {
		if scores[i].bucket == st.CurrentBucket {
			continue
		}
		if cand == nil || scores[i].ranking > cand.ranking {
			cand = &scores[i]
		}
	}
	if cand == nil || cand.ranking <= minRankingToSwitch {
		return decision{}
	}

	fps := e.cfg.FPS

	// 2-person dialog: waiting for sustain adds perceptible lag to a natural
	// back-and-forth, so a 2x activity margin plus a minimum stay substitute
	// for it.
	if e.cfg.Sensitivity >= dialogSensitivity && visibleFaces == 2 {
		if float64(st.FramesSinceLastSwitch) >= dialogMinSwitchSeconds*fps &&
			cand.ranking > curRanking*dialogRatio {
			e.switchTo(cand, EventInstantSwitch)
			return decision{switched: true}
		}
		return decision{}
	}

	// Normal mode.
	cooldown := int(switchCooldownSeconds(e.cfg.Sensitivity) * fps)
	if st.FramesSinceLastSwitch <= cooldown {
		return decision{}
	}
	if st.Locked && curInstant >= activityLow {
		return decision{}
	}
	if !sustainedReady(st.perBucket[cand.bucket], fps, e.cfg.Sensitivity) {
		return decision{}
	}
	e.switchTo(cand, EventSwitch)
	return decision{switched: true}
}

// switchTo retargets the camera onto a new bucket. The lock flag is cleared
// so it is re-evaluated fresh against the new target next frame.
func (e *Engine) switchTo(s *faceScore, typ EventType) {
	st := &e.state
	from := st.CurrentBucket
	st.CurrentBucket = s.bucket
	st.TrackedX = s.face.CenterX
	st.FramesSinceLastSwitch = 0
	st.FramesSinceTargetSeen = 0
	st.Locked = false
	e.emit(Event{Type: typ, Frame: st.Frame, Bucket: s.bucket, FromBucket: from, Score: s.ranking})
}
