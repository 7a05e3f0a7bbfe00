package reframe

import "math"

// Activity thresholds. A bucket above activityHigh is confidently speaking;
// below activityLow it is near-silent. The band between the two is hysteresis
// for the lock flag so it does not chatter at a single boundary.
const (
	activityHigh = 2.0
	activityLow  = 0.3

	// Sustained counters decay twice as fast as they grow: brief bursts do
	// not accumulate false sustain, brief lulls do not erase real speech.
	sustainGrowth = 1.0
	sustainDecay  = 2.0

	movementScale = 10.0
)

// faceScore is the per-face scoring result for one frame, keyed by the face's
// bucket. instant drives lock and recovery decisions; ranking decides who the
// camera should prefer.
type faceScore struct {
	face    Face
	bucket  int
	instant float64
	ranking float64
}

// sizeDivisor scales down the influence of raw face size as the scene gets
// crowded: in multi-person shots the biggest face is frequently not the
// speaker.
func sizeDivisor(visibleFaces int) float64 {
	switch {
	case visibleFaces <= 1:
		return 150000
	case visibleFaces == 2:
		return 300000
	default:
		return 500000
	}
}

// classify assigns each face to a bucket and keeps at most one face per
// bucket (the larger one). The result is ordered by ascending bucket index so
// that every later selection is deterministic, with ties breaking to the
// lowest bucket.
func classify(faces []Face, frameWidth float64) []faceScore {
	var byBucket [numBuckets]*Face
	for i := range faces {
		b := bucketFor(faces[i].CenterX, frameWidth)
		if byBucket[b] == nil || faces[i].Area() > byBucket[b].Area() {
			byBucket[b] = &faces[i]
		}
	}
	out := make([]faceScore, 0, len(faces))
	for b := 0; b < numBuckets; b++ {
		if byBucket[b] != nil {
			out = append(out, faceScore{face: *byBucket[b], bucket: b})
		}
	}
	return out
}

// scoreFace computes the instantaneous and ranking activity for one observed
// face. Movement is measured against the bucket's previous horizontal
// position; visibleFaces is the number of faces in the whole frame.
func scoreFace(f Face, st *bucketState, visibleFaces int) (instant, ranking float64) {
	movement := 0.0
	if st.hasLastX {
		movement = math.Abs(f.CenterX-st.lastX) / movementScale
	}
	lip := f.MouthOpenPx
	instant = lip*2 + movement
	ranking = instant*1.5 + lip*2.5 + movement + f.Area()/sizeDivisor(visibleFaces)
	return instant, ranking
}

// updateSustained advances one bucket's sustained counter for this frame.
func updateSustained(st *bucketState, instant float64) {
	if instant > activityHigh {
		st.sustained += sustainGrowth
	} else {
		st.sustained -= sustainDecay
		if st.sustained < 0 {
			st.sustained = 0
		}
	}
}

// sustainedReady reports whether a bucket has been reliably active for long
// enough to win a normal-mode switch.
func sustainedReady(st *bucketState, fps float64, sensitivity int) bool {
	if st == nil {
		return false
	}
	return st.sustained/fps >= requiredSustainSeconds(sensitivity)
}
