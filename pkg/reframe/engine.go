package reframe

import (
	"log/slog"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/floats"
)

// Core tracking constants. These are tuned values, not configuration: the
// externally adjustable knobs live in Config.
const (
	// maxFramesWithoutFace is how long the tracked bucket may go unseen
	// before recovery kicks in (~0.5s at 30fps).
	maxFramesWithoutFace = 15

	// initialScanFrames is how many frames the initial scan accumulates
	// ranking scores before locking onto the most active bucket.
	initialScanFrames = 15

	// minRankingToSwitch is the floor a candidate's ranking must clear in
	// either switching mode.
	minRankingToSwitch = 3.0

	// Dialog mode: with exactly two faces at high sensitivity, sustain time
	// is traded for an activity-ratio margin and a minimum stay.
	dialogSensitivity      = 7
	dialogMinSwitchSeconds = 2.5
	dialogRatio            = 2.0
)

// TrackingState is the engine's entire mutable memory for one video job.
// It is owned exclusively by one Engine and mutated exactly once per frame.
type TrackingState struct {
	CurrentBucket         int
	Locked                bool
	FramesSinceTargetSeen int
	FramesSinceLastSwitch int
	TrackedX              float64
	SmoothedCropX         float64
	CurrentZoom           float64

	// Frame is the number of frames processed so far.
	Frame int

	// Scanning is true until the initial scan has locked onto a bucket.
	Scanning bool

	scanScores  [numBuckets]float64
	scanSawFace bool
	perBucket   map[int]*bucketState
}

// bucket returns the state for a bucket, creating it on first observation.
func (st *TrackingState) bucket(b int) *bucketState {
	bs, ok := st.perBucket[b]
	if !ok {
		bs = &bucketState{}
		st.perBucket[b] = bs
	}
	return bs
}

// Engine is the active-speaker camera for a single video job. It is not safe
// for concurrent use; run one engine per job and feed frames in presentation
// order. Engines for different jobs share nothing and may run concurrently.
type Engine struct {
	cfg    Config
	logger *slog.Logger
	sink   EventSink
	jobID  string
	state  TrackingState
}

// New creates an engine for one job. The config is clamped into its
// documented ranges, never rejected: reframing must produce output for a
// full video regardless of configuration.
func New(cfg Config) *Engine {
	cfg = cfg.clamped()
	e := &Engine{
		cfg:   cfg,
		jobID: uuid.NewString(),
	}
	e.logger = slog.Default().With("job", e.jobID)
	e.state = TrackingState{
		CurrentZoom:   1.0,
		TrackedX:      float64(cfg.FrameWidth) / 2,
		SmoothedCropX: float64(cfg.FrameWidth) / 2,
		Scanning:      true,
		perBucket:     make(map[int]*bucketState),
	}
	return e
}

// SetLogger replaces the engine's logger. The job ID is attached as an
// attribute so concurrent jobs stay distinguishable.
func (e *Engine) SetLogger(l *slog.Logger) {
	if l != nil {
		e.logger = l.With("job", e.jobID)
	}
}

// SetEventSink registers a sink for advisory diagnostic events.
func (e *Engine) SetEventSink(s EventSink) {
	e.sink = s
}

// JobID returns the identifier attached to this engine's log output.
func (e *Engine) JobID() string {
	return e.jobID
}

// Config returns the clamped configuration the engine is running with.
func (e *Engine) Config() Config {
	return e.cfg
}

// State returns a snapshot of the tracking state for inspection.
func (e *Engine) State() TrackingState {
	return e.state
}

// Step consumes the detector observation for the next frame and returns the
// crop window for it. It never fails: malformed faces are dropped at the
// boundary and detector gaps of any length degrade to holding the last good
// position. Output is deterministic given the observation sequence and
// config.
func (e *Engine) Step(frame Frame) Window {
	st := &e.state

	faces := sanitize(frame.Faces)
	scores := classify(faces, float64(e.cfg.FrameWidth))
	e.scoreAndTrack(scores, len(faces))

	var d decision
	if st.Scanning {
		e.stepScan(scores)
	} else {
		d = e.decideSwitch(scores, len(faces))
	}

	e.updateZoom(scores, d)
	e.updatePosition(scores, d, len(faces))

	win := buildWindow(st.SmoothedCropX, st.CurrentZoom, e.cfg)

	st.Frame++
	st.FramesSinceLastSwitch++
	if st.Frame%statusInterval == 0 {
		e.emitStatus()
	}
	return win
}

// scoreAndTrack computes per-face activity for this frame and advances every
// known bucket's sustained counter (observed buckets by their instantaneous
// activity, absent buckets by decay).
func (e *Engine) scoreAndTrack(scores []faceScore, visibleFaces int) {
	st := &e.state
	var seen [numBuckets]bool
	for i := range scores {
		s := &scores[i]
		bs := st.bucket(s.bucket)
		s.instant, s.ranking = scoreFace(s.face, bs, visibleFaces)
		bs.lastX = s.face.CenterX
		bs.hasLastX = true
		bs.lastSeenFrame = st.Frame
		updateSustained(bs, s.instant)
		seen[s.bucket] = true
	}
	for b := 0; b < numBuckets; b++ {
		if seen[b] {
			continue
		}
		if bs, ok := st.perBucket[b]; ok {
			updateSustained(bs, 0)
		}
	}
}

// stepScan accumulates ranking scores during the initial scan and locks onto
// the bucket with the highest total. The most active face wins, not the
// largest: the biggest face in frame 1 is frequently not who ends up
// speaking. If the clip opens with no faces at all, the scan extends until
// the first face appears.
func (e *Engine) stepScan(scores []faceScore) {
	st := &e.state
	for _, s := range scores {
		st.scanScores[s.bucket] += s.ranking
		st.scanSawFace = true
	}
	if st.Frame+1 < initialScanFrames || !st.scanSawFace {
		return
	}

	// floats.MaxIdx returns the first maximum, so ties break to the lowest
	// bucket index.
	best := floats.MaxIdx(st.scanScores[:])
	st.Scanning = false
	st.CurrentBucket = best
	st.FramesSinceLastSwitch = 0
	st.FramesSinceTargetSeen = 0
	if bs, ok := st.perBucket[best]; ok && bs.hasLastX {
		st.TrackedX = bs.lastX
	}
	e.emit(Event{
		Type:   EventInitialLock,
		Frame:  st.Frame,
		Bucket: best,
		Score:  st.scanScores[best],
	})
}
