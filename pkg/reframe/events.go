package reframe

import "gonum.org/v1/gonum/stat"

// EventType identifies an advisory diagnostic event. Events are observability
// only; they are not part of the functional contract.
type EventType string

const (
	// EventInitialLock fires when the initial scan locks onto a bucket.
	EventInitialLock EventType = "initial_lock"
	// EventSwitch fires on a normal-mode target change.
	EventSwitch EventType = "switch"
	// EventInstantSwitch fires on a dialog-mode target change.
	EventInstantSwitch EventType = "instant_switch"
	// EventRecovery fires when a lost target is replaced by the largest
	// visible face.
	EventRecovery EventType = "recovery"
	// EventStatus fires periodically with a tracking summary.
	EventStatus EventType = "status"
)

// statusInterval is how often a status event fires, in frames.
const statusInterval = 300

// Event is one diagnostic record. Fields beyond Type and Frame are filled
// only where they apply: FromBucket and Score for switches, the crop and
// sustained-activity summary for status.
type Event struct {
	Type       EventType `json:"type"`
	Frame      int       `json:"frame"`
	Bucket     int       `json:"bucket"`
	FromBucket int       `json:"from_bucket,omitempty"`
	Score      float64   `json:"score,omitempty"`

	CropX         float64 `json:"crop_x,omitempty"`
	Zoom          float64 `json:"zoom,omitempty"`
	MeanSustained float64 `json:"mean_sustained,omitempty"`
	MaxSustained  float64 `json:"max_sustained,omitempty"`
}

// EventSink receives diagnostic events from an engine. Implementations must
// not retain the engine; events carry everything they describe.
type EventSink interface {
	RecordEvent(Event)
}

func (e *Engine) emit(ev Event) {
	switch ev.Type {
	case EventInitialLock:
		e.logger.Info("initial lock", "frame", ev.Frame, "bucket", ev.Bucket, "score", ev.Score)
	case EventSwitch:
		e.logger.Info("switch", "frame", ev.Frame, "from", ev.FromBucket, "to", ev.Bucket, "score", ev.Score)
	case EventInstantSwitch:
		e.logger.Info("instant switch", "frame", ev.Frame, "from", ev.FromBucket, "to", ev.Bucket, "score", ev.Score)
	case EventRecovery:
		e.logger.Warn("recovery", "frame", ev.Frame, "from", ev.FromBucket, "to", ev.Bucket)
	case EventStatus:
		e.logger.Debug("status",
			"frame", ev.Frame,
			"bucket", ev.Bucket,
			"crop_x", ev.CropX,
			"zoom", ev.Zoom,
			"mean_sustained", ev.MeanSustained,
			"max_sustained", ev.MaxSustained,
		)
	}
	if e.sink != nil {
		e.sink.RecordEvent(ev)
	}
}

// emitStatus summarizes sustained activity across all buckets observed so
// far. Buckets are visited in ascending order so the summary is
// deterministic.
func (e *Engine) emitStatus() {
	st := &e.state
	var sustained []float64
	maxSustained := 0.0
	for b := 0; b < numBuckets; b++ {
		bs, ok := st.perBucket[b]
		if !ok {
			continue
		}
		sustained = append(sustained, bs.sustained)
		if bs.sustained > maxSustained {
			maxSustained = bs.sustained
		}
	}
	mean := 0.0
	if len(sustained) > 0 {
		mean = stat.Mean(sustained, nil)
	}
	e.emit(Event{
		Type:          EventStatus,
		Frame:         st.Frame,
		Bucket:        st.CurrentBucket,
		CropX:         st.SmoothedCropX,
		Zoom:          st.CurrentZoom,
		MeanSustained: mean,
		MaxSustained:  maxSustained,
	})
}
