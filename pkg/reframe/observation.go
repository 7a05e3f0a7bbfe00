// Package reframe implements the active-speaker virtual camera used to turn
// wide landscape video into portrait clips. Each video job owns one Engine;
// the caller feeds it one detector observation per frame, in presentation
// order, and receives the crop window the renderer should apply to that frame.
//
// The engine does not detect faces, touch audio, or perform any I/O. It only
// decides where the camera points.
package reframe

import "math"

// Face is one detected face in a frame, in source-pixel coordinates.
// MouthOpenPx is the landmark-derived lip opening in pixels; zero when the
// detector had no landmarks for this face.
type Face struct {
	CenterX     float64
	CenterY     float64
	Width       float64
	Height      float64
	MouthOpenPx float64
}

// Area returns the bounding-box area in square pixels.
func (f Face) Area() float64 {
	return f.Width * f.Height
}

// Frame is the detector output for a single video frame. An empty Faces slice
// is a normal observation, not an error.
type Frame struct {
	Faces []Face
}

// sanitize drops faces with non-finite or negative geometry so malformed
// detector output never reaches tracking state. A bad mouth measurement is
// degraded to "no landmarks" rather than discarding the face.
func sanitize(faces []Face) []Face {
	out := make([]Face, 0, len(faces))
	for _, f := range faces {
		if !finite(f.CenterX) || !finite(f.CenterY) || !finite(f.Width) || !finite(f.Height) {
			continue
		}
		if f.CenterX < 0 || f.CenterY < 0 || f.Width <= 0 || f.Height <= 0 {
			continue
		}
		if !finite(f.MouthOpenPx) || f.MouthOpenPx < 0 {
			f.MouthOpenPx = 0
		}
		out = append(out, f)
	}
	return out
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
