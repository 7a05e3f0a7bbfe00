package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/clipforge/autoframe/internal/config"
	"github.com/clipforge/autoframe/pkg/reframe"
)

func observationLine(t *testing.T, faces ...observedFace) string {
	t.Helper()
	data, err := json.Marshal(observedFrame{Faces: faces})
	if err != nil {
		t.Fatalf("marshal observation: %v", err)
	}
	return string(data)
}

func TestRunReplay(t *testing.T) {
	var lines []string
	for i := 0; i < 40; i++ {
		lines = append(lines, observationLine(t, observedFace{
			CenterX: 560, CenterY: 540, Width: 200, Height: 200, MouthOpenPx: 8,
		}))
	}
	// Blank lines and empty frames must both be tolerated.
	lines = append(lines, "", "{}")

	in := strings.NewReader(strings.Join(lines, "\n") + "\n")
	var out bytes.Buffer

	if err := runReplay(in, &out, nil, config.Default()); err != nil {
		t.Fatalf("runReplay: %v", err)
	}

	cfg := config.Default().EngineConfig()
	var got int
	scanner := bufio.NewScanner(&out)
	for scanner.Scan() {
		var rec cropRecord
		if err := json.Unmarshal(scanner.Bytes(), &rec); err != nil {
			t.Fatalf("line %d: decode crop: %v", got, err)
		}
		if rec.Frame != got {
			t.Errorf("line %d: frame index %d", got, rec.Frame)
		}
		if rec.X < 0 || rec.X+rec.Width > cfg.FrameWidth {
			t.Errorf("frame %d: crop [%d, %d) outside source width", rec.Frame, rec.X, rec.X+rec.Width)
		}
		if rec.Zoom < 1.0 || rec.Zoom > cfg.MaxZoom {
			t.Errorf("frame %d: zoom %v out of range", rec.Frame, rec.Zoom)
		}
		got++
	}
	if got != 41 {
		t.Fatalf("output frames = %d, want 41 (blank line skipped, empty object kept)", got)
	}
}

func TestRunReplay_WritesEvents(t *testing.T) {
	var lines []string
	for i := 0; i < 320; i++ {
		lines = append(lines, observationLine(t, observedFace{
			CenterX: 960, CenterY: 540, Width: 200, Height: 200, MouthOpenPx: 10,
		}))
	}

	in := strings.NewReader(strings.Join(lines, "\n"))
	var out, events bytes.Buffer

	if err := runReplay(in, &out, &events, config.Default()); err != nil {
		t.Fatalf("runReplay: %v", err)
	}

	var sawLock, sawStatus bool
	scanner := bufio.NewScanner(&events)
	for scanner.Scan() {
		var ev reframe.Event
		if err := json.Unmarshal(scanner.Bytes(), &ev); err != nil {
			t.Fatalf("decode event: %v", err)
		}
		switch ev.Type {
		case reframe.EventInitialLock:
			sawLock = true
		case reframe.EventStatus:
			sawStatus = true
		}
	}
	if !sawLock {
		t.Error("no initial_lock event recorded")
	}
	if !sawStatus {
		t.Error("no status event recorded after 300 frames")
	}
}

func TestRunReplay_RejectsMalformedLine(t *testing.T) {
	in := strings.NewReader("{\"faces\": [}\n")
	var out bytes.Buffer

	if err := runReplay(in, &out, nil, config.Default()); err == nil {
		t.Fatal("expected decode error for malformed observation line")
	}
}
