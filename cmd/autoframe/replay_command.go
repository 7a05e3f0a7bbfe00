package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/clipforge/autoframe/internal/config"
	"github.com/clipforge/autoframe/internal/log"
	"github.com/clipforge/autoframe/pkg/reframe"
)

// Detector output is one JSON object per line, one line per video frame.
// An empty faces array (or an empty object) means nothing was detected.
type observedFace struct {
	CenterX     float64 `json:"cx"`
	CenterY     float64 `json:"cy"`
	Width       float64 `json:"w"`
	Height      float64 `json:"h"`
	MouthOpenPx float64 `json:"mouth_open_px"`
}

type observedFrame struct {
	Faces []observedFace `json:"faces"`
}

// cropRecord is one output line: the frame index plus the crop window.
type cropRecord struct {
	Frame int `json:"frame"`
	reframe.Window
}

// eventRecorder counts events by type and optionally writes them as JSONL.
type eventRecorder struct {
	enc    *json.Encoder
	counts map[reframe.EventType]int
}

func newEventRecorder(w io.Writer) *eventRecorder {
	rec := &eventRecorder{counts: make(map[reframe.EventType]int)}
	if w != nil {
		rec.enc = json.NewEncoder(w)
	}
	return rec
}

func (r *eventRecorder) RecordEvent(ev reframe.Event) {
	r.counts[ev.Type]++
	if r.enc != nil {
		_ = r.enc.Encode(ev)
	}
}

func newReplayCommand() *cobra.Command {
	var (
		inPath     string
		outPath    string
		configPath string
		eventsPath string
	)

	cmd := &cobra.Command{
		Use:   "replay",
		Short: "Replay detector observations through the reframing engine",
		Long: `Replay reads face observations (JSONL, one frame per line) and writes
one crop window per frame as JSONL. Use "-" for stdin/stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				opts = loaded
			}

			in, err := openInput(inPath)
			if err != nil {
				return err
			}
			defer in.Close()

			out, err := openOutput(outPath)
			if err != nil {
				return err
			}
			defer out.Close()

			var eventsFile *os.File
			if eventsPath != "" {
				eventsFile, err = os.Create(eventsPath)
				if err != nil {
					return fmt.Errorf("create events file: %w", err)
				}
				defer eventsFile.Close()
			}

			return runReplay(in, out, eventsFile, opts)
		},
	}

	cmd.Flags().StringVarP(&inPath, "in", "i", "-", "Observations JSONL file")
	cmd.Flags().StringVarP(&outPath, "out", "o", "-", "Crop windows JSONL file")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Job options TOML file")
	cmd.Flags().StringVar(&eventsPath, "events", "", "Also write diagnostic events as JSONL")

	return cmd
}

func openInput(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open observations: %w", err)
	}
	return f, nil
}

func openOutput(path string) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func runReplay(in io.Reader, out io.Writer, events io.Writer, opts *config.Options) error {
	rec := newEventRecorder(events)

	engine := reframe.New(opts.EngineConfig())
	engine.SetEventSink(rec)
	logger := log.With("job", engine.JobID())
	engine.SetLogger(logger)

	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetDescription("reframing"),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionShowCount(),
	)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	bw := bufio.NewWriter(out)
	enc := json.NewEncoder(bw)

	frames := 0
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var obs observedFrame
		if err := json.Unmarshal(line, &obs); err != nil {
			return fmt.Errorf("frame %d: decode observation: %w", frames, err)
		}

		frame := reframe.Frame{Faces: make([]reframe.Face, 0, len(obs.Faces))}
		for _, f := range obs.Faces {
			frame.Faces = append(frame.Faces, reframe.Face{
				CenterX:     f.CenterX,
				CenterY:     f.CenterY,
				Width:       f.Width,
				Height:      f.Height,
				MouthOpenPx: f.MouthOpenPx,
			})
		}

		window := engine.Step(frame)
		if err := enc.Encode(cropRecord{Frame: frames, Window: window}); err != nil {
			return fmt.Errorf("frame %d: write crop: %w", frames, err)
		}

		frames++
		_ = bar.Add(1)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read observations: %w", err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	_ = bar.Finish()
	fmt.Fprintln(os.Stderr)

	logger.Info("replay complete",
		"frames", frames,
		"switches", rec.counts[reframe.EventSwitch],
		"instant_switches", rec.counts[reframe.EventInstantSwitch],
		"recoveries", rec.counts[reframe.EventRecovery],
		"final_bucket", engine.State().CurrentBucket,
		"final_zoom", engine.State().CurrentZoom,
	)
	return nil
}
