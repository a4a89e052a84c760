package main

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/kaleido/internal/geom"
	"github.com/san-kum/kaleido/internal/scene"
	"github.com/san-kum/kaleido/internal/storage"
	"github.com/spf13/cobra"
)

func runBench(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	frames, err := bench(out, newEngine(cfg), ticks)
	if err != nil {
		return err
	}
	if !saveRun {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	id, err := st.Save(storage.RunMetadata{
		NoiseSeed:   cfg.NoiseSeed,
		SparkleSeed: cfg.SparkleSeed,
		Metrics:     summarize(frames),
	}, frames)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nsaved run %s\n", id)
	return nil
}

// bench generates n frames and prints a timing table at ten checkpoints plus
// plots of sparkle population and frame time.
func bench(out io.Writer, eng *scene.Engine, n int) ([]storage.FrameStat, error) {
	if n <= 0 {
		return nil, fmt.Errorf("ticks must be positive, got %d", n)
	}

	every := max(n/10, 1)
	frames := make([]storage.FrameStat, 0, n)

	fmt.Fprintf(out, "benchmarking %d frames\n\n", n)
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FRAME\tPRIMITIVES\tSPHERES\tTRIANGLES\tSPARKLES\tMS/FRAME")

	for i := 0; i < n; i++ {
		frame := eng.Frame()
		var prims []geom.Primitive
		start := time.Now()
		err := scene.Guard(frame, func() error {
			prims = eng.Tick()
			return scene.CheckFrame(prims)
		})
		elapsed := time.Since(start)
		if err != nil {
			return nil, err
		}

		live := 0
		if eng.Sparkles != nil {
			live = eng.Sparkles.Len()
		}
		spheres, triangles := geom.Counts(prims)
		f := storage.FrameStat{
			Frame:      frame,
			Primitives: len(prims),
			Spheres:    spheres,
			Triangles:  triangles,
			Sparkles:   live,
			Millis:     float64(elapsed.Nanoseconds()) / 1e6,
		}
		frames = append(frames, f)

		if (i+1)%every == 0 || i == n-1 {
			fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%d\t%.3f\n", f.Frame, f.Primitives, f.Spheres, f.Triangles, f.Sparkles, f.Millis)
		}
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	m := summarize(frames)
	fmt.Fprintf(out, "\naverage %.3f ms per frame, worst %.3f ms (%.0f frames/sec)\n\n", m["avg_ms"], m["max_ms"], m["frames_per_sec"])

	ceiling := 1.0
	if eng.Sparkles != nil {
		ceiling = float64(eng.Sparkles.Config().Cap)
	}
	population := make([]float64, len(frames))
	frameMs := make([]float64, len(frames))
	for i, f := range frames {
		population[i] = float64(f.Sparkles)
		frameMs[i] = f.Millis
	}
	fmt.Fprintln(out, asciigraph.Plot(population,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.LowerBound(0),
		asciigraph.UpperBound(ceiling),
		asciigraph.Caption("sparkle population"),
	))
	fmt.Fprintln(out)
	fmt.Fprintln(out, asciigraph.Plot(frameMs,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.LowerBound(0),
		asciigraph.Caption("ms per frame"),
	))
	return frames, nil
}

func summarize(frames []storage.FrameStat) map[string]float64 {
	m := map[string]float64{}
	if len(frames) == 0 {
		return m
	}
	var total, worst, sparkles float64
	for _, f := range frames {
		total += f.Millis
		worst = max(worst, f.Millis)
		sparkles += float64(f.Sparkles)
	}
	n := float64(len(frames))
	m["avg_ms"] = total / n
	m["max_ms"] = worst
	m["mean_sparkles"] = sparkles / n
	if total > 0 {
		m["frames_per_sec"] = 1000 * n / total
	}
	return m
}

func listRuns(cmd *cobra.Command, args []string) error {
	runs, err := storage.New(dataDir).List()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "no saved runs")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tWHEN\tFRAMES\tAVG MS\tMAX MS\tSEEDS")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%d\t%.3f\t%.3f\t%d/%d\n",
			r.ID, r.Timestamp.Format(time.DateTime), r.Frames,
			r.Metrics["avg_ms"], r.Metrics["max_ms"], r.NoiseSeed, r.SparkleSeed)
	}
	return w.Flush()
}
