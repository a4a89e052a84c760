package main

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/san-kum/kaleido/internal/config"
	"github.com/san-kum/kaleido/internal/noise"
	"github.com/san-kum/kaleido/internal/scene"
	"github.com/san-kum/kaleido/internal/sparkle"
	"github.com/san-kum/kaleido/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPresetsCommand(t *testing.T) {
	out, err := execute(t, "presets")
	if err != nil {
		t.Fatalf("presets failed: %v", err)
	}
	for _, name := range config.ListPresets() {
		if !strings.Contains(out, name) {
			t.Errorf("output missing preset %s:\n%s", name, out)
		}
	}
	if !strings.Contains(out, "1920x1080") {
		t.Errorf("output missing 1080p size:\n%s", out)
	}
}

func TestSaveConfigAppliesPresetAndFlags(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.yaml")
	if _, err := execute(t, "save-config", path, "--preset", "720p", "--fps", "24", "--seed", "9"); err != nil {
		t.Fatalf("save-config failed: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Window.Width != 1280 || cfg.FPS != 24 || !cfg.Overlay {
		t.Errorf("expected 720p preset at 24 fps, got %+v", cfg)
	}
	if cfg.NoiseSeed != 9 || cfg.SparkleSeed != 9 {
		t.Errorf("expected both seeds 9, got %d %d", cfg.NoiseSeed, cfg.SparkleSeed)
	}
}

func TestConfigFileOverridesPreset(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	if err := os.WriteFile(in, []byte("background: \"#102030\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.yaml")
	if _, err := execute(t, "save-config", out, "--preset", "1080p", "--config", in); err != nil {
		t.Fatalf("save-config failed: %v", err)
	}

	cfg, err := config.Load(out)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Background != "#102030" || cfg.Window.Width != 1920 {
		t.Errorf("expected file background over 1080p, got %+v", cfg)
	}
}

func TestUnknownPreset(t *testing.T) {
	if _, err := execute(t, "save-config", filepath.Join(t.TempDir(), "x.yaml"), "--preset", "nope"); err == nil {
		t.Error("expected error for unknown preset")
	}
}

func TestInvalidFlagsRejected(t *testing.T) {
	if _, err := execute(t, "bench", "--ticks", "1", "--width", "0"); err == nil {
		t.Error("expected validation error for zero width")
	}
}

func TestBenchCommand(t *testing.T) {
	out, err := execute(t, "bench", "--ticks", "20", "--seed", "3")
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	for _, want := range []string{"FRAME", "PRIMITIVES", "sparkle population", "ms per frame"} {
		if !strings.Contains(out, want) {
			t.Errorf("bench output missing %q", want)
		}
	}
}

func TestBenchPopulationPlotSpansCap(t *testing.T) {
	var out bytes.Buffer
	eng := scene.NewEngine(noise.New(1), sparkle.New(rand.New(rand.NewSource(1))))
	if _, err := bench(&out, eng, 5); err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	want := fmt.Sprintf("%.2f", float64(sparkle.Cap))
	if !strings.Contains(out.String(), want) {
		t.Errorf("population plot should reach the sparkle cap %s:\n%s", want, out.String())
	}
}

func TestBenchStopsOnNonFiniteFrame(t *testing.T) {
	var out bytes.Buffer
	nan := noise.Func(func(x, y float64) float64 { return math.NaN() })
	if _, err := bench(&out, scene.NewEngine(nan, nil), 3); !errors.Is(err, scene.ErrRenderer) {
		t.Errorf("expected ErrRenderer, got %v", err)
	}
}

func TestBenchRejectsZeroTicks(t *testing.T) {
	var out bytes.Buffer
	if _, err := bench(&out, scene.NewEngine(noise.New(1), nil), 0); err == nil {
		t.Error("expected error for zero ticks")
	}
}

func TestBenchWithoutSparkles(t *testing.T) {
	var out bytes.Buffer
	frames, err := bench(&out, scene.NewEngine(noise.New(1), nil), 5)
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	if len(frames) != 5 || frames[4].Frame != 4 || frames[0].Primitives != scene.FrameSize {
		t.Errorf("unexpected frames %+v", frames)
	}
}

func TestBenchSaveAndList(t *testing.T) {
	dir := t.TempDir()
	out, err := execute(t, "bench", "--ticks", "10", "--seed", "5", "--save", "--data", dir)
	if err != nil {
		t.Fatalf("bench failed: %v", err)
	}
	if !strings.Contains(out, "saved run bench_") {
		t.Errorf("expected saved run id in output:\n%s", out)
	}

	out, err = execute(t, "runs", "--data", dir)
	if err != nil {
		t.Fatalf("runs failed: %v", err)
	}
	if !strings.Contains(out, "bench_") || !strings.Contains(out, "5/5") {
		t.Errorf("expected run listed with seeds 5/5:\n%s", out)
	}

	out, err = execute(t, "runs", "--data", filepath.Join(dir, "empty"))
	if err != nil || !strings.Contains(out, "no saved runs") {
		t.Errorf("expected empty listing, got %q, %v", out, err)
	}
}

func TestSnapshotCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.svg")
	if _, err := execute(t, "snapshot", path, "--frame", "3", "--seed", "2", "--width", "320", "--height", "240"); err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	svg := string(data)
	if !strings.Contains(svg, `width="320" height="240"`) || !strings.Contains(svg, "<circle") {
		t.Errorf("unexpected svg:\n%.200s", svg)
	}

	if _, err := execute(t, "snapshot", path, "--frame", "-1"); err == nil {
		t.Error("expected error for negative frame")
	}
}

func TestSummarize(t *testing.T) {
	m := summarize([]storage.FrameStat{{Millis: 1, Sparkles: 2}, {Millis: 3, Sparkles: 4}})
	if m["avg_ms"] != 2 || m["max_ms"] != 3 || m["mean_sparkles"] != 3 || m["frames_per_sec"] != 500 {
		t.Errorf("unexpected summary %v", m)
	}
	if len(summarize(nil)) != 0 {
		t.Error("expected empty summary")
	}
}

func TestSeedOrClock(t *testing.T) {
	if seedOrClock(42) != 42 {
		t.Error("explicit seed should pass through")
	}
	if seedOrClock(0) == 0 {
		t.Error("zero seed should be replaced")
	}
}
