package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSaveLoad(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "runs"))
	if err := st.Init(); err != nil {
		t.Fatal(err)
	}

	frames := []FrameStat{
		{Frame: 0, Primitives: 1194, Spheres: 1162, Triangles: 32, Sparkles: 1, Millis: 0.25},
		{Frame: 1, Primitives: 1195, Spheres: 1163, Triangles: 32, Sparkles: 2, Millis: 0.125},
	}
	meta := RunMetadata{NoiseSeed: 4, SparkleSeed: 5, Metrics: map[string]float64{"avg_ms": 0.1875}}

	id, err := st.Save(meta, frames)
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := st.Load(id)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.ID != id || loaded.Frames != 2 || loaded.NoiseSeed != 4 || loaded.Metrics["avg_ms"] != 0.1875 {
		t.Errorf("unexpected metadata %+v", loaded)
	}

	got, err := st.LoadFrames(id)
	if err != nil {
		t.Fatalf("load frames failed: %v", err)
	}
	if len(got) != len(frames) {
		t.Fatalf("expected %d frames, got %d", len(frames), len(got))
	}
	for i := range frames {
		if got[i] != frames[i] {
			t.Errorf("frame %d: expected %+v, got %+v", i, frames[i], got[i])
		}
	}
}

func TestListSortedAndSkipsJunk(t *testing.T) {
	dir := t.TempDir()
	st := New(dir)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if _, err := st.Save(RunMetadata{Timestamp: base.Add(time.Minute)}, nil); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Save(RunMetadata{Timestamp: base}, nil); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(dir, "not-a-run"), 0755); err != nil {
		t.Fatal(err)
	}

	runs, err := st.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if !runs[0].Timestamp.Before(runs[1].Timestamp) {
		t.Errorf("runs not sorted: %v then %v", runs[0].Timestamp, runs[1].Timestamp)
	}
}

func TestListMissingDir(t *testing.T) {
	runs, err := New(filepath.Join(t.TempDir(), "missing")).List()
	if err != nil || len(runs) != 0 {
		t.Errorf("expected empty list, got %v, %v", runs, err)
	}
}

func TestLoadFramesRejectsBadRow(t *testing.T) {
	dir := t.TempDir()
	runDir := filepath.Join(dir, "bench_1")
	if err := os.MkdirAll(runDir, 0755); err != nil {
		t.Fatal(err)
	}
	data := "frame,primitives,spheres,triangles,sparkles,ms\n0,1,1,0,0,nope\n"
	if err := os.WriteFile(filepath.Join(runDir, "frames.csv"), []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := New(dir).LoadFrames("bench_1"); err == nil {
		t.Error("expected parse error")
	}
}
