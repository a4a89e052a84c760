package viz

import (
	"errors"
	"image/gif"
	"os"
	"path/filepath"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/kaleido/internal/geom"
)

func TestRecorderSave(t *testing.T) {
	c := NewCanvas(6, 3, black)
	rec := NewRecorder(50)

	rec.Capture(c)
	c.Plot(1, 1, 0, geom.RGBA{R: 1, A: 1})
	rec.Capture(c)
	if rec.Len() != 2 {
		t.Fatalf("expected 2 frames, got %d", rec.Len())
	}

	path := filepath.Join(t.TempDir(), "out.gif")
	if err := rec.Save(path); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(anim.Image) != 2 || anim.Delay[0] != 2 {
		t.Errorf("expected 2 frames at delay 2, got %d at %v", len(anim.Image), anim.Delay)
	}
	b := anim.Image[0].Bounds()
	if b.Dx() != 6*recordScale || b.Dy() != 6*recordScale {
		t.Errorf("unexpected frame size %v", b)
	}

	got, _ := colorful.MakeColor(anim.Image[1].At(1*recordScale, 1*recordScale))
	if got.R < 0.9 || got.G > 0.1 {
		t.Errorf("expected the plotted pixel to be red, got %v", got)
	}
}

func TestRecorderEmpty(t *testing.T) {
	err := NewRecorder(60).Save(filepath.Join(t.TempDir(), "empty.gif"))
	if !errors.Is(err, ErrEmptyRecording) {
		t.Errorf("expected ErrEmptyRecording, got %v", err)
	}
}

func TestRecorderDelay(t *testing.T) {
	tests := []struct {
		fps, delay int
	}{
		{60, 1},
		{30, 3},
		{10, 10},
		{0, 1},
	}
	for _, tt := range tests {
		if got := NewRecorder(tt.fps).delay; got != tt.delay {
			t.Errorf("fps %d: expected delay %d, got %d", tt.fps, tt.delay, got)
		}
	}
}
