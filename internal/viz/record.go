package viz

import (
	"errors"
	"image"
	"image/color/palette"
	"image/gif"
	"os"
)

var ErrEmptyRecording = errors.New("viz: no frames recorded")

// Each canvas pixel becomes a recordScale x recordScale block in the GIF.
const recordScale = 4

// Recorder collects canvas frames for a GIF animation.
type Recorder struct {
	frames []*image.Paletted
	delay  int
}

// NewRecorder plays frames back at roughly fps.
func NewRecorder(fps int) *Recorder {
	delay := 1
	if fps > 0 && 100/fps > 1 {
		delay = 100 / fps
	}
	return &Recorder{delay: delay}
}

func (r *Recorder) Len() int { return len(r.frames) }

func (r *Recorder) Capture(c *Canvas) {
	img := image.NewPaletted(image.Rect(0, 0, c.Width*recordScale, c.Height*recordScale), palette.Plan9)
	for y := 0; y < c.Height; y++ {
		for x := 0; x < c.Width; x++ {
			idx := uint8(img.Palette.Index(c.At(x, y)))
			for py := 0; py < recordScale; py++ {
				for px := 0; px < recordScale; px++ {
					img.SetColorIndex(x*recordScale+px, y*recordScale+py, idx)
				}
			}
		}
	}
	r.frames = append(r.frames, img)
}

func (r *Recorder) Save(path string) error {
	if len(r.frames) == 0 {
		return ErrEmptyRecording
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}
