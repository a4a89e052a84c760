package viz

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/san-kum/kaleido/internal/geom"
)

// Each terminal cell shows two pixels: the upper one as the glyph foreground
// and the lower one as the cell background.
const upperHalf = "▀"

// Canvas is a color pixel grid with a depth buffer. The canvas size in pixels
// is Width x Height, where Height is twice the number of terminal rows.
type Canvas struct {
	Width, Height int
	Background    colorful.Color

	pix   []colorful.Color
	depth []float64
}

func NewCanvas(cols, rows int, bg colorful.Color) *Canvas {
	cols = max(cols, 1)
	rows = max(rows, 1)
	c := &Canvas{
		Width:      cols,
		Height:     rows * 2,
		Background: bg,
		pix:        make([]colorful.Color, cols*rows*2),
		depth:      make([]float64, cols*rows*2),
	}
	c.Clear()
	return c
}

// Rows is the number of terminal rows the canvas occupies.
func (c *Canvas) Rows() int { return c.Height / 2 }

// Clear resets every pixel to the background at infinite depth.
func (c *Canvas) Clear() {
	for i := range c.pix {
		c.pix[i] = c.Background
		c.depth[i] = math.Inf(1)
	}
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.Width && y < c.Height
}

// At returns the pixel color, or the background outside the canvas.
func (c *Canvas) At(x, y int) colorful.Color {
	if !c.inside(x, y) {
		return c.Background
	}
	return c.pix[y*c.Width+x]
}

// Depth returns the stored depth, +Inf where nothing has been drawn.
func (c *Canvas) Depth(x, y int) float64 {
	if !c.inside(x, y) {
		return math.Inf(1)
	}
	return c.depth[y*c.Width+x]
}

// Plot blends col over the pixel at (x, y) when z is nearer than what is
// already there, and records z. It reports whether the pixel was written.
func (c *Canvas) Plot(x, y int, z float64, col geom.RGBA) bool {
	if !c.inside(x, y) {
		return false
	}
	i := y*c.Width + x
	if !(z < c.depth[i]) {
		return false
	}
	c.pix[i] = c.pix[i].BlendRgb(col.Color(), col.A).Clamped()
	c.depth[i] = z
	return true
}

func (c *Canvas) String() string {
	var b strings.Builder
	rows := c.Rows()
	for row := 0; row < rows; row++ {
		upper := c.pix[2*row*c.Width : (2*row+1)*c.Width]
		lower := c.pix[(2*row+1)*c.Width : (2*row+2)*c.Width]

		// runs of identical cells share one style
		for x := 0; x < c.Width; {
			n := 1
			for x+n < c.Width && upper[x+n] == upper[x] && lower[x+n] == lower[x] {
				n++
			}
			b.WriteString(cellStyle(upper[x], lower[x]).Render(strings.Repeat(upperHalf, n)))
			x += n
		}
		if row < rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func cellStyle(fg, bg colorful.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
}
