package viz

import (
	"fmt"
	"strings"

	"github.com/guptarohit/asciigraph"
)

func (m Model) hud(st Styles) string {
	var s strings.Builder
	row := func(label, value string) {
		s.WriteString(st.Label.Render(label) + st.Value.Render(value) + "\n")
	}

	s.WriteString(st.Header.Render("KALEIDO") + "\n")
	if m.recorder != nil {
		s.WriteString(st.Rec.Render(fmt.Sprintf("REC %d", m.recorder.Len())) + "\n\n")
	} else {
		s.WriteString(st.Status.Render("RUNNING") + "\n\n")
	}

	t := m.engine.Tuning
	row("Frame", fmt.Sprintf("%d", t.Frame))
	row("Pulse", fmt.Sprintf("%.3f", t.PulseFactor))
	row("Rotate", fmt.Sprintf("%.4f", t.RotateSpeed))
	if sp := m.engine.Sparkles; sp != nil {
		row("Sparkles", fmt.Sprintf("%d/%d", sp.Len(), sp.Config().Cap))
	} else {
		row("Sparkles", "off")
	}
	if src, ok := m.engine.Noise.(interface{ Seed() int64 }); ok {
		row("Seed", fmt.Sprintf("%d", src.Seed()))
	}
	row("FPS", fmt.Sprintf("%.1f", m.fps))
	row("Projection", m.raster.Projection.Method.String())

	if sp := m.engine.Sparkles; sp != nil && len(m.population) > 1 {
		chart := asciigraph.Plot(m.population,
			asciigraph.Height(4),
			asciigraph.Width(panelWidth-14),
			asciigraph.LowerBound(0),
			asciigraph.UpperBound(float64(sp.Config().Cap)),
			asciigraph.Caption("Sparkles"),
		)
		s.WriteString("\n" + st.Graph.Render(chart) + "\n")
	}

	s.WriteString(st.Help.Render("\nT:Theme G:Record\n?:Help  Q:Quit"))
	return st.Panel.Render(s.String())
}
