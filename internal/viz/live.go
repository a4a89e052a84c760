package viz

import (
	"io"
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/kaleido/internal/config"
	"github.com/san-kum/kaleido/internal/scene"
)

const (
	panelWidth        = 34
	defaultCols       = 80
	defaultRows       = 24
	minCols           = 16
	minRows           = 8
	historyCapacity   = 120
	maxRecordedFrames = 600
	recordingPath     = "kaleido.gif"
)

type TickMsg time.Time

// Model drives a scene.Engine from the bubbletea event loop and renders each
// frame onto a half-block canvas.
type Model struct {
	cfg    *config.Config
	engine *scene.Engine
	canvas *Canvas
	raster *Rasterizer
	logger *log.Logger

	theme      int
	population []float64
	lastTick   time.Time
	fps        float64
	recorder   *Recorder
	showHelp   bool
	err        error
}

// NewModel sizes the canvas for an 80x24 terminal until the first window size
// message arrives. A nil logger discards output.
func NewModel(cfg *config.Config, eng *scene.Engine, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	m := Model{
		cfg:        cfg,
		engine:     eng,
		logger:     logger,
		population: make([]float64, 0, historyCapacity),
	}
	if err := m.resize(defaultCols-panelWidth, defaultRows-1); err != nil {
		return Model{}, err
	}
	return m, nil
}

// Err is the frame failure that ended the program, if any.
func (m Model) Err() error { return m.err }

func (m Model) Canvas() *Canvas { return m.canvas }

// WithTheme selects the panel theme by name, falling back to the first.
func (m Model) WithTheme(name string) Model {
	m.theme = ThemeIndex(name)
	return m
}

func (m *Model) resize(cols, rows int) error {
	canvas := NewCanvas(max(cols, minCols), max(rows, minRows), m.cfg.BackgroundColor())
	raster, err := NewRasterizer(canvas.Width, canvas.Height)
	if err != nil {
		return err
	}
	if raster.Projection.Cause != nil {
		m.logger.Printf("perspective setup failed (%v), using %s fallback", raster.Projection.Cause, raster.Projection.Method)
	}
	m.canvas, m.raster = canvas, raster
	return nil
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.cfg.FPS), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles input events and advances the engine one frame per tick.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.stopRecording()
			return m, tea.Quit
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			m.theme = (m.theme + 1) % len(Themes)
		case "g":
			m.toggleRecording()
		}

	case tea.MouseMsg:
		// rows hold two pixels each
		y := msg.Y - m.helpRows()
		m.engine.Input(float64(msg.X), float64(y*2), float64(m.canvas.Width), float64(m.canvas.Height))

	case tea.WindowSizeMsg:
		if err := m.resize(msg.Width-panelWidth, msg.Height-1); err != nil {
			m.logger.Printf("resize: %v", err)
			m.err = err
			return m, tea.Quit
		}

	case TickMsg:
		m.measure(time.Time(msg))
		if err := scene.Guard(m.engine.Frame(), m.step); err != nil {
			m.logger.Printf("%v", err)
			m.err = err
			m.stopRecording()
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) measure(now time.Time) {
	if !m.lastTick.IsZero() {
		if dt := now.Sub(m.lastTick).Seconds(); dt > 0 {
			if m.fps == 0 {
				m.fps = 1 / dt
			} else {
				m.fps = 0.9*m.fps + 0.1/dt
			}
		}
	}
	m.lastTick = now
}

func (m *Model) step() error {
	prims := m.engine.Tick()
	if err := scene.CheckFrame(prims); err != nil {
		return err
	}
	m.canvas.Clear()
	m.raster.Draw(m.canvas, prims)

	if s := m.engine.Sparkles; s != nil {
		m.population = append(m.population, float64(s.Len()))
		if len(m.population) > historyCapacity {
			m.population = m.population[len(m.population)-historyCapacity:]
		}
	}

	if m.recorder != nil {
		m.recorder.Capture(m.canvas)
		if m.recorder.Len() >= maxRecordedFrames {
			m.stopRecording()
		}
	}
	return nil
}

func (m *Model) toggleRecording() {
	if m.recorder != nil {
		m.stopRecording()
		return
	}
	m.recorder = NewRecorder(m.cfg.FPS)
	m.logger.Printf("recording to %s", recordingPath)
}

func (m *Model) stopRecording() {
	if m.recorder == nil {
		return
	}
	rec := m.recorder
	m.recorder = nil
	if err := rec.Save(recordingPath); err != nil {
		m.logger.Printf("save recording: %v", err)
		return
	}
	m.logger.Printf("saved %d frames to %s", rec.Len(), recordingPath)
}

const helpText = `MOUSE  x: rotate speed  y: pulse
T      cycle panel theme
G      start/stop GIF recording
?      toggle this help
Q      quit`

func (m Model) helpPanel() string {
	return Themes[m.theme].Styles().Panel.Render(helpText)
}

// helpRows is how far the help panel pushes the canvas down.
func (m Model) helpRows() int {
	if !m.showHelp {
		return 0
	}
	return lipgloss.Height(m.helpPanel())
}

func (m Model) View() string {
	st := Themes[m.theme].Styles()
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.canvas.String(), m.hud(st))
	if m.showHelp {
		return m.helpPanel() + "\n" + body
	}
	return body
}
