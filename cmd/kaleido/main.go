package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/kaleido/internal/config"
	"github.com/san-kum/kaleido/internal/export"
	"github.com/san-kum/kaleido/internal/geom"
	"github.com/san-kum/kaleido/internal/gui"
	"github.com/san-kum/kaleido/internal/noise"
	"github.com/san-kum/kaleido/internal/scene"
	"github.com/san-kum/kaleido/internal/sparkle"
	"github.com/san-kum/kaleido/internal/viz"
	"github.com/spf13/cobra"
)

var (
	configFile string
	preset     string
	width      int
	height     int
	fps        int
	overlay    bool
	seed       int64
	logFile    string
	theme      string
	ticks      int
	saveRun    bool
	dataDir    string
	snapFrame  int
)

// main runs the window host when no subcommand is given. It exits with status
// 1 if the command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "kaleido",
		Short:        "animated 3D kaleidoscope",
		SilenceUsage: true,
		RunE:         runWindow,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.StringVar(&preset, "preset", "", "use preset configuration")
	flags.IntVar(&width, "width", config.DefaultWidth, "window width in pixels")
	flags.IntVar(&height, "height", config.DefaultHeight, "window height in pixels")
	flags.IntVar(&fps, "fps", config.DefaultFPS, "target frame rate")
	flags.BoolVar(&overlay, "overlay", false, "show the fps overlay")
	flags.Int64Var(&seed, "seed", 0, "noise and sparkle seed (0 = clock)")
	flags.StringVar(&logFile, "log", "", "append log output to this file")

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "render in the terminal",
		RunE:  runTerm,
	}
	termCmd.Flags().StringVar(&theme, "theme", viz.Themes[0].Name, "side panel theme")

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "generate frames headless and report timings",
		RunE:  runBench,
	}
	benchCmd.Flags().IntVar(&ticks, "ticks", 600, "number of frames to generate")
	benchCmd.Flags().BoolVar(&saveRun, "save", false, "store the run under --data")
	benchCmd.Flags().StringVar(&dataDir, "data", ".kaleido", "data directory")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved bench runs",
		RunE:  listRuns,
	}
	runsCmd.Flags().StringVar(&dataDir, "data", ".kaleido", "data directory")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot [path]",
		Short: "write one frame as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  runSnapshot,
	}
	snapshotCmd.Flags().IntVar(&snapFrame, "frame", 0, "frame index to capture")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printPresets(cmd.OutOrStdout())
		},
	}

	saveCmd := &cobra.Command{
		Use:   "save-config [path]",
		Short: "write the resolved configuration as yaml",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			if err := config.Save(args[0], cfg); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "config written to %s\n", args[0])
			return nil
		},
	}

	rootCmd.AddCommand(termCmd, benchCmd, runsCmd, snapshotCmd, presetsCmd, saveCmd)
	return rootCmd
}

// resolveConfig applies, in order: defaults, preset, config file, flags.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if preset != "" {
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	}

	if configFile != "" {
		loaded, err := config.LoadOver(configFile, cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("fps") {
		cfg.FPS = fps
	}
	if flags.Changed("overlay") {
		cfg.Overlay = overlay
	}
	if flags.Changed("seed") {
		cfg.NoiseSeed, cfg.SparkleSeed = seed, seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func seedOrClock(s int64) int64 {
	if s == 0 {
		return time.Now().UnixNano()
	}
	return s
}

// newEngine writes the clock seeds it picks back into cfg so runs can be
// reported and replayed.
func newEngine(cfg *config.Config) *scene.Engine {
	cfg.NoiseSeed = seedOrClock(cfg.NoiseSeed)
	cfg.SparkleSeed = seedOrClock(cfg.SparkleSeed)
	src := noise.New(cfg.NoiseSeed)
	sparkles := sparkle.New(rand.New(rand.NewSource(cfg.SparkleSeed)))
	return scene.NewEngine(src, sparkles)
}

// openLog points the standard logger at --log when given, otherwise at
// fallback. The returned func closes the file.
func openLog(fallback io.Writer) (func(), error) {
	log.SetPrefix("kaleido: ")
	if logFile == "" {
		log.SetOutput(fallback)
		return func() {}, nil
	}
	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	closeLog, err := openLog(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	log.Printf("window %dx%d at %d fps", cfg.Window.Width, cfg.Window.Height, cfg.FPS)
	if err := gui.Run(cfg, newEngine(cfg)); err != nil {
		log.Printf("window host stopped: %v", err)
		return err
	}
	return nil
}

func runTerm(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	// stderr would tear the alt screen
	closeLog, err := openLog(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	m, err := viz.NewModel(cfg, newEngine(cfg), log.Default())
	if err != nil {
		return err
	}
	m = m.WithTheme(theme)

	final, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(viz.Model); ok && fm.Err() != nil {
		return fm.Err()
	}
	return nil
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if snapFrame < 0 {
		return fmt.Errorf("frame must not be negative, got %d", snapFrame)
	}

	eng := newEngine(cfg)
	var prims []geom.Primitive
	for eng.Frame() <= uint64(snapFrame) {
		prims = eng.Tick()
	}

	f, err := os.Create(args[0])
	if err != nil {
		return err
	}
	defer f.Close()
	if err := export.FrameToSVG(f, prims, cfg.Window.Width, cfg.Window.Height, cfg.BackgroundColor()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "frame %d written to %s (seeds %d/%d)\n", snapFrame, args[0], cfg.NoiseSeed, cfg.SparkleSeed)
	return f.Close()
}

func printPresets(out io.Writer) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSIZE\tFPS\tOVERLAY\tBACKGROUND")
	for _, name := range config.ListPresets() {
		p := config.Presets[name]
		fmt.Fprintf(w, "%s\t%dx%d\t%d\t%v\t%s\n", name, p.Window.Width, p.Window.Height, p.FPS, p.Overlay, p.Background)
	}
	return w.Flush()
}
