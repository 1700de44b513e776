package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/grapher/internal/config"
	"github.com/san-kum/grapher/internal/export"
	"github.com/san-kum/grapher/internal/funcs"
	"github.com/san-kum/grapher/internal/interact"
	"github.com/san-kum/grapher/internal/plot"
	"github.com/san-kum/grapher/internal/storage"
	"github.com/san-kum/grapher/internal/tui"
	"github.com/spf13/cobra"
)

var (
	configFile string
	dataDir    string
	dim        int
	precision  int
	output     string
	preset     string
	imageScale int
	// explore
	plain  bool
	resume string
	saveAs string
	theme  string
	// export
	csvOut  string
	svgOut  string
	jsonOut string
	pixels  bool
	force   bool
	scale   float64
	// ascii
	graphHeight int
	graphWidth  int
)

const (
	lastView          = "last"
	defaultConfigFile = "grapher.yaml"
)

// main registers the grapher commands and executes the root command,
// exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:          "grapher",
		Short:        "plot real and complex functions to png",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().IntVar(&dim, "dim", config.DefaultDim, "image side length in pixels")
	rootCmd.PersistentFlags().IntVar(&precision, "precision", config.DefaultPrecision, "samples per redraw")
	rootCmd.PersistentFlags().StringVarP(&output, "output", "o", config.DefaultOutput, "image path")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset view")
	rootCmd.PersistentFlags().IntVar(&imageScale, "image-scale", config.DefaultImageScale, "png pixels per grid pixel")

	plotCmd := &cobra.Command{
		Use:   "plot [function]",
		Short: "render one frame",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runPlot,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore [function]",
		Short: "pan and zoom interactively",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runExplore,
	}
	exploreCmd.Flags().BoolVar(&plain, "plain", false, "read keys from stdin without a terminal ui")
	exploreCmd.Flags().StringVar(&resume, "resume", "", "start from a saved view (default \"last\" when given without a name)")
	exploreCmd.Flags().Lookup("resume").NoOptDefVal = lastView
	exploreCmd.Flags().StringVar(&saveAs, "save", lastView, "bookmark name for the final view")
	exploreCmd.Flags().StringVar(&theme, "theme", tui.DefaultTheme.Name, fmt.Sprintf("color theme %v", tui.ThemeNames()))

	functionsCmd := &cobra.Command{
		Use:   "functions",
		Short: "list available functions",
		RunE:  listFunctions,
	}

	asciiCmd := &cobra.Command{
		Use:   "ascii [function]",
		Short: "plot samples in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runASCII,
	}
	asciiCmd.Flags().IntVar(&graphHeight, "height", 15, "graph height")
	asciiCmd.Flags().IntVar(&graphWidth, "width", 70, "graph width")

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [function]",
		Short: "export samples of the current view to CSV",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportCSV,
	}
	exportCSVCmd.Flags().StringVar(&csvOut, "out", "", "output file (default stdout)")

	exportSVGCmd := &cobra.Command{
		Use:   "export-svg [function]",
		Short: "export the current view to SVG",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportSVG,
	}
	exportSVGCmd.Flags().StringVar(&svgOut, "out", "plot.svg", "output file")
	exportSVGCmd.Flags().BoolVar(&pixels, "pixels", false, "export the rasterized frame instead of the sampled curve")
	exportSVGCmd.Flags().Float64Var(&scale, "scale", 8, "pixel size with --pixels")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [function]",
		Short: "export samples of the current view to JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE:  exportJSON,
	}
	exportJSONCmd.Flags().StringVar(&jsonOut, "out", "samples.json", "output file")

	viewsCmd := &cobra.Command{
		Use:   "views",
		Short: "list saved views",
		RunE:  listViews,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets [function]",
		Short: "list available presets for a function",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := config.ListPresets(args[0])
			if len(presets) == 0 {
				fmt.Printf("no presets for function: %s\n", args[0])
				return nil
			}
			sort.Strings(presets)
			fmt.Printf("presets for %s:\n", args[0])
			for _, p := range presets {
				fmt.Printf("  %s\n", p)
			}
			return nil
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage config files",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective config as yaml",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runConfigInit,
	}
	configInitCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(plotCmd, exploreCmd, functionsCmd, asciiCmd, exportCSVCmd, exportSVGCmd, exportJSONCmd, viewsCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	path := defaultConfigFile
	if len(args) > 0 {
		path = args[0]
	}
	if err := writeConfig(path, cfg, force); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

// writeConfig saves cfg to path, refusing to replace an existing file
// unless overwrite is set.
func writeConfig(path string, cfg *config.Config, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("%s already exists (use --force)", path)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}
	return nil
}

// session is everything one command needs to draw a function.
type session struct {
	cfg      *config.Config
	fn       funcs.Function
	drawer   plot.Drawer
	renderer *plot.Renderer
	view     plot.Viewport
}

func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("dim") || configFile == "" {
		cfg.Dim = dim
	}
	if flags.Changed("precision") || configFile == "" {
		cfg.Precision = precision
	}
	if flags.Changed("output") || configFile == "" {
		cfg.Output = output
	}
	if flags.Changed("data") || configFile == "" {
		cfg.DataDir = dataDir
	}
	if flags.Changed("image-scale") || configFile == "" {
		cfg.ImageScale = imageScale
	}
	return cfg, nil
}

func newSession(cmd *cobra.Command, args []string) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		cfg.Function = args[0]
	}

	if preset != "" {
		p := config.GetPreset(cfg, cfg.Function, preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets(cfg.Function))
		}
		cfg = p
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	fn, err := funcs.NewRegistry().Get(cfg.Function)
	if err != nil {
		return nil, err
	}

	drawer := fn.Drawer(cfg.Precision, cfg.Param())
	r := plot.NewRenderer(drawer)
	r.Background, r.Foreground = cfg.Colors()
	r.TickSpacing = cfg.TickSpacing

	return &session{
		cfg:      cfg,
		fn:       fn,
		drawer:   drawer,
		renderer: r,
		view:     cfg.Viewport(),
	}, nil
}

func (s *session) store() *storage.Store {
	return storage.New(s.cfg.DataDir).WithScale(s.cfg.ImageScale)
}

func (s *session) controller(st *storage.Store, status io.Writer) *interact.Controller {
	opts := interact.Options{Output: s.cfg.Output, Status: status, PanStep: s.cfg.PanStep}
	return interact.New(s.view, s.renderer, st, opts)
}

func runPlot(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}
	return s.controller(s.store(), os.Stdout).Redraw()
}

// resumeView applies the bookmark name to v when it was saved for the same
// function. A missing bookmark leaves v as it is.
func resumeView(st *storage.Store, name, function string, v *plot.Viewport, warn io.Writer) error {
	rec, err := st.LoadView(name)
	switch {
	case errors.Is(err, storage.ErrViewNotFound):
		fmt.Fprintf(warn, "no saved view %q, starting fresh\n", name)
	case err != nil:
		return err
	case rec.Function == function:
		rec.Apply(v)
	default:
		fmt.Fprintf(warn, "view %q was for %s, starting fresh\n", name, rec.Function)
	}
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}
	st := s.store()

	if resume != "" {
		if err := resumeView(st, resume, s.fn.Name, &s.view, os.Stderr); err != nil {
			return err
		}
	}

	var ctrl *interact.Controller
	if plain {
		ctrl = s.controller(st, os.Stdout)
		if err = ctrl.Redraw(); err == nil {
			err = ctrl.Run(interact.NewRuneReader(os.Stdin))
		}
	} else {
		ctrl = s.controller(st, nil)
		err = tui.Run(ctrl, tui.Options{
			Name:       s.fn.Name,
			Output:     s.cfg.Output,
			Background: s.renderer.Background,
			Theme:      tui.GetTheme(theme),
		})
		if err == nil && ctrl.Status() != "" {
			fmt.Println(ctrl.Status())
		}
	}
	if err != nil {
		return err
	}

	if saveAs != "" {
		if err := st.SaveView(storage.NewViewRecord(saveAs, s.fn.Name, ctrl.State())); err != nil {
			return fmt.Errorf("save view: %w", err)
		}
	}
	return nil
}

func listFunctions(cmd *cobra.Command, args []string) error {
	reg := funcs.NewRegistry()

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tMODE\tDESCRIPTION")
	for _, name := range reg.Names() {
		fn, _ := reg.Get(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", fn.Name, fn.Mode(), fn.Description)
	}
	return w.Flush()
}

// finite replaces NaN and infinities with NaN, which asciigraph leaves as a
// gap, and reports whether any value survived.
func finite(data []float64) ([]float64, bool) {
	out := make([]float64, len(data))
	ok := false
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = math.NaN()
			continue
		}
		out[i] = v
		ok = true
	}
	return out, ok
}

func runASCII(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}

	samples := export.Collect(s.drawer, s.view)
	xs := make([]float64, len(samples))
	ys := make([]float64, len(samples))
	for i, sm := range samples {
		xs[i], ys[i] = sm.Point.X, sm.Point.Y
	}

	opts := []asciigraph.Option{
		asciigraph.Height(graphHeight),
		asciigraph.Width(graphWidth),
	}

	var graph string
	if s.fn.Mode() == funcs.Real {
		data, ok := finite(ys)
		if !ok {
			return fmt.Errorf("no finite samples for %s", s.fn.Name)
		}
		caption := fmt.Sprintf("%s over [%g, %g)", s.fn.Description, samples[0].T, samples[len(samples)-1].T)
		graph = asciigraph.Plot(data, append(opts, asciigraph.Caption(caption))...)
	} else {
		re, okRe := finite(xs)
		im, okIm := finite(ys)
		if !okRe || !okIm {
			return fmt.Errorf("no finite samples for %s", s.fn.Name)
		}
		caption := fmt.Sprintf("Re and Im of %s", s.fn.Description)
		graph = asciigraph.PlotMany([][]float64{re, im}, append(opts, asciigraph.Caption(caption))...)
	}

	fmt.Println(graph)
	fmt.Println(interact.StatusLine(s.view))
	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}

	w := os.Stdout
	if csvOut != "" {
		f, err := os.Create(csvOut)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}
	if err := export.WriteSamplesCSV(w, export.Collect(s.drawer, s.view)); err != nil {
		return err
	}
	if csvOut != "" {
		fmt.Printf("exported to %s\n", csvOut)
	}
	return nil
}

func exportSVG(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}

	var svg string
	if pixels {
		svg = export.FramebufferToSVG(s.renderer.Render(s.view), s.renderer.Background, scale)
	} else {
		pts := export.Points(export.Collect(s.drawer, s.view))
		svg = export.CurveToSVG(pts, 800, 600, s.renderer.Foreground.Hex())
	}
	if svg == "" {
		return fmt.Errorf("nothing to export for %s", s.fn.Name)
	}

	if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", svgOut)
	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd, args)
	if err != nil {
		return err
	}

	data := export.NewExportData(s.fn.Name, s.fn.Mode().String(), s.view, export.Collect(s.drawer, s.view))
	if err := export.ExportJSON(jsonOut, data); err != nil {
		return err
	}
	fmt.Printf("exported to %s\n", jsonOut)
	return nil
}

func listViews(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	views, err := storage.New(cfg.DataDir).ListViews()
	if err != nil {
		return err
	}

	if len(views) == 0 {
		fmt.Println("no saved views")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFUNCTION\tTIME\tZOOM\tCENTER\tAXIS")
	for _, v := range views {
		fmt.Fprintf(w, "%s\t%s\t%s\t%g\t(%g, %g)\t%t\n",
			v.Name,
			v.Function,
			v.Timestamp.Format("2006-01-02 15:04:05"),
			v.Zoom,
			v.CenterX, v.CenterY,
			v.Axis,
		)
	}
	return w.Flush()
}
