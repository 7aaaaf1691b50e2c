package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/san-kum/vortex/internal/analysis"
	"github.com/san-kum/vortex/internal/config"
	"github.com/san-kum/vortex/internal/diagram"
	"github.com/san-kum/vortex/internal/export"
	"github.com/san-kum/vortex/internal/orbit"
	"github.com/san-kum/vortex/internal/palette"
	"github.com/san-kum/vortex/internal/storage"
	"github.com/san-kum/vortex/internal/viz"
	"github.com/spf13/cobra"
)

var (
	dataDir string
	verbose bool
	// Diagram parameters
	multiplier  int
	modulus     int
	paletteSpec string
	drawCircle  bool
	configFile  string
	preset      string
	// Render settings
	outputDir string
	lineWidth float64
	dpi       int
	noSave    bool
	// Preview size in terminal cells
	cols int
	rows int
	// Sweep range step
	sweepStep int
)

// main registers the vortex commands and exits with status 1 when a command
// fails.
func main() {
	rootCmd := &cobra.Command{
		Use:           "vortex",
		Short:         "multiplication-cycle line diagrams",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging()
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".vortex", "data directory")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render diagram to svg files",
		Args:  cobra.NoArgs,
		RunE:  renderDiagram,
	}
	addDiagramFlags(renderCmd)
	addRenderFlags(renderCmd)
	renderCmd.Flags().BoolVar(&noSave, "no-save", false, "do not record the run")

	previewCmd := &cobra.Command{
		Use:   "preview",
		Short: "draw diagram in the terminal",
		Args:  cobra.NoArgs,
		RunE:  previewDiagram,
	}
	addDiagramFlags(previewCmd)
	previewCmd.Flags().IntVar(&cols, "cols", 60, "canvas width in cells")
	previewCmd.Flags().IntVar(&rows, "rows", 30, "canvas height in cells")

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive diagram explorer",
		Args:  cobra.NoArgs,
		RunE:  exploreDiagram,
	}
	addDiagramFlags(exploreCmd)

	orbitsCmd := &cobra.Command{
		Use:   "orbits",
		Short: "list multiplicative orbits",
		Args:  cobra.NoArgs,
		RunE:  listOrbits,
	}
	addDiagramFlags(orbitsCmd)

	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "chord length and orbit statistics",
		Args:  cobra.NoArgs,
		RunE:  diagramStats,
	}
	addDiagramFlags(statsCmd)

	sweepCmd := &cobra.Command{
		Use:   "sweep [from] [to]",
		Short: "render a range of multipliers",
		Args:  cobra.ExactArgs(2),
		RunE:  sweepMultipliers,
	}
	addDiagramFlags(sweepCmd)
	addRenderFlags(sweepCmd)
	sweepCmd.Flags().IntVar(&sweepStep, "step", 1, "multiplier step")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list recorded runs",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	showCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "show run metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv",
		Short: "write coloured segments as CSV",
		Args:  cobra.NoArgs,
		RunE:  exportCSV,
	}
	addDiagramFlags(exportCSVCmd)

	exportJSONCmd := &cobra.Command{
		Use:   "export-json",
		Short: "write orbits, cutoffs and segments as JSON",
		Args:  cobra.NoArgs,
		RunE:  exportJSON,
	}
	addDiagramFlags(exportJSONCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NAME\tMULTIPLIER\tMODULUS\tPALETTE")
			for _, name := range config.ListPresets() {
				p := config.Presets[name]
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", name, p.Multiplier, p.Modulus, p.Palette)
			}
			return w.Flush()
		},
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range palette.Palettes {
				fmt.Printf("  %-10s %s  %s\n", p.Name, palette.Swatch(p.Colors), strings.Join(p.Colors, " "))
			}
			return nil
		},
	}

	drootCmd := &cobra.Command{
		Use:   "droot [n...]",
		Short: "digital roots",
		Args:  cobra.MinimumNArgs(1),
		RunE:  digitalRoots,
	}

	rootCmd.AddCommand(renderCmd, previewCmd, exploreCmd, orbitsCmd, statsCmd, sweepCmd, listCmd, showCmd, exportCSVCmd, exportJSONCmd, presetsCmd, palettesCmd, drootCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

func addDiagramFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&multiplier, "multiplier", "k", config.DefaultMultiplier, "multiplier")
	cmd.Flags().IntVarP(&modulus, "modulus", "n", config.DefaultModulus, "modulus")
	cmd.Flags().StringVar(&paletteSpec, "palette", config.DefaultPalette, "palette name, hex list or gradient:<from>:<to>:<n>")
	cmd.Flags().BoolVar(&drawCircle, "circle", false, "draw the unit circle")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

func addRenderFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&outputDir, "out", "o", config.DefaultOutputDir, "output directory")
	cmd.Flags().Float64Var(&lineWidth, "line-width", config.DefaultLineWidth, "line width in points")
	cmd.Flags().IntVar(&dpi, "dpi", config.DefaultDPI, "dots per inch")
}

// resolveConfig layers defaults, preset, config file and explicitly set
// flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		fileCfg, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = fileCfg
	}

	flags := cmd.Flags()
	if flags.Changed("multiplier") || (preset == "" && configFile == "") {
		cfg.Multiplier = multiplier
	}
	if flags.Changed("modulus") || (preset == "" && configFile == "") {
		cfg.Modulus = modulus
	}
	if flags.Changed("palette") {
		cfg.Palette = paletteSpec
		cfg.Colors = nil
	}
	if flags.Changed("circle") {
		cfg.DrawCircle = drawCircle
	}
	if flags.Lookup("out") != nil {
		if flags.Changed("out") {
			cfg.Render.OutputDir = outputDir
		}
		if flags.Changed("line-width") {
			cfg.Render.LineWidth = lineWidth
		}
		if flags.Changed("dpi") {
			cfg.Render.DPI = dpi
		}
	}

	slog.Debug("resolved config", "multiplier", cfg.Multiplier, "modulus", cfg.Modulus, "palette", cfg.Palette, "circle", cfg.DrawCircle)
	return cfg, nil
}

func buildDiagram(cmd *cobra.Command) (*diagram.Diagram, *config.Config, error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	dc, err := cfg.Diagram()
	if err != nil {
		return nil, nil, err
	}
	d, err := diagram.Build(dc)
	if err != nil {
		return nil, nil, err
	}
	return d, cfg, nil
}

func exportOptions(cfg *config.Config) export.Options {
	return export.Options{
		LineWidth: cfg.Render.LineWidth,
		DPI:       cfg.Render.DPI,
		Sizes:     cfg.Render.Sizes,
	}
}

func renderDiagram(cmd *cobra.Command, args []string) error {
	start := time.Now()
	d, cfg, err := buildDiagram(cmd)
	if err != nil {
		return err
	}

	paths, err := export.WriteSizes(cfg.Render.OutputDir, d, exportOptions(cfg))
	if err != nil {
		return err
	}

	fmt.Printf("rendered %d × x mod %d in %v\n", d.Config.Multiplier, d.Config.Modulus, time.Since(start))
	fmt.Printf("orbits: %d\n", len(d.Orbits))
	fmt.Printf("segments: %d\n", len(d.Segments))
	for _, p := range paths {
		fmt.Printf("  %s\n", p)
	}

	if noSave {
		return nil
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(d)
	if err != nil {
		return err
	}
	fmt.Printf("run id: %s\n", runID)
	return nil
}

func previewDiagram(cmd *cobra.Command, args []string) error {
	d, _, err := buildDiagram(cmd)
	if err != nil {
		return err
	}

	fmt.Print(viz.Render(d, cols, rows).Colorize(d.Config.Palette))
	fmt.Printf("%d × x mod %d  %s\n", d.Config.Multiplier, d.Config.Modulus, palette.Swatch(d.Config.Palette))
	return nil
}

func exploreDiagram(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	dc, err := cfg.Diagram()
	if err != nil {
		return err
	}
	if err := dc.Validate(); err != nil {
		return err
	}

	p := tea.NewProgram(viz.NewExplorer(dc), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func listOrbits(cmd *cobra.Command, args []string) error {
	d, _, err := buildDiagram(cmd)
	if err != nil {
		return err
	}

	fmt.Printf("%d × x mod %d: %d orbits\n\n", d.Config.Multiplier, d.Config.Modulus, len(d.Orbits))
	for i, o := range d.Orbits {
		parts := make([]string, len(o))
		for j, r := range o {
			parts[j] = strconv.Itoa(r)
		}
		fmt.Printf("%4d  len %-5d %s\n", i+1, len(o), strings.Join(parts, " → "))
	}
	return nil
}

func diagramStats(cmd *cobra.Command, args []string) error {
	d, _, err := buildDiagram(cmd)
	if err != nil {
		return err
	}

	s := analysis.Summarize(d)
	fmt.Printf("diagram: %d × x mod %d\n", s.Multiplier, s.Modulus)
	fmt.Printf("orbits: %d (longest %d, fixed points %d)\n", s.Orbits, s.LongestOrbit, s.FixedPoints)
	fmt.Printf("segments: %d\n", s.Segments)
	fmt.Printf("magnitude: min %.6f  mean %.6f  max %.6f\n\n", s.MinMagnitude, s.MeanMagnitude, s.MaxMagnitude)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BUCKET\tCOLOR\tCUTOFF\tSEGMENTS")
	for i, c := range s.Cutoffs {
		fmt.Fprintf(w, "%d\t%s\t%.6f\t%d\n", i, d.Config.Palette[i], c, s.BucketCounts[i])
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Println()

	mags := analysis.SortedMagnitudes(d)
	if len(mags) > 1 {
		fmt.Println(asciigraph.Plot(mags,
			asciigraph.Height(10),
			asciigraph.Width(80),
			asciigraph.Caption("sorted chord lengths"),
		))
		fmt.Println()
	}

	lengths := analysis.OrbitLengths(d)
	if len(lengths) > 1 {
		fmt.Println(asciigraph.Plot(lengths,
			asciigraph.Height(8),
			asciigraph.Width(80),
			asciigraph.Caption("orbit lengths"),
		))
	}
	return nil
}

func sweepMultipliers(cmd *cobra.Command, args []string) error {
	from, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid start multiplier: %w", err)
	}
	to, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid end multiplier: %w", err)
	}
	if sweepStep < 1 {
		return fmt.Errorf("step must be positive")
	}
	if to < from {
		return fmt.Errorf("empty range %d..%d", from, to)
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	base, err := cfg.Diagram()
	if err != nil {
		return err
	}

	var ks []int
	for k := from; k <= to; k += sweepStep {
		ks = append(ks, k)
	}

	start := time.Now()
	diagrams, err := diagram.Sweep(context.Background(), base, ks)
	if err != nil {
		return err
	}

	opts := exportOptions(cfg)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MULTIPLIER\tORBITS\tLONGEST\tFILES")
	for _, d := range diagrams {
		paths, err := export.WriteSizes(cfg.Render.OutputDir, d, opts)
		if err != nil {
			return err
		}
		s := analysis.Summarize(d)
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\n", d.Config.Multiplier, s.Orbits, s.LongestOrbit, len(paths))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Printf("\nswept %d multipliers mod %d in %v\n", len(diagrams), base.Modulus, time.Since(start))
	return nil
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tMULTIPLIER\tMODULUS\tTIME\tORBITS\tSEGMENTS\tCOLORS")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\t%d\t%d\t%d\n",
			run.ID,
			run.Multiplier,
			run.Modulus,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Orbits,
			run.Segments,
			len(run.Palette),
		)
	}

	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func exportCSV(cmd *cobra.Command, args []string) error {
	d, _, err := buildDiagram(cmd)
	if err != nil {
		return err
	}
	return storage.WriteCSV(os.Stdout, d)
}

func exportJSON(cmd *cobra.Command, args []string) error {
	d, _, err := buildDiagram(cmd)
	if err != nil {
		return err
	}
	return storage.ExportJSON(os.Stdout, d)
}

func digitalRoots(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "N\tDIGIT SUM\tDIGITAL ROOT")
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return fmt.Errorf("invalid number %q: %w", arg, err)
		}
		fmt.Fprintf(w, "%d\t%d\t%d\n", n, orbit.DigitalSum(n), orbit.DigitalRoot(n))
	}
	return w.Flush()
}
