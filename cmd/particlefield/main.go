package main

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/particlefield/internal/config"
	"github.com/san-kum/particlefield/internal/export"
	"github.com/san-kum/particlefield/internal/metrics"
	"github.com/san-kum/particlefield/internal/sim"
	"github.com/san-kum/particlefield/internal/tui"
)

var (
	configFile string
	particles  int
	radius     float64
	pushRadius float64
	pushStr    float64
	attrRadius float64
	attrStr    float64
	color      string
	broadphase string
	seed       int64
	// headless run
	frames  int
	width   float64
	height  float64
	svgPath string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "particlefield",
		Short: "animated particle background simulation",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			return tui.Run(cfg)
		},
	}
	addSimFlags(rootCmd)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run headless for a fixed number of frames",
		RunE:  runHeadless,
	}
	addSimFlags(runCmd)
	runCmd.Flags().IntVar(&frames, "frames", 600, "frames to simulate")
	runCmd.Flags().Float64Var(&width, "width", 1200, "viewport width")
	runCmd.Flags().Float64Var(&height, "height", 800, "viewport height")
	runCmd.Flags().StringVar(&svgPath, "svg", "", "write final frame snapshot to SVG file")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "manage configuration",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write default config",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.Save(args[0], config.DefaultConfig())
		},
	}
	configShowCmd := &cobra.Command{
		Use:   "show",
		Short: "show effective config",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "particles\t%d\n", cfg.Particles)
			fmt.Fprintf(w, "particle_radius\t%.1f\n", cfg.ParticleRadius)
			fmt.Fprintf(w, "push_radius\t%.1f\n", cfg.PushRadius)
			fmt.Fprintf(w, "push_strength\t%.0f\n", cfg.PushStrength)
			fmt.Fprintf(w, "attraction_radius\t%.1f\n", cfg.AttractionRadius)
			fmt.Fprintf(w, "attraction_strength\t%.0f\n", cfg.AttractionStrength)
			fmt.Fprintf(w, "color\t%s\n", cfg.Color)
			fmt.Fprintf(w, "broadphase\t%s\n", cfg.Broadphase)
			return w.Flush()
		},
	}
	configCmd.AddCommand(configInitCmd, configShowCmd)

	rootCmd.AddCommand(runCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addSimFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().IntVar(&particles, "particles", config.DefaultParticles, "particle count")
	cmd.Flags().Float64Var(&radius, "radius", 7, "particle radius")
	cmd.Flags().Float64Var(&pushRadius, "push-radius", 80, "pointer repulsion radius")
	cmd.Flags().Float64Var(&pushStr, "push-strength", 30000, "pointer repulsion strength")
	cmd.Flags().Float64Var(&attrRadius, "attraction-radius", 150, "pairwise attraction radius")
	cmd.Flags().Float64Var(&attrStr, "attraction-strength", 25000, "pairwise attraction strength")
	cmd.Flags().StringVar(&color, "color", config.DefaultColor, "particle fill color")
	cmd.Flags().StringVar(&broadphase, "broadphase", "naive", "collision broadphase (naive|grid)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
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

	// explicit flags override the file
	if cmd.Flags().Changed("particles") {
		cfg.Particles = particles
	}
	if cmd.Flags().Changed("radius") {
		cfg.ParticleRadius = radius
	}
	if cmd.Flags().Changed("push-radius") {
		cfg.PushRadius = pushRadius
	}
	if cmd.Flags().Changed("push-strength") {
		cfg.PushStrength = pushStr
	}
	if cmd.Flags().Changed("attraction-radius") {
		cfg.AttractionRadius = attrRadius
	}
	if cmd.Flags().Changed("attraction-strength") {
		cfg.AttractionStrength = attrStr
	}
	if cmd.Flags().Changed("color") {
		cfg.Color = color
	}
	if cmd.Flags().Changed("broadphase") {
		cfg.Broadphase = broadphase
	}
	if cmd.Flags().Changed("seed") || cfg.Seed == 0 {
		cfg.Seed = seed
	}
	return cfg, cfg.Validate()
}

// runHeadless drives the frame loop without a terminal: the pointer
// orbits the center so both force contributions are exercised, and
// the summary reports throughput and energy.
func runHeadless(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	s, err := sim.New(cfg)
	if err != nil {
		return err
	}
	ke := metrics.NewKineticEnergy(frames)
	mom := metrics.NewMomentum()
	s.AddObserver(ke)
	s.AddObserver(mom)

	sched := sim.NewManualScheduler()
	if err := s.Start(sched, width, height); err != nil {
		return err
	}

	orbit := math.Min(width, height) / 4
	wallStart := time.Now()
	for i := 0; i < frames; i++ {
		t := float64(i) / 60
		angle := t / 2
		s.Post(sim.PointerMoved{X: orbit * math.Cos(angle), Y: orbit * math.Sin(angle)})
		sched.Fire(t)
	}
	elapsed := time.Since(wallStart)
	snapshot := append([]sim.Renderable(nil), s.Renderables()...)
	s.Dispose()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "frames\t%d\n", frames)
	fmt.Fprintf(w, "particles\t%d\n", cfg.Particles)
	fmt.Fprintf(w, "broadphase\t%s\n", cfg.Broadphase)
	fmt.Fprintf(w, "wall time\t%s\n", elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "per frame\t%.2fms\n", float64(elapsed.Milliseconds())/float64(frames))
	fmt.Fprintf(w, "kinetic energy\t%.0f\n", ke.Value())
	fmt.Fprintf(w, "momentum\t%.0f\n", mom.Value())
	w.Flush()

	if hist := ke.History(); len(hist) > 1 {
		fmt.Println()
		fmt.Println(asciigraph.Plot(hist, asciigraph.Height(8), asciigraph.Caption("kinetic energy")))
	}

	if svgPath != "" {
		svg := export.FieldToSVG(snapshot, width, height, cfg.ParticleRadius)
		if err := os.WriteFile(svgPath, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("\nwrote %s\n", svgPath)
	}
	return nil
}
