package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/sourcegraph/conc/pool"

	"github.com/RMahshie/hornlab/internal/acoustics"
	"github.com/RMahshie/hornlab/internal/cli"
	"github.com/RMahshie/hornlab/internal/geometry"
	"github.com/RMahshie/hornlab/internal/ranking"
	"github.com/RMahshie/hornlab/internal/storage"
	"github.com/RMahshie/hornlab/pkg/models"
)

var (
	version = "0.1.0"
)

// Globals are flags shared by every command
type Globals struct {
	JSON bool `help:"Print results as JSON"`
}

// SweepFlags configure the analysis sweep and medium
type SweepFlags struct {
	MinHz        float64 `name:"freq-min" default:"500" help:"Lowest sweep frequency in Hz"`
	MaxHz        float64 `name:"freq-max" default:"20000" help:"Highest sweep frequency in Hz"`
	Points       int     `default:"100" help:"Number of sweep frequencies (10-500)"`
	SpeedOfSound float64 `name:"speed-of-sound" default:"343" help:"Speed of sound in m/s"`
	AirDensity   float64 `name:"air-density" default:"1.21" help:"Air density in kg/m³"`
}

func (f SweepFlags) options() acoustics.Options {
	opts := acoustics.DefaultOptions()
	opts.Sweep = acoustics.SweepSpec{MinHz: f.MinHz, MaxHz: f.MaxHz, Points: f.Points}
	opts.Medium = acoustics.Medium{SpeedOfSound: f.SpeedOfSound, AirDensity: f.AirDensity}
	return opts
}

// SynthCmd generates an expansion profile
type SynthCmd struct {
	Mode       string  `default:"hilbert" enum:"hilbert,peano,mandelbrot,conical,exponential,tractrix" help:"Profile mode (${enum})"`
	Throat     float64 `default:"25.4" help:"Throat diameter in mm"`
	Mouth      float64 `default:"300" help:"Mouth diameter in mm"`
	Length     float64 `default:"400" help:"Horn length in mm"`
	Order      int     `help:"Hilbert curve order (1-6)"`
	Iterations int     `help:"Peano iterations (1-5) or Mandelbrot iteration count (10-1000)"`
	CReal      float64 `name:"c-real" default:"-0.75" help:"Mandelbrot constant, real part"`
	CImag      float64 `name:"c-imag" help:"Mandelbrot constant, imaginary part"`
	Resolution int     `help:"Profile segments; samples = resolution + 1"`
	Out        string  `short:"o" type:"path" help:"Write the profile JSON to this file"`
}

func (c *SynthCmd) Run(g *Globals) error {
	synth, err := geometry.Synthesize(models.SynthesisParams{
		Mode:             models.ProfileMode(c.Mode),
		ThroatDiameterMM: c.Throat,
		MouthDiameterMM:  c.Mouth,
		LengthMM:         c.Length,
		Order:            c.Order,
		Iterations:       c.Iterations,
		CReal:            c.CReal,
		CImag:            c.CImag,
		Resolution:       c.Resolution,
	})
	if err != nil {
		return err
	}

	if c.Out != "" {
		data, err := storage.EncodeProfile(synth.Profile)
		if err != nil {
			return err
		}
		if err := os.WriteFile(c.Out, data, 0o644); err != nil {
			return fmt.Errorf("failed to write profile: %w", err)
		}
	}

	if g.JSON {
		return printJSON(synth)
	}
	fmt.Print(cli.RenderSynthesis(synth))
	if c.Out != "" {
		fmt.Printf("\nProfile written to %s\n", c.Out)
	}
	return nil
}

// SimulateCmd runs the full analysis of a stored profile
type SimulateCmd struct {
	Profile string `required:"" type:"existingfile" help:"Profile JSON file"`
	SweepFlags
}

type simulateOutput struct {
	Simulation *models.Simulation    `json:"simulation"`
	Fractal    models.FractalMetrics `json:"fractal"`
	Score      models.AcousticScore  `json:"score"`
}

func (c *SimulateCmd) Run(g *Globals) error {
	profile, err := readProfile(c.Profile)
	if err != nil {
		return err
	}

	fractal, err := geometry.Analyze(profile)
	if err != nil {
		return err
	}
	sim, err := acoustics.Simulate(profile, c.options())
	if err != nil {
		return err
	}
	score := ranking.Score(sim)

	if g.JSON {
		return printJSON(simulateOutput{Simulation: sim, Fractal: fractal, Score: score})
	}
	fmt.Print(cli.RenderSimulation(filepath.Base(c.Profile), sim, fractal, score))
	return nil
}

// CompareCmd ranks several stored profiles
type CompareCmd struct {
	Profiles []string `arg:"" help:"Profile JSON files (2-5)"`
	SweepFlags
}

func (c *CompareCmd) Run(g *Globals) error {
	opts := c.options()
	sweep, err := acoustics.NewSweep(opts.Sweep)
	if err != nil {
		return err
	}

	candidates := make([]ranking.Candidate, len(c.Profiles))
	p := pool.New().WithMaxGoroutines(ranking.MaxCandidates)
	for i, path := range c.Profiles {
		p.Go(func() {
			candidates[i] = evaluateFile(path, sweep, opts.Medium)
		})
	}
	p.Wait()

	result, err := ranking.Rank(candidates)
	if err != nil {
		return err
	}

	if g.JSON {
		return printJSON(result)
	}
	fmt.Print(cli.RenderRanking(result))
	return nil
}

func evaluateFile(path string, sweep models.FrequencySweep, medium acoustics.Medium) ranking.Candidate {
	c := ranking.Candidate{ID: path}
	profile, err := readProfile(path)
	if err != nil {
		c.Err = err
		return c
	}
	curve, err := acoustics.ComputeImpedance(profile, sweep, medium)
	if err != nil {
		c.Err = err
		return c
	}
	c.Impedance = &curve
	return c
}

type versionFlag bool

// BeforeApply prints the version and exits before any command runs
func (v versionFlag) BeforeApply(app *kong.Kong, vars kong.Vars) error {
	cli.PrintVersion(vars["version"])
	app.Exit(0)
	return nil
}

// CLI defines the command-line interface
type CLI struct {
	Globals

	Version  versionFlag `short:"v" help:"Show version information"`
	Synth    SynthCmd    `cmd:"" help:"Synthesize a horn expansion profile"`
	Simulate SimulateCmd `cmd:"" help:"Simulate impedance, response and directivity of a profile"`
	Compare  CompareCmd  `cmd:"" help:"Rank profiles by impedance smoothness and reflection"`
}

func main() {
	cliArgs := &CLI{}
	ctx := kong.Parse(cliArgs,
		kong.Name("hornsim"),
		kong.Description("Fractal horn profile synthesis and acoustic simulation"),
		kong.UsageOnError(),
		kong.Vars{
			"version": version,
		},
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)

	if err := ctx.Run(&cliArgs.Globals); err != nil {
		cli.PrintError(err.Error())
		os.Exit(1)
	}
}

func readProfile(path string) (models.ExpansionProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	profile, err := storage.DecodeProfile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return profile, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
