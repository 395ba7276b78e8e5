package main

import (
	"fmt"
	"io"
	"os"

	"journeys/internal/config"
	"journeys/internal/parser"
	"journeys/internal/report"
	"journeys/internal/robot"
)

// CheckCmd represents the check command
type CheckCmd struct {
	File    string `arg:"" help:"Journeys file, or - for stdin"`
	Format  string `help:"Report format (text, json, yaml)" env:"JOURNEYS_FORMAT"`
	Color   string `help:"Color text reports (auto, always, never)" env:"JOURNEYS_COLOR"`
	NoEmoji bool   `help:"Print PASS and FAIL instead of emoji"`
	Workers int    `help:"Maximum journeys simulated at once, 0 for no limit" env:"JOURNEYS_WORKERS" default:"-1"`
	Trace   bool   `help:"Trace the journey grammar while parsing"`
}

// Run executes the check command
func (cmd *CheckCmd) Run(ctx *Context) error {
	cfg, err := ctx.loadConfig(config.Overrides{
		Format:  cmd.Format,
		Color:   cmd.Color,
		NoEmoji: cmd.NoEmoji,
		Workers: cmd.Workers,
	})
	if err != nil {
		return err
	}

	journeys, err := ctx.parseInput(cmd.File, cmd.Trace)
	if err != nil {
		return err
	}

	ctx.Logger.Printf("simulating %d journeys with workers=%d", len(journeys), cfg.Simulation.Workers)
	results, err := robot.RunAll(ctx, journeys, cfg.Simulation.Workers)
	if err != nil {
		return fmt.Errorf("simulation failed: %w", err)
	}

	rep, err := report.New(journeys, results)
	if err != nil {
		return err
	}
	renderer, err := report.NewRenderer(report.Options{
		Format: cfg.Output.Format,
		Color:  cfg.Output.Color,
		Emoji:  cfg.EmojiEnabled(),
	})
	if err != nil {
		return err
	}
	if err := renderer.Render(ctx.Stdout, rep); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if !rep.OK() {
		return fmt.Errorf("%w: %d of %d", ErrJourneysFailed, rep.Failed(), len(rep.Verdicts))
	}
	return nil
}

func (ctx *Context) loadConfig(overrides config.Overrides) (*config.Config, error) {
	cfg, err := config.Load(ctx.Config)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Override(overrides); err != nil {
		return nil, err
	}
	ctx.Logger.Printf("config %s: format=%s color=%s emoji=%t workers=%d",
		ctx.Config, cfg.Output.Format, cfg.Output.Color, cfg.EmojiEnabled(), cfg.Simulation.Workers)
	return cfg, nil
}

// parseInput reads file, or stdin for "-", and parses every journey in it.
// The grammar trace goes to stderr when trace is set.
func (ctx *Context) parseInput(file string, trace bool) ([]robot.Journey, error) {
	var (
		data []byte
		err  error
		name = file
	)
	if file == "-" {
		name = "stdin"
		data, err = io.ReadAll(ctx.Stdin)
	} else {
		data, err = os.ReadFile(file)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	opts := []parser.Option{parser.WithFilename(name)}
	if trace {
		opts = append(opts, parser.WithTrace(ctx.Stderr))
	}
	journeys, err := parser.Parse(string(data), opts...)
	if err != nil {
		return nil, err
	}
	ctx.Logger.Printf("parsed %d journeys from %s", len(journeys), name)
	return journeys, nil
}
