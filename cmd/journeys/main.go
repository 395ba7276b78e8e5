package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"

	"journeys/internal/config"
)

// version is set with -ldflags "-X main.version=...".
var version = "dev"

// ErrJourneysFailed is returned by check when at least one journey did not
// end where it claimed.
var ErrJourneysFailed = errors.New("journeys failed")

// Context represents the global context for commands
type Context struct {
	context.Context

	Config string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *log.Logger
}

// CLI represents the command-line interface
type CLI struct {
	Config  string     `help:"Configuration file path" default:"journeys.yaml" env:"JOURNEYS_CONFIG"`
	Verbose bool       `help:"Log progress to stderr" short:"v"`
	Check   CheckCmd   `cmd:"" default:"withargs" help:"Simulate journeys and check where each one ends"`
	Parse   ParseCmd   `cmd:"" help:"Parse journeys and print them without simulating"`
	Version VersionCmd `cmd:"" help:"Show version information"`
}

// VersionCmd represents the version command
type VersionCmd struct{}

// Run executes the version command
func (cmd *VersionCmd) Run(ctx *Context) error {
	_, err := fmt.Fprintf(ctx.Stdout, "journeys %s\n", version)
	return err
}

func newLogger(w io.Writer, verbose bool) *log.Logger {
	if !verbose {
		return log.New(io.Discard, "", 0)
	}
	return log.New(w, "journeys: ", log.Ltime|log.Lshortfile)
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if err := config.LoadEnv(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	var cli CLI
	exitCode := -1
	parser, err := kong.New(&cli,
		kong.Name("journeys"),
		kong.Description("Check robot journeys: simulate each one and compare with its claimed end state."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) { exitCode = code }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	kctx, err := parser.Parse(args)
	if exitCode >= 0 {
		return exitCode
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	appCtx := &Context{
		Context: ctx,
		Config:  cli.Config,
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  newLogger(stderr, cli.Verbose),
	}

	err = kctx.Run(appCtx)
	switch {
	case err == nil:
		return 0
	case errors.Is(err, ErrJourneysFailed):
		appCtx.Logger.Print(err)
		return 1
	default:
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
