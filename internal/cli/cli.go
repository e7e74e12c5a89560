// Package cli implements the stralg command line tool.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

// App carries everything the commands need, so tests can run them against
// buffers instead of the process streams.
type App struct {
	cfg    Config
	in     io.Reader
	out    io.Writer
	errOut io.Writer

	noColor bool
}

// NewApp creates an App with the given configuration and streams.
func NewApp(cfg Config, in io.Reader, out, errOut io.Writer) *App {
	return &App{cfg: cfg, in: in, out: out, errOut: errOut}
}

func (app *App) styles() styles {
	return newStyles(app.cfg.Color && !app.noColor)
}

// NewRootCommand builds the stralg command tree.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "stralg",
		Short:         "Exact string matching from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVar(&app.noColor, "no-color", false, "disable coloured output")
	root.SetOut(app.out)
	root.SetErr(app.errOut)
	root.AddCommand(
		newSearchCommand(app),
		newBordersCommand(app),
		newDrawCommand(app),
	)
	return root
}

// Execute loads the configuration, runs the command tree and returns the
// process exit code. It cancels running searches on interrupt.
func Execute() int {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "stralg:", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := NewApp(cfg, os.Stdin, os.Stdout, os.Stderr)
	root := NewRootCommand(app)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "stralg:", err)
		return 1
	}
	return 0
}
