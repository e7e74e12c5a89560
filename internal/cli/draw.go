package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mailund/stralg-go/pkg/search/drawer"
)

func newDrawCommand(app *App) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "draw <pattern>...",
		Short: "Render pattern automata as a Graphviz DOT file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := drawer.New(output)
			for _, pattern := range args {
				if err := d.AddPattern(pattern); err != nil {
					return err
				}
			}
			if err := d.Draw(); err != nil {
				return err
			}
			fmt.Fprintf(app.out, "wrote %s\n", app.styles().file.Render(output))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "automaton.dot", "DOT file to write")

	return cmd
}
