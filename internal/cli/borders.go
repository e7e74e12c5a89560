package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mailund/stralg-go/pkg/search"
)

func newBordersCommand(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "borders <pattern>",
		Short: "Print the border, strict border and Z arrays of a pattern",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pattern := args[0]
			fmt.Fprintf(app.out, "border: %v\n", search.BorderArray(pattern))
			fmt.Fprintf(app.out, "strict: %v\n", search.StrictBorderArray(pattern))
			fmt.Fprintf(app.out, "z:      %v\n", search.ZArray(pattern))
			return nil
		},
	}
}
