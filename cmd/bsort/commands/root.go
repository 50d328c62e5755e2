package commands

import (
	"github.com/spf13/cobra"

	"bsort/internal/app"
)

var (
	verbose bool
	appCtx  *app.Wire
)

func Execute() error {
	root := &cobra.Command{
		Use:   "bsort",
		Short: "Sort integer sequences with bubble sort",
		Args:  cobra.NoArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			appCtx = app.NewWire(app.Config{
				Out:     cmd.OutOrStdout(),
				Verbose: verbose,
			})
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return appCtx.Sorter.Demo()
		},
	}

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(sortCmd())
	return root.Execute()
}
