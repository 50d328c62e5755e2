package commands

import (
	"io"

	"github.com/spf13/cobra"

	"bsort/internal/domain"
	"bsort/internal/parse"
)

// sort [int ...]: sort the given integers, or stdin when none are given.
func sortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort [int ...]",
		Short: "Sort integers into non-decreasing order",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				seq domain.Sequence
				err error
			)
			if len(args) > 0 {
				seq, err = parse.Sequence(args)
			} else {
				text, readErr := io.ReadAll(cmd.InOrStdin())
				if readErr != nil {
					return readErr
				}
				seq, err = parse.Fields(string(text))
			}
			if err != nil {
				return err
			}
			return appCtx.Sorter.Run(seq)
		},
	}
}
