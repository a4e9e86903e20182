// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/puzzles/rolls"
)

func newRollsCmd() *cobra.Command {
	var part2 bool

	cmd := &cobra.Command{
		Use:   "rolls [input]",
		Short: "Count reachable paper rolls",
		Long: `Counts '@' rolls with fewer than four neighbouring rolls.

With --part2 the reachable rolls are removed repeatedly until none are
left, and the total removed is reported.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			g := rolls.Parse(text)
			if err := g.Validate(); err != nil {
				return fmt.Errorf("rolls: %w", err)
			}
			h, w := g.Size()
			logger.Debug("parsed map", "rows", h, "cols", w)

			var res int
			if part2 {
				res = rolls.RemoveAll(g)
			} else {
				res = rolls.Accessible(g)
			}
			prog.done("Solved rolls")

			fmt.Fprintf(cmd.OutOrStdout(), "result = %d\n", res)
			return nil
		},
	}

	cmd.Flags().BoolVar(&part2, "part2", false, "remove rolls until none are reachable")
	return cmd
}
