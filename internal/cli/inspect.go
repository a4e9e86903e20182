// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/grid"
	"github.com/katalvlaran/lvlgrid/parse"
)

func newInspectCmd() *cobra.Command {
	var (
		transpose bool
		count     string
		border    bool
	)

	cmd := &cobra.Command{
		Use:   "inspect [input]",
		Short: "Print the size of an input grid and optional views of it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			b := parse.Map(text)
			if border {
				b = b.Border()
			}
			g := b.Collect()
			if err := g.Validate(); err != nil {
				return fmt.Errorf("inspect: %w", err)
			}

			out := cmd.OutOrStdout()
			h, w := g.Size()
			fmt.Fprintf(out, "size = %dx%d\n", h, w)

			if count != "" {
				if utf8.RuneCountInString(count) != 1 {
					return fmt.Errorf("inspect: --count %q must be a single character", count)
				}
				want, _ := utf8.DecodeRuneInString(count)
				n := g.Count2D(func(r rune) bool { return r == want })
				fmt.Fprintf(out, "count(%c) = %d\n", want, n)
			}
			if transpose {
				fmt.Fprint(out, grid.Render(g.Transpose(), func(r rune) rune { return r }))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&transpose, "transpose", false, "print the transposed grid")
	cmd.Flags().StringVar(&count, "count", "", "count cells holding this character")
	cmd.Flags().BoolVar(&border, "strip-border", false, "drop the outer ring before inspecting")
	return cmd
}
