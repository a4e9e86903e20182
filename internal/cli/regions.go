// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlgrid/gridgraph"
	"github.com/katalvlaran/lvlgrid/parse"
)

func newRegionsCmd() *cobra.Command {
	var (
		land   string
		diag   bool
		bridge []int
	)

	cmd := &cobra.Command{
		Use:   "regions [input]",
		Short: "List connected regions of a land character",
		Long: `Finds connected regions of the land character (from --land or the
config file) and prints their sizes. With --bridge a,b the fewest
non-land cells to convert so that regions a and b touch is printed too.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, _, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			// the config land value is validated when the config is loaded
			want := configFromContext(cmd.Context()).LandRune()
			if land != "" {
				if utf8.RuneCountInString(land) != 1 {
					return fmt.Errorf("regions: --land %q must be a single character", land)
				}
				want, _ = utf8.DecodeRuneInString(land)
			}

			conn := gridgraph.Conn4
			if diag {
				conn = gridgraph.Conn8
			}
			gg, err := gridgraph.New(parse.Map(text).Collect(), func(r rune) bool { return r == want }, conn)
			if err != nil {
				return fmt.Errorf("regions: %w", err)
			}
			loggerFromContext(cmd.Context()).Debug("grid graph ready", "conn", conn)

			out := cmd.OutOrStdout()
			comps := gg.ConnectedComponents()
			fmt.Fprintf(out, "regions = %d\n", len(comps))
			for i, comp := range comps {
				fmt.Fprintf(out, "region %d: size=%d start=%v\n", i, len(comp), comp[0])
			}

			if len(bridge) > 0 {
				if len(bridge) != 2 {
					return fmt.Errorf("regions: --bridge takes two region indices, got %d", len(bridge))
				}
				_, cost, err := gg.ExpandIsland(bridge[0], bridge[1])
				if err != nil {
					return fmt.Errorf("regions: %w", err)
				}
				fmt.Fprintf(out, "bridge %d-%d cost = %d\n", bridge[0], bridge[1], cost)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&land, "land", "", "land character (default from config)")
	cmd.Flags().BoolVar(&diag, "diag", false, "connect diagonal neighbours")
	cmd.Flags().IntSliceVar(&bridge, "bridge", nil, "two region indices to bridge, e.g. 0,1")
	return cmd
}
