package cmd

import (
	"errors"
	"fmt"

	schematree "github.com/openconfig/schematree"
	"github.com/openconfig/schematree/internal/aggregate"
	"github.com/spf13/cobra"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Enumerate every leaf path in the tree, depth-first, via NodeIterator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sep := separator()
			schema := config.Schema()
			it := schematree.NewNodeIterator(schema, schema.Shape().MaxDepth, func() *schematree.Track[*schematree.Path] {
				return schematree.NewTrack[*schematree.Path](schematree.NewPath(sep))
			})
			total := schema.Shape().Count
			var overflows aggregate.Collector
			for {
				tracked, depth, overflow, ok := it.Next()
				if !ok {
					break
				}
				if overflow {
					overflows.Add(depth, errors.New("leaf overflowed its container"))
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s (depth %d, %d/%d remaining)\n",
					tracked.Inner.String(), tracked.Depth, it.Remaining(), total)
			}
			if overflows.Len() > 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "%d leaves overflowed while enumerating:\n%s\n",
					overflows.Len(), overflows.Err())
			}
			return nil
		},
	}
}
