package cmd

import (
	"fmt"

	schematree "github.com/openconfig/schematree"
	"github.com/openconfig/schematree/jsonser"
	"github.com/spf13/cobra"
)

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Print the JSON value at path, e.g. /brightness or /channels/0",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := schematree.PathString{Value: args[0], Separator: separator()}.ToKeys()
			var enc jsonser.Encoder
			if err := config.SerializeByKey(keys, &enc); err != nil {
				return fmt.Errorf("get %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), enc.Buf.String())
			return nil
		},
	}
}
