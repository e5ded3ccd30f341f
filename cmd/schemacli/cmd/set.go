package cmd

import (
	"fmt"

	schematree "github.com/openconfig/schematree"
	"github.com/openconfig/schematree/jsonser"
	"github.com/spf13/cobra"
)

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <json-value>",
		Short: "Deserialize json-value into path and persist the new state",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			keys := schematree.PathString{Value: args[0], Separator: separator()}.ToKeys()
			dec := jsonser.NewDecoder([]byte(args[1]))
			if err := config.DeserializeByKey(keys, dec); err != nil {
				return fmt.Errorf("set %s: %w", args[0], err)
			}
			return saveState(statePath(), config)
		},
	}
}
