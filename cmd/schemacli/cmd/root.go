// Package cmd is the command tree for schemacli, a small interactive
// consumer of the schematree library: the out-of-scope "CLI menu"
// transport spec.md names as an external collaborator, grounded on
// original_source/miniconf_menu/src/lib.rs's Menu (subtree-root
// composition via Packed.Chain, get/set by path) and
// original_source/miniconf/examples/menu.rs, translated to a
// spf13/cobra command tree the way openconfig-ygot/gnmidiff/cmd builds
// its own.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var config = NewDemoConfig()

// RootCmd builds the schemacli command tree.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "schemacli",
		Short: "schemacli is an interactive consumer of a schematree configuration tree",
	}

	cfgFile := root.PersistentFlags().String("config_file", "", "Path to a viper config file.")
	statePath := root.PersistentFlags().String("state", "schemacli_state.json", "Path to the whole-tree JSON state snapshot.")
	root.PersistentFlags().String("separator", "/", "Path separator used for get/set/list.")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if *cfgFile != "" {
			viper.SetConfigFile(*cfgFile)
			if err := viper.ReadInConfig(); err != nil {
				return fmt.Errorf("error reading config: %w", err)
			}
		}
		viper.BindPFlags(cmd.Flags())
		viper.BindPFlags(root.PersistentFlags())
		viper.AutomaticEnv()
		return loadState(*statePath, config)
	}

	root.AddCommand(newGetCmd())
	root.AddCommand(newSetCmd())
	root.AddCommand(newListCmd())
	root.AddCommand(newMenuCmd())

	return root
}

func separator() byte {
	if v := viper.GetString("separator"); v != "" {
		return v[0]
	}
	return '/'
}

func statePath() string {
	return viper.GetString("state")
}
