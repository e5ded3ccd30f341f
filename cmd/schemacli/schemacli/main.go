// Command schemacli is an interactive consumer of a schematree
// configuration tree, in the spirit of original_source/miniconf/examples/
// menu.rs and original_source/miniconf_menu's Menu.
package main

import (
	"fmt"
	"os"

	"github.com/openconfig/schematree/cmd/schemacli/cmd"
)

func main() {
	if err := cmd.RootCmd().Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
