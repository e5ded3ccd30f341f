package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	schematree "github.com/openconfig/schematree"
	"github.com/openconfig/schematree/jsonser"
	"github.com/spf13/cobra"
)

// walkPartial descends schema consuming keys one hop at a time, the way
// Schema.Descend does, except that running out of keys before reaching a
// leaf (KeyTooShort) ends the walk at whatever node it reached instead of
// failing. This is what lets a menu root sit at an internal node, the
// same tolerance Rust's TreeKey::transcode gives Menu::push/pop
// (original_source/miniconf_menu/src/lib.rs: entering "/b" then "/0"
// leaves the menu two levels into a non-leaf array element, and exiting
// back out re-derives that same partial depth).
func walkPartial(schema *schematree.Schema, keys schematree.Keys) ([]schematree.Step, error) {
	var steps []schematree.Step
	cur := schema
	for cur.Internal != nil {
		idx, err := keys.Next(cur.Internal)
		if err != nil {
			var ke *schematree.KeyError
			if errors.As(err, &ke) && ke.Kind == schematree.KeyTooShort {
				return steps, nil
			}
			return nil, err
		}
		steps = append(steps, schematree.Step{Index: idx, Internal: cur.Internal})
		cur = cur.Internal.ChildSchema(idx)
	}
	if err := keys.Finalize(); err != nil {
		return nil, err
	}
	return steps, nil
}

// packFromSteps re-encodes steps (as produced by walkPartial) into a
// Packed value, pushing the same bit width at each hop that walkPartial's
// source Packed (if any) would have been decoded with.
func packFromSteps(steps []schematree.Step) (schematree.Packed, error) {
	p := schematree.PackedEmpty
	for _, s := range steps {
		nbits := schematree.BitsFor(s.Internal.Len())
		if !p.PushLSB(nbits, uint(s.Index)) {
			return 0, errors.New("menu: packed capacity exceeded")
		}
	}
	return p, nil
}

// pathFromSteps renders steps as a separator-joined path, the same
// name-or-index choice Path.Transcode makes per hop.
func pathFromSteps(sep byte, steps []schematree.Step) string {
	var b strings.Builder
	for _, s := range steps {
		b.WriteByte(sep)
		if name, ok := s.Internal.Name(s.Index); ok {
			b.WriteString(name)
		} else {
			b.WriteString(strconv.Itoa(s.Index))
		}
	}
	return b.String()
}

// menuStatePath is where the current menu root (a Packed value) is
// persisted between invocations, the CLI-process equivalent of Menu
// holding its `key: Packed` field across `enter`/`exit` calls in
// original_source/miniconf_menu/src/lib.rs.
const menuStatePath = "schemacli_menu.state"

func loadMenuRoot() (schematree.Packed, error) {
	b, err := os.ReadFile(menuStatePath)
	if os.IsNotExist(err) {
		return schematree.PackedEmpty, nil
	}
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseUint(strings.TrimSpace(string(b)), 10, 64)
	if err != nil {
		return 0, err
	}
	return schematree.Packed(n), nil
}

func saveMenuRoot(p schematree.Packed) error {
	return os.WriteFile(menuStatePath, []byte(strconv.FormatUint(uint64(p), 10)), 0o644)
}

func newMenuCmd() *cobra.Command {
	menu := &cobra.Command{
		Use:   "menu",
		Short: "Navigate the tree as a persisted subtree root, like miniconf_menu's Menu",
	}
	menu.AddCommand(newMenuEnterCmd())
	menu.AddCommand(newMenuExitCmd())
	menu.AddCommand(newMenuWhereCmd())
	menu.AddCommand(newMenuGetCmd())
	menu.AddCommand(newMenuSetCmd())
	return menu
}

// enter re-roots the menu at root.chain(path), the Go equivalent of
// Menu::push composing the stored root key with freshly parsed path
// input via Packed.Chain.
func newMenuEnterCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "enter <path>",
		Short: "Descend the menu root by path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadMenuRoot()
			if err != nil {
				return err
			}
			chained := root.Chain(schematree.PathString{Value: args[0], Separator: separator()})
			steps, err := walkPartial(config.Schema(), chained.ToKeys())
			if err != nil {
				return fmt.Errorf("enter %s: %w", args[0], err)
			}
			next, err := packFromSteps(steps)
			if err != nil {
				return fmt.Errorf("enter %s: %w", args[0], err)
			}
			return saveMenuRoot(next)
		},
	}
}

// exit pops levels entries off the current menu root, mirroring Menu::pop
// (decode the root into its indices, truncate, re-encode).
func newMenuExitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exit [levels]",
		Short: "Ascend the menu root by levels (default 1)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			levels := 1
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return err
				}
				levels = n
			}
			root, err := loadMenuRoot()
			if err != nil {
				return err
			}
			steps, err := walkPartial(config.Schema(), root.ToKeys())
			if err != nil {
				return err
			}
			newLen := len(steps) - levels
			if newLen < 0 {
				return fmt.Errorf("exit %d: only at depth %d", levels, len(steps))
			}
			next, err := packFromSteps(steps[:newLen])
			if err != nil {
				return err
			}
			return saveMenuRoot(next)
		},
	}
}

func newMenuWhereCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "where",
		Short: "Print the current menu root as a path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadMenuRoot()
			if err != nil {
				return err
			}
			steps, err := walkPartial(config.Schema(), root.ToKeys())
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), pathFromSteps(separator(), steps))
			return nil
		},
	}
}

func newMenuGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "Get a value relative to the current menu root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadMenuRoot()
			if err != nil {
				return err
			}
			chained := root.Chain(schematree.PathString{Value: args[0], Separator: separator()})
			var enc jsonser.Encoder
			if err := config.SerializeByKey(chained.ToKeys(), &enc); err != nil {
				return fmt.Errorf("menu get %s: %w", args[0], err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), enc.Buf.String())
			return nil
		},
	}
}

func newMenuSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <json-value>",
		Short: "Set a value relative to the current menu root",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := loadMenuRoot()
			if err != nil {
				return err
			}
			chained := root.Chain(schematree.PathString{Value: args[0], Separator: separator()})
			dec := jsonser.NewDecoder([]byte(args[1]))
			if err := config.DeserializeByKey(chained.ToKeys(), dec); err != nil {
				return fmt.Errorf("menu set %s: %w", args[0], err)
			}
			return saveState(statePath(), config)
		},
	}
}
