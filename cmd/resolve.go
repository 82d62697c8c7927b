package cmd

import (
	"fmt"
	"io"
	"strings"

	"xwing-inventory/core/catalog"
	"xwing-inventory/core/item"
	"xwing-inventory/core/names"
	"xwing-inventory/core/source"

	"github.com/spf13/cobra"
)

// resolveCmd shows what a display name resolves to.
var resolveCmd = &cobra.Command{
	Use:   "resolve <kind> <name...>",
	Short: "Resolve a display name to its xws id or SKU",
	Long: `Resolves a ship, pilot or upgrade name the way collection singles are resolved,
or an expansion name against the expansion catalog.

Examples:
  resolve pilot "Poe Dameron"
  resolve upgrade R2-D2
  resolve expansion T-70 X-Wing Expansion Pack`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, name := args[0], strings.Join(args[1:], " ")

		if kind == "expansion" {
			return resolveExpansion(cmd, name)
		}

		k, err := item.ParseKind(kind)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), names.Resolve(name, k))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(resolveCmd)
}

func resolveExpansion(cmd *cobra.Command, name string) error {
	rt, err := bootstrap(false)
	if err != nil {
		return err
	}

	var cat *catalog.Catalog
	err = source.Load(cmd.Context(), rt.src, rt.cfg.Sources.Expansions, func(r io.Reader) error {
		cat, err = catalog.Decode(r)
		return err
	})
	if err != nil {
		return err
	}

	e, ok := cat.FindByName(name)
	if !ok {
		return fmt.Errorf("no expansion named %q", name)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s (wave %d)\n", e.SKU, e.Wave)
	return nil
}
