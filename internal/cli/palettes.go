package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/styles"
)

// palettesCommand creates the palettes command, which prints the built-in
// palettes as swatch tables.
func (c *CLI) palettesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "palettes [name...]",
		Short: "Show the built-in colour palettes",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if len(names) == 0 {
				names = color.PaletteNames()
			}
			out := cmd.OutOrStdout()
			for _, name := range names {
				p, err := color.Lookup(name)
				if err != nil {
					return err
				}
				title := name
				if name == color.DefaultPalette {
					title += " (default)"
				}
				fmt.Fprintln(out, StyleTitle.Render(title))
				t := newTable("Name", "Swatch", "Value", "Used by")
				for _, cn := range p.Names() {
					t.Row(cn, swatch(p[cn]), string(p[cn]), genericUsers(cn))
				}
				fmt.Fprintln(out, t.Render())
			}
			return nil
		},
	}
}

// genericUsers returns the generic style names drawn in colour name cn.
func genericUsers(cn string) string {
	for _, g := range styles.GenericGroups {
		if g.Color == cn {
			return g.Name
		}
	}
	return ""
}
