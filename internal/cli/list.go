package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotstyles/pkg/errors"
)

// listCommand creates the list command. Without arguments it lists the style
// groups; with a prefix it lists the styles of one group.
func (c *CLI) listCommand() *cobra.Command {
	var (
		theme  themeOpts
		suffix string
	)

	cmd := &cobra.Command{
		Use:   "list [prefix]",
		Short: "List style groups, or the styles of one group",
		Example: `  plotstyles list
  plotstyles list ls --suffix m`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.buildRegistry(theme)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				t := newTable("Group", "Prefix", "Suffix", "Styles")
				for _, gk := range reg.Groups() {
					t.Row(gk.String(), gk.Prefix, strconv.Quote(gk.Suffix), strconv.Itoa(len(reg.GroupNames(gk.Prefix, gk.Suffix))))
				}
				fmt.Fprintln(out, t.Render())
				printDetail(out, "%d names, %d styles", len(reg.Names()), reg.Len())
				printNextStep(out, "Show a group", "plotstyles list ls --suffix m")
				return nil
			}

			prefix := args[0]
			g, ok := reg.Group(prefix, suffix)
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "no group %q", prefix+suffix)
			}
			fmt.Fprintln(out, StyleTitle.Render(prefix+suffix))
			t := newTable("Key", "Color", "Attributes")
			for _, name := range reg.GroupNames(prefix, suffix) {
				d := g[name]
				t.Row(prefix+name+suffix, swatch(descriptorColor(d)), summarize(d))
			}
			fmt.Fprintln(out, t.Render())
			return nil
		},
	}

	addThemeFlags(cmd, &theme)
	cmd.Flags().StringVarP(&suffix, "suffix", "s", "", "group suffix (\"\", m, c, s, a)")

	return cmd
}

// showCommand creates the show command, which prints one descriptor.
func (c *CLI) showCommand() *cobra.Command {
	var theme themeOpts

	cmd := &cobra.Command{
		Use:     "show KEY",
		Short:   "Show the attributes of one style",
		Example: `  plotstyles show lpsB2m`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.buildRegistry(theme)
			if err != nil {
				return err
			}
			d, ok := reg.Style(args[0])
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "no style %q", args[0])
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render(args[0]))
			printDescriptor(out, d)
			return nil
		},
	}

	addThemeFlags(cmd, &theme)
	return cmd
}
