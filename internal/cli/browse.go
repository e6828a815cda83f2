package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// browseCommand creates the browse command, an interactive style browser.
func (c *CLI) browseCommand() *cobra.Command {
	var theme themeOpts

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse styles interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.buildRegistry(theme)
			if err != nil {
				return err
			}

			p := tea.NewProgram(NewStyleListModel(reg), tea.WithContext(cmd.Context()))
			final, err := p.Run()
			if err != nil {
				return fmt.Errorf("run browser: %w", err)
			}

			m, ok := final.(StyleListModel)
			if !ok || m.Selected == "" {
				return nil
			}
			d, _ := reg.Style(m.Selected)
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, StyleTitle.Render(m.Selected))
			printDescriptor(out, d)
			return nil
		},
	}

	addThemeFlags(cmd, &theme)
	return cmd
}
