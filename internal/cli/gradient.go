package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotstyles/pkg/api"
	"github.com/matzehuels/plotstyles/pkg/color"
	"github.com/matzehuels/plotstyles/pkg/errors"
	"github.com/matzehuels/plotstyles/pkg/styles"
)

// gradientCommand creates the gradient command, which fans one style into
// lighter and/or darker copies.
func (c *CLI) gradientCommand() *cobra.Command {
	var (
		theme themeOpts
		n     int
		mode  string
	)

	cmd := &cobra.Command{
		Use:   "gradient KEY",
		Short: "Show lighter or darker variants of a style",
		Example: `  plotstyles gradient lsA1 -n 5
  plotstyles gradient fsB2a --mode both -n 7`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fn, err := gradientFunc(mode)
			if err != nil {
				return err
			}
			reg, err := c.buildRegistry(theme)
			if err != nil {
				return err
			}
			base, ok := reg.Style(args[0])
			if !ok {
				return errors.New(errors.ErrCodeNotFound, "no style %q", args[0])
			}
			out, err := fn(color.Blender{}, base, n)
			if err != nil {
				return err
			}

			key, _ := styles.ColorKey(base)
			t := newTable("#", "Swatch", key)
			for i, d := range out {
				col, _ := d.Color(key)
				t.Row(strconv.Itoa(i), swatch(col), string(col))
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, StyleTitle.Render(fmt.Sprintf("%s (%s, %d)", args[0], mode, n)))
			fmt.Fprintln(w, t.Render())
			return nil
		},
	}

	addThemeFlags(cmd, &theme)
	cmd.Flags().IntVarP(&n, "count", "n", api.DefaultGradientSize, "number of variants")
	cmd.Flags().StringVarP(&mode, "mode", "m", api.ModeLighter, "lighter, darker or both")

	return cmd
}

func gradientFunc(mode string) (func(color.Adjuster, styles.Descriptor, int) ([]styles.Descriptor, error), error) {
	switch mode {
	case api.ModeLighter:
		return styles.LighterStyles, nil
	case api.ModeDarker:
		return styles.DarkerStyles, nil
	case api.ModeBoth:
		return styles.LighterDarkerStyles, nil
	}
	return nil, errors.New(errors.ErrCodeInvalidInput, "unknown mode %q (want %s, %s or %s)", mode, api.ModeLighter, api.ModeDarker, api.ModeBoth)
}
