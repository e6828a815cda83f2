package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotstyles/pkg/errors"
	"github.com/matzehuels/plotstyles/pkg/export"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	theme    themeOpts
	format   string   // output format: "json" or "toml"
	output   string   // output file; stdout when empty
	prefixes []string // restrict to these style prefixes
	indent   string   // indentation; empty for compact JSON
}

// generateCommand creates the generate command, which exports a style catalog.
func (c *CLI) generateCommand() *cobra.Command {
	opts := generateOpts{
		format: export.FormatJSON,
		indent: export.DefaultIndent,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a style catalog and export it as JSON or TOML",
		Example: `  plotstyles generate --preset screen -o screen.json
  plotstyles generate --config theme.toml --format toml --prefix ls,fs`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}

	addThemeFlags(cmd, &opts.theme)
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json, toml")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringSliceVar(&opts.prefixes, "prefix", nil, "only export these prefixes (ls, ps, lps, fs)")
	cmd.Flags().StringVar(&opts.indent, "indent", opts.indent, "indentation string")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	format := strings.ToLower(opts.format)
	if format != export.FormatJSON && format != export.FormatTOML {
		return errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", opts.format)
	}

	reg, err := c.buildRegistry(opts.theme)
	if err != nil {
		return err
	}

	exportOpts := []export.Option{export.WithIndent(opts.indent)}
	if len(opts.prefixes) > 0 {
		exportOpts = append(exportOpts, export.WithPrefixes(opts.prefixes...))
	}
	data, err := export.Encode(format, reg, exportOpts...)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	out := cmd.OutOrStdout()
	printSuccess(out, "Exported %d styles", reg.Len())
	printFile(out, opts.output)
	return nil
}
