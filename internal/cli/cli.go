package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/plotstyles/pkg/buildinfo"
	"github.com/matzehuels/plotstyles/pkg/config"
	"github.com/matzehuels/plotstyles/pkg/styles"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "plotstyles"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           appName,
		Short:         "Plotstyles generates named style catalogs for plots",
		Long:          `Plotstyles expands compact theme definitions into catalogs of line, point, linepoint and fill styles, and lets you export, inspect and serve them.`,
		Version:       buildinfo.Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.gradientCommand())
	root.AddCommand(c.palettesCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Theme Flags
// =============================================================================

// themeOpts holds the flags that select the theme a command builds.
type themeOpts struct {
	config  string // TOML theme file; overrides preset
	preset  string // built-in preset name
	palette string // palette override
}

func addThemeFlags(cmd *cobra.Command, opts *themeOpts) {
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "theme file (TOML)")
	cmd.Flags().StringVar(&opts.preset, "preset", config.DefaultPreset, "built-in preset: screen, paper, sketch")
	cmd.Flags().StringVar(&opts.palette, "palette", "", "override the palette: muted, vivid, plain")
}

// loadTheme returns the theme selected by opts.
func (c *CLI) loadTheme(opts themeOpts) (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if opts.config != "" {
		c.Logger.Debug("loading theme", "path", opts.config)
		cfg, err = config.Load(opts.config)
	} else {
		c.Logger.Debug("using preset", "preset", opts.preset)
		cfg, err = config.Preset(opts.preset)
	}
	if err != nil {
		return nil, err
	}
	if opts.palette != "" {
		cfg.Palette = opts.palette
	}
	return cfg, nil
}

// buildRegistry builds the styles of the theme selected by opts.
func (c *CLI) buildRegistry(opts themeOpts) (*styles.Registry, error) {
	cfg, err := c.loadTheme(opts)
	if err != nil {
		return nil, err
	}
	prog := newProgress(c.Logger)
	reg := styles.NewRegistry()
	gen := styles.NewGenerator(styles.WithLogger(c.Logger))
	if err := cfg.Build(gen, reg); err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Generated %d styles from palette %s", reg.Len(), cfg.Palette))
	return reg, nil
}
