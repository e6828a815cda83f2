// Package cli implements the plotstyles command-line interface.
//
// The CLI builds a style registry from a preset or a TOML theme file and
// offers several views on it. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - generate: Export the catalog as JSON or TOML
//   - list: List style groups, or the styles of one group
//   - show: Print the attributes of one style
//   - gradient: Fan a style into lighter and darker variants
//   - palettes: Show the built-in palettes
//   - browse: Interactive style browser
//   - serve: Read-only HTTP catalog
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which includes
// one record per generator batch.
package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
)

// Execute runs the plotstyles CLI with args and returns an error if any
// command fails. Logs go to logw, command output to out.
//
//	func main() {
//	    if err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute(ctx context.Context, args []string, out, logw io.Writer) error {
	var verbose bool

	c := New(logw, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(logw)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		level := LogInfo
		if verbose {
			level = LogDebug
		}
		c.SetLogLevel(level)
	}

	return root.ExecuteContext(ctx)
}
