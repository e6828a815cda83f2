package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotstyles/pkg/api"
)

const (
	defaultAddr            = "localhost:8080"
	defaultShutdownTimeout = 5 * time.Second
)

// serveCommand creates the serve command, which exposes the catalog over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		theme themeOpts
		addr  string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the style catalog over HTTP",
		Example: `  plotstyles serve --preset screen --addr :9000
  curl localhost:9000/styles/lsA1`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.buildRegistry(theme)
			if err != nil {
				return err
			}
			srv := &http.Server{
				Addr:              addr,
				Handler:           api.New(reg, api.WithLogger(c.Logger)),
				ReadHeaderTimeout: 10 * time.Second,
			}
			return c.serve(cmd.Context(), srv)
		},
	}

	addThemeFlags(cmd, &theme)
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}

// serve runs srv until ctx is cancelled, then shuts it down gracefully.
func (c *CLI) serve(ctx context.Context, srv *http.Server) error {
	errc := make(chan error, 1)
	go func() {
		c.Logger.Info("Serving style catalog", "addr", srv.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), defaultShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
