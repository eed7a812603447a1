package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/circos/internal/server"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		domain  string
		certDir string
		noCache bool
		timeout time.Duration
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Figures are posted as JSON or TOML to /v1/layouts (solve and store) or
/v1/render (solve and draw in one call). Stored scenes live in the
configured cache, so with --no-cache POST /v1/layouts answers 501.

With --domain the server obtains certificates from Let's Encrypt and listens
on :80 and :443; --addr is ignored.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Serve.Addr
			}
			return c.runServe(cmd.Context(), serveParams{
				addr:    addr,
				domain:  domain,
				certDir: certDir,
				noCache: noCache,
				timeout: timeout,
			})
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config, \":8080\")")
	cmd.Flags().StringVar(&domain, "domain", "", "serve HTTPS for this domain with automatic certificates")
	cmd.Flags().StringVar(&certDir, "cert-dir", "", "certificate cache directory (default <cache>/certs)")
	cmd.Flags().DurationVar(&timeout, "timeout", time.Minute, "per-request timeout")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching and layout storage")

	return cmd
}

type serveParams struct {
	addr    string
	domain  string
	certDir string
	noCache bool
	timeout time.Duration
}

func (c *CLI) runServe(ctx context.Context, p serveParams) error {
	runner, err := c.newRunner(ctx, p.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	logger := loggerFromContext(ctx)
	srv := server.New(runner, logger, server.WithTimeout(p.timeout))

	if p.domain != "" {
		if p.certDir == "" {
			dir, err := cacheDir()
			if err != nil {
				return fmt.Errorf("certificate directory: %w", err)
			}
			p.certDir = filepath.Join(dir, "certs")
		}
		printInfo("Serving %s", StyleLink.Render("https://"+p.domain))
		printDetail("certificates in %s", p.certDir)
		return srv.ListenAndServeTLS(ctx, server.TLSConfig{Domain: p.domain, CacheDir: p.certDir})
	}

	printInfo("Serving %s", StyleLink.Render("http://"+displayAddr(p.addr)))
	return srv.ListenAndServe(ctx, p.addr)
}

// displayAddr turns a bare ":port" into a clickable localhost address.
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
