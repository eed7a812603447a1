package server

import (
	"context"
	"crypto/tls"
	"net/http"
	"time"

	"golang.org/x/crypto/acme/autocert"

	"github.com/matzehuels/circos/pkg/errors"
)

// TLSConfig configures automatic certificates from Let's Encrypt.
type TLSConfig struct {
	// Domain is the only host certificates are requested for (plus www.).
	Domain string
	// CacheDir stores issued certificates between restarts.
	CacheDir string
}

// ListenAndServeTLS serves HTTPS on :443 with certificates from autocert,
// and answers ACME challenges and redirects to HTTPS on :80.
func (s *Server) ListenAndServeTLS(ctx context.Context, cfg TLSConfig) error {
	if cfg.Domain == "" {
		return errors.New(errors.ErrCodeInvalidInput, "tls needs a domain")
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = "certs"
	}
	mgr := &autocert.Manager{
		Prompt:     autocert.AcceptTOS,
		Cache:      autocert.DirCache(cfg.CacheDir),
		HostPolicy: autocert.HostWhitelist(cfg.Domain, "www."+cfg.Domain),
	}

	redirect := &http.Server{
		Addr: ":80",
		Handler: mgr.HTTPHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Redirect(w, r, "https://"+cfg.Domain+r.URL.RequestURI(), http.StatusMovedPermanently)
		})),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := redirect.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error("acme listener", "error", err)
		}
	}()
	defer redirect.Close()

	tlsCfg := mgr.TLSConfig()
	tlsCfg.MinVersion = tls.VersionTLS12
	srv := &http.Server{
		Addr:              ":443",
		Handler:           s,
		TLSConfig:         tlsCfg,
		ReadHeaderTimeout: 10 * time.Second,
	}
	s.logger.Info("serving https", "domain", cfg.Domain)
	return s.serve(ctx, srv, func() error { return srv.ListenAndServeTLS("", "") })
}
