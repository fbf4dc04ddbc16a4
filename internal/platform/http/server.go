package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"belrates/internal/config"

	"github.com/sirupsen/logrus"
)

const readHeaderTimeout = 5 * time.Second

// Start serves handler until ctx is canceled, then drains in-flight lookups
// within the configured shutdown timeout.
func Start(ctx context.Context, cfg config.HTTPServer, handler http.Handler) error {
	listener, err := net.Listen("tcp", ":"+cfg.Port)
	if err != nil {
		return err
	}
	return Serve(ctx, listener, handler, time.Duration(cfg.ShutdownTimeoutSeconds)*time.Second)
}

func Serve(ctx context.Context, listener net.Listener, handler http.Handler, shutdownTimeout time.Duration) error {
	logrus.Infof("✅ HTTP server listening on %s", listener.Addr())

	server := &http.Server{Handler: handler, ReadHeaderTimeout: readHeaderTimeout}
	errCh := make(chan error, 1)
	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		if shutdownTimeout <= 0 {
			shutdownTimeout = 10 * time.Second
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		logrus.Info("Shutting down HTTP server")
		return server.Shutdown(shutdownCtx)
	case serveErr := <-errCh:
		return serveErr
	}
}
