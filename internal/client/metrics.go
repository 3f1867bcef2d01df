package client

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/memclip/internal/logger"
)

const metricsShutdownTimeout = 5 * time.Second

// serveMetrics exposes handler on address under /metrics until ctx ends.
func serveMetrics(ctx context.Context, address string, handler http.Handler, log *logger.Logger) error {
	router := chi.NewRouter()
	router.Handle("/metrics", handler)

	srv := &http.Server{
		Addr:              address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("func", "serveMetrics").Str("address", address).Msg("metrics endpoint listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
