package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/splitsettle/internal/config"
	"github.com/mmynk/splitsettle/internal/metrics"
	"github.com/mmynk/splitsettle/internal/middleware"
	"github.com/mmynk/splitsettle/internal/service"
	"github.com/mmynk/splitsettle/pkg/logging"
)

const shutdownTimeout = 10 * time.Second

func main() {
	os.Exit(serve())
}

// serve runs the server until a signal arrives and returns the process exit code.
func serve() int {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup()
		slog.Error("Failed to load config", "error", err)
		return 1
	}
	logging.SetupWithLevel(logging.ParseLevel(cfg.LogLevel))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		slog.Error("Server failed", "error", err)
		return 1
	}
	return 0
}

func run(ctx context.Context, cfg config.Config) error {
	m := metrics.New()
	mux := newMux(cfg, m)

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	handler := h2c.NewHandler(
		middleware.Logging(middleware.CORS(cfg.CORSAllowedOrigin)(mux)),
		&http2.Server{},
	)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("Connect server starting", "address", srv.Addr, "url", fmt.Sprintf("http://localhost%s", srv.Addr))
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

	slog.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newMux(cfg config.Config, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	splitPath, splitHandler := service.NewSplitServiceHandler(
		service.NewSplitService(m),
		connect.WithInterceptors(middleware.LoggingInterceptor(m)),
	)
	mux.Handle(splitPath, splitHandler)

	if cfg.MetricsEnabled {
		mux.Handle("GET /metrics", m.Handler())
	}
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok\n"))
	})

	return mux
}
