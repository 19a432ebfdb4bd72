// Package middleware holds the Connect interceptors and HTTP middleware of the server.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"

	"github.com/mmynk/splitsettle/internal/metrics"
)

// LoggingInterceptor returns a Connect interceptor that logs every RPC call
// and records its duration. It logs the procedure name, duration, and any
// error codes/messages.
func LoggingInterceptor(m *metrics.Metrics) connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			procedure := req.Spec().Procedure

			resp, err := next(ctx, req)

			elapsed := time.Since(start)
			duration := elapsed.Milliseconds()
			code := "ok"
			if err != nil {
				code = connect.CodeOf(err).String()
				var connectErr *connect.Error
				if errors.As(err, &connectErr) {
					slog.WarnContext(ctx, "RPC error",
						"procedure", procedure,
						"code", connectErr.Code(),
						"error", connectErr.Message(),
						"duration_ms", duration,
					)
				} else {
					slog.ErrorContext(ctx, "RPC error",
						"procedure", procedure,
						"error", err,
						"duration_ms", duration,
					)
				}
			} else {
				slog.InfoContext(ctx, "RPC ok",
					"procedure", procedure,
					"duration_ms", duration,
				)
			}
			if m != nil {
				m.ObserveRPC(procedure, code, elapsed)
			}

			return resp, err
		}
	}
}
