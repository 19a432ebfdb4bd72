package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/splitsettle/internal/config"
	"github.com/mmynk/splitsettle/internal/metrics"
	"github.com/mmynk/splitsettle/internal/service"
)

func TestNewMux(t *testing.T) {
	t.Run("health check", func(t *testing.T) {
		srv := httptest.NewServer(newMux(config.Config{}, metrics.New()))
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/healthz")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ok\n", string(body))
	})

	t.Run("metrics enabled", func(t *testing.T) {
		srv := httptest.NewServer(newMux(config.Config{MetricsEnabled: true}, metrics.New()))
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Contains(t, string(body), "go_goroutines")
	})

	t.Run("metrics disabled", func(t *testing.T) {
		srv := httptest.NewServer(newMux(config.Config{}, metrics.New()))
		defer srv.Close()

		resp, err := http.Get(srv.URL + "/metrics")
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("connect route", func(t *testing.T) {
		srv := httptest.NewServer(newMux(config.Config{}, metrics.New()))
		defer srv.Close()

		resp, err := http.Post(srv.URL+service.ComputeSettlementProcedure, "application/json",
			strings.NewReader(`{"participants":[{"name":"Alice","amountPaid":"100","amountOwed":"50"},{"name":"Bob","amountOwed":50}]}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.JSONEq(t, `{"transactions":[{"from":"Bob","to":"Alice","amount":"50.00"}]}`, string(body))
	})
}

func TestRun_StopsWhenContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- run(ctx, config.Config{Port: 0, ReadHeaderTimeout: time.Second})
	}()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after the context was cancelled")
	}
}

func TestServe_BadConfigExitsNonZero(t *testing.T) {
	t.Setenv("PORT", "70000")
	assert.Equal(t, 1, serve())
}
