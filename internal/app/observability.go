package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// startObservabilityServer serves liveness and Prometheus metrics on its
// own goroutine for the life of the process.
func startObservabilityServer(logger *slog.Logger, port int) {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr)
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	})
	mux.Handle("/metrics", promhttp.Handler())

	addr := fmt.Sprintf(":%d", port)
	go func() {
		logger.Info("Observability server starting.", "address", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			logger.Error("Observability server failed.", "error", err)
		}
	}()
}
