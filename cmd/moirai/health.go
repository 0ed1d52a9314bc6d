package main

import "net/http"

// newHealthServer returns an http.Server listening on addr and exposing a
// liveness endpoint, started and gracefully shut down by serve() around
// the ingest/dispatch worker lifetime.
func newHealthServer(addr string) *http.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return &http.Server{Addr: addr, Handler: mux}
}
