package routes

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"UpstreamRelayDemoServer/internal/stats"
)

const (
	// RootGreeting is the exact body served on "/".
	RootGreeting = "Hello, World! The server is running."

	// EnvNotFound is the sentinel returned for unset variables.
	EnvNotFound = "NOT FOUND"
)

// Handlers holds dependencies for the server's routes.
type Handlers struct {
	EnvKeys    []string
	Stats      *stats.Collector
	Posts      http.Handler
	RandomFact http.Handler
}

// Router assembles the full route table. Unknown paths 404.
func (h *Handlers) Router() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/":
			h.serveRoot(w)
		case "/health":
			h.serveHealth(w)
		case "/env":
			h.serveEnv(w)
		case "/stats":
			h.serveStats(w)
		case "/posts":
			h.Posts.ServeHTTP(w, r)
		case "/random-fact":
			h.RandomFact.ServeHTTP(w, r)
		default:
			http.NotFound(w, r)
		}
	})
}

func (h *Handlers) serveRoot(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	fmt.Fprint(w, RootGreeting)
}

func (h *Handlers) serveHealth(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{
		"status":    "ok",
		"message":   "Server is healthy.",
		"timestamp": time.Now().UTC().Format(time.RFC3339Nano),
	})
}

func (h *Handlers) serveEnv(w http.ResponseWriter) {
	variables := make(map[string]string, len(h.EnvKeys))
	for _, key := range h.EnvKeys {
		// Empty counts as unset, matching the sentinel contract.
		value := os.Getenv(key)
		if value == "" {
			value = EnvNotFound
		}
		variables[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"message":   "Environment variable lookup results.",
		"variables": variables,
	})
}

func (h *Handlers) serveStats(w http.ResponseWriter) {
	requests, relaySuccess, relayFailure, uptime := h.Stats.Snapshot()

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"requests":       requests,
		"relay_success":  relaySuccess,
		"relay_failure":  relayFailure,
		"uptime_seconds": int64(uptime.Seconds()),
	})
}
