package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"UpstreamRelayDemoServer/internal/config"
	"UpstreamRelayDemoServer/internal/middleware"
	"UpstreamRelayDemoServer/internal/relay"
	"UpstreamRelayDemoServer/internal/reqlog"
	"UpstreamRelayDemoServer/internal/routes"
	"UpstreamRelayDemoServer/internal/spinner"
	"UpstreamRelayDemoServer/internal/stats"
)

/*

PIPELINE ORDER (TOP to BOTTOM):

1. Guardrails        :   reject non-GET traffic early
2. Recording         :   one diagnostic line + counter per request
3. Routing           :   exact-path dispatch, 404 otherwise
4. Relays            :   upstream forwarding for /posts and /random-fact

Recording wraps routing so it sees ALL requests (incl. rejects).
*/

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.LUTC)

	/*
		Environment preload (.env is optional)
	*/

	if err := config.LoadDotenv("./.env"); err != nil {
		log.Printf("dotenv load failed, continuing with process environment: %v", err)
	}

	/*
		Configuration (YAML based, defaults on any error)
	*/

	cfg, err := config.Load("./config.yaml")
	if err != nil {
		log.Printf("config load failed, running on defaults: %v", err)
	}

	/*
		Diagnostic stream, stats, spinner
	*/

	diag := reqlog.NewLogger(os.Stdout)

	collector := stats.NewCollector()

	spin := spinner.New(os.Stdout, time.Second)
	spin.Start()
	defer spin.Stop()

	/*
		Upstream relays (static, one URL each)
	*/

	posts := relay.New(
		"posts",
		cfg.PostsURL,
		relay.PostsFailureMessage,
		diag,
		collector,
	)

	randomFact := relay.New(
		"random-fact",
		cfg.RandomFactURL,
		relay.RandomFactFailureMessage,
		diag,
		collector,
	)

	/*
		Routes
	*/

	handlers := &routes.Handlers{
		EnvKeys:    cfg.EnvKeys,
		Stats:      collector,
		Posts:      posts,
		RandomFact: randomFact,
	}

	/*
		Final handler chain (exact required order)
	*/

	finalHandler := middleware.RecordMiddleware(diag, collector)(
		middleware.GuardMiddleware(
			handlers.Router(),
		),
	)

	/*
		HTTP server
	*/

	server := &http.Server{
		Addr:         cfg.ListenAddr,
		Handler:      finalHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Printf("Upstream relay demo server listening on %s", cfg.ListenAddr)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server error: %v", err)
	}
}
