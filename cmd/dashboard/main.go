package main

import (
	"fmt"
	"net/http"
	"os"

	"trade-tracker-go/internal/config"
	"trade-tracker-go/internal/fixtures"
	"trade-tracker-go/internal/logger"
	"trade-tracker-go/internal/platform"
	"trade-tracker-go/internal/tracker"

	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Pick the trade source: the live platform API, or the fixture store
	// when use_mock_data is set.
	var source platform.Source
	if cfg.Platform.UseMockData {
		log.Warn("Using fixture data instead of the live platform API")
		store, err := fixtures.Open(cfg.Database.DSN, log)
		if err != nil {
			log.Fatal("Failed to open fixture store", zap.Error(err))
		}
		for _, slug := range cfg.Rooms.Slugs {
			if err := store.Seed(slug); err != nil {
				log.Fatal("Failed to seed fixtures", zap.Error(err))
			}
		}
		source = store
	} else {
		source = platform.NewClient(&cfg.Platform, log)
	}

	// One tracker session per configured room
	trackers := make(map[string]*tracker.Tracker, len(cfg.Rooms.Slugs))
	for _, slug := range cfg.Rooms.Slugs {
		trackers[slug] = tracker.NewTracker(source, log, slug, cfg.Rooms.DefaultLimit)
	}

	// Setup HTTP server
	mux := http.NewServeMux()

	apiHandler := NewAPIHandler(log, trackers)

	// API endpoints
	mux.HandleFunc("GET /api/status", apiHandler.StatusHandler)
	mux.HandleFunc("GET /api/rooms/{slug}/trades", apiHandler.TradesHandler)
	mux.HandleFunc("GET /api/rooms/{slug}/stats", apiHandler.StatsHandler)
	mux.HandleFunc("GET /api/rooms/{slug}/trades/{id}/preview", apiHandler.PreviewHandler)
	mux.HandleFunc("POST /api/rooms/{slug}/trades/{id}/close", apiHandler.CloseTradeHandler)

	// Static file serving for CSS, JS, etc.
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir("web/static"))))

	// HTML template serving
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "web/templates/index.html")
	})

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Info("Starting dashboard server", zap.String("address", addr))

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal("Dashboard server failed", zap.Error(err))
	}
}
