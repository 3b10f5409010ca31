package main

import (
	"fmt"
	"net/http"
	"os"

	"trade-tracker-go/internal/config"
	"trade-tracker-go/internal/fixtures"
	"trade-tracker-go/internal/logger"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// mockapi serves the platform backend's trade-tracker wire contract from
// the sqlite fixture store, so the dashboard's live client path can be
// exercised without the real backend.
func main() {
	cfg, err := config.LoadConfig("./configs")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.NewLogger(cfg.Logger.Level, cfg.Logger.Format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	store, err := fixtures.Open(cfg.Database.DSN, log)
	if err != nil {
		log.Fatal("Failed to open fixture store", zap.Error(err))
	}
	for _, slug := range cfg.Rooms.Slugs {
		if err := store.Seed(slug); err != nil {
			log.Fatal("Failed to seed fixtures", zap.Error(err))
		}
	}

	h := NewHandler(log, store)

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/trades/{room}", h.ListTrades).Methods(http.MethodGet)
	api.HandleFunc("/trades/{room}/{id:[0-9]+}", h.CloseTrade).Methods(http.MethodPut)
	api.HandleFunc("/auth/me", h.Me).Methods(http.MethodGet)
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "OK")
	}).Methods(http.MethodGet)

	addr := fmt.Sprintf(":%d", cfg.Server.MockPort)
	log.Info("Starting mock platform API", zap.String("address", addr))

	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Mock platform API failed", zap.Error(err))
	}
}
