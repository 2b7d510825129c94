package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gorilla/mux"
	"github.com/mcq-strategy/backend/internal/config"
	"github.com/mcq-strategy/backend/internal/metrics"
	"github.com/mcq-strategy/backend/internal/middleware"
	"github.com/mcq-strategy/backend/internal/strategy"
	"github.com/rs/cors"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	m := metrics.New()

	memo, err := strategy.NewMemo(cfg.Strategy.MemoSize, m)
	if err != nil {
		log.Fatalf("Failed to create memo: %v", err)
	}

	limits := strategy.Limits{
		MinK: cfg.Strategy.MinK,
		MaxK: cfg.Strategy.MaxK,
		MinP: cfg.Strategy.MinP,
		MaxP: cfg.Strategy.MaxP,
		MinQ: cfg.Strategy.MinQ,
		MaxQ: cfg.Strategy.MaxQ,
	}

	svc := strategy.NewService(memo, limits, m)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      newHandler(cfg, svc, m),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("[server] starting on :%s (env=%s)", cfg.Server.Port, cfg.Server.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	log.Println("[server] shutting down")
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Shutdown failed: %v", err)
	}
}

// newHandler builds the router and wraps it so that every request, matched
// or not, is recovered, logged and counted.
func newHandler(cfg *config.Config, svc *strategy.Service, m *metrics.Metrics) http.Handler {
	r := mux.NewRouter()
	strategy.NewHandler(svc).RegisterRoutes(r)

	// Health check
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	}).Methods("GET")

	if cfg.Monitoring.PrometheusEnabled {
		r.Handle("/metrics", m.Handler()).Methods("GET")
	}

	// CORS
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.Origins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
	})

	return middleware.Recover(middleware.Logger(m)(c.Handler(r)))
}
