package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"Civilcalc/internal/auth"
	"Civilcalc/internal/calc/importer"
	"Civilcalc/internal/calc/registry"
	"Civilcalc/internal/calc/report"
	"Civilcalc/internal/calc/sieve"
	"Civilcalc/internal/config"
	"Civilcalc/internal/grading"

	"github.com/gorilla/mux"
	"golang.org/x/time/rate"
)

var wg sync.WaitGroup

func CORS(mux *mux.Router) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		mux.ServeHTTP(w, r)
	})
}

func loadCatalog(ctx context.Context, cfg config.Config) (*grading.Catalog, error) {
	switch {
	case cfg.GradingDatabaseURL != "":
		db, err := grading.Open(ctx, cfg.GradingDatabaseURL)
		if err != nil {
			return nil, err
		}
		defer db.Close()
		log.Println("Loading grading tables from PostgreSQL")
		return grading.LoadPostgres(ctx, db)
	case cfg.GradingFile != "":
		log.Printf("Loading grading tables from %s", cfg.GradingFile)
		return grading.Load(cfg.GradingFile)
	default:
		return grading.Default()
	}
}

func HandleList(mux *mux.Router, cfg config.Config, catalog *grading.Catalog) {
	limiter := auth.NewIPRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)

	api := mux.PathPrefix("/api").Subrouter()
	api.Use(limiter.LimitMiddleware)
	if cfg.TokenKey != "" {
		guard := &auth.TokenGuard{Key: []byte(cfg.TokenKey)}
		api.Use(guard.Middleware)
	}

	calcH := &registry.Handler{}
	sieveH := &sieve.Handler{Catalog: catalog}
	importH := &importer.Handler{Catalog: catalog}
	reportH := &report.Handler{Catalog: catalog}

	api.HandleFunc("/calculators", calcH.List).Methods("GET")
	api.HandleFunc("/calculators/{id}", calcH.Get).Methods("GET")
	api.HandleFunc("/calculators/{id}/calc", calcH.Calc).Methods("POST")
	api.HandleFunc("/calculators/{id}/trials", calcH.Trials).Methods("POST")
	api.HandleFunc("/calculators/{id}/import", importH.Trials).Methods("POST")
	api.HandleFunc("/calculators/{id}/report", reportH.Calculator).Methods("POST")

	api.HandleFunc("/gradings", sieveH.List).Methods("GET")
	api.HandleFunc("/gradings/{id}", sieveH.Get).Methods("GET")
	api.HandleFunc("/gradings/{id}/calc", sieveH.Calc).Methods("POST")
	api.HandleFunc("/gradings/{id}/import", importH.Retained).Methods("POST")
	api.HandleFunc("/gradings/{id}/report", reportH.Gradation).Methods("POST")
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Config error: %v", err)
	}

	loadCtx, cancelLoad := context.WithTimeout(ctx, 10*time.Second)
	catalog, err := loadCatalog(loadCtx, cfg)
	cancelLoad()
	if err != nil {
		log.Fatalf("Grading tables: %v", err)
	}
	log.Printf("Loaded %d grading tables, %d calculators", catalog.Len(), len(registry.List()))

	mux := mux.NewRouter()
	HandleList(mux, cfg, catalog)
	handler := CORS(mux)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	wg.Add(1)
	go func() {
		defer wg.Done()
		var err error
		if cfg.TLS() {
			log.Printf("Starting server on %s (TLS)", cfg.Addr)
			err = server.ListenAndServeTLS(cfg.TLSCert, cfg.TLSKey)
		} else {
			log.Printf("Starting server on %s", cfg.Addr)
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			log.Printf("Server error: %v", err)
			cancel()
		}
	}()

	<-ctx.Done()
	fmt.Println("Shutdown signal received!")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server shutdown error: %v", err)
	}
	log.Println("Server stopped")

	wg.Wait()
}
