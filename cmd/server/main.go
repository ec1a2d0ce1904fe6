package main

import (
	"context"
	"log"
	"net/http"
	"time"

	api "github.com/pops-math/popsmath-web/internal/api/http"
	"github.com/pops-math/popsmath-web/internal/config"
	"github.com/pops-math/popsmath-web/internal/content"
	"github.com/pops-math/popsmath-web/internal/kv"
	"github.com/pops-math/popsmath-web/internal/progress"
	"github.com/pops-math/popsmath-web/internal/scoring"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

func main() {
	cfg := config.FromEnv()

	// --- Content catalog ---
	var cat *content.Store
	var err error
	if cfg.ContentDir != "" {
		cat, err = content.LoadDir(cfg.ContentDir)
	} else {
		cat, err = content.Load()
	}
	if err != nil {
		log.Fatalf("content load failed: %v", err)
	}

	// --- Progress storage ---
	backend, err := openBackend(cfg)
	if err != nil {
		log.Fatalf("storage open failed: %v", err)
	}
	store := progress.NewStore(backend)
	engine := scoring.NewEngine(cat, store)

	// --- Unlock passwords (UX deterrent, not auth) ---
	unlocker, err := buildUnlocker(cfg)
	if err != nil {
		log.Fatalf("unlock setup failed: %v", err)
	}

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	api.Mount(r, cat, store, engine, unlocker)

	log.Printf("listening on %s (store=%s, sections=%d, tests=%d)",
		cfg.HTTPAddr, cfg.StoreDriver, len(cat.Sections()), len(cat.TestIDs()))
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}

func openBackend(cfg config.Config) (kv.Backend, error) {
	switch cfg.StoreDriver {
	case "memory":
		return kv.NewMemory(), nil
	case "noop":
		// Rendering without storage: progress reads come back empty
		// and writes vanish, same as the original app before its
		// browser store exists.
		return kv.Noop{}, nil
	case "file":
		return kv.NewFile(cfg.StoreDir)
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return kv.Open(ctx, kv.Driver(cfg.StoreDriver), cfg.StoreDSN)
	}
}

func buildUnlocker(cfg config.Config) (*api.Unlocker, error) {
	lifetime, err := time.ParseDuration(cfg.UnlockTokenLifetime)
	if err != nil {
		return nil, err
	}
	testHash := []byte(cfg.TestPassHash)
	if len(testHash) == 0 {
		testHash, err = api.HashPassword(cfg.TestPassword)
		if err != nil {
			return nil, err
		}
	}
	explainHash := []byte(cfg.ExplainPassHash)
	if len(explainHash) == 0 {
		explainHash, err = api.HashPassword(cfg.ExplainPassword)
		if err != nil {
			return nil, err
		}
	}
	return api.NewUnlocker(cfg.UnlockTokenSecret, lifetime, testHash, explainHash), nil
}
