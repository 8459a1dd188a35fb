// Package bootstrap opens the configured storage and assembles the depot
// service and HTTP handler shared by the server and Lambda entrypoints.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/erazemk/juicedepot/internal/api"
	"github.com/erazemk/juicedepot/internal/config"
	"github.com/erazemk/juicedepot/internal/depot"
	"github.com/erazemk/juicedepot/internal/kv"
	"github.com/erazemk/juicedepot/internal/report"
	"github.com/erazemk/juicedepot/internal/store"
)

// OpenBackend opens the key-value backend named in cfg.
func OpenBackend(ctx context.Context, cfg config.Config) (kv.Store, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		return kv.OpenSQLite(cfg.DBPath)
	case config.BackendPostgres:
		return kv.OpenPostgres(ctx, cfg.PostgresDSN)
	case config.BackendRedis:
		return kv.OpenRedis(ctx, kv.RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
			Prefix:   cfg.RedisPrefix,
		})
	case config.BackendMemory:
		return kv.NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
	}
}

// Open opens the store and the service on top of it.
func Open(ctx context.Context, cfg config.Config) (*store.Store, *depot.Service, error) {
	backend, err := OpenBackend(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s backend: %w", cfg.Backend, err)
	}
	slog.Info("storage ready", "backend", cfg.Backend)

	st := store.New(backend, store.Options{ReseedCorrupt: cfg.ReseedCorrupt})
	svc := depot.New(st, depot.WithPasswordHashing(cfg.HashPasswords))
	return st, svc, nil
}

// Handler builds the logged API handler. Without a configured secret the
// one kept in the store is used, generated on first run.
func Handler(ctx context.Context, cfg config.Config, st *store.Store, svc *depot.Service) (http.Handler, error) {
	secret := cfg.JWTSecret
	if secret == "" {
		var err error
		if secret, err = st.GetJWTSecret(ctx); err != nil {
			return nil, err
		}
	}

	locale, err := cfg.Language()
	if err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(svc, st, secret, report.NewRenderer(locale)))
	return api.LoggingMiddleware(mux), nil
}
