package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"semainier/internal/catalog"
	"semainier/internal/config"
	"semainier/internal/sessions"
)

const janitorInterval = 5 * time.Minute

func runServer(ctx context.Context, cfg *config.Config, cat *catalog.Catalog, addr string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	registry := sessions.NewRegistry(cat, cfg.Sessions.TTL)

	mux := http.NewServeMux()
	sessions.NewHandler(registry, cat).Register(mux)

	ready := &readiness{checks: []func(context.Context) error{
		func(context.Context) error {
			if cat.Len() == 0 {
				return errors.New("catalog is empty")
			}
			return nil
		},
	}}
	mux.Handle("/ready", ready)

	server := &http.Server{
		Addr:    addr,
		Handler: WithMiddleware(mux),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("serving semainier", "address", addr, "recipes", cat.Len(), "session_ttl", cfg.Sessions.TTL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		return registry.Janitor(gctx, janitorInterval)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("shutdown signal received")
		// kubernetes grants 30 seconds of grace, stay under it
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 25*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
