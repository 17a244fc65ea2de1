package main

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/grimdank-editor/internal/clients/backend"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/editor"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/estimation"
	"github.com/KirkDiggler/grimdank-editor/internal/orchestrators/roster"
	"github.com/KirkDiggler/grimdank-editor/internal/pkg/clock"
	"github.com/KirkDiggler/grimdank-editor/internal/pkg/idgen"
	"github.com/KirkDiggler/grimdank-editor/internal/redis"
	"github.com/KirkDiggler/grimdank-editor/internal/repositories/drafts"
)

func newBackend() (backend.Client, error) {
	return backend.New(&backend.Config{
		BaseURL: cfg.BackendURL,
		Timeout: cfg.RequestTimeout,
	})
}

// newDrafts connects to Redis. The returned func closes the connection.
func newDrafts(ctx context.Context) (drafts.Repository, func(), error) {
	rc, err := redis.Connect(ctx, cfg.RedisAddrs, &redis.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		UseTLS:   cfg.RedisTLS,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	cleanup := func() {
		_ = rc.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	repo, err := drafts.NewRedisRepository(&drafts.RedisConfig{
		Client: rc,
		Clock:  clock.New(),
		TTL:    cfg.DraftTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return repo, cleanup, nil
}

// newEditor builds the editor service. Without persistent drafts it keeps
// drafts in memory for the life of the command.
func newEditor(ctx context.Context, persistent bool) (editor.Service, func(), error) {
	be, err := newBackend()
	if err != nil {
		return nil, nil, err
	}

	var repo drafts.Repository = drafts.NewInMemory(clock.New(), cfg.DraftTTL)
	cleanup := func() {}
	if persistent {
		repo, cleanup, err = newDrafts(ctx)
		if err != nil {
			return nil, nil, err
		}
	}

	svc, err := editor.NewOrchestrator(&editor.Config{
		Backend:     be,
		Drafts:      repo,
		IDGenerator: idgen.NewUUID("draft"),
		Clock:       clock.New(),
		DraftTTL:    cfg.DraftTTL,
	})
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return svc, cleanup, nil
}

func newEstimation() (estimation.Service, error) {
	be, err := newBackend()
	if err != nil {
		return nil, err
	}
	return estimation.NewOrchestrator(&estimation.Config{Backend: be})
}

func newRoster() (roster.Service, error) {
	be, err := newBackend()
	if err != nil {
		return nil, err
	}
	return roster.NewOrchestrator(&roster.Config{Backend: be, Concurrency: cfg.RosterFetches})
}

// openUnit hydrates a unit session without touching the draft store
func openUnit(ctx context.Context, id string) (*editor.UnitEditor, func(), error) {
	svc, cleanup, err := newEditor(ctx, false)
	if err != nil {
		return nil, nil, err
	}
	out, err := svc.OpenUnit(ctx, &editor.OpenInput{ID: id})
	if err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to open unit: %w", err)
	}
	return out.Editor, cleanup, nil
}
