// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"ledger/internal/domain/repository"

	"go.uber.org/fx"
)

const sessionCleanupInterval = time.Hour

// SessionCleanupParams holds dependencies for the expired-session sweeper, injected by Fx.
type SessionCleanupParams struct {
	fx.In
	fx.Lifecycle

	RefreshTokenRepo repository.RefreshTokenRepository
	Logger           *slog.Logger
}

// sessionCleaner periodically removes expired refresh tokens so the
// refresh_tokens table does not grow without bound. Expired rows are already
// invisible to lookups; the sweep only reclaims storage.
type sessionCleaner struct {
	refreshTokenRepo repository.RefreshTokenRepository
	logger           *slog.Logger
}

// RegisterSessionCleanup starts the periodic sweep on application start and
// stops it on shutdown.
func RegisterSessionCleanup(params SessionCleanupParams) {
	cleaner := &sessionCleaner{
		refreshTokenRepo: params.RefreshTokenRepo,
		logger:           params.Logger,
	}

	sweepCtx, cancel := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go cleaner.run(sweepCtx, sessionCleanupInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancel()

			return nil
		},
	})
}

func (c *sessionCleaner) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.sweep(ctx)
		}
	}
}

// sweep deletes expired refresh tokens. Failures are logged and retried on
// the next tick.
func (c *sessionCleaner) sweep(ctx context.Context) {
	deleted, err := c.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		c.logger.Error("Failed to delete expired refresh tokens", slog.Any("error", err))

		return
	}

	if deleted > 0 {
		c.logger.Info("Deleted expired refresh tokens", slog.Int64("count", deleted))
	}
}
