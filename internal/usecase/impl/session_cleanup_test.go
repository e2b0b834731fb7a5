package impl

import (
	"context"
	"testing"

	mockRepo "ledger/internal/mocks/repository"

	"github.com/pkg/errors"
)

func TestSessionCleaner_Sweep(t *testing.T) {
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	cleaner := &sessionCleaner{
		refreshTokenRepo: refreshTokenRepo,
		logger:           newDiscardLogger(),
	}

	ctx := context.Background()
	refreshTokenRepo.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(3, nil)

	cleaner.sweep(ctx)
}

func TestSessionCleaner_Sweep_RepositoryError(t *testing.T) {
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	cleaner := &sessionCleaner{
		refreshTokenRepo: refreshTokenRepo,
		logger:           newDiscardLogger(),
	}

	ctx := context.Background()
	refreshTokenRepo.EXPECT().
		DeleteExpiredRefreshTokens(ctx).
		Return(0, errors.New("connection reset"))

	// A failed sweep only logs; the next tick retries.
	cleaner.sweep(ctx)
}
