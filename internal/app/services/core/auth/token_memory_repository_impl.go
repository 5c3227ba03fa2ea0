package auth

import (
	"context"
	"sync"
	"time"
	"vollmed-client/internal/app/contracts"
)

// tokenMemoryRepository remembers revoked token IDs until the token would have expired anyway.
type tokenMemoryRepository struct {
	mu      sync.Mutex
	revoked map[string]int64
}

func NewTokenMemoryRepository() contracts.TokenRepository {
	return &tokenMemoryRepository{
		revoked: make(map[string]int64),
	}
}

func (repo *tokenMemoryRepository) Revoke(ctx context.Context, tokenID string, until int64) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.pruneLocked(time.Now().Unix())
	repo.revoked[tokenID] = until
	return nil
}

func (repo *tokenMemoryRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	_, ok := repo.revoked[tokenID]
	return ok, nil
}

func (repo *tokenMemoryRepository) pruneLocked(now int64) {
	for tokenID, until := range repo.revoked {
		if until < now {
			delete(repo.revoked, tokenID)
		}
	}
}
