package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepository keeps accounts in process memory. It is used when the
// stub API runs without DATABASE_URL and in tests.
type MemoryRepository struct {
	mu       sync.RWMutex
	accounts map[string]Account
	now      func() time.Time
}

func NewMemory() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]Account), now: time.Now}
}

func (r *MemoryRepository) CreateAccount(_ context.Context, name, email, passwordHash string) (Account, error) {
	key := strings.ToLower(email)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.accounts[key]; exists {
		return Account{}, ErrEmailTaken
	}

	account := Account{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    r.now(),
	}
	r.accounts[key] = account
	return account, nil
}

func (r *MemoryRepository) GetAccountByEmail(_ context.Context, email string) (Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, ok := r.accounts[strings.ToLower(email)]
	if !ok {
		return Account{}, ErrNotFound
	}
	return account, nil
}
