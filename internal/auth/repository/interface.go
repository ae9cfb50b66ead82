package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("not found")
var ErrEmailTaken = errors.New("email already registered")

type Account struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// AccountRepository stores stub API accounts. Emails are unique
// case-insensitively.
type AccountRepository interface {
	CreateAccount(ctx context.Context, name, email, passwordHash string) (Account, error)
	GetAccountByEmail(ctx context.Context, email string) (Account, error)
}

var (
	_ AccountRepository = (*Repository)(nil)
	_ AccountRepository = (*MemoryRepository)(nil)
)
