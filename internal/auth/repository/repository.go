package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

const createAccountQuery = `
	INSERT INTO accounts (id, name, email, password_hash)
	VALUES ($1, $2, $3, $4)
	RETURNING id, name, email, password_hash, created_at
`

const getAccountByEmailQuery = `
	SELECT id, name, email, password_hash, created_at
	FROM accounts WHERE lower(email) = lower($1)
`

// Repository is the Postgres implementation of AccountRepository.
type Repository struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

func (r *Repository) CreateAccount(ctx context.Context, name, email, passwordHash string) (Account, error) {
	var account Account
	err := r.pool.QueryRow(ctx, createAccountQuery, uuid.New(), name, email, passwordHash).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return Account{}, ErrEmailTaken
	}
	if err != nil {
		return Account{}, err
	}
	return account, nil
}

func (r *Repository) GetAccountByEmail(ctx context.Context, email string) (Account, error) {
	var account Account
	err := r.pool.QueryRow(ctx, getAccountByEmailQuery, email).Scan(
		&account.ID,
		&account.Name,
		&account.Email,
		&account.PasswordHash,
		&account.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return Account{}, ErrNotFound
	}
	return account, err
}
