package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skill-gap/internal/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrDuplicateEmail  = errors.New("email already registered")
)

type Account struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	FullName     string
	CreatedAt    time.Time
}

type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (Account, error)
	Create(ctx context.Context, email, passwordHash, fullName string) (Account, error)
}

type PostgresAccountRepository struct {
	db database.DB
}

func NewPostgresAccountRepository(db database.DB) *PostgresAccountRepository {
	return &PostgresAccountRepository{db: db}
}

func (r *PostgresAccountRepository) FindByEmail(ctx context.Context, email string) (Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, email, password_hash, full_name, created_at FROM accounts WHERE email = $1`,
		email,
	)

	var a Account
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.FullName, &a.CreatedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return Account{}, ErrAccountNotFound
		}
		return Account{}, err
	}
	return a, nil
}

func (r *PostgresAccountRepository) Create(ctx context.Context, email, passwordHash, fullName string) (Account, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM accounts WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return Account{}, err
	}
	if exists {
		return Account{}, ErrDuplicateEmail
	}

	now := time.Now().UTC()
	id := uuid.New()
	_, err := r.db.Exec(ctx,
		`INSERT INTO accounts (id, email, password_hash, full_name, created_at) VALUES ($1, $2, $3, $4, $5)`,
		id, email, passwordHash, fullName, now,
	)
	if err != nil {
		return Account{}, err
	}

	return Account{ID: id, Email: email, PasswordHash: passwordHash, FullName: fullName, CreatedAt: now}, nil
}
