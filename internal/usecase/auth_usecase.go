package usecase

import (
	"context"
	"errors"
	"strings"

	"skill-gap/internal/pkg/jwt"
	"skill-gap/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmailAlreadyRegistered = errors.New("email already registered")
	ErrInvalidCredentials     = errors.New("invalid credentials")
)

type RegisterInput struct {
	Email    string
	Password string
	FullName string
}

type LoginInput struct {
	Email    string
	Password string
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type AuthUsecase interface {
	Register(ctx context.Context, in RegisterInput) (repository.Account, error)
	Login(ctx context.Context, in LoginInput) (repository.Account, TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (TokenPair, error)
}

type Auth struct {
	accounts repository.AccountRepository
	tokens   jwt.Service
}

func NewAuthUsecase(accounts repository.AccountRepository, tokens jwt.Service) *Auth {
	return &Auth{accounts: accounts, tokens: tokens}
}

func (u *Auth) Register(ctx context.Context, in RegisterInput) (repository.Account, error) {
	email := normalizeEmail(in.Email)
	if email == "" || !isValidPassword(in.Password) {
		return repository.Account{}, ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return repository.Account{}, ErrInternal
	}

	acc, err := u.accounts.Create(ctx, email, string(hash), strings.TrimSpace(in.FullName))
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return repository.Account{}, ErrEmailAlreadyRegistered
		}
		return repository.Account{}, ErrInternal
	}

	return sanitizeAccount(acc), nil
}

func (u *Auth) Login(ctx context.Context, in LoginInput) (repository.Account, TokenPair, error) {
	email := normalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return repository.Account{}, TokenPair{}, ErrInvalidCredentials
	}

	acc, err := u.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return repository.Account{}, TokenPair{}, ErrInvalidCredentials
		}
		return repository.Account{}, TokenPair{}, ErrInternal
	}

	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(in.Password)); err != nil {
		return repository.Account{}, TokenPair{}, ErrInvalidCredentials
	}

	pair, err := u.issueTokens(acc)
	if err != nil {
		return repository.Account{}, TokenPair{}, ErrInternal
	}

	return sanitizeAccount(acc), pair, nil
}

func (u *Auth) Refresh(ctx context.Context, refreshToken string) (TokenPair, error) {
	claims, err := u.tokens.ValidateToken(strings.TrimSpace(refreshToken))
	if err != nil {
		return TokenPair{}, ErrUnauthorized
	}
	if !u.tokens.IsRefreshToken(claims) {
		return TokenPair{}, ErrUnauthorized
	}

	access, err := u.tokens.GenerateAccessToken(claims.AccountID, claims.Email)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	refresh, err := u.tokens.GenerateRefreshToken(claims.AccountID)
	if err != nil {
		return TokenPair{}, ErrInternal
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (u *Auth) issueTokens(acc repository.Account) (TokenPair, error) {
	access, err := u.tokens.GenerateAccessToken(acc.ID, acc.Email)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := u.tokens.GenerateRefreshToken(acc.ID)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidPassword(pw string) bool {
	return len(strings.TrimSpace(pw)) >= 8
}

func sanitizeAccount(acc repository.Account) repository.Account {
	acc.PasswordHash = ""
	return acc
}
