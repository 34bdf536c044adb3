package jwt

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
)

func newTestService() *HMACService {
	return NewHMACService("access-secret", "refresh-secret", 15*time.Minute, 24*time.Hour)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	svc := newTestService()
	accountID := uuid.New()

	token, err := svc.GenerateAccessToken(accountID, "hr@example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.AccountID != accountID {
		t.Fatalf("expected account %s, got %s", accountID, claims.AccountID)
	}
	if claims.Email != "hr@example.com" {
		t.Fatalf("expected email to round-trip, got %q", claims.Email)
	}
	if claims.Kind != KindAccess {
		t.Fatalf("expected kind %q, got %q", KindAccess, claims.Kind)
	}
	if svc.IsRefreshToken(claims) {
		t.Fatalf("access token classified as refresh")
	}
}

func TestRefreshTokenKind(t *testing.T) {
	svc := newTestService()
	accountID := uuid.New()

	token, err := svc.GenerateRefreshToken(accountID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	claims, err := svc.ValidateToken(token)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Kind != KindRefresh {
		t.Fatalf("expected kind %q, got %q", KindRefresh, claims.Kind)
	}
	if !svc.IsRefreshToken(claims) {
		t.Fatalf("refresh token not classified as refresh")
	}
	if claims.Email != "" {
		t.Fatalf("refresh token should not carry an email, got %q", claims.Email)
	}
}

func TestExpiredTokenRejected(t *testing.T) {
	svc := newTestService()

	issued := time.Now()
	svc.now = func() time.Time { return issued }
	token, err := svc.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	svc.now = func() time.Time { return issued.Add(16 * time.Minute) }
	if _, err := svc.ValidateToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTamperedTokenRejected(t *testing.T) {
	svc := newTestService()

	token, err := svc.GenerateAccessToken(uuid.New(), "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ValidateToken(token + "x"); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid, got %v", err)
	}

	other := NewHMACService("other-access", "other-refresh", time.Minute, time.Hour)
	if _, err := other.ValidateToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Fatalf("expected ErrTokenInvalid across key sets, got %v", err)
	}
}
