// Package jwt issues and validates the HMAC-signed tokens that guard the
// engine endpoints. Access and refresh tokens are signed with separate
// secrets, so leaking one class never compromises the other.
package jwt

import (
	"errors"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	KindAccess  = "access"
	KindRefresh = "refresh"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Claims carries the HR account identity plus the token kind. Kind is what
// keeps refresh tokens off the protected routes.
type Claims struct {
	AccountID uuid.UUID `json:"account_id"`
	Email     string    `json:"email,omitempty"`
	Kind      string    `json:"kind"`

	jwtlib.RegisteredClaims
}

type Service interface {
	GenerateAccessToken(accountID uuid.UUID, email string) (string, error)
	GenerateRefreshToken(accountID uuid.UUID) (string, error)
	ValidateToken(tokenString string) (Claims, error)
	IsRefreshToken(claims Claims) bool
}

type HMACService struct {
	accessSecret  []byte
	refreshSecret []byte

	accessTTL  time.Duration
	refreshTTL time.Duration

	now func() time.Time
}

func NewHMACService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *HMACService {
	return &HMACService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		now:           time.Now,
	}
}

func (s *HMACService) GenerateAccessToken(accountID uuid.UUID, email string) (string, error) {
	return s.sign(KindAccess, accountID, email)
}

func (s *HMACService) GenerateRefreshToken(accountID uuid.UUID) (string, error) {
	return s.sign(KindRefresh, accountID, "")
}

// ValidateToken accepts tokens of either kind; callers inspect Kind (or
// IsRefreshToken) to decide whether the kind fits the call site.
func (s *HMACService) ValidateToken(tokenString string) (Claims, error) {
	var sawExpired bool
	for _, secret := range [][]byte{s.accessSecret, s.refreshSecret} {
		claims, err := s.parse(tokenString, secret)
		if err == nil {
			return claims, nil
		}
		if errors.Is(err, ErrTokenExpired) {
			sawExpired = true
		}
	}
	if sawExpired {
		return Claims{}, ErrTokenExpired
	}
	return Claims{}, ErrTokenInvalid
}

func (s *HMACService) IsRefreshToken(claims Claims) bool {
	return claims.Kind == KindRefresh
}

func (s *HMACService) sign(kind string, accountID uuid.UUID, email string) (string, error) {
	secret, ttl, err := s.material(kind)
	if err != nil {
		return "", err
	}

	issued := s.now().UTC()
	claims := Claims{
		AccountID: accountID,
		Email:     email,
		Kind:      kind,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   accountID.String(),
			IssuedAt:  jwtlib.NewNumericDate(issued),
			ExpiresAt: jwtlib.NewNumericDate(issued.Add(ttl)),
		},
	}

	return jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(secret)
}

func (s *HMACService) parse(tokenString string, secret []byte) (Claims, error) {
	parser := jwtlib.NewParser(
		jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}),
		jwtlib.WithTimeFunc(s.now),
	)

	var claims Claims
	tok, err := parser.ParseWithClaims(tokenString, &claims, func(*jwtlib.Token) (any, error) {
		return secret, nil
	})
	if err != nil {
		if errors.Is(err, jwtlib.ErrTokenExpired) {
			return Claims{}, ErrTokenExpired
		}
		return Claims{}, ErrTokenInvalid
	}
	if tok == nil || !tok.Valid {
		return Claims{}, ErrTokenInvalid
	}
	if claims.Kind != KindAccess && claims.Kind != KindRefresh {
		return Claims{}, ErrTokenInvalid
	}
	return claims, nil
}

func (s *HMACService) material(kind string) ([]byte, time.Duration, error) {
	switch kind {
	case KindAccess:
		if len(s.accessSecret) == 0 || s.accessTTL <= 0 {
			return nil, 0, ErrTokenInvalid
		}
		return s.accessSecret, s.accessTTL, nil
	case KindRefresh:
		if len(s.refreshSecret) == 0 || s.refreshTTL <= 0 {
			return nil, 0, ErrTokenInvalid
		}
		return s.refreshSecret, s.refreshTTL, nil
	default:
		return nil, 0, ErrTokenInvalid
	}
}

var _ Service = (*HMACService)(nil)
