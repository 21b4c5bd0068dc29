package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cyngu/integration-continue-exo-node/internal/core/domain"
)

// TokenService signs and verifies HS256 bearer tokens carrying the account
// identity and its role snapshot.
type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Issue signs a token for the user. The role and its permissions are copied
// into the claims, so later role changes do not affect this token.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := s.now()
	claims := domain.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Name:      user.Name,
		Firstname: user.Firstname,
		Email:     user.Email,
		Role:      domain.NewRoleClaim(user.Role),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Decode parses the token and verifies both signature and expiry before any
// embedded claim is trusted. Authorization decisions must never run on an
// unverified payload.
func (s *TokenService) Decode(token string) (*domain.TokenClaims, error) {
	claims := &domain.TokenClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
