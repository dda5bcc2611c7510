package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenRevoked = errors.New("token has been revoked")
)

// TokenService issues and verifies the signed bearer tokens used for
// authentication. Tokens carry no expiry; revocation happens through a
// shared in-process denylist. The denylist lives in process memory only,
// so it does not survive restarts and is not shared between replicas.
type TokenService struct {
	secret []byte

	mu      sync.Mutex
	revoked map[string]struct{}
}

// NewTokenService creates a new TokenService signing with the given secret.
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret:  []byte(secret),
		revoked: make(map[string]struct{}),
	}
}

// Issue signs a token binding the given user ID.
func (s *TokenService) Issue(userID uint64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// Verify validates the signature and revocation state of a token and
// returns the user ID it binds.
func (s *TokenService) Verify(tokenString string) (uint64, error) {
	parsed, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return 0, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, ErrInvalidToken
	}

	// JSON numbers decode as float64
	userID, ok := claims["userId"].(float64)
	if !ok || userID <= 0 {
		return 0, ErrInvalidToken
	}

	s.mu.Lock()
	_, revoked := s.revoked[tokenString]
	s.mu.Unlock()
	if revoked {
		return 0, ErrTokenRevoked
	}

	return uint64(userID), nil
}

// Revoke verifies a token and adds it to the denylist. Revoking an
// already-revoked token is a no-op.
func (s *TokenService) Revoke(tokenString string) error {
	if _, err := s.Verify(tokenString); err != nil {
		if errors.Is(err, ErrTokenRevoked) {
			return nil
		}
		return err
	}

	s.mu.Lock()
	s.revoked[tokenString] = struct{}{}
	s.mu.Unlock()

	return nil
}
