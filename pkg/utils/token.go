package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenManager issues and verifies stateless signed session tokens.
// There is no server-side session store, so tokens cannot be revoked
// before expiry.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

type TokenClaims struct {
	UserID string
	Role   string
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

// Sign issues a token carrying user id, role, and expiry.
func (m *TokenManager) Sign(userID, role string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(m.ttl)

	claims := jwt.MapClaims{
		"sub":  userID,
		"role": role,
		"exp":  expiresAt.Unix(),
		"iat":  now.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return token, expiresAt, nil
}

// Verify checks signature and expiry. It never touches the store.
func (m *TokenManager) Verify(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}
	if _, err := mapClaims.GetExpirationTime(); err != nil {
		return nil, err
	}

	sub, err := mapClaims.GetSubject()
	if err != nil || sub == "" {
		return nil, errors.New("missing subject claim")
	}
	role, _ := mapClaims["role"].(string)
	if role == "" {
		return nil, errors.New("missing role claim")
	}

	return &TokenClaims{UserID: sub, Role: role}, nil
}
