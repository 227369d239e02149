package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/planna-app/planna/internal/model"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// TokenCodec signs and verifies the persisted auth snapshot. The snapshot is
// an HS256 token whose claims carry the serialized user record, so a
// tampered or expired copy is discarded on reload instead of trusted.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// UserClaims embeds the full user record in the token payload. The password
// hash is excluded via the model's json tags and never leaves memory.
type UserClaims struct {
	User model.User `json:"user"`
	jwt.RegisteredClaims
}

func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Issue creates a snapshot token for the given user.
func (c *TokenCodec) Issue(user model.User) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		User: user,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign snapshot token: %w", err)
	}
	return signed, nil
}

// Parse validates a snapshot token and returns the embedded user record.
func (c *TokenCodec) Parse(tokenString string) (*model.User, error) {
	token, err := jwt.ParseWithClaims(
		tokenString,
		&UserClaims{},
		func(token *jwt.Token) (any, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return c.secret, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*UserClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	return &claims.User, nil
}
