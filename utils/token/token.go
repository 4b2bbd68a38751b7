// Package token issues and verifies the bearer tokens protecting the API.
// Tokens are HS256 JWTs carrying the user id under a nested "user" claim.
package token

import (
	"os"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/pkg/errors"
)

// DefaultTTLSeconds is the token lifetime when TOKEN_TTL_SECONDS is unset.
const DefaultTTLSeconds = 360000

var ErrInvalidToken = errors.New("invalid token")

type UserClaim struct {
	ID string `json:"id"`
}

type Claims struct {
	User UserClaim `json:"user"`
	jwt.RegisteredClaims
}

// New signs a token for the given user id, expiring after the configured TTL.
func New(userID string) (string, error) {
	claims := Claims{
		User: UserClaim{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl())),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret())
	if err != nil {
		return "", errors.Wrap(err, "sign token")
	}
	return signed, nil
}

// Parse verifies a raw token and returns the user id it carries. Expired,
// malformed or wrongly-signed tokens all surface as ErrInvalidToken.
func Parse(raw string) (string, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret(), nil
	})
	if err != nil {
		return "", ErrInvalidToken
	}
	if claims.User.ID == "" {
		return "", ErrInvalidToken
	}
	return claims.User.ID, nil
}

func secret() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func ttl() time.Duration {
	if v := os.Getenv("TOKEN_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n != 0 {
			return time.Duration(n) * time.Second
		}
	}
	return DefaultTTLSeconds * time.Second
}
