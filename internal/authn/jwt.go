// Package authn validates bearer JWTs on the planner service's HTTP API.
// Unlike the player-facing auth service this is adapted from, the planner
// has no session data worth encrypting at rest in the token itself, so
// the AES envelope layer is dropped: claims are carried in the clear,
// signed but not encrypted.
package authn

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims extends jwt.RegisteredClaims with the caller identity used for
// audit attribution.
type Claims struct {
	ActorID string   `json:"actor_id"`
	Roles   []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenManager issues and validates signed bearer tokens.
type TokenManager struct {
	signingKey []byte
	issuer     string
}

// NewTokenManager creates a TokenManager. signingKey should be at least
// 32 bytes for HS256.
func NewTokenManager(signingKey []byte, issuer string) *TokenManager {
	return &TokenManager{signingKey: signingKey, issuer: issuer}
}

// GenerateToken issues a signed JWT for actorID valid for the given
// duration.
func (tm *TokenManager) GenerateToken(actorID string, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		ActorID: actorID,
		Roles:   roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tm.issuer,
			Subject:   actorID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.signingKey)
}

// ValidateToken parses and validates a bearer token, returning its claims.
func (tm *TokenManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return tm.signingKey, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
