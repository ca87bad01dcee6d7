// Package auth issues and parses the bearer tokens returned on login.
// Tokens are HS256-signed and carry only the account's public identifier.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/avetisov/authsvc/internal/common"
)

// Claims embeds the registered claim set plus the account's public id.
// The internal account id must never appear here.
type Claims struct {
	jwt.RegisteredClaims
	Value string `json:"value"`
}

// GenerateToken signs a token whose payload is the given public id,
// expiring validityDuration after issuance.
func GenerateToken(publicID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		Value: publicID,
	})

	tokenString, err := token.SignedString(secretKey)
	if err != nil {
		return "", err
	}

	return tokenString, nil
}

// GetPublicIDFromToken validates the signature and expiry of tokenString
// and returns the embedded public id.
func GetPublicIDFromToken(tokenString string, secretKey []byte) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.Value, nil
}
