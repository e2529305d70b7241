// Package auth issues and parses remember tokens: signed JWTs carrying the
// account id and the salt that was current at login.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/sampleapp/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims identifies a remembered session. Salt is compared against the
// stored one on every request, so rotating the credential revokes the token.
type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"uid"`
	Salt   string `json:"salt"`
}

func GenerateRememberToken(userID, salt string, secretKey []byte, validityDuration time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(validityDuration)),
		},
		UserID: userID,
		Salt:   salt,
	})

	return token.SignedString(secretKey)
}

// ParseRememberToken verifies the signature and expiry and returns the
// remembered (userID, salt) pair.
func ParseRememberToken(tokenString string, secretKey []byte) (string, string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return secretKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", "", common.ErrTokenExpired
		}
		return "", "", common.ErrInvalidToken
	}

	if !token.Valid || claims.UserID == "" || claims.Salt == "" {
		return "", "", common.ErrInvalidToken
	}

	return claims.UserID, claims.Salt, nil
}
