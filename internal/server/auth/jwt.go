// Package auth implements access-token minting and verification plus
// password hashing for the server.
package auth

import (
	"errors"
	"time"

	"github.com/aislekit/aislekit/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the standard registered claims plus the identity the
// handlers need: the user and the couple workspace the token is scoped to.
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"uid"`
	CoupleID string `json:"cid"`
}

// GenerateToken mints a signed HS256 access token scoped to the given user
// and couple.
func GenerateToken(userID, coupleID string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID:   userID,
		CoupleID: coupleID,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies the signature and expiry and returns the embedded
// claims. Expired tokens map to common.ErrTokenExpired so callers can tell
// a stale session from a forged one.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
