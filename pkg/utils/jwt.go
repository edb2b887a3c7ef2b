package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Sessions last 7 days. Claims are embedded at issuance and are NOT
// re-checked against the live user row on later requests; a role change
// only takes effect once the holder logs in again or the token expires.
// Logout clears the client cookie without server-side revocation.
const SessionTTL = 7 * 24 * time.Hour

type SessionClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func jwtKey() []byte {
	return []byte(os.Getenv("JWT_SECRET"))
}

func CreateToken(userID uuid.UUID, email, name, role string) (string, error) {
	return createToken(userID, email, name, role, SessionTTL)
}

func createToken(userID uuid.UUID, email, name, role string, ttl time.Duration) (string, error) {
	claims := &SessionClaims{
		UserID: userID.String(),
		Email:  email,
		Name:   name,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey())
}

// ValidateToken verifies signature and expiry. Every failure mode
// (bad signature, expired, malformed) collapses into ErrInvalidToken so
// callers cannot leak verification internals.
func ValidateToken(tokenString string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return jwtKey(), nil
	})

	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
