package utils

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

// TokenTTL is how long an exchanged admin token stays valid. The editor
// keeps the credential only in session storage, so short is fine.
const TokenTTL = 30 * time.Minute

// GenerateAdminJWT issues a short-lived HS256 token signed with the
// shared admin secret. There are no user accounts, the only claim that
// matters is the role.
func GenerateAdminJWT(secret string) (string, int64, error) {
	expiresAt := time.Now().Add(TokenTTL).Unix()
	claims := jwt.MapClaims{
		"role": "admin",
		"exp":  expiresAt,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", 0, err
	}
	return signed, expiresAt, nil
}

// ValidateAdminJWT parses and validates a token issued by
// GenerateAdminJWT against the same secret.
func ValidateAdminJWT(tokenStr, secret string) error {
	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return fmt.Errorf("token parsing error: %w", err)
	}
	if !token.Valid {
		return errors.New("invalid token")
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || claims["role"] != "admin" {
		return errors.New("missing admin role claim")
	}
	return nil
}

// CheckPassword verifies the shared admin password. When a bcrypt hash is
// configured it takes precedence over the plain password.
func CheckPassword(candidate, plain, hash string) bool {
	if hash != "" {
		return bcrypt.CompareHashAndPassword([]byte(hash), []byte(candidate)) == nil
	}
	if plain == "" || candidate == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidate), []byte(plain)) == 1
}

// HashPassword produces a bcrypt hash for ADMIN_PASSWORD_HASH.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	return string(bytes), err
}
