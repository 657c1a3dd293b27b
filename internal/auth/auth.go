package auth

import (
	"encoding/base64"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters; fixed so a (password, salt) pair always derives
// the same hash. The salt is the process-wide secret from configuration,
// not a per-record value.
const (
	scryptN      = 16384
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 64
)

// HashPassword derives the stored credential hash. Deterministic for equal
// (password, salt) pairs and not reversible; verification is an exact
// string comparison against the stored value.
func HashPassword(password, salt string) (string, error) {
	key, err := scrypt.Key([]byte(password), []byte(salt), scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", fmt.Errorf("derive password hash: %w", err)
	}
	return base64.StdEncoding.EncodeToString(key), nil
}

// NewToken issues a signed, time-boxed admin assertion. Tokens are not
// stored server-side; logout is a client-side discard.
func NewToken(username, secret string, ttl time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": username,
		"role": "admin",
		"exp":  time.Now().Add(ttl).Unix(),
	})
	return token.SignedString([]byte(secret))
}
