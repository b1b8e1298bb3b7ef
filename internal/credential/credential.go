// Package credential derives and checks salted password hashes.
//
// Hashes are PBKDF2-HMAC-SHA256 over the UTF-8 password, keyed with the
// hex-encoded salt string (its ASCII bytes, not the decoded bytes), and are
// stored hex-encoded. Changing any of the parameters below invalidates every
// stored hash.
package credential

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	SaltBytes  = 32
	Iterations = 10000
	KeyLength  = 128
)

// GenerateSalt returns SaltBytes of CSPRNG output as a 64 character hex string.
func GenerateSalt() (string, error) {
	buf := make([]byte, SaltBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}

	return hex.EncodeToString(buf), nil
}

// HashPassword is deterministic for a given password and salt.
func HashPassword(password string, salt string) string {
	key := pbkdf2.Key([]byte(password), []byte(salt), Iterations, KeyLength, sha256.New)
	return hex.EncodeToString(key)
}

// Verify reports whether password hashes to hash under salt, in constant time.
func Verify(password string, salt string, hash string) bool {
	computed := HashPassword(password, salt)
	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
