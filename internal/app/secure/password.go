package secure

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltLength = 16
	keyLength  = 64
	// Iterations is the PBKDF2 round count for stored passwords.
	Iterations = 100_000
)

// HashPassword derives a PBKDF2-SHA256 key from password with a fresh salt
// and returns it as "saltHex:keyHex".
func HashPassword(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("read salt: %w", err)
	}
	saltHex := hex.EncodeToString(salt)
	key := derive(password, saltHex)
	return saltHex + ":" + hex.EncodeToString(key), nil
}

// VerifyPassword reports whether password matches a value produced by
// HashPassword. Malformed stored values never match.
func VerifyPassword(password, stored string) bool {
	saltHex, keyHex, ok := strings.Cut(stored, ":")
	if !ok || saltHex == "" || keyHex == "" {
		return false
	}
	want, err := hex.DecodeString(keyHex)
	if err != nil || len(want) != keyLength {
		return false
	}
	got := derive(password, saltHex)
	return subtle.ConstantTimeCompare(got, want) == 1
}

// The salt is used in its hex form so hashes stay compatible with
// records created by the previous Node service.
func derive(password, saltHex string) []byte {
	return pbkdf2.Key([]byte(password), []byte(saltHex), Iterations, keyLength, sha256.New)
}
