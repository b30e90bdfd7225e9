// Package crypto holds the credential hashing primitives of the application.
//
// Passwords are hashed with bcrypt. The produced string encodes the
// algorithm, cost and salt together with the digest, so verification needs
// no side-channel storage, and comparison inside bcrypt is constant-time.
package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// passwordHashCost is the bcrypt work factor applied to every password.
// Changing it does not invalidate existing hashes: the cost is encoded in
// the hash string and re-read at verification time.
const passwordHashCost = 10

// HashPassword hashes a plaintext password with bcrypt.
//
// Each call generates a fresh salt, so hashing the same password twice
// produces different strings.
func HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), passwordHashCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckPassword reports whether password matches hashedPassword.
//
// It deliberately collapses every bcrypt failure (mismatch, malformed hash)
// into false: callers never learn which of the two inputs was wrong.
func CheckPassword(password, hashedPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password)) == nil
}
