// Package cryptox implements password hashing for the credential
// verification flow. It wraps bcrypt with a fixed work factor.
package cryptox

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashCost is the bcrypt work factor applied to every stored password.
const HashCost = 12

// HashPassword produces a salted one-way hash of password. The salt is
// generated internally by bcrypt, so two calls with the same password
// yield different hashes.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), HashCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword reports whether password matches the stored hash.
// The comparison is constant-time; a merely-wrong password is never
// an error, just false.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateSalt produces an independent bcrypt salt with the given number
// of rounds. The value is persisted alongside the password record but is
// not part of verification; it exists for schema compatibility.
func GenerateSalt(rounds int) (string, error) {
	// bcrypt has no standalone salt API, so hash an empty input and keep
	// the salt-bearing prefix (version, cost and 22 base64 salt chars).
	h, err := bcrypt.GenerateFromPassword([]byte{}, rounds)
	if err != nil {
		return "", fmt.Errorf("error generating salt: %w", err)
	}
	return string(h[:29]), nil
}
