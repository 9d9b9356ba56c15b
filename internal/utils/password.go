package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashPassword derives a salted, one-way bcrypt hash from the given plaintext
// password. The salt is generated by bcrypt itself and embedded into the
// returned hash string, so no separate salt storage is needed.
//
// Returns:
//
//	string - the encoded bcrypt hash ready for persistence
//	error  - non-nil if hashing fails (e.g. the password exceeds bcrypt's
//	         72-byte input limit)
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(hash), nil
}

// CheckPasswordHash verifies a plaintext password against a stored bcrypt
// hash. The comparison performed by bcrypt is constant-time, which prevents
// timing side channels from leaking how much of the password matched.
//
// Returns true only when the password corresponds to the hash.
func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
