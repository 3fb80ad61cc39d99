package auth

import (
	"golang.org/x/crypto/bcrypt"
)

// BcryptCost is the work factor used for new password hashes.
const BcryptCost = 10

// HashPassword hashes a plaintext password with a per-call random salt.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword verifies a plaintext password against a stored hash.
// A malformed hash is treated as a mismatch, never an error.
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
