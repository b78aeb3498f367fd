package credentials

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// HashPassword hashes a plaintext password using bcrypt.
// bcrypt embeds a per-credential random salt, so equal passwords
// never produce equal hashes.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword(
		[]byte(password),
		bcrypt.DefaultCost,
	)
	if err != nil {
		return "", err
	}

	return string(bytes), nil
}

// VerifyPassword compares a plaintext password with a stored hash.
// Any failure, including a corrupt or truncated stored hash, is
// reported as ErrInvalidCredentials so a malformed record can never
// read as a successful authentication.
func VerifyPassword(hash string, password string) error {
	err := bcrypt.CompareHashAndPassword(
		[]byte(hash),
		[]byte(password),
	)
	if err != nil {
		return ErrInvalidCredentials
	}
	return nil
}
