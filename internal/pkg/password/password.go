// Package password wraps bcrypt hashing for usuario credentials.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyPassword = errors.New("password must not be empty")
	ErrHashFailed    = errors.New("could not hash password")
	ErrMismatch      = errors.New("password does not match")
)

// Hash derives a bcrypt hash suitable for the usuarios.contrasenia column.
func Hash(plain string) (string, error) {
	if plain == "" {
		return "", ErrEmptyPassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", ErrHashFailed
	}

	return string(hashed), nil
}

// Verify checks a plaintext password against a stored hash. Any failure
// other than an outright mismatch is returned as-is.
func Verify(hash, plain string) error {
	if hash == "" || plain == "" {
		return ErrMismatch
	}

	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrMismatch
	}
	return err
}
