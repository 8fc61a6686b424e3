// Package password wraps the one-way credential hashing primitive. The cost
// factor is fixed at the bcrypt default and is not configurable per call.
package password

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/airlinehq/airline-api/internal/core/domain"
)

// Hash derives a salted one-way hash from a plaintext password.
func Hash(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", domain.NewInternalError("password hashing failed", err)
	}
	return string(b), nil
}

// Verify reports whether plain matches the stored hash. A mismatch is
// (false, nil); only a malformed stored hash produces an error, and the
// message does not distinguish the two cases for callers making authz
// decisions.
func Verify(plain, hash string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, domain.NewInternalError("password verification failed", err)
	}
}
