package auth

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// ErrPasswordTooLong is returned by Hash for passwords over bcrypt's 72 byte
// input limit.
var ErrPasswordTooLong = bcrypt.ErrPasswordTooLong

type Hasher struct {
	cost int
}

// NewHasher falls back to bcrypt.DefaultCost when cost is out of range.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &Hasher{cost: cost}
}

func (h *Hasher) Hash(password string) (string, error) {
	const op = "lib.auth.Hash"

	b, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return string(b), nil
}

// Compare reports whether password matches hash. Malformed hashes are
// returned as errors, a plain mismatch is not.
func (h *Hasher) Compare(hash, password string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("lib.auth.Compare: %w", err)
	}
}
