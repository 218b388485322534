// Package auth authenticates administrators and issues their session tokens.
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const DefaultBcryptCost = 12

// Passwords hashes and verifies admin passwords with bcrypt and an optional
// pepper appended to every password.
type Passwords struct {
	Cost   int
	Pepper string
}

// NewPasswords validates cost. Zero means DefaultBcryptCost.
func NewPasswords(cost int, pepper string) (*Passwords, error) {
	if cost == 0 {
		cost = DefaultBcryptCost
	}
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		return nil, fmt.Errorf("bcrypt cost out of range: %d (must be %d-%d)", cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return &Passwords{Cost: cost, Pepper: pepper}, nil
}

func (p *Passwords) Hash(pw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(pw+p.Pepper), p.Cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (p *Passwords) Verify(pw, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(pw+p.Pepper)) == nil
}
