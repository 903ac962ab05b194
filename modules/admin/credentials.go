package admin

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

const (
	// DefaultBcryptCost is the default cost for bcrypt hashing.
	// A cost of 12 provides good security while keeping hashing time reasonable.
	DefaultBcryptCost = 12
)

// PasswordHasher provides password hashing and verification functionality.
type PasswordHasher struct {
	cost int
}

// NewPasswordHasher creates a new PasswordHasher with default cost.
func NewPasswordHasher() *PasswordHasher {
	return &PasswordHasher{
		cost: DefaultBcryptCost,
	}
}

// NewPasswordHasherWithCost creates a PasswordHasher with a custom cost.
// Lower costs are useful in tests.
func NewPasswordHasherWithCost(cost int) *PasswordHasher {
	return &PasswordHasher{
		cost: cost,
	}
}

// Hash generates a bcrypt hash of the given password.
func (h *PasswordHasher) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify checks if the provided password matches the hash.
func (h *PasswordHasher) Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}

// HashCredentials hashes a map of email to plaintext password into a
// map of email to bcrypt hash.
func HashCredentials(hasher *PasswordHasher, plain map[string]string) (map[string]string, error) {
	credentials := make(map[string]string, len(plain))
	for email, password := range plain {
		hash, err := hasher.Hash(password)
		if err != nil {
			return nil, fmt.Errorf("hash credentials for %s: %w", email, err)
		}
		credentials[email] = hash
	}
	return credentials, nil
}

// DefaultCredentials returns the demo admin accounts, hashed at the
// default cost.
func DefaultCredentials() (map[string]string, error) {
	return HashCredentials(NewPasswordHasher(), map[string]string{
		"admin@moderninventory.com": "admin123",
		"demo@admin.com":            "demo123",
	})
}
