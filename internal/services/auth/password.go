package auth

import (
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// maxPasswordBytes is the longest input bcrypt accepts
const maxPasswordBytes = 72

// PasswordHasher hashes and verifies passwords with bcrypt
type PasswordHasher struct {
	cost      int
	minLength int

	dummyOnce sync.Once
	dummyHash []byte
}

// NewPasswordHasher creates a hasher. A cost outside bcrypt's range falls back
// to bcrypt.DefaultCost.
func NewPasswordHasher(cost, minLength int) *PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	if minLength < 1 {
		minLength = 1
	}
	return &PasswordHasher{cost: cost, minLength: minLength}
}

// Validate checks the password against the length policy
func (h *PasswordHasher) Validate(password string) error {
	if password == "" {
		return ErrEmptyPassword
	}
	if len(password) < h.minLength {
		return fmt.Errorf("%w: minimum length is %d characters", ErrPasswordTooShort, h.minLength)
	}
	if len(password) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	return nil
}

// Hash returns the bcrypt hash of password
func (h *PasswordHasher) Hash(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

// Compare reports whether password matches hash. bcrypt's comparison runs in
// constant time.
func (h *PasswordHasher) Compare(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// CompareDummy burns the same work as Compare for a username that does not
// exist, so response time does not reveal which usernames are registered.
func (h *PasswordHasher) CompareDummy(password string) {
	h.dummyOnce.Do(func() {
		h.dummyHash, _ = bcrypt.GenerateFromPassword([]byte("worklog-dummy-password"), h.cost)
	})
	_ = bcrypt.CompareHashAndPassword(h.dummyHash, []byte(password))
}

// IsHash reports whether s already looks like a bcrypt hash
func IsHash(s string) bool {
	_, err := bcrypt.Cost([]byte(s))
	return err == nil
}
