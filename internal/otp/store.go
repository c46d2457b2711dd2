// Package otp implements the ephemeral one-time-code store used for
// email verification during registration. Codes live in process memory
// only: validation must happen within minutes of issuance, so losing
// pending codes on restart is acceptable and the store deliberately has
// no persistence.
package otp

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"sync"
	"time"
)

// Store-level errors returned by Validate.
var (
	// ErrCodeNotFound indicates no pending code exists for the email.
	ErrCodeNotFound = errors.New("verification code not found")

	// ErrCodeExpired indicates the pending code has passed its expiry.
	// The entry is evicted when this is returned.
	ErrCodeExpired = errors.New("verification code expired")

	// ErrCodeMismatch indicates the submitted code differs from the
	// pending one. The entry is kept so the user can retry.
	ErrCodeMismatch = errors.New("verification code mismatch")
)

// entry is a pending code together with its expiry instant.
type entry struct {
	code   string
	expiry time.Time
}

// Store holds pending verification codes keyed by email address, each
// with an expiry. It is an explicitly owned value constructed at service
// startup and passed to the components that need it; there is no
// package-level state.
//
// All map operations run under a single mutex. They are O(1) and never
// block on I/O, so contention between different emails is negligible;
// issue/validate for the same email are fully serialized, which prevents
// a validate from observing a code mid-overwrite.
type Store struct {
	mu      sync.Mutex
	pending map[string]entry

	ttl time.Duration

	// now is a clock seam for tests.
	now func() time.Time
}

// NewStore constructs an empty Store whose codes expire after ttl.
// Non-positive ttl defaults to 15 minutes.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &Store{
		pending: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Issue generates a fresh 6-digit code for email, replacing any prior
// pending code for that address, and returns it for delivery. The code
// is uniformly random over [100000, 999999].
func (s *Store) Issue(email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.pending[email] = entry{code: code, expiry: s.now().Add(s.ttl)}
	s.mu.Unlock()

	return code, nil
}

// Validate checks submitted against the pending code for email.
//
// Outcomes:
//   - ErrCodeNotFound when no code is pending for the email.
//   - ErrCodeExpired when the pending code has expired; the entry is evicted.
//   - ErrCodeMismatch when the codes differ; the entry is kept.
//   - nil on success; the entry is evicted, making codes single-use.
func (s *Store) Validate(email, submitted string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.pending[email]
	if !ok {
		return ErrCodeNotFound
	}
	if s.now().After(e.expiry) {
		delete(s.pending, email)
		return ErrCodeExpired
	}
	if e.code != submitted {
		return ErrCodeMismatch
	}
	delete(s.pending, email)
	return nil
}

// Len reports the number of pending codes. Used for introspection in tests.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pending)
}

// generateCode draws a uniform 6-digit numeric code from crypto/rand.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
