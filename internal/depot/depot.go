// Package depot implements the depot's bookkeeping: the product catalog,
// stock intake, sales, logins and periodical reports. All state lives in
// the store; every operation re-reads the collections it needs.
package depot

import (
	"math"
	"sync"
	"time"

	"github.com/erazemk/juicedepot/internal/model"
	"github.com/erazemk/juicedepot/internal/store"
)

// Service runs depot operations against a store.
type Service struct {
	store *store.Store

	// mu serializes every read-modify-write of the collections.
	mu sync.Mutex

	now           func() time.Time
	hashPasswords bool
}

// Option configures a Service.
type Option func(*Service)

// WithClock sets the source of the current time used for date stamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithPasswordHashing makes Signup store bcrypt hashes instead of the
// password as entered. Login accepts both forms either way.
func WithPasswordHashing(enabled bool) Option {
	return func(s *Service) { s.hashPasswords = enabled }
}

// New returns a Service backed by st.
func New(st *store.Store, opts ...Option) *Service {
	s := &Service{store: st, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) today() model.Date {
	return model.DateOf(s.now())
}

// positive reports whether v is a finite number above zero.
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
