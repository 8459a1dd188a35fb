package store

import (
	"context"
	"fmt"
	"time"
)

// RevokeToken adds a token's JTI to the revocation list.
func (s *Store) RevokeToken(ctx context.Context, jti string, expiresAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	revoked := map[string]time.Time{}
	if err := s.getJSON(ctx, KeyRevokedTokens, &revoked); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}

	// Expired revocations no longer matter.
	now := time.Now()
	for id, exp := range revoked {
		if exp.Before(now) {
			delete(revoked, id)
		}
	}
	revoked[jti] = expiresAt

	if err := s.putJSON(ctx, KeyRevokedTokens, revoked); err != nil {
		return fmt.Errorf("revoking token: %w", err)
	}
	return nil
}

// IsTokenRevoked checks if a token's JTI has been revoked.
func (s *Store) IsTokenRevoked(ctx context.Context, jti string) (bool, error) {
	revoked := map[string]time.Time{}
	if err := s.getJSON(ctx, KeyRevokedTokens, &revoked); err != nil {
		return false, fmt.Errorf("checking token revocation: %w", err)
	}
	_, ok := revoked[jti]
	return ok, nil
}
