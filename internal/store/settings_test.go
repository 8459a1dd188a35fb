package store

import (
	"context"
	"testing"
)

func TestGetJWTSecret_GeneratesAndPersists(t *testing.T) {
	s := NewTestStore(t)
	ctx := context.Background()

	// First call should generate a secret.
	secret1, err := s.GetJWTSecret(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(secret1) != 64 { // 32 bytes = 64 hex chars
		t.Fatalf("expected 64 hex chars, got %d", len(secret1))
	}

	// Second call should return the same secret.
	secret2, err := s.GetJWTSecret(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if secret1 != secret2 {
		t.Fatalf("expected same secret, got %q and %q", secret1, secret2)
	}
}
