package auth

import (
	"testing"
	"time"

	"github.com/erazemk/juicedepot/internal/model"
)

var ownerSession = model.Session{ID: 1, Username: "owner", UserType: model.UserTypeOwner}

func TestGenerateAndValidateToken(t *testing.T) {
	secret := "test-secret-key"

	token, err := GenerateToken(secret, ownerSession)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty token")
	}

	claims, err := ValidateToken(secret, token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}

	if claims.Session() != ownerSession {
		t.Errorf("expected session %+v, got %+v", ownerSession, claims.Session())
	}
	if claims.ID == "" {
		t.Error("expected token to carry a JTI")
	}
}

func TestTokensHaveUniqueJTI(t *testing.T) {
	t1, _ := GenerateToken("s", ownerSession)
	t2, _ := GenerateToken("s", ownerSession)
	c1, _ := ValidateToken("s", t1)
	c2, _ := ValidateToken("s", t2)
	if c1.ID == c2.ID {
		t.Errorf("expected distinct JTIs, got %q twice", c1.ID)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	token, _ := GenerateToken("secret1", ownerSession)

	_, err := ValidateToken("secret2", token)
	if err == nil {
		t.Error("expected error for wrong secret")
	}
}

func TestValidateTokenInvalid(t *testing.T) {
	_, err := ValidateToken("secret", "not-a-token")
	if err == nil {
		t.Error("expected error for invalid token")
	}
}

func TestTokenExpiry(t *testing.T) {
	secret := "test"
	token, _ := GenerateToken(secret, ownerSession)
	claims, _ := ValidateToken(secret, token)

	expiresAt := claims.ExpiresAt.Time
	expectedExpiry := time.Now().Add(TokenExpiry)

	// Should be within a few seconds.
	diff := expectedExpiry.Sub(expiresAt)
	if diff < -5*time.Second || diff > 5*time.Second {
		t.Errorf("token expiry too far from expected: diff=%v", diff)
	}
}
