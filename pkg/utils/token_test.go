package utils

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	token, expiresAt, err := tm.Sign("64f1b2c3d4e5f60718293a4b", "enterprise")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}
	if until := time.Until(expiresAt); until < 59*time.Minute {
		t.Fatalf("expiry in %v, want about an hour", until)
	}

	claims, err := tm.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "64f1b2c3d4e5f60718293a4b" {
		t.Fatalf("user id = %q", claims.UserID)
	}
	if claims.Role != "enterprise" {
		t.Fatalf("role = %q", claims.Role)
	}
}

func TestTokenExpired(t *testing.T) {
	tm := NewTokenManager("test-secret", -time.Minute)

	token, _, err := tm.Sign("64f1b2c3d4e5f60718293a4b", "customer")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := tm.Verify(token); err == nil {
		t.Fatal("expired token verified")
	}
}

func TestTokenWrongSecret(t *testing.T) {
	token, _, err := NewTokenManager("secret-a", time.Hour).Sign("64f1b2c3d4e5f60718293a4b", "customer")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	if _, err := NewTokenManager("secret-b", time.Hour).Verify(token); err == nil {
		t.Fatal("token signed with another secret verified")
	}
}

func TestTokenGarbage(t *testing.T) {
	tm := NewTokenManager("test-secret", time.Hour)

	for _, token := range []string{"", "not.a.token", "aaaa.bbbb.cccc"} {
		if _, err := tm.Verify(token); err == nil {
			t.Errorf("garbage token %q verified", token)
		}
	}
}
