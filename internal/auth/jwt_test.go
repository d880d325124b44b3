package auth

import (
	"testing"
	"time"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer", 10*time.Minute, Claims{
		Username: "alice",
		Role:     RoleUser,
	})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}

	claims, err := ParseToken("secret", "issuer", token)
	if err != nil {
		t.Fatalf("parse error: %v", err)
	}
	if claims.Username != "alice" || claims.Role != RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer", 10*time.Minute, Claims{Username: "alice", Role: RoleUser})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if _, err := ParseToken("other-secret", "issuer", token); err == nil {
		t.Fatalf("expected forged token to be rejected")
	}
}

func TestTokenRejectsWrongIssuer(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer-a", 10*time.Minute, Claims{Username: "alice", Role: RoleUser})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if _, err := ParseToken("secret", "issuer-b", token); err == nil {
		t.Fatalf("expected wrong issuer to be rejected")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	token, err := NewAccessToken("secret", "issuer", -time.Minute, Claims{Username: "alice", Role: RoleUser})
	if err != nil {
		t.Fatalf("token error: %v", err)
	}
	if _, err := ParseToken("secret", "issuer", token); err == nil {
		t.Fatalf("expected expired token to be rejected")
	}
}
