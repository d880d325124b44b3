package http

import "testing"

func TestValidEmail(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@example.com", "x_y%z@sub.domain.org"}
	for _, email := range valid {
		if !validEmail(email) {
			t.Fatalf("expected %s to be valid", email)
		}
	}
	invalid := []string{"", "plain", "a@b", "@example.com", "user@.com", "user@domain."}
	for _, email := range invalid {
		if validEmail(email) {
			t.Fatalf("expected %s to be invalid", email)
		}
	}
}

func TestBearerToken(t *testing.T) {
	if got := bearerToken("Bearer abc123"); got != "abc123" {
		t.Fatalf("expected abc123, got %q", got)
	}
	if got := bearerToken("bearer abc123"); got != "abc123" {
		t.Fatalf("expected lowercase scheme to work, got %q", got)
	}
	for _, header := range []string{"", "Basic abc", "Bearer"} {
		if got := bearerToken(header); got != "" {
			t.Fatalf("expected empty token for %q, got %q", header, got)
		}
	}
}

func TestNullableURL(t *testing.T) {
	if nullableURL("") != nil {
		t.Fatalf("empty URL should serialize as null")
	}
	if nullableURL("/uploads/x.jpg") != "/uploads/x.jpg" {
		t.Fatalf("non-empty URL should pass through")
	}
}
