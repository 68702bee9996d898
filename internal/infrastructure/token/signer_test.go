package token

import (
	"testing"
	"time"
)

func TestSigner_RoundTrip(t *testing.T) {
	signer := NewSigner("test-secret", 30*time.Minute)

	raw, err := signer.Issue("racecontrol")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	username, err := signer.Verify(raw)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if username != "racecontrol" {
		t.Fatalf("unexpected subject: %q", username)
	}
}

func TestSigner_Expired(t *testing.T) {
	signer := NewSigner("test-secret", 30*time.Minute)

	issuedAt := time.Now()
	signer.now = func() time.Time { return issuedAt }

	raw, err := signer.Issue("racecontrol")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	signer.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }
	if _, err := signer.Verify(raw); err == nil {
		t.Fatalf("expected expired token to fail verification")
	}
}

func TestSigner_WrongSecret(t *testing.T) {
	signer := NewSigner("test-secret", 30*time.Minute)
	other := NewSigner("another-secret", 30*time.Minute)

	raw, err := signer.Issue("racecontrol")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := other.Verify(raw); err == nil {
		t.Fatalf("expected foreign-secret token to fail verification")
	}
}

func TestSigner_Garbage(t *testing.T) {
	signer := NewSigner("test-secret", 30*time.Minute)

	if _, err := signer.Verify("not.a.token"); err == nil {
		t.Fatalf("expected garbage token to fail verification")
	}
}
