package auth

import (
	"strings"
	"testing"
)

func TestExportTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := CreateExportToken("profile-123")
	if err != nil {
		t.Fatalf("CreateExportToken: %v", err)
	}

	profileID, err := VerifyExportToken(token)
	if err != nil {
		t.Fatalf("VerifyExportToken: %v", err)
	}
	if profileID != "profile-123" {
		t.Errorf("profile = %q, want profile-123", profileID)
	}
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")

	token, err := CreateExportToken("profile-123")
	if err != nil {
		t.Fatalf("CreateExportToken: %v", err)
	}

	// Flip a character in the signature segment.
	i := strings.LastIndex(token, ".") + 1
	b := []byte(token)
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}

	if _, err := VerifyExportToken(string(b)); err == nil {
		t.Error("tampered token should not verify")
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "test-secret")
	token, err := CreateExportToken("profile-123")
	if err != nil {
		t.Fatalf("CreateExportToken: %v", err)
	}

	t.Setenv("JWT_SECRET_KEY", "other-secret")
	if _, err := VerifyExportToken(token); err == nil {
		t.Error("token signed under another secret should not verify")
	}
}

func TestTokensDisabledWithoutSecret(t *testing.T) {
	t.Setenv("JWT_SECRET_KEY", "")

	if _, err := CreateExportToken("profile-123"); err == nil {
		t.Error("CreateExportToken should fail without a secret")
	}
	if _, err := VerifyExportToken("whatever"); err == nil {
		t.Error("VerifyExportToken should fail without a secret")
	}
}
