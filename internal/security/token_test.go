package security

import (
	"testing"
	"time"
)

func TestTokenMintAndVerify(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Mint("user-1", "rosa", "player")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	claims, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Username != "rosa" || claims.Role != "player" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestTokenRejectsWrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Mint("user-1", "rosa", "player")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	if _, err := NewTokenIssuer("secret-b", time.Hour).Verify(token); err == nil {
		t.Error("token verified with the wrong secret")
	}
}

func TestTokenRejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", -time.Minute)

	token, err := issuer.Mint("user-1", "rosa", "player")
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	if _, err := issuer.Verify(token); err == nil {
		t.Error("expired token verified")
	}
}

func TestTokenRejectsGarbage(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	if _, err := issuer.Verify("not-a-token"); err == nil {
		t.Error("garbage string verified")
	}
}
