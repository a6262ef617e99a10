package auth_test

import (
	"testing"

	"productivity-api/internal/auth"
)

func TestTokenRoundTrip(t *testing.T) {
	tok, err := auth.MakeToken("user-1", "secret")
	if err != nil {
		t.Fatalf("make token: %v", err)
	}

	claims, err := auth.ParseToken(tok, "secret")
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("uid = %q, want user-1", claims.UserID)
	}

	if _, err := auth.ParseToken(tok, "other-secret"); err == nil {
		t.Error("token accepted with wrong secret")
	}
	if _, err := auth.ParseToken("not-a-jwt", "secret"); err == nil {
		t.Error("garbage accepted as token")
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := auth.HashPassword("hunter22")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "hunter22" {
		t.Fatal("password stored in the clear")
	}
	if !auth.CheckPassword(hash, "hunter22") {
		t.Error("correct password rejected")
	}
	if auth.CheckPassword(hash, "hunter23") {
		t.Error("wrong password accepted")
	}
}

func TestRefreshTokenHashing(t *testing.T) {
	raw, hash, err := auth.GenerateRefreshToken()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if raw == "" || hash == "" || raw == hash {
		t.Fatalf("raw=%q hash=%q", raw, hash)
	}
	if auth.HashRefreshToken(raw) != hash {
		t.Error("hash of raw token does not match stored hash")
	}
}
