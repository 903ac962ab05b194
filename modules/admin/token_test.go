package admin

import (
	"errors"
	"testing"
	"time"
)

func testTokenConfig() TokenConfig {
	return TokenConfig{
		SecretKey: "test-secret-key",
		TTL:       24 * time.Hour,
		Issuer:    "test-issuer",
	}
}

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	manager := NewTokenManager(testTokenConfig())

	email := "admin@example.com"
	token, err := manager.Generate(email)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if token == "" {
		t.Error("Generate() returned empty token")
	}

	claims, err := manager.Validate(token)
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if claims.Email != email {
		t.Errorf("claims.Email = %v, want %v", claims.Email, email)
	}
	if claims.Issuer != "test-issuer" {
		t.Errorf("claims.Issuer = %v, want %v", claims.Issuer, "test-issuer")
	}
}

func TestTokenManager_ValidateInvalidToken(t *testing.T) {
	manager := NewTokenManager(testTokenConfig())

	if _, err := manager.Validate("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenManager_ValidateWrongSecret(t *testing.T) {
	manager := NewTokenManager(testTokenConfig())
	token, err := manager.Generate("admin@example.com")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	other := NewTokenManager(TokenConfig{
		SecretKey: "different-secret",
		TTL:       24 * time.Hour,
		Issuer:    "test-issuer",
	})
	if _, err := other.Validate(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("Validate() error = %v, want ErrInvalidToken", err)
	}
}

func TestTokenManager_ValidateExpiredToken(t *testing.T) {
	manager := NewTokenManager(TokenConfig{
		SecretKey: "test-secret-key",
		TTL:       -time.Minute,
		Issuer:    "test-issuer",
	})
	token, err := manager.Generate("admin@example.com")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if _, err := manager.Validate(token); !errors.Is(err, ErrExpiredToken) {
		t.Errorf("Validate() error = %v, want ErrExpiredToken", err)
	}
}
