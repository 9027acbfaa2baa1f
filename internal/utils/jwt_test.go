package utils

import (
	"testing"
	"time"

	"github.com/1nFrastr/miao-bbq-app/internal/config"

	"github.com/golang-jwt/jwt/v5"
)

func withSecret(t *testing.T, secret string) {
	t.Helper()
	prev := config.Get()
	config.Set(config.Config{JWT: config.JWTConfig{Secret: secret}})
	t.Cleanup(func() { config.Set(prev) })
}

func TestAdminToken_RoundTrip(t *testing.T) {
	withSecret(t, "test-secret")

	token, err := GenerateAdminToken(7, "root", true, time.Hour)
	if err != nil {
		t.Fatalf("GenerateAdminToken error: %v", err)
	}
	claims, err := ParseAdminToken(token)
	if err != nil {
		t.Fatalf("ParseAdminToken error: %v", err)
	}
	if claims.ID != 7 || claims.Username != "root" || !claims.Superuser || claims.Type != "admin_login" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestParseAdminToken_Expired(t *testing.T) {
	withSecret(t, "test-secret")

	token, err := GenerateAdminToken(1, "ops", false, -time.Second)
	if err != nil {
		t.Fatalf("GenerateAdminToken error: %v", err)
	}
	if _, err := ParseAdminToken(token); err == nil {
		t.Fatalf("expected expired token error")
	}
}

func TestParseAdminToken_RejectsWrongTypeAndSecret(t *testing.T) {
	withSecret(t, "test-secret")

	other := jwt.NewWithClaims(jwt.SigningMethodHS256, AdminClaims{
		ID:   1,
		Type: "something_else",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			Issuer:    tokenIssuer,
		},
	})
	signed, _ := other.SignedString([]byte("test-secret"))
	if _, err := ParseAdminToken(signed); err == nil {
		t.Fatalf("expected error for wrong token type")
	}

	token, _ := GenerateAdminToken(1, "ops", false, time.Hour)
	config.Set(config.Config{JWT: config.JWTConfig{Secret: "rotated"}})
	if _, err := ParseAdminToken(token); err == nil {
		t.Fatalf("expected error after secret rotation")
	}
}

func TestGenerateAdminToken_RequiresSecret(t *testing.T) {
	withSecret(t, "")
	if _, err := GenerateAdminToken(1, "ops", false, time.Hour); err == nil {
		t.Fatalf("expected error without secret")
	}
}

func TestAdminTokenTTL_Default(t *testing.T) {
	withSecret(t, "x")
	if AdminTokenTTL() != 24*time.Hour {
		t.Fatalf("expected 24h default, got %v", AdminTokenTTL())
	}
}
