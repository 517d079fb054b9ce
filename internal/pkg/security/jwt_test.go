package security

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("66f0a1b2c3d4e5f6a7b8c9d0", "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims, err := ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if claims.UserID != "66f0a1b2c3d4e5f6a7b8c9d0" {
		t.Errorf("user id = %q", claims.UserID)
	}
	if claims.Username != "admin" || claims.Role != "admin" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	claims := UserClaims{
		UserID: "u1",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(jwtSecret))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}

	if _, err = ValidateToken(token); err == nil {
		t.Error("expired token should be rejected")
	}
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken("u1", "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err = ValidateToken(token + "x"); err == nil {
		t.Error("tampered token should be rejected")
	}
}

func TestExtractSignature(t *testing.T) {
	token, err := GenerateToken("u1", "admin", "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	sig, err := ExtractSignature(token)
	if err != nil {
		t.Fatalf("ExtractSignature: %v", err)
	}
	if sig == "" {
		t.Error("signature should not be empty")
	}

	if _, err = ExtractSignature("only.two"); err == nil {
		t.Error("malformed token should error")
	}
}
