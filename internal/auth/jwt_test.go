package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func TestJWTRoundTrip(t *testing.T) {
	a := NewJWTAuth("secret", "raster", "raster")

	claims := jwt.MapClaims{
		"sub": int64(42),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iat": time.Now().Unix(),
		"iss": "raster",
		"aud": "raster",
	}

	tokenString, err := a.GenerateToken(claims)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := a.ValidateToken(tokenString)
	if err != nil {
		t.Fatalf("ValidateToken: %v", err)
	}
	if !token.Valid {
		t.Error("token should be valid")
	}
}

func TestJWTRejectsWrongIssuer(t *testing.T) {
	issuing := NewJWTAuth("secret", "raster", "somebody-else")
	validating := NewJWTAuth("secret", "raster", "raster")

	claims := jwt.MapClaims{
		"sub": int64(1),
		"exp": time.Now().Add(time.Hour).Unix(),
		"iss": "somebody-else",
		"aud": "raster",
	}

	tokenString, err := issuing.GenerateToken(claims)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := validating.ValidateToken(tokenString); err == nil {
		t.Error("a token from a different issuer should be rejected")
	}
}

func TestJWTRejectsExpired(t *testing.T) {
	a := NewJWTAuth("secret", "raster", "raster")

	claims := jwt.MapClaims{
		"sub": int64(1),
		"exp": time.Now().Add(-time.Minute).Unix(),
		"iss": "raster",
		"aud": "raster",
	}

	tokenString, err := a.GenerateToken(claims)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if _, err := a.ValidateToken(tokenString); err == nil {
		t.Error("an expired token should be rejected")
	}
}
