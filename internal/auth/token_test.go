package auth

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func signToken(t *testing.T, secret, issuer, subject string, expiresIn time.Duration) string {
	t.Helper()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    issuer,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiresIn)),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return signed
}

// TestVerifierParse проверяет прием валидного токена и чтение subject.
func TestVerifierParse(t *testing.T) {
	userID := uuid.New()
	v := NewVerifier("secret", "konekta")

	claims, err := v.Parse(signToken(t, "secret", "konekta", userID.String(), time.Hour))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if claims.Subject != userID.String() {
		t.Fatalf("subject = %q", claims.Subject)
	}
}

// TestVerifierRejects проверяет отказ по подписи, издателю и сроку действия.
func TestVerifierRejects(t *testing.T) {
	v := NewVerifier("secret", "konekta")
	cases := map[string]string{
		"wrong secret": signToken(t, "other", "konekta", uuid.NewString(), time.Hour),
		"wrong issuer": signToken(t, "secret", "someone", uuid.NewString(), time.Hour),
		"expired":      signToken(t, "secret", "konekta", uuid.NewString(), -time.Hour),
		"no subject":   signToken(t, "secret", "konekta", "", time.Hour),
	}
	for name, token := range cases {
		if _, err := v.Parse(token); !errors.Is(err, ErrInvalidToken) {
			t.Errorf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}
