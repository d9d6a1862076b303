package app

import (
	"fmt"
	"testing"

	"github.com/form3tech-oss/jwt-go"
)

func TestReplayTokenServiceGenerateToken(t *testing.T) {
	secret := "test-secret"
	issuer := "issuer"
	matchID := "match-456"

	svc := NewReplayTokenService(secret, issuer)
	tokenString, err := svc.GenerateToken(matchID, 3735928559, "standard", 71)
	if err != nil {
		t.Fatalf("generate replay token error: %v", err)
	}

	claims := parseReplayClaims(t, tokenString, secret)

	if got := stringClaim(t, claims, "iss"); got != issuer {
		t.Fatalf("iss = %s, want %s", got, issuer)
	}
	if got := stringClaim(t, claims, "sub"); got != matchID {
		t.Fatalf("sub = %s, want %s", got, matchID)
	}
	if got := stringClaim(t, claims, "preset"); got != "standard" {
		t.Fatalf("preset = %s, want standard", got)
	}
	if got := numberClaim(t, claims, "seed"); got != 3735928559 {
		t.Fatalf("seed = %d, want 3735928559", got)
	}
	if got := numberClaim(t, claims, "actions"); got != 71 {
		t.Fatalf("actions = %d, want 71", got)
	}
}

func TestReplayTokenServiceRequiresMatchID(t *testing.T) {
	svc := NewReplayTokenService("secret", "issuer")
	if _, err := svc.GenerateToken("", 1, "standard", 0); err == nil {
		t.Fatal("expected error for empty match id")
	}
}

func TestReplayTokenServiceRejectsNegativeActionCount(t *testing.T) {
	svc := NewReplayTokenService("secret", "issuer")
	if _, err := svc.GenerateToken("match-1", 1, "standard", -1); err == nil {
		t.Fatal("expected error for negative action count")
	}
}

func TestReplayTokenServiceRequiresConfig(t *testing.T) {
	svc := NewReplayTokenService("", "issuer")
	if _, err := svc.GenerateToken("match-1", 1, "standard", 0); err == nil {
		t.Fatal("expected error for missing replay token config")
	}
}

func parseReplayClaims(t *testing.T, tokenString, secret string) jwt.MapClaims {
	t.Helper()

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		t.Fatalf("parse token error: %v", err)
	}
	if !token.Valid {
		t.Fatal("token is invalid")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatal("claims are not map claims")
	}
	return claims
}

func stringClaim(t *testing.T, claims jwt.MapClaims, name string) string {
	t.Helper()
	value, ok := claims[name]
	if !ok {
		t.Fatalf("missing %s claim", name)
	}
	str, ok := value.(string)
	if !ok {
		t.Fatalf("%s claim is not a string", name)
	}
	return str
}

func numberClaim(t *testing.T, claims jwt.MapClaims, name string) int64 {
	t.Helper()
	value, ok := claims[name]
	if !ok {
		t.Fatalf("missing %s claim", name)
	}
	num, ok := value.(float64)
	if !ok {
		t.Fatalf("%s claim is not a number", name)
	}
	return int64(num)
}
