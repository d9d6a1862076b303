package nakama

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"doppelkopf/internal/app"

	"github.com/form3tech-oss/jwt-go"
)

type replayTokenResponse struct {
	Token string `json:"token"`
}

func TestRpcReplayToken_GeneratesValidClaims(t *testing.T) {
	t.Cleanup(func() { replayService = nil })

	replayService = app.NewReplayTokenService("test-secret", "issuer")

	payload := `{"matchId":"match-1","seed":424242,"preset":"standard","actions":57}`
	raw, err := rpcReplayToken(context.Background(), noopLogger{}, nil, nil, payload)
	if err != nil {
		t.Fatalf("rpcReplayToken error: %v", err)
	}

	var resp replayTokenResponse
	if err := json.Unmarshal([]byte(raw), &resp); err != nil {
		t.Fatalf("unmarshal response: %v", err)
	}
	if resp.Token == "" {
		t.Fatal("expected token in response")
	}

	claims := parseReplayClaims(t, resp.Token, "test-secret")
	assertStringClaim(t, claims, "iss", "issuer")
	assertStringClaim(t, claims, "sub", "match-1")
	assertStringClaim(t, claims, "preset", "standard")
	assertNumberClaim(t, claims, "seed", 424242)
	assertNumberClaim(t, claims, "actions", 57)
}

func TestRpcReplayToken_RejectsMissingMatchID(t *testing.T) {
	t.Cleanup(func() { replayService = nil })
	replayService = app.NewReplayTokenService("test-secret", "issuer")

	if _, err := rpcReplayToken(context.Background(), noopLogger{}, nil, nil, `{"seed":1}`); err == nil {
		t.Fatal("expected error for missing match id")
	}
}

func TestRpcReplayToken_RejectsBadPayload(t *testing.T) {
	if _, err := rpcReplayToken(context.Background(), noopLogger{}, nil, nil, `not json`); err == nil {
		t.Fatal("expected error for malformed payload")
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

func assertStringClaim(t *testing.T, claims jwt.MapClaims, key, expected string) {
	t.Helper()
	val, ok := claims[key]
	if !ok {
		t.Errorf("missing claim: %s", key)
		return
	}
	str, ok := val.(string)
	if !ok {
		t.Errorf("claim %s is not a string: %v", key, val)
		return
	}
	if str != expected {
		t.Errorf("claim %s = %s, want %s", key, str, expected)
	}
}

func assertNumberClaim(t *testing.T, claims jwt.MapClaims, key string, expected int64) {
	t.Helper()
	val, ok := claims[key]
	if !ok {
		t.Errorf("missing claim: %s", key)
		return
	}
	num, ok := val.(float64)
	if !ok {
		t.Errorf("claim %s is not a number: %v", key, val)
		return
	}
	if int64(num) != expected {
		t.Errorf("claim %s = %d, want %d", key, int64(num), expected)
	}
}
