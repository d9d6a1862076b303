package nakama

import (
	"encoding/base64"
	"encoding/json"
	"testing"
)

func sessionToken(t *testing.T, claims map[string]interface{}) string {
	t.Helper()
	payload, err := json.Marshal(claims)
	if err != nil {
		t.Fatalf("marshal claims: %v", err)
	}
	encoded := base64.RawURLEncoding.EncodeToString(payload)
	return "header." + encoded + ".signature"
}

func TestExtractUserIDFromToken(t *testing.T) {
	token := sessionToken(t, map[string]interface{}{"uid": "user-42", "exp": 1234})

	uid, err := extractUserIDFromToken(token)
	if err != nil {
		t.Fatalf("extractUserIDFromToken() error: %v", err)
	}
	if uid != "user-42" {
		t.Errorf("uid = %q, want user-42", uid)
	}
}

func TestExtractUserIDFromTokenRejectsBadTokens(t *testing.T) {
	tests := []struct {
		name  string
		token string
	}{
		{name: "NotAJWT", token: "just-a-string"},
		{name: "PayloadNotBase64", token: "header.!!!.signature"},
		{name: "MissingUidClaim", token: sessionToken(t, map[string]interface{}{"exp": 1234})},
	}

	for _, test := range tests {
		test := test
		t.Run(test.name, func(t *testing.T) {
			if _, err := extractUserIDFromToken(test.token); err == nil {
				t.Errorf("expected an error for %q", test.token)
			}
		})
	}
}
