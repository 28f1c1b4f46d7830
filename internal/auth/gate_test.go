package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueAndAuthorize(t *testing.T) {
	gate := CreateJWTGate("test-secret")

	token, err := gate.IssueToken("admin@example.com")
	require.NoError(t, err)

	assert.True(t, gate.Authorize(token))
}

func TestAuthorizeRejectsBadTokens(t *testing.T) {
	gate := CreateJWTGate("test-secret")

	goodToken, err := gate.IssueToken("admin@example.com")
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{name: "empty", token: ""},
		{name: "garbage", token: "not.a.token"},
		{name: "wrong secret", token: signWith(t, "other-secret", jwt.MapClaims{"role": "admin", "exp": time.Now().Add(time.Hour).Unix()})},
		{name: "wrong role", token: signWith(t, "test-secret", jwt.MapClaims{"role": "customer", "exp": time.Now().Add(time.Hour).Unix()})},
		{name: "expired", token: signWith(t, "test-secret", jwt.MapClaims{"role": "admin", "exp": time.Now().Add(-time.Hour).Unix()})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.False(t, gate.Authorize(tc.token))
		})
	}

	assert.True(t, gate.Authorize(goodToken), "valid token still accepted")
}

func signWith(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}
