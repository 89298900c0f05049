package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"capitaluy-backend/internal/config"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session.Secret = "capitaluy-secret-key-2024"
	cfg.Session.Issuer = "capitaluy"
	cfg.Session.ExpirationHours = 24
	return cfg
}

func TestIssueAndValidate(t *testing.T) {
	m := NewSessionManager(testConfig())

	token, expiresAt, err := m.Issue("admin")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), expiresAt, time.Minute)

	claims, err := m.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Username)
	assert.Equal(t, "capitaluy", claims.Issuer)
	assert.NotNil(t, claims.IssuedAt)
	assert.True(t, m.IsValid(token))
}

func TestExpiredSessionIsRejected(t *testing.T) {
	m := NewSessionManager(testConfig())
	m.now = func() time.Time { return time.Now().Add(-48 * time.Hour) }

	token, _, err := m.Issue("admin")
	require.NoError(t, err)

	m.now = time.Now
	assert.False(t, m.IsValid(token))
}

func TestTokenSignedWithOtherSecretIsRejected(t *testing.T) {
	other := testConfig()
	other.Session.Secret = "another-secret"
	token, _, err := NewSessionManager(other).Issue("admin")
	require.NoError(t, err)

	assert.False(t, NewSessionManager(testConfig()).IsValid(token))
}

func TestTokenFromOtherIssuerIsRejected(t *testing.T) {
	other := testConfig()
	other.Session.Issuer = "someone-else"
	token, _, err := NewSessionManager(other).Issue("admin")
	require.NoError(t, err)

	assert.False(t, NewSessionManager(testConfig()).IsValid(token))
}

func TestTokenWithoutExpiryIsRejected(t *testing.T) {
	cfg := testConfig()
	claims := &SessionClaims{
		Username:         "admin",
		RegisteredClaims: jwt.RegisteredClaims{Issuer: cfg.Session.Issuer},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Session.Secret))
	require.NoError(t, err)

	assert.False(t, NewSessionManager(cfg).IsValid(token))
}

func TestLegacyDashTokensAreRejected(t *testing.T) {
	m := NewSessionManager(testConfig())

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"missing third segment", "lq2k8x-4f9a0b"},
		{"wrong fragment", "lq2k8x-4f9a0b-notsecret"},
		{"matching fragment", "lq2k8x-4f9a0b-capitalu"},
		{"garbage", "not a token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, m.IsValid(tt.token))
		})
	}
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("capitaluy2024")
	require.NoError(t, err)
	assert.NotEqual(t, "capitaluy2024", hash)
	assert.True(t, VerifyPassword(hash, "capitaluy2024"))
	assert.False(t, VerifyPassword(hash, "wrong"))

	assert.True(t, ConstantTimeEqual("admin", "admin"))
	assert.False(t, ConstantTimeEqual("admin", "Admin"))
}
