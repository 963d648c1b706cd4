package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWTRoundTrip(t *testing.T) {
	j := NewJWT("test-secret")

	tok, err := j.Sign("u1")
	require.NoError(t, err)

	uid, err := j.Verify(tok)
	require.NoError(t, err)
	assert.Equal(t, "u1", uid)
}

func TestJWTVerifyRejects(t *testing.T) {
	j := NewJWT("test-secret")
	other := NewJWT("other-secret")

	tok, err := other.Sign("u1")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-token"},
		{"empty", ""},
		{"wrong secret", tok},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := j.Verify(tt.token)
			assert.Error(t, err)
		})
	}
}

func TestContextIdentity(t *testing.T) {
	_, ok := Anonymous().Identity()
	assert.False(t, ok)

	uid, ok := WithIdentity("u1").Identity()
	assert.True(t, ok)
	assert.Equal(t, "u1", uid)
}

func TestExtract(t *testing.T) {
	j := NewJWT("test-secret")
	tok, err := j.Sign("u1")
	require.NoError(t, err)

	var got Context
	h := Extract(j)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = FromRequest(r)
	}))

	tests := []struct {
		name   string
		header string
		wantID string
		wantOK bool
	}{
		{"valid bearer", "Bearer " + tok, "u1", true},
		{"no header", "", "", false},
		{"malformed header", "Token abc", "", false},
		{"invalid token", "Bearer nope", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}
			h.ServeHTTP(httptest.NewRecorder(), r)

			uid, ok := got.Identity()
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, uid)
		})
	}
}

func TestFromRequestWithoutMiddleware(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := FromRequest(r).Identity()
	assert.False(t, ok)
}
