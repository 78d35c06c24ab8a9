package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("test-secret-key-at-least-32-characters-long-for-testing")

// testSuccessHandler echoes the authenticated subject.
func testSuccessHandler(t *testing.T) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("subject=" + SubjectFromContext(r.Context()))); err != nil {
			t.Errorf("Failed to write response: %v", err)
		}
	}
}

func signed(t *testing.T, secret []byte, method jwt.SigningMethod, claims Claims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(method, claims).SignedString(secret)
	require.NoError(t, err)
	return tok
}

func TestIssueToken(t *testing.T) {
	tok, err := IssueToken(testSecret, "jane", RoleEditor, time.Hour)
	require.NoError(t, err)

	claims, err := validate("Bearer "+tok, testSecret)
	require.NoError(t, err)
	assert.Equal(t, "jane", claims.Subject)
	assert.Equal(t, RoleEditor, claims.Role)

	_, err = IssueToken([]byte("short"), "jane", RoleEditor, time.Hour)
	assert.Error(t, err)
	_, err = IssueToken(testSecret, "", RoleEditor, time.Hour)
	assert.Error(t, err)
	_, err = IssueToken(testSecret, "jane", "viewer", time.Hour)
	assert.Error(t, err)
}

func TestMiddleware_ReadsArePublic(t *testing.T) {
	h := Middleware(testSecret)(testSuccessHandler(t))

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		t.Run(method, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, httptest.NewRequest(method, "/magazines/1", nil))
			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}

func TestMiddleware_Writes(t *testing.T) {
	valid, err := IssueToken(testSecret, "jane", RoleEditor, time.Hour)
	require.NoError(t, err)

	future := jwt.NewNumericDate(time.Now().Add(time.Hour))
	past := jwt.NewNumericDate(time.Now().Add(-time.Hour))

	tests := []struct {
		name     string
		header   string
		wantCode int
	}{
		{"valid editor token", "Bearer " + valid, http.StatusOK},
		{"missing header", "", http.StatusUnauthorized},
		{"not a bearer token", "Basic dXNlcjpwYXNz", http.StatusUnauthorized},
		{"garbage token", "Bearer not-a-jwt", http.StatusUnauthorized},
		{"wrong secret", "Bearer " + signed(t, []byte("another-secret-key-at-least-32-bytes-long"), jwt.SigningMethodHS256,
			Claims{Role: RoleEditor, RegisteredClaims: jwt.RegisteredClaims{Subject: "jane", ExpiresAt: future}}), http.StatusUnauthorized},
		{"wrong algorithm", "Bearer " + signed(t, testSecret, jwt.SigningMethodHS512,
			Claims{Role: RoleEditor, RegisteredClaims: jwt.RegisteredClaims{Subject: "jane", ExpiresAt: future}}), http.StatusUnauthorized},
		{"expired", "Bearer " + signed(t, testSecret, jwt.SigningMethodHS256,
			Claims{Role: RoleEditor, RegisteredClaims: jwt.RegisteredClaims{Subject: "jane", ExpiresAt: past}}), http.StatusUnauthorized},
		{"no expiry", "Bearer " + signed(t, testSecret, jwt.SigningMethodHS256,
			Claims{Role: RoleEditor, RegisteredClaims: jwt.RegisteredClaims{Subject: "jane"}}), http.StatusUnauthorized},
		{"no subject", "Bearer " + signed(t, testSecret, jwt.SigningMethodHS256,
			Claims{Role: RoleEditor, RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: future}}), http.StatusUnauthorized},
		{"reader role", "Bearer " + signed(t, testSecret, jwt.SigningMethodHS256,
			Claims{Role: "viewer", RegisteredClaims: jwt.RegisteredClaims{Subject: "jane", ExpiresAt: future}}), http.StatusForbidden},
	}

	h := Middleware(testSecret)(testSuccessHandler(t))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/articles", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			assert.Equal(t, tt.wantCode, rec.Code, rec.Body.String())
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, "subject=jane", rec.Body.String())
			}
		})
	}
}
