// Package auth guards the write endpoints of the HTTP API with HS256 bearer
// tokens. Reads stay public.
package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"magazine-press/internal/handler/http/respond"
	"magazine-press/internal/observability/logging"
)

type ctxKey string

const ctxSubject ctxKey = "subject"

// Roles allowed to write.
const (
	RoleEditor = "editor"
	RoleAdmin  = "admin"
)

// MinSecretLength is the shortest accepted signing secret, in bytes.
const MinSecretLength = 32

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid token")
)

// Claims is the token payload: the standard registered claims plus a role.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// IssueToken signs a token for subject with the given role, valid for ttl.
func IssueToken(secret []byte, subject, role string, ttl time.Duration) (string, error) {
	if len(secret) < MinSecretLength {
		return "", fmt.Errorf("secret must be at least %d bytes", MinSecretLength)
	}
	if subject == "" {
		return "", errors.New("subject is required")
	}
	if !isWriter(role) {
		return "", fmt.Errorf("unknown role %q", role)
	}
	now := time.Now()
	claims := Claims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
}

// Middleware requires a valid editor or admin token on every request whose
// method changes state. GET, HEAD and OPTIONS pass through untouched.
func Middleware(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isSafeMethod(r.Method) {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := validate(r.Header.Get("Authorization"), secret)
			if err != nil {
				logging.FromContext(r.Context()).Warn("authentication failed",
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("reason", err.Error()))
				respond.Error(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}
			if !isWriter(claims.Role) {
				respond.Error(w, http.StatusForbidden, errors.New("forbidden"))
				return
			}
			ctx := context.WithValue(r.Context(), ctxSubject, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// SubjectFromContext returns the authenticated subject, or "" for anonymous requests.
func SubjectFromContext(ctx context.Context) string {
	s, _ := ctx.Value(ctxSubject).(string)
	return s
}

func validate(header string, secret []byte) (*Claims, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return nil, errMissingToken
	}
	claims := &Claims{}
	tok, err := jwt.ParseWithClaims(strings.TrimPrefix(header, prefix), claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return nil, errInvalidToken
	}
	if claims.Subject == "" {
		return nil, errors.New("invalid sub claim")
	}
	return claims, nil
}

func isSafeMethod(method string) bool {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodOptions:
		return true
	}
	return false
}

func isWriter(role string) bool {
	return role == RoleEditor || role == RoleAdmin
}
