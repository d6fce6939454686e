package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"MovieBase/internal/token"
)

// Ошибки разбора заголовка authorization.
var (
	ErrMissingAuthHeader   = errors.New("no authorization header")
	ErrMalformedAuthHeader = errors.New("malformed authorization header")
)

type ctxKey int

const claimsKey ctxKey = iota

// BearerToken достаёт токен из заголовка "authorization: Bearer <token>".
func BearerToken(h http.Header) (string, error) {
	authorization := h.Get("Authorization")
	if authorization == "" {
		return "", ErrMissingAuthHeader
	}
	parts := strings.Fields(authorization)
	if len(parts) < 2 {
		return "", ErrMalformedAuthHeader
	}
	return parts[1], nil
}

// RequireAuth — guard для мутаций. Проверяет bearer-токен и кладёт
// claims в контекст запроса; при любой ошибке отвечает 401 до того,
// как защищённый хендлер дойдёт до хранилища.
func RequireAuth(tm *token.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw, err := BearerToken(r.Header)
			if err != nil {
				code := "missing_header"
				if errors.Is(err, ErrMalformedAuthHeader) {
					code = "malformed_header"
				}
				writeAuthError(w, code, err.Error())
				return
			}

			claims, err := tm.Validate(raw)
			if err != nil {
				writeAuthError(w, "invalid_token", "invalid authorization header")
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetClaimsFromContext возвращает claims, положенные guard-ом.
func GetClaimsFromContext(ctx context.Context) (*token.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*token.Claims)
	return claims, ok
}

func writeAuthError(w http.ResponseWriter, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg, "code": code})
}
