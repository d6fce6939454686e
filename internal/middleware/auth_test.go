package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"MovieBase/internal/token"
)

// хелпер: guard перед next-хендлером, который читает claims из контекста
func newGuarded(tm *token.Manager, t *testing.T) http.Handler {
	t.Helper()
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := GetClaimsFromContext(r.Context())
		if !ok {
			t.Fatalf("claims must be set after successful guard")
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]int64{"user_id": claims.UserID})
	})
	return RequireAuth(tm)(next)
}

func errCode(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Code string `json:"code"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("error body must be JSON: %v", err)
	}
	return body.Code
}

// Тест: валидный bearer-токен — claims попадают в контекст
func TestRequireAuth_ValidToken(t *testing.T) {
	tm := token.NewManager("test-secret", time.Hour)
	h := newGuarded(tm, t)

	tok, err := tm.Issue(77)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", rr.Code)
	}
	var body struct {
		UserID int64 `json:"user_id"`
	}
	_ = json.NewDecoder(rr.Body).Decode(&body)
	if body.UserID != 77 {
		t.Fatalf("expected user_id 77, got %d", body.UserID)
	}
}

// Тест: без заголовка — 401 missing_header, next не вызывается
func TestRequireAuth_MissingHeader(t *testing.T) {
	tm := token.NewManager("test-secret", time.Hour)
	h := RequireAuth(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next must not be called without authorization header")
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/", nil))

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if code := errCode(t, rr); code != "missing_header" {
		t.Fatalf("expected code missing_header, got %q", code)
	}
}

// Тест: заголовок без второй части — 401 malformed_header
func TestRequireAuth_MalformedHeader(t *testing.T) {
	tm := token.NewManager("test-secret", time.Hour)
	h := RequireAuth(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next must not be called with malformed header")
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if code := errCode(t, rr); code != "malformed_header" {
		t.Fatalf("expected code malformed_header, got %q", code)
	}
}

// Тест: мусор вместо токена — 401 invalid_token
func TestRequireAuth_InvalidToken(t *testing.T) {
	tm := token.NewManager("test-secret", time.Hour)
	h := RequireAuth(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next must not be called with invalid token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
	if code := errCode(t, rr); code != "invalid_token" {
		t.Fatalf("expected code invalid_token, got %q", code)
	}
}

// Тест: токен, подписанный другим секретом — 401 invalid_token
func TestRequireAuth_WrongSecret(t *testing.T) {
	issuer := token.NewManager("secret-A", time.Hour)
	tm := token.NewManager("secret-B", time.Hour)

	tok, _ := issuer.Issue(5)
	h := RequireAuth(tm)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("next must not be called with foreign token")
	}))

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rr.Code)
	}
}
