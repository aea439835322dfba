package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, secret, sub, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  sub,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	if err != nil {
		t.Fatalf("firmando token: %v", err)
	}
	return s
}

func TestJWTAuthMissingHeader(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no debería llegar al handler sin token")
	})
	mw := JWTAuth(testSecret)(next)

	req := httptest.NewRequest(http.MethodGet, "/me/recommendations", nil)
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, esperaba 401", rec.Code)
	}
}

func TestJWTAuthInvalidToken(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("no debería llegar al handler con token inválido")
	})
	mw := JWTAuth(testSecret)(next)

	// firmado con otro secreto
	bad := signToken(t, "otro-secreto", "u1", "user")

	req := httptest.NewRequest(http.MethodGet, "/me/recommendations", nil)
	req.Header.Set("Authorization", "Bearer "+bad)
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, esperaba 401", rec.Code)
	}
}

func TestJWTAuthPutsUserInContext(t *testing.T) {
	var gotUser, gotRole string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = UserIDFromContext(r.Context())
		gotRole, _ = r.Context().Value(CtxUserRole).(string)
	})
	mw := JWTAuth(testSecret)(next)

	tok := signToken(t, testSecret, "u42", "user")

	req := httptest.NewRequest(http.MethodGet, "/me/recommendations", nil)
	req.Header.Set("Authorization", "Bearer "+tok)
	rec := httptest.NewRecorder()
	mw.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, esperaba 200", rec.Code)
	}
	if gotUser != "u42" {
		t.Errorf("userId en contexto = %q, esperaba u42", gotUser)
	}
	if gotRole != "user" {
		t.Errorf("role en contexto = %q, esperaba user", gotRole)
	}
}

func TestAdminOnly(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})
	chain := JWTAuth(testSecret)(AdminOnly()(next))

	// user normal: 403
	req := httptest.NewRequest(http.MethodPost, "/admin/recommendations/rebuild", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "u1", "user"))
	rec := httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Errorf("user normal: status = %d, esperaba 403", rec.Code)
	}

	// admin: pasa
	req = httptest.NewRequest(http.MethodPost, "/admin/recommendations/rebuild", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, testSecret, "a1", "admin"))
	rec = httptest.NewRecorder()
	chain.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("admin: status = %d, esperaba 200", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	Health(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, esperaba 200", rec.Code)
	}
	if got := rec.Body.String(); got != `{"status":"ok"}` {
		t.Errorf("body = %q", got)
	}
}
