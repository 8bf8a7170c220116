package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protectedHandler(t *testing.T, token string) (http.Handler, *bool) {
	t.Helper()
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})
	return AdminAuth(token)(next), &called
}

func TestAdminAuth_MissingToken(t *testing.T) {
	handler, called := protectedHandler(t, "secret")

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/r1/approve", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestAdminAuth_WrongToken(t *testing.T) {
	handler, called := protectedHandler(t, "secret")

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/r1/approve", nil)
	req.Header.Set(AdminTokenHeader, "guess")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, *called)
}

func TestAdminAuth_ValidToken(t *testing.T) {
	handler, called := protectedHandler(t, "secret")

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/reservations/r1/approve", nil)
	req.Header.Set(AdminTokenHeader, "secret")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}
