package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nyayconnect/nyayconnect-api/models"
)

func TestMiddlewareMissingToken(t *testing.T) {
	handler := Middleware("secret", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run without a token")
	}))

	req, _ := http.NewRequest("GET", "/api/my-appointments", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"success": false, "message": "Token is missing!"}`, rr.Body.String())
}

func TestMiddlewareInvalidToken(t *testing.T) {
	handler := Middleware("secret", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run with a bad token")
	}))

	req, _ := http.NewRequest("GET", "/api/my-appointments", nil)
	req.Header.Set("Authorization", "Bearer asdfasdf")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.JSONEq(t, `{"success": false, "message": "Token is invalid or has expired!"}`, rr.Body.String())
}

func TestMiddlewareInjectsIdentity(t *testing.T) {
	token, err := IssueToken(42, models.RoleClient, "secret")
	assert.NoError(t, err)

	handler := Middleware("secret", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := UserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, int64(42), userID)

		role, ok := RoleFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, models.RoleClient, role)

		w.WriteHeader(http.StatusOK)
	}))

	req, _ := http.NewRequest("GET", "/api/my-appointments", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRequireRoleForbidsOtherRole(t *testing.T) {
	handler := RequireRole(models.RoleLawyer, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run for the wrong role")
	}))

	req, _ := http.NewRequest("POST", "/api/lawyer-profile", nil)
	req = req.WithContext(ContextWithIdentity(req.Context(), 42, models.RoleClient))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusForbidden, rr.Code)
	assert.JSONEq(t, `{"success": false, "message": "Access forbidden."}`, rr.Body.String())
}

func TestRequireRoleAllowsMatchingRole(t *testing.T) {
	handler := RequireRole(models.RoleLawyer, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req, _ := http.NewRequest("POST", "/api/lawyer-profile", nil)
	req = req.WithContext(ContextWithIdentity(req.Context(), 42, models.RoleLawyer))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBearerTokenParsing(t *testing.T) {
	req, _ := http.NewRequest("GET", "/", nil)
	assert.Equal(t, "", bearerToken(req))

	req.Header.Set("Authorization", "bearer abc123")
	assert.Equal(t, "abc123", bearerToken(req))

	req.Header.Set("Authorization", "Basic abc123")
	assert.Equal(t, "", bearerToken(req))
}
