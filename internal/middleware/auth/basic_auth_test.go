package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func protected() http.Handler {
	return BasicAuth("admin", "secret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func TestBasicAuth_Allows(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/upload", nil)
	req.SetBasicAuth("admin", "secret")
	rr := httptest.NewRecorder()

	protected().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestBasicAuth_RejectsWrongPassword(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/upload", nil)
	req.SetBasicAuth("admin", "wrong")
	rr := httptest.NewRecorder()

	protected().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Basic")
}

func TestBasicAuth_RejectsMissingHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/upload", nil)
	rr := httptest.NewRecorder()

	protected().ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
