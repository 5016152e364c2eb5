package v1

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sposioggi/espositori-api/internal/authclient"
	"github.com/sposioggi/espositori-api/internal/service"
)

type stubAuthService struct {
	loggedOut bool
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (authclient.Session, error) {
	if email == "admin@example.com" && password == "secret" {
		return authclient.Session{
			AccessToken: "token-abc",
			User:        authclient.User{ID: "user-1", Email: email},
		}, nil
	}

	return authclient.Session{}, service.ErrInvalidCredentials
}

func (s *stubAuthService) CurrentSession(_ context.Context, accessToken string) (authclient.User, error) {
	if accessToken == "token-abc" {
		return authclient.User{ID: "user-1", Email: "admin@example.com"}, nil
	}

	return authclient.User{}, &authclient.ProviderError{StatusCode: http.StatusUnauthorized}
}

func (s *stubAuthService) Logout(_ context.Context, _ string) error {
	s.loggedOut = true
	return nil
}

func newAuthRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAuthHandler(svc)

	router := gin.New()
	router.POST("/auth/login", handler.HandleLogin)
	router.GET("/auth/session", handler.HandleGetSession)
	router.POST("/auth/logout", handler.HandleLogout)

	return router
}

func TestHandleLogin(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	t.Run("valid credentials return the session token", func(t *testing.T) {
		body := `{"email": "admin@example.com", "password": "secret"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "token-abc")
	})

	t.Run("wrong password is a 401", func(t *testing.T) {
		body := `{"email": "admin@example.com", "password": "wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("malformed email is rejected before the provider call", func(t *testing.T) {
		body := `{"email": "not-an-email", "password": "secret"}`
		req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(body))
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusBadRequest, resp.Code)
	})
}

func TestHandleGetSession(t *testing.T) {
	router := newAuthRouter(&stubAuthService{})

	t.Run("live token resolves to the user", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
		req.Header.Set("Authorization", "Bearer token-abc")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusOK, resp.Code)
		assert.Contains(t, resp.Body.String(), "admin@example.com")
	})

	t.Run("stale token is a 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
		req.Header.Set("Authorization", "Bearer stale")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})

	t.Run("missing token is a 401", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)

		assert.Equal(t, http.StatusUnauthorized, resp.Code)
	})
}

func TestHandleLogout(t *testing.T) {
	svc := &stubAuthService{}
	router := newAuthRouter(svc)

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNoContent, resp.Code)
	assert.True(t, svc.loggedOut)
}
