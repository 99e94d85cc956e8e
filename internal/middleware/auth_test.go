package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"quizboard_backend/internal/config"
	"quizboard_backend/internal/util"

	"github.com/gin-gonic/gin"
)

const testSecret = "unit-test-secret"

func newAuthRouter(t *testing.T, optional bool) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.JWT.Secret = testSecret

	router := gin.New()
	mw := AuthMiddleware(cfg)
	if optional {
		mw = TryAuthMiddleware(cfg)
	}
	router.GET("/probe", mw, func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			c.String(http.StatusOK, "anonymous")
			return
		}
		c.String(http.StatusOK, claims.Email)
	})
	return router
}

func TestAuthMiddleware(t *testing.T) {
	router := newAuthRouter(t, false)

	token, err := util.GenerateJWT(7, "teacher", "t@example.com", testSecret, time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error: %v", err)
	}

	tests := []struct {
		name     string
		header   string
		query    string
		wantCode int
		wantBody string
	}{
		{"valid bearer token", "Bearer " + token, "", http.StatusOK, "t@example.com"},
		{"token via query param", "", token, http.StatusOK, "t@example.com"},
		{"missing token", "", "", http.StatusUnauthorized, ""},
		{"garbage token", "Bearer not-a-jwt", "", http.StatusUnauthorized, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			url := "/probe"
			if tt.query != "" {
				url += "?token=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, url, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Fatalf("status = %d, want %d", w.Code, tt.wantCode)
			}
			if tt.wantBody != "" && w.Body.String() != tt.wantBody {
				t.Fatalf("body = %q, want %q", w.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	router := newAuthRouter(t, false)

	token, err := util.GenerateJWT(7, "teacher", "t@example.com", "other-secret", time.Hour)
	if err != nil {
		t.Fatalf("GenerateJWT() error: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestTryAuthMiddleware(t *testing.T) {
	router := newAuthRouter(t, true)

	t.Run("no token passes through", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != "anonymous" {
			t.Fatalf("got %d %q, want 200 anonymous", w.Code, w.Body.String())
		}
	})

	t.Run("valid token attaches claims", func(t *testing.T) {
		token, err := util.GenerateJWT(7, "teacher", "t@example.com", testSecret, time.Hour)
		if err != nil {
			t.Fatalf("GenerateJWT() error: %v", err)
		}
		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Body.String() != "t@example.com" {
			t.Fatalf("body = %q, want claims email", w.Body.String())
		}
	})
}
