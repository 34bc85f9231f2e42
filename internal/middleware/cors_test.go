package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func corsRouter(t *testing.T) *gin.Engine {
	t.Helper()
	r := gin.New()
	r.Use(CORS())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORSAllowsAllByDefault(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	r := corsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	r.ServeHTTP(w, req)

	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestCORSRestrictedOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://app.example.com, https://staging.example.com")
	r := corsRouter(t)

	t.Run("allowed origin echoed", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/ping", nil)
		req.Header.Set("Origin", "https://staging.example.com")
		r.ServeHTTP(w, req)

		if got := w.Header().Get("Access-Control-Allow-Origin"); got != "https://staging.example.com" {
			t.Errorf("Access-Control-Allow-Origin = %q, want the origin back", got)
		}
		if got := w.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
			t.Errorf("Access-Control-Allow-Credentials = %q, want true", got)
		}
	})

	t.Run("disallowed preflight rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("OPTIONS", "/ping", nil)
		req.Header.Set("Origin", "https://evil.example.com")
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Errorf("status = %d, want %d", w.Code, http.StatusForbidden)
		}
	})
}

func TestCORSPreflightShortCircuits(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "")
	r := corsRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest("OPTIONS", "/ping", nil)
	req.Header.Set("Origin", "https://anywhere.example")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("expected Access-Control-Allow-Methods to be set on preflight")
	}
}

func TestOwnerMiddleware(t *testing.T) {
	newRouter := func(defaultOwner string) *gin.Engine {
		r := gin.New()
		r.Use(Owner(defaultOwner))
		r.GET("/whoami", func(c *gin.Context) {
			c.String(http.StatusOK, OwnerID(c))
		})
		return r
	}

	t.Run("header wins", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.Header.Set(OwnerIDHeader, "owner-from-header")
		newRouter("fallback-owner").ServeHTTP(w, req)

		if w.Body.String() != "owner-from-header" {
			t.Errorf("owner = %q, want owner-from-header", w.Body.String())
		}
	})

	t.Run("default owner fallback", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/whoami", nil)
		newRouter("fallback-owner").ServeHTTP(w, req)

		if w.Body.String() != "fallback-owner" {
			t.Errorf("owner = %q, want fallback-owner", w.Body.String())
		}
	})

	t.Run("missing owner rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/whoami", nil)
		newRouter("").ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
		}
	})
}
