package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/devHamzaIrshad/study-buddy-agent/pkg/controller"
)

func TestWithCORS(t *testing.T) {
	t.Parallel()

	handler := controller.WithCORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("SetsHeaders", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		require.Equal(t, http.StatusTeapot, rec.Code)
	})

	t.Run("Preflight", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/", nil))

		require.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestWithLogger(t *testing.T) {
	t.Parallel()

	t.Run("GeneratesRequestID", func(t *testing.T) {
		t.Parallel()

		var gotID any

		handler := controller.WithLogger(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			gotID = r.Context().Value(controller.RequestIDKey)
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		require.NotEmpty(t, gotID)
	})

	t.Run("KeepsProvidedRequestID", func(t *testing.T) {
		t.Parallel()

		var gotID any

		handler := controller.WithLogger(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			gotID = r.Context().Value(controller.RequestIDKey)
		}))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-Id", "req-123")

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		require.Equal(t, "req-123", gotID)
	})
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	t.Run("XForwardedFor", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

		require.Equal(t, "203.0.113.7", controller.GetClientIP(req))
	})

	t.Run("XRealIP", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Real-IP", "203.0.113.9")

		require.Equal(t, "203.0.113.9", controller.GetClientIP(req))
	})

	t.Run("RemoteAddr", func(t *testing.T) {
		t.Parallel()

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "192.0.2.10:1234"

		require.Equal(t, "192.0.2.10", controller.GetClientIP(req))
	})
}

func TestPprofMux(t *testing.T) {
	t.Parallel()

	mux := controller.PprofMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "profile")
}
