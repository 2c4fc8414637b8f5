package controller_test

import (
	"context"
	"library/pkg/controller"
	"library/pkg/logger"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestGetClientIP(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{
			name:    "x-forwarded-for",
			headers: map[string]string{"X-Forwarded-For": "1.2.3.4, 5.6.7.8"},
			want:    "1.2.3.4",
		},
		{
			name:    "x-real-ip",
			headers: map[string]string{"X-Real-IP": "9.8.7.6"},
			want:    "9.8.7.6",
		},
		{
			name:   "remote addr",
			remote: "10.0.0.1:12345",
			want:   "10.0.0.1",
		},
		{
			name:   "invalid remote addr",
			remote: "not-an-addr",
			want:   "not-an-addr",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			if tt.remote != "" {
				req.RemoteAddr = tt.remote
			}

			require.Equal(t, tt.want, controller.GetClientIP(req))
		})
	}
}

func TestWithLogger_RequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Echo", controller.RequestID(r.Context()))
		w.WriteHeader(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	req.Header.Set(controller.RequestIDHeader, "abc-123")
	rec := httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, req)

	res := rec.Result()
	require.Equal(t, http.StatusCreated, res.StatusCode)
	require.Equal(t, "abc-123", res.Header.Get("X-Echo"))
	require.Equal(t, "abc-123", res.Header.Get(controller.RequestIDHeader))

	// without a header an id is generated
	rec = httptest.NewRecorder()
	controller.WithLogger(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Result().Header.Get(controller.RequestIDHeader)
	require.NotEmpty(t, generated)
	require.Equal(t, generated, rec.Result().Header.Get("X-Echo"))

	require.Empty(t, controller.RequestID(context.Background()))
}

func TestWithLogger_AccessLog(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Info(r.Context(), "inside handler")
		w.WriteHeader(http.StatusUnprocessableEntity)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/users/1/borrow", nil)
	req.Header.Set(controller.RequestIDHeader, "req-1")
	req = req.WithContext(logger.WithLogger(req.Context(), zap.New(core)))
	controller.WithLogger(next).ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "req-1", entries[0].ContextMap()["requestID"])
	require.Equal(t, "access log", entries[1].Message)
	require.Equal(t, int64(http.StatusUnprocessableEntity), entries[1].ContextMap()["status_code"])
	require.Equal(t, "POST", entries[1].ContextMap()["method"])
}
