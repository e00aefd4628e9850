package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func traceRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(TraceIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		seen = c.GetString("trace_id")
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestTraceIDMintedWhenAbsent(t *testing.T) {
	r, seen := traceRouter()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	echoed := w.Header().Get("X-Trace-ID")
	require.NotEmpty(t, echoed)
	_, err := uuid.Parse(echoed)
	require.NoError(t, err)
	assert.Equal(t, echoed, *seen)
}

func TestTraceIDReusesInboundHeader(t *testing.T) {
	r, seen := traceRouter()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Trace-ID", "frontend-abc123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "frontend-abc123", w.Header().Get("X-Trace-ID"))
	assert.Equal(t, "frontend-abc123", *seen)
}
