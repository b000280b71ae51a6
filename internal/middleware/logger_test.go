package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func newServer(buf *bytes.Buffer, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)

	server := gin.New()
	server.Use(RequestLogger(zerolog.New(buf)))
	server.GET("/", handler)

	return server
}

func TestRequestLoggerAssignsRequestID(t *testing.T) {
	var buf bytes.Buffer

	var fromContext string

	server := newServer(&buf, func(c *gin.Context) {
		fromContext = c.Request.Header.Get(RequestIDHeader)
		c.Status(http.StatusNoContent)
	})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	requestID := recorder.Header().Get(RequestIDHeader)
	require.NotEmpty(t, requestID)
	require.Equal(t, requestID, fromContext)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, requestID, entry["request_id"])
	require.EqualValues(t, http.StatusNoContent, entry["status_code"])
	require.Equal(t, "info", entry["level"])
}

func TestRequestLoggerKeepsClientRequestID(t *testing.T) {
	var buf bytes.Buffer

	server := newServer(&buf, func(c *gin.Context) {
		zerolog.Ctx(c.Request.Context()).Info().Msg("handled")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "abc")

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, req)

	require.Equal(t, "abc", recorder.Header().Get(RequestIDHeader))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	for _, line := range lines {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(line, &entry))
		require.Equal(t, "abc", entry["request_id"])
	}
}

func TestRequestLoggerRecoversPanics(t *testing.T) {
	var buf bytes.Buffer

	server := newServer(&buf, func(c *gin.Context) {
		panic("boom")
	})

	recorder := httptest.NewRecorder()
	server.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusInternalServerError, recorder.Code)
	require.Contains(t, buf.String(), "panic message: boom")
}
