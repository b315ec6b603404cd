package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/KirkDiggler/dominions-mapgen/internal/handlers/http/middleware"
	"github.com/KirkDiggler/dominions-mapgen/internal/pkg/idgen"
)

func newRouter(log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID(idgen.NewSequential("req")), middleware.Logger(log))
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(middleware.ContextRequestID)) })
	router.GET("/bad", func(c *gin.Context) { c.Status(http.StatusBadRequest) })
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(assert.AnError)
		c.Status(http.StatusInternalServerError)
	})
	return router
}

func TestRequestID(t *testing.T) {
	router := newRouter(zap.NewNop())

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, "req_1", rec.Header().Get(middleware.HeaderRequestID))
	assert.Equal(t, "req_1", rec.Body.String())

	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(middleware.HeaderRequestID, "upstream-7")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, "upstream-7", rec.Header().Get(middleware.HeaderRequestID))
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	router := newRouter(zap.New(core))

	for _, path := range []string{"/health", "/ok?search=ulm", "/bad", "/fail"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	entries := logs.All()
	require.Len(t, entries, 3)
	assert.Equal(t, "request completed", entries[0].Message)
	assert.Equal(t, "/ok?search=ulm", entries[0].ContextMap()["path"])
	assert.Equal(t, "req_2", entries[0].ContextMap()["request_id"])
	assert.Equal(t, "client error", entries[1].Message)
	assert.Equal(t, "request error", entries[2].Message)
}
