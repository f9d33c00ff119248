package commands

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cheese-api/internal/adapters/primary/http/handlers"
	"cheese-api/internal/adapters/secondary/memory"
	"cheese-api/internal/config"
	"cheese-api/internal/core/services"
)

func testRouter(cfg *config.Config, health healthCheck) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewCheeseListingService(memory.NewCheeseListingRepository(), 10)
	return newRouter(cfg, handlers.New(svc), health)
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestNewRouter_Healthz(t *testing.T) {
	r := testRouter(&config.Config{}, func(context.Context) error { return nil })

	w := get(r, "/healthz")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestNewRouter_HealthzUnhealthy(t *testing.T) {
	r := testRouter(&config.Config{}, func(context.Context) error { return errors.New("db down") })

	w := get(r, "/healthz")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "db down")
}

func TestNewRouter_Metrics(t *testing.T) {
	r := testRouter(&config.Config{}, func(context.Context) error { return nil })

	get(r, "/api/cheeses")
	w := get(r, "/metrics")

	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
}

func TestNewRouter_RequestIDHeader(t *testing.T) {
	r := testRouter(&config.Config{}, func(context.Context) error { return nil })

	w := get(r, "/api/cheeses")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestNewRouter_RateLimitEnabled(t *testing.T) {
	cfg := &config.Config{RateLimit: config.RateLimitConfig{RPS: 0.001, Burst: 1}}
	r := testRouter(cfg, func(context.Context) error { return nil })

	assert.Equal(t, http.StatusOK, get(r, "/api/cheeses").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(r, "/api/cheeses").Code)
}

func TestOpenStore_Memory(t *testing.T) {
	cfg := &config.Config{Storage: config.StorageConfig{Driver: config.StorageDriverMemory}}

	repo, health, closeStore, err := openStore(context.Background(), cfg)
	require.NoError(t, err)
	defer closeStore()

	assert.NotNil(t, repo)
	assert.NoError(t, health(context.Background()))
}
