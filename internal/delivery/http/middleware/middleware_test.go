package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"go-profile-backend/internal/delivery/http/response"
	"go-profile-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString("RequestID"))
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := serve(r, req)
		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
		assert.Equal(t, "abc-123", w.Body.String())
	})

	t.Run("assigns one when missing", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		id := w.Header().Get(RequestIDHeader)
		assert.Len(t, id, 36)
		assert.Equal(t, id, w.Body.String())
	})
}

func TestErrorHandler(t *testing.T) {
	alerts := response.Alerts{AppName: "profileApp"}
	r := gin.New()
	r.Use(ErrorHandler(alerts, zap.NewNop()))
	r.GET("/idexists", func(c *gin.Context) {
		c.Error(apperror.BadRequestAlert("A new skill cannot already have an ID", "skill", "idexists"))
	})
	r.GET("/missing", func(c *gin.Context) {
		c.Error(apperror.NotFound("Skill 9 not found"))
	})
	r.GET("/boom", func(c *gin.Context) {
		c.Error(errors.New("pq: connection refused"))
	})

	t.Run("alert errors carry headers", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/idexists", nil))
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "error.idexists", w.Header().Get("X-profileApp-error"))
		assert.Equal(t, "skill", w.Header().Get("X-profileApp-params"))
	})

	t.Run("app errors keep their status", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/missing", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Skill 9 not found")
		assert.Empty(t, w.Header().Get("X-profileApp-error"))
	})

	t.Run("other errors are hidden behind a 500", func(t *testing.T) {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/boom", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "connection refused")
	})
}

func TestRateLimitInMemory(t *testing.T) {
	r := gin.New()
	r.Use(RateLimitMiddleware(RateLimitConfig{Limit: 2, Window: time.Minute}))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	for i := 0; i < 2; i++ {
		w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, http.StatusOK, w.Code)
	}
	w := serve(r, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimitRedisUnavailable(t *testing.T) {
	unreachable := goredis.NewClient(&goredis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 100 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = unreachable.Close() })

	newRouter := func(failClosed bool) *gin.Engine {
		cfg := DefaultRateLimitConfig()
		cfg.Limit = 5
		cfg.Redis = unreachable
		cfg.FailClosed = failClosed
		r := gin.New()
		r.Use(RateLimitMiddleware(cfg))
		r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("fail closed rejects", func(t *testing.T) {
		w := serve(newRouter(true), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("fail open counts in memory", func(t *testing.T) {
		w := serve(newRouter(false), httptest.NewRequest(http.MethodGet, "/", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "4", w.Header().Get("X-RateLimit-Remaining"))
	})
}

func TestMemoryStoreWindowReset(t *testing.T) {
	store := &memoryStore{}
	cfg := RateLimitConfig{Limit: 1, Window: time.Second}
	now := time.Now()

	count, _ := store.hit("k", cfg, now)
	assert.Equal(t, 1, count)
	count, _ = store.hit("k", cfg, now)
	assert.Equal(t, 2, count)

	count, _ = store.hit("k", cfg, now.Add(2*time.Second))
	assert.Equal(t, 1, count)
}

func TestMemoryStoreEvictsExpiredKeys(t *testing.T) {
	store := &memoryStore{}
	cfg := RateLimitConfig{Limit: 10, Window: time.Minute}
	start := time.Now()

	for i := 0; i < 10000; i++ {
		store.hit(strconv.Itoa(i), cfg, start)
	}
	assert.Equal(t, 10000, storeSize(store))

	// an hour later every window has ended; the next request sweeps them
	count, _ := store.hit("late", cfg, start.Add(time.Hour))
	assert.Equal(t, 1, count)
	assert.Equal(t, 1, storeSize(store))
}

func TestMemoryStoreSweepKeepsLiveWindows(t *testing.T) {
	store := &memoryStore{}
	now := time.Now()
	store.hit("old", RateLimitConfig{Window: time.Second}, now)
	store.hit("live", RateLimitConfig{Window: time.Hour}, now)

	store.sweep(now.Add(time.Minute))

	_, oldKept := store.entries.Load("old")
	_, liveKept := store.entries.Load("live")
	assert.False(t, oldKept)
	assert.True(t, liveKept)
}

func storeSize(s *memoryStore) int {
	n := 0
	s.entries.Range(func(_, _ interface{}) bool {
		n++
		return true
	})
	return n
}

func TestCORS(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware([]string{"http://localhost:9000"}, "profileApp"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "http://localhost:9000")
		w := serve(r, req)
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-profileApp-alert")
	})

	t.Run("preflight from unknown origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/", nil)
		req.Header.Set("Origin", "http://evil.example")
		w := serve(r, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestAuthMiddlewareRejectsWrongScheme(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(response.Alerts{AppName: "profileApp"}, zap.NewNop()))
	r.Use(AuthMiddleware("secret"))
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	assert.Equal(t, http.StatusUnauthorized, serve(r, req).Code)

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	w := serve(r, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid token")
}
