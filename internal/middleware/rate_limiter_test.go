package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func okHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func serve(e *echo.Echo, h echo.HandlerFunc, configure func(*http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/transaction", nil)
	req.RemoteAddr = "192.168.1.100:12345"
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))
	return rec
}

func TestRateLimiter_AllowsBurstThenRejects(t *testing.T) {
	e := echo.New()
	handler := NewRateLimiter(1, 5).Middleware()(okHandler)

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusOK, serve(e, handler, nil).Code, "request %d within burst", i)
	}

	rec := serve(e, handler, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Contains(t, rec.Body.String(), "SYSTEM_006")
}

func TestRateLimiter_SeparateBudgetsPerClient(t *testing.T) {
	e := echo.New()
	handler := NewRateLimiter(1, 1).Middleware()(okHandler)

	assert.Equal(t, http.StatusOK, serve(e, handler, nil).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, handler, nil).Code)

	other := serve(e, handler, func(r *http.Request) { r.RemoteAddr = "10.0.0.7:5555" })
	assert.Equal(t, http.StatusOK, other.Code)
}

func TestRateLimiter_UsesFirstForwardedHop(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 1)
	handler := rl.Middleware()(okHandler)

	forwarded := func(chain string) func(*http.Request) {
		return func(r *http.Request) { r.Header.Set(echo.HeaderXForwardedFor, chain) }
	}

	assert.Equal(t, http.StatusOK, serve(e, handler, forwarded("203.0.113.9, 10.0.0.1")).Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(e, handler, forwarded("203.0.113.9, 10.0.0.2")).Code)
	assert.Equal(t, 1, rl.visitorCount())
}

func TestRateLimiter_RealIPHeader(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(1, 1)
	handler := rl.Middleware()(okHandler)

	serve(e, handler, func(r *http.Request) { r.Header.Set(echo.HeaderXRealIP, "198.51.100.4") })
	serve(e, handler, nil)
	assert.Equal(t, 2, rl.visitorCount())
}

func TestRateLimiter_EvictsIdleVisitors(t *testing.T) {
	rl := NewRateLimiter(10, 10)
	rl.limiterFor("192.0.2.1")
	rl.limiterFor("192.0.2.2")

	rl.evictIdle(time.Now())
	assert.Equal(t, 2, rl.visitorCount())

	rl.evictIdle(time.Now().Add(visitorIdleTimeout + time.Second))
	assert.Equal(t, 0, rl.visitorCount())
}

func TestRateLimiter_StartCleanupStopsWithContext(t *testing.T) {
	rl := NewRateLimiter(10, 10)
	ctx, cancel := context.WithCancel(context.Background())
	rl.StartCleanup(ctx)
	cancel()
}

func TestRateLimiter_ConcurrentClients(t *testing.T) {
	e := echo.New()
	rl := NewRateLimiter(100, 100)
	handler := rl.Middleware()(okHandler)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			serve(e, handler, nil)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, rl.visitorCount())
}
