package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"

	"github.com/ldbiro/ldbiro-web/internal/middleware"
)

func TestFixedWindowStore_EnforcesCeiling(t *testing.T) {
	store := middleware.NewFixedWindowStore(3, time.Minute)

	assert.True(t, store.Allow("1.2.3.4"))
	assert.True(t, store.Allow("1.2.3.4"))
	assert.True(t, store.Allow("1.2.3.4"))
	assert.False(t, store.Allow("1.2.3.4"), "4th request within the window must be rejected")
	assert.False(t, store.Allow("1.2.3.4"))

	// A different client key counts independently.
	assert.True(t, store.Allow("5.6.7.8"))
}

func TestFixedWindowStore_WindowExpiryResets(t *testing.T) {
	store := middleware.NewFixedWindowStore(3, 50*time.Millisecond)

	for i := 0; i < 3; i++ {
		assert.True(t, store.Allow("1.2.3.4"))
	}
	assert.False(t, store.Allow("1.2.3.4"))

	time.Sleep(80 * time.Millisecond)

	assert.True(t, store.Allow("1.2.3.4"), "first request of a new window must succeed despite prior rejections")
}

func TestClientKey_TrustedProxyHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func() *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		return c
	}

	c := newCtx()
	c.Request.Header.Set("X-Forwarded-For", "1.2.3.4, 5.6.7.8")
	assert.Equal(t, "1.2.3.4", middleware.ClientKey(c, true))

	c = newCtx()
	c.Request.Header.Set("X-Real-IP", "9.9.9.9")
	assert.Equal(t, "9.9.9.9", middleware.ClientKey(c, true))

	c = newCtx()
	c.Request.RemoteAddr = ""
	assert.Equal(t, "unknown", middleware.ClientKey(c, true))
}

func TestClientKey_UntrustedProxyIgnoresHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/api/contact", nil)
	c.Request.RemoteAddr = "10.0.0.7:51234"
	c.Request.Header.Set("X-Forwarded-For", "1.2.3.4")

	assert.Equal(t, "10.0.0.7", middleware.ClientKey(c, false))
}

func TestRateLimit_Middleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	store := middleware.NewFixedWindowStore(3, time.Minute)
	router := gin.New()
	router.POST("/api/contact",
		middleware.RateLimit("contact", store, true, middleware.MsgContactRateLimited),
		func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.Header.Set("X-Forwarded-For", "1.2.3.4")
		router.ServeHTTP(w, req)
		return w
	}

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, do().Code)
	}

	w := do()
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "Previše zahteva")
}

func TestVisitorLimiter_RejectsBeyondBurst(t *testing.T) {
	gin.SetMode(gin.TestMode)

	vl := middleware.NewVisitorLimiter(rate.Limit(1), 1)
	defer vl.Stop()

	router := gin.New()
	router.GET("/", vl.Middleware(false), func(c *gin.Context) { c.Status(http.StatusOK) })

	do := func() int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = "10.0.0.1:40000"
		router.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, do())
	assert.Equal(t, http.StatusTooManyRequests, do())
}
