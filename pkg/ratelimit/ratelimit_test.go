package ratelimit

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetRateLimitType(t *testing.T) {
	tests := []struct {
		method string
		path   string
		want   RateLimitType
	}{
		{http.MethodGet, "/health", RateLimitTypeHealth},
		{http.MethodGet, "/ping", RateLimitTypeHealth},
		{http.MethodPut, "/api/v1/admin/venues/:code/rent", RateLimitTypeAdmin},
		{http.MethodPost, "/api/v1/bookings", RateLimitTypeBooking},
		{http.MethodPost, "/api/v1/quotes", RateLimitTypeQuote},
		{http.MethodGet, "/api/v1/venues", RateLimitTypePublic},
		{http.MethodGet, "/api/v1/venues/suggest", RateLimitTypePublic},
		{http.MethodGet, "/api/v1/calendar", RateLimitTypePublic},
		{http.MethodGet, "/api/v1/menus/beverages", RateLimitTypePublic},
		{http.MethodGet, "/something/else", RateLimitTypeDefault},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, getRateLimitType(tt.method, tt.path))
		})
	}
}

func TestGetLimit(t *testing.T) {
	rl := NewRateLimiter(nil, nil)

	assert.Equal(t, 10, rl.getLimit(RateLimitTypeBooking))
	assert.Equal(t, 60, rl.getLimit(RateLimitTypeQuote))
	assert.Equal(t, 100, rl.getLimit(RateLimitType("unknown")))
}

func TestIsAllowed_BypassesRedis(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Enabled = false
		rl := NewRateLimiter(nil, cfg)

		res, err := rl.IsAllowed(ctx, "10.0.0.1", RateLimitTypeBooking)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
		assert.Equal(t, cfg.BookingRequests, res.Remaining)
	})

	t.Run("no client", func(t *testing.T) {
		rl := NewRateLimiter(nil, DefaultConfig())

		res, err := rl.IsAllowed(ctx, "10.0.0.1", RateLimitTypeQuote)
		require.NoError(t, err)
		assert.True(t, res.Allowed)
	})

	t.Run("whitelisted", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.WhitelistedIPs = []string{"127.0.0.1"}
		rl := NewRateLimiter(nil, cfg)

		assert.True(t, rl.isWhitelisted("127.0.0.1"))
		assert.False(t, rl.isWhitelisted("10.0.0.2"))
	})
}

func TestKey(t *testing.T) {
	assert.Equal(t, "eventrental:ratelimit:10.0.0.1:booking", Key("10.0.0.1", RateLimitTypeBooking))
}

func TestMiddleware_SetsHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cfg := DefaultConfig()
	cfg.Enabled = false

	router := gin.New()
	router.Use(Middleware(NewRateLimiter(nil, cfg)))
	router.POST("/api/v1/bookings", func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "10", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "10", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
}

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		headers map[string]string
		remote  string
		want    string
	}{
		{"forwarded for", map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1"}, "10.0.0.9:1234", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "10.0.0.9:1234", "198.51.100.4"},
		{"invalid forwarded", map[string]string{"X-Forwarded-For": "garbage"}, "10.0.0.9:1234", "10.0.0.9"},
		{"remote addr", nil, "192.0.2.1:5555", "192.0.2.1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
			c.Request.RemoteAddr = tt.remote
			for k, v := range tt.headers {
				c.Request.Header.Set(k, v)
			}

			assert.Equal(t, tt.want, getClientIP(c))
		})
	}
}
