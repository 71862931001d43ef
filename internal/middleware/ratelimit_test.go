package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func rateLimitedRouter(rate int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rl := NewRateLimiter(rate, time.Minute)
	r.POST("/login", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func doLogin(r *gin.Engine, remoteAddr string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/login", nil)
	req.RemoteAddr = remoteAddr
	r.ServeHTTP(w, req)
	return w
}

func TestRateLimiterAllowsWithinBudget(t *testing.T) {
	r := rateLimitedRouter(3)

	for i := 0; i < 3; i++ {
		if w := doLogin(r, "10.0.0.1:1234"); w.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, w.Code)
		}
	}
}

func TestRateLimiterBlocksOverBudget(t *testing.T) {
	r := rateLimitedRouter(2)

	doLogin(r, "10.0.0.2:1234")
	doLogin(r, "10.0.0.2:1234")

	w := doLogin(r, "10.0.0.2:1234")
	if w.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", w.Code)
	}

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("unmarshal body: %v", err)
	}
	if body.Error.Code != "RATE_LIMIT_EXCEEDED" {
		t.Errorf("expected RATE_LIMIT_EXCEEDED, got %q", body.Error.Code)
	}
}

func TestRateLimiterIsPerIP(t *testing.T) {
	r := rateLimitedRouter(1)

	if w := doLogin(r, "10.0.0.3:1234"); w.Code != http.StatusOK {
		t.Fatalf("first IP: expected 200, got %d", w.Code)
	}
	if w := doLogin(r, "10.0.0.3:1234"); w.Code != http.StatusTooManyRequests {
		t.Fatalf("first IP second hit: expected 429, got %d", w.Code)
	}
	// A different client is unaffected.
	if w := doLogin(r, "10.0.0.4:1234"); w.Code != http.StatusOK {
		t.Fatalf("second IP: expected 200, got %d", w.Code)
	}
}
