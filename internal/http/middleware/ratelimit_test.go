package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiterPerIP(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	defer rl.Stop()

	if !rl.Allow("1.1.1.1") || !rl.Allow("1.1.1.1") {
		t.Fatal("burst of 2 should be allowed")
	}
	if rl.Allow("1.1.1.1") {
		t.Fatal("third request should be limited")
	}
	if !rl.Allow("2.2.2.2") {
		t.Fatal("other IPs have their own bucket")
	}
}

func TestRateLimiterEvictsIdleClients(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Stop()

	rl.Allow("1.1.1.1")
	rl.evict(time.Now().Add(5 * time.Minute))
	if rl.size() != 1 {
		t.Fatalf("recent client should be kept, size=%d", rl.size())
	}
	rl.evict(time.Now().Add(11 * time.Minute))
	if rl.size() != 0 {
		t.Fatalf("idle client should be evicted, size=%d", rl.size())
	}
}

func TestLimitMiddleware(t *testing.T) {
	rl := NewRateLimiter(0.001, 1)
	defer rl.Stop()
	handler := Limit(rl)(okHandler(nil))

	send := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
		req.Header.Set("X-Real-Ip", "10.0.0.1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec
	}

	if rec := send(); rec.Code != http.StatusOK {
		t.Fatalf("expected first request to pass, got %d", rec.Code)
	}
	rec := send()
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}
}

func TestRateLimiterDisabledWithoutRate(t *testing.T) {
	for _, rps := range []float64{0, -1} {
		rl := NewRateLimiter(rps, 2)
		if rl != nil {
			t.Fatalf("rps %v: expected nil limiter", rps)
		}
		rl.Stop()

		handler := Limit(rl)(okHandler(nil))
		for i := 0; i < 5; i++ {
			req := httptest.NewRequest(http.MethodPost, "/api/contact", nil)
			req.Header.Set("X-Real-Ip", "10.0.0.2")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != http.StatusOK {
				t.Fatalf("rps %v: request %d got %d", rps, i, rec.Code)
			}
		}
	}
}

func TestClientIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	if got := clientIP(req); got != "192.0.2.1" {
		t.Errorf("expected host without port, got %q", got)
	}
	req.Header.Set("X-Real-Ip", "203.0.113.9")
	if got := clientIP(req); got != "203.0.113.9" {
		t.Errorf("expected X-Real-Ip, got %q", got)
	}
}
