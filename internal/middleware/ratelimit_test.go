package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func limitedHandler(rl *RateLimiter) http.Handler {
	return rl.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
}

func hit(t *testing.T, h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
	req.RemoteAddr = remoteAddr
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	h := limitedHandler(NewRateLimiter(2, time.Minute))

	for i := 0; i < 2; i++ {
		if rr := hit(t, h, "10.0.0.1:1234"); rr.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, rr.Code)
		}
	}

	rr := hit(t, h, "10.0.0.1:1234")
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after limit, got %d", rr.Code)
	}
	if rr.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header on 429 response")
	}
}

func TestRateLimiter_TracksClientsIndependently(t *testing.T) {
	h := limitedHandler(NewRateLimiter(1, time.Minute))

	hit(t, h, "10.0.0.1:1234")
	hit(t, h, "10.0.0.1:1234")

	if rr := hit(t, h, "10.0.0.2:1234"); rr.Code != http.StatusOK {
		t.Errorf("unrelated client blocked: got %d", rr.Code)
	}
}

func TestRateLimiter_ResetsAfterWindow(t *testing.T) {
	h := limitedHandler(NewRateLimiter(1, 20*time.Millisecond))

	hit(t, h, "10.0.0.1:1234")
	if rr := hit(t, h, "10.0.0.1:1234"); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 within window, got %d", rr.Code)
	}

	time.Sleep(30 * time.Millisecond)

	if rr := hit(t, h, "10.0.0.1:1234"); rr.Code != http.StatusOK {
		t.Errorf("expected limit to reset after window, got %d", rr.Code)
	}
}
