package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"golang.org/x/time/rate"
)

func newTestLimiter(reqPerMin int) *RateLimiter {
	config := NewRateLimiterConfig(reqPerMin)
	config.CleanupInterval = time.Hour // 테스트 중 정리가 끼어들지 않도록
	return NewRateLimiter(config)
}

func doLimitedRequest(t *testing.T, handler http.Handler, username string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/liquor", nil)
	req = req.WithContext(WithUsername(req.Context(), username))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRateLimiter_AllowsWithinBurst(t *testing.T) {
	rl := newTestLimiter(120)
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 10; i++ {
		if code := doLimitedRequest(t, handler, "minjun"); code != http.StatusOK {
			t.Fatalf("%d번째 요청 상태 코드: %d, 기대 200", i+1, code)
		}
	}
}

func TestRateLimiter_RejectsOverBurst(t *testing.T) {
	// 버스트 2로 줄여 한도 초과를 바로 확인한다.
	config := RateLimiterConfig{
		GeneralRate:     rate.Limit(1.0 / 60.0),
		GeneralBurst:    2,
		CleanupInterval: time.Hour,
	}
	rl := NewRateLimiter(config)
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	doLimitedRequest(t, handler, "minjun")
	doLimitedRequest(t, handler, "minjun")

	req := httptest.NewRequest(http.MethodGet, "/api/liquor", nil)
	req = req.WithContext(WithUsername(req.Context(), "minjun"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("상태 코드: %d, 기대 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") == "" {
		t.Error("Retry-After 헤더가 있어야 합니다")
	}
}

func TestRateLimiter_PerUserIsolation(t *testing.T) {
	config := RateLimiterConfig{
		GeneralRate:     rate.Limit(1.0 / 60.0),
		GeneralBurst:    1,
		CleanupInterval: time.Hour,
	}
	rl := NewRateLimiter(config)
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// husband 의 한도 소진이 wife 에 영향을 주면 안 된다.
	doLimitedRequest(t, handler, "husband")
	if code := doLimitedRequest(t, handler, "husband"); code != http.StatusTooManyRequests {
		t.Fatalf("husband 2번째 요청: %d, 기대 429", code)
	}
	if code := doLimitedRequest(t, handler, "wife"); code != http.StatusOK {
		t.Fatalf("wife 1번째 요청: %d, 기대 200", code)
	}

	if rl.LimiterCount() != 2 {
		t.Errorf("리미터 엔트리 수: %d, 기대 2", rl.LimiterCount())
	}
}

func TestRateLimiter_RequiresAuthenticatedContext(t *testing.T) {
	rl := newTestLimiter(120)
	defer rl.Stop()

	handler := rl.GeneralMiddleware()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("인증 정보 없이 다음 핸들러가 호출되면 안 됩니다")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/liquor", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("상태 코드: %d, 기대 401", rec.Code)
	}
}
