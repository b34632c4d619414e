package middleware

import (
	"encoding/json"
	"log/slog"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// RateLimiterConfig 는 레이트 제한 설정을 보관한다.
type RateLimiterConfig struct {
	GeneralRate     rate.Limit    // API 전반의 레이트(req/sec). 120/60 = 2 req/sec
	GeneralBurst    int           // API 전반의 버스트 크기
	CleanupInterval time.Duration // 만료 엔트리 정리 간격
}

// NewRateLimiterConfig 는 분당 요청 수를 받아 설정을 만든다.
func NewRateLimiterConfig(reqPerMin int) RateLimiterConfig {
	if reqPerMin <= 0 {
		reqPerMin = 120
	}
	return RateLimiterConfig{
		GeneralRate:     rate.Limit(float64(reqPerMin) / 60.0),
		GeneralBurst:    reqPerMin,
		CleanupInterval: 5 * time.Minute,
	}
}

// userLimiter 는 사용자별 리미터와 최종 접근 시각을 보관한다.
type userLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// RateLimiter 는 사용자별 레이트 제한을 관리한다.
type RateLimiter struct {
	config RateLimiterConfig

	mu       sync.RWMutex
	limiters map[string]*userLimiter

	stopCh chan struct{}
}

// NewRateLimiter 는 새 RateLimiter 를 생성하고 백그라운드에서
// 만료 엔트리 정리를 시작한다.
func NewRateLimiter(config RateLimiterConfig) *RateLimiter {
	rl := &RateLimiter{
		config:   config,
		limiters: make(map[string]*userLimiter),
		stopCh:   make(chan struct{}),
	}

	go rl.cleanupLoop()

	return rl
}

// Stop 은 정리용 백그라운드 고루틴을 멈춘다.
func (rl *RateLimiter) Stop() {
	close(rl.stopCh)
}

// GeneralMiddleware 는 API 전반의 레이트 제한 미들웨어를 반환한다.
// 요청 컨텍스트에 사용자 아이디가 있어야 하므로 인증 미들웨어 뒤에 둔다.
func (rl *RateLimiter) GeneralMiddleware() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, err := UsernameFromContext(r.Context())
			if err != nil {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			limiter := rl.getOrCreateLimiter(username)

			if !limiter.Allow() {
				writeRateLimitResponse(w, rl.config.GeneralRate)
				slog.Warn("rate limit exceeded",
					slog.String("username", username),
				)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// LimiterCount 는 현재 관리 중인 리미터 엔트리 수를 반환한다. 테스트용.
func (rl *RateLimiter) LimiterCount() int {
	rl.mu.RLock()
	defer rl.mu.RUnlock()
	return len(rl.limiters)
}

// getOrCreateLimiter 는 사용자의 리미터를 가져오거나 생성한다.
func (rl *RateLimiter) getOrCreateLimiter(username string) *rate.Limiter {
	rl.mu.RLock()
	ul, exists := rl.limiters[username]
	rl.mu.RUnlock()

	if exists {
		rl.mu.Lock()
		ul.lastAccess = time.Now()
		rl.mu.Unlock()
		return ul.limiter
	}

	rl.mu.Lock()
	defer rl.mu.Unlock()

	// 더블 체크
	if ul, exists := rl.limiters[username]; exists {
		ul.lastAccess = time.Now()
		return ul.limiter
	}

	limiter := rate.NewLimiter(rl.config.GeneralRate, rl.config.GeneralBurst)
	rl.limiters[username] = &userLimiter{
		limiter:    limiter,
		lastAccess: time.Now(),
	}

	return limiter
}

// cleanupLoop 는 백그라운드에서 만료 엔트리를 주기적으로 정리한다.
func (rl *RateLimiter) cleanupLoop() {
	ticker := time.NewTicker(rl.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanup()
		case <-rl.stopCh:
			return
		}
	}
}

// cleanup 은 최종 접근 시각이 CleanupInterval 의 2배를 넘은 엔트리를 지운다.
func (rl *RateLimiter) cleanup() {
	ttl := rl.config.CleanupInterval * 2
	now := time.Now()

	rl.mu.Lock()
	for username, ul := range rl.limiters {
		if now.Sub(ul.lastAccess) > ttl {
			delete(rl.limiters, username)
		}
	}
	rl.mu.Unlock()
}

// writeRateLimitResponse 는 429 Too Many Requests 응답을 쓴다.
// Retry-After 헤더에는 토큰 1개가 보충되기까지의 추정 초를 넣는다.
func writeRateLimitResponse(w http.ResponseWriter, r rate.Limit) {
	retryAfterSec := int(math.Ceil(1.0 / float64(r)))
	if retryAfterSec < 1 {
		retryAfterSec = 1
	}

	w.Header().Set("Retry-After", strconv.Itoa(retryAfterSec))
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusTooManyRequests)

	json.NewEncoder(w).Encode(map[string]string{
		"code":     "rate_limit_exceeded",
		"message":  "요청이 너무 많습니다. 잠시 후 다시 시도해 주세요.",
		"category": "system",
		"action":   "표시된 시간 이후에 다시 시도해 주세요.",
	})
}
