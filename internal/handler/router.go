package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/minjun/sweethome/internal/middleware"
	"github.com/minjun/sweethome/internal/model"
)

// HolidayFunc 는 공휴일 계산 함수를 HolidayProvider 에 적합시키는 어댑터.
type HolidayFunc func(year int) []model.Holiday

// Holidays 는 HolidayProvider 를 구현한다.
func (f HolidayFunc) Holidays(year int) []model.Holiday {
	return f(year)
}

// RouterDeps 는 NewRouter 에 필요한 의존성을 모은 구조체.
type RouterDeps struct {
	// 미들웨어 의존
	Logger            *slog.Logger
	StatusRecorder    middleware.HTTPStatusRecorder
	CORSAllowedOrigin string
	TokenVerifier     middleware.TokenVerifier
	RateLimiter       *middleware.RateLimiter

	// 인증
	AuthService AuthServiceInterface

	// 캘린더
	CalendarService CalendarServiceInterface
	HolidayProvider HolidayProvider

	// 주류 리뷰
	LiquorService LiquorServiceInterface

	// 일기
	DiaryService DiaryServiceInterface

	// 메트릭 공개 핸들러 (nil 이면 /metrics 미공개)
	MetricsHandler http.Handler
}

// NewRouter 는 전체 API 엔드포인트의 라우팅과 미들웨어 체인을 구성한
// chi.Router 를 반환한다.
//
// 미들웨어 스택 실행 순서:
//
//	Recovery → SecurityHeaders → CORS → Logging → (인증 그룹) Auth → RateLimit
//
// /health, /metrics, /auth/* 는 인증 그룹 밖에 둔다.
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))
	r.Use(middleware.NewLoggingMiddleware(deps.Logger, deps.StatusRecorder))

	authHandler := NewAuthHandler(deps.AuthService)
	calendarHandler := NewCalendarHandler(deps.CalendarService, deps.HolidayProvider)
	liquorHandler := NewLiquorHandler(deps.LiquorService)
	diaryHandler := NewDiaryHandler(deps.DiaryService)

	// --- 인증 불필요 라우트 ---

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	if deps.MetricsHandler != nil {
		r.Handle("/metrics", deps.MetricsHandler)
	}

	r.Route("/auth", func(r chi.Router) {
		r.Post("/signup", authHandler.Signup)
		r.Post("/login", authHandler.Login)
	})

	// --- 인증 필요 라우트 ---
	// 미들웨어 스택: Auth → RateLimit(General)
	r.Group(func(r chi.Router) {
		r.Use(middleware.NewAuthMiddleware(deps.TokenVerifier))
		r.Use(deps.RateLimiter.GeneralMiddleware())

		// 캘린더. holidays 를 {id} 보다 먼저 등록한다.
		r.Route("/api/calendar", func(r chi.Router) {
			r.Get("/", calendarHandler.ListMonth)
			r.Post("/", calendarHandler.Create)
			r.Get("/holidays/{year}", calendarHandler.Holidays)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", calendarHandler.Get)
				r.Put("/", calendarHandler.Update)
				r.Delete("/", calendarHandler.Delete)
			})
		})

		// 주류 리뷰
		r.Route("/api/liquor", func(r chi.Router) {
			r.Get("/", liquorHandler.List)
			r.Post("/", liquorHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", liquorHandler.Get)
				r.Put("/", liquorHandler.Update)
				r.Delete("/", liquorHandler.Delete)
			})
		})

		// 일기
		r.Route("/api/diary", func(r chi.Router) {
			r.Get("/", diaryHandler.List)
			r.Post("/", diaryHandler.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", diaryHandler.Get)
				r.Put("/", diaryHandler.Update)
				r.Delete("/", diaryHandler.Delete)

				r.Post("/comments", diaryHandler.AddComment)
				r.Delete("/comments/{commentId}", diaryHandler.DeleteComment)
			})
		})
	})

	return r
}
