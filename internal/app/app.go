// Package app 은 애플리케이션의 기동과 의존성 조립을 담당한다.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/minjun/sweethome/internal/ai"
	"github.com/minjun/sweethome/internal/auth"
	"github.com/minjun/sweethome/internal/calendar"
	"github.com/minjun/sweethome/internal/config"
	"github.com/minjun/sweethome/internal/database"
	"github.com/minjun/sweethome/internal/diary"
	"github.com/minjun/sweethome/internal/enrich"
	"github.com/minjun/sweethome/internal/handler"
	"github.com/minjun/sweethome/internal/liquor"
	"github.com/minjun/sweethome/internal/logger"
	"github.com/minjun/sweethome/internal/metrics"
	"github.com/minjun/sweethome/internal/middleware"
	"github.com/minjun/sweethome/internal/repository"
	"github.com/minjun/sweethome/internal/security"
)

// Init 은 애플리케이션을 초기화한다.
// 환경변수에서 Config 를 읽고 JSON 구조화 로그를 설정한다.
// writer 를 지정하면 로그 출력처로 그 writer 를 사용한다.
func Init(w io.Writer) (*config.Config, error) {
	// 설정 읽기 전에도 로그를 쓸 수 있도록 먼저 초기화한다.
	logger.SetupDefault(w)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}

// Run 은 애플리케이션의 메인 엔트리포인트.
// 커맨드라인 인자에서 서브커맨드를 해석해 해당 모드로 기동한다.
// args 에는 os.Args[1:] 를 넘긴다.
func Run(w io.Writer, args []string) error {
	cmd := ParseCommand(args)

	// healthcheck 는 경량 서브커맨드이므로 풀 초기화를 건너뛴다.
	if cmd == CommandHealthcheck {
		port := os.Getenv("SERVER_PORT")
		if port == "" {
			port = "8000"
		}
		return runHealthcheck(port)
	}

	cfg, err := Init(w)
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	slog.Info("starting application",
		slog.String("command", string(cmd)),
		slog.String("port", cfg.ServerPort),
	)

	switch cmd {
	case CommandMigrate:
		return runMigrate(cfg)
	default:
		return runServe(cfg)
	}
}

// runServe 는 API 서버 모드로 기동한다.
// DB 연결을 열고 전체 의존성을 조립해 HTTP 서버를 시작한다.
// SIGINT 또는 SIGTERM 수신 시 그레이스풀 셧다운한다.
func runServe(cfg *config.Config) error {
	// 1. DB 연결
	db, err := database.Open(cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	slog.Info("database connection established")

	// 2. 리포지토리 초기화
	userRepo := repository.NewPostgresUserRepo(db)
	calendarRepo := repository.NewPostgresCalendarEventRepo(db)
	liquorRepo := repository.NewPostgresLiquorReviewRepo(db)
	diaryRepo := repository.NewPostgresDiaryRepo(db)

	// 3. 메트릭 초기화
	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(registry)

	// 4. AI 클라이언트와 시음 노트 워커 초기화
	if cfg.GeminiAPIKey == "" {
		slog.Warn("GEMINI_API_KEY 가 비어 있어 AI 시음 노트 생성이 비활성화됩니다")
	}
	aiClient := ai.NewClient(
		cfg.GeminiAPIKey, cfg.GeminiModel,
		&http.Client{Timeout: cfg.AITimeout},
		slog.Default(),
	)
	enrichWorker := enrich.NewWorker(
		liquorRepo, aiClient, slog.Default(), collector,
		cfg.EnrichQueueSize, cfg.EnrichWorkers,
	)

	// 5. 도메인 서비스 초기화
	sanitizer := security.NewContentSanitizer()
	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.TokenExpire)
	calendarService := calendar.NewService(calendarRepo)
	liquorService := liquor.NewService(liquorRepo, enrichWorker)
	diaryService := diary.NewService(diaryRepo, sanitizer)

	// 6. 라우터 조립
	rateLimiter := middleware.NewRateLimiter(
		middleware.NewRateLimiterConfig(cfg.RateLimitGeneral),
	)
	defer rateLimiter.Stop()

	router := handler.NewRouter(&handler.RouterDeps{
		Logger:            slog.Default(),
		StatusRecorder:    collector,
		CORSAllowedOrigin: cfg.CORSAllowedOrigin,
		TokenVerifier:     authService,
		RateLimiter:       rateLimiter,

		AuthService:     authService,
		CalendarService: calendarService,
		HolidayProvider: handler.HolidayFunc(calendar.Holidays),
		LiquorService:   liquorService,
		DiaryService:    diaryService,

		MetricsHandler: metrics.Handler(registry),
	})

	// 7. 시음 노트 워커 기동
	workerCtx, workerCancel := context.WithCancel(context.Background())
	defer workerCancel()
	enrichWorker.Start(workerCtx)

	// 8. HTTP 서버 기동
	server := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("API server starting",
			slog.String("addr", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server listen error", slog.String("error", err.Error()))
		}
	}()

	<-stop
	slog.Info("shutting down API server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// 서버가 내려간 뒤 워커를 멈춘다. 큐 잔여 작업은 버려지고
	// 해당 노트는 PENDING 으로 남는다.
	workerCancel()
	enrichWorker.Wait()

	slog.Info("API server stopped gracefully")
	return nil
}

// runMigrate 는 데이터베이스 마이그레이션을 실행한다.
// 미적용 마이그레이션을 순서대로 모두 적용한다.
func runMigrate(cfg *config.Config) error {
	slog.Info("running database migrations",
		slog.String("database_url", maskDatabaseURL(cfg.DatabaseURL)),
	)

	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	slog.Info("database migrations completed successfully")
	return nil
}

// runHealthcheck 는 헬스체크를 실행한다.
// distroless 환경의 Docker 헬스체크용 서브커맨드.
// /health 엔드포인트에 HTTP 요청을 보내 결과를 반환한다.
func runHealthcheck(port string) error {
	url := fmt.Sprintf("http://localhost:%s/health", port)
	client := &http.Client{Timeout: 5 * time.Second}

	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned status %d", resp.StatusCode)
	}

	return nil
}

// maskDatabaseURL 은 데이터베이스 URL 의 인증 정보를 가린다.
func maskDatabaseURL(url string) string {
	if len(url) > 20 {
		return url[:12] + "***@..."
	}
	return "***"
}
