package enrich

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/minjun/sweethome/internal/metrics"
	"github.com/minjun/sweethome/internal/model"
	"github.com/minjun/sweethome/internal/repository"
)

// Task 는 시음 노트 생성 작업 1건.
// 이름 스냅샷을 들고 다니므로 작업 실행 시점의 리뷰 이름과 무관하게
// 예약 당시 이름으로 생성한다.
type Task struct {
	ReviewID string
	Name     string
}

// NoteGenerator 는 시음 노트 원문 생성 인터페이스.
type NoteGenerator interface {
	// GenerateTastingNote 는 주류명에 대한 모델 원문 응답을 반환한다.
	GenerateTastingNote(ctx context.Context, name string) (string, error)
}

// Worker 는 큐에 쌓인 생성 작업을 고루틴 풀로 처리한다.
// 실행 중 어떤 에러도 밖으로 전파하지 않고 FAILED 상태 기록으로 끝낸다.
// 중복 제거는 하지 않는다. 같은 리뷰에 대한 작업이 겹치면 마지막 기록이 이긴다.
type Worker struct {
	repo    repository.LiquorReviewRepository
	gen     NoteGenerator
	logger  *slog.Logger
	metrics metrics.EnrichmentCollector
	queue   chan Task
	workers int
	wg      sync.WaitGroup
}

// NewWorker 는 Worker 를 생성한다.
// queueSize/workers 가 0 이하이면 각각 64, 2 를 사용한다.
func NewWorker(
	repo repository.LiquorReviewRepository,
	gen NoteGenerator,
	logger *slog.Logger,
	collector metrics.EnrichmentCollector,
	queueSize, workers int,
) *Worker {
	if queueSize <= 0 {
		queueSize = 64
	}
	if workers <= 0 {
		workers = 2
	}
	return &Worker{
		repo:    repo,
		gen:     gen,
		logger:  logger,
		metrics: collector,
		queue:   make(chan Task, queueSize),
		workers: workers,
	}
}

// Start 는 워커 고루틴을 띄운다. ctx 취소 시 모든 고루틴이 종료된다.
// 아직 시작되지 않은 큐 잔여 작업은 버려진다. 노트가 PENDING 으로 남으므로
// 이후 이름 변경이 다시 트리거한다.
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("시음 노트 워커를 시작합니다",
		slog.Int("workers", w.workers),
		slog.Int("queue_size", cap(w.queue)),
	)

	for i := 0; i < w.workers; i++ {
		w.wg.Add(1)
		go func() {
			defer w.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case task := <-w.queue:
					w.process(ctx, task)
				}
			}
		}()
	}
}

// Wait 는 모든 워커 고루틴이 종료될 때까지 대기한다.
func (w *Worker) Wait() {
	w.wg.Wait()
}

// Enqueue 는 생성 작업을 예약한다. HTTP 응답을 막지 않도록 블로킹하지 않으며,
// 큐가 가득 차면 작업을 버리고 경고만 남긴다.
func (w *Worker) Enqueue(reviewID, name string) {
	select {
	case w.queue <- Task{ReviewID: reviewID, Name: name}:
	default:
		w.logger.Warn("시음 노트 큐가 가득 차 작업을 버립니다",
			slog.String("review_id", reviewID),
			slog.String("name", name),
		)
	}
}

// process 는 작업 1건을 실행한다.
// 호출 실패 → FAILED, 해석 실패 → 대체 콘텐츠로 COMPLETED, 성공 → COMPLETED.
// panic 을 포함한 어떤 실패도 상태 기록으로 흡수한다.
func (w *Worker) process(ctx context.Context, task Task) {
	defer func() {
		if r := recover(); r != nil {
			w.logger.Error("시음 노트 생성 중 panic 이 발생했습니다",
				slog.Any("panic", r),
				slog.String("review_id", task.ReviewID),
			)
			w.markFailed(ctx, task.ReviewID)
		}
	}()

	start := time.Now()

	raw, err := w.gen.GenerateTastingNote(ctx, task.Name)
	if err != nil {
		w.logger.Error("시음 노트 생성 호출에 실패했습니다",
			slog.String("review_id", task.ReviewID),
			slog.String("name", task.Name),
			slog.String("error", err.Error()),
		)
		w.markFailed(ctx, task.ReviewID)
		if w.metrics != nil {
			w.metrics.RecordEnrichFailure()
		}
		return
	}

	fields, degraded := ParseNote(raw)
	if degraded {
		w.logger.Warn("시음 노트 응답 해석에 실패해 대체 콘텐츠를 저장합니다",
			slog.String("review_id", task.ReviewID),
		)
		if w.metrics != nil {
			w.metrics.RecordEnrichParseFallback()
		}
	}

	// 문서가 동시에 수정/삭제됐을 수 있으므로 다시 읽는다.
	review, err := w.repo.FindByID(ctx, task.ReviewID)
	if err != nil {
		w.logger.Error("시음 노트 저장 전 리뷰 재조회에 실패했습니다",
			slog.String("review_id", task.ReviewID),
			slog.String("error", err.Error()),
		)
		return
	}
	if review == nil {
		w.logger.Warn("리뷰가 삭제되어 시음 노트를 저장하지 않습니다",
			slog.String("review_id", task.ReviewID),
		)
		return
	}

	note := &model.AINote{
		Status:      model.AINoteStatusCompleted,
		Description: fields.Description,
		Taste:       fields.Taste,
		Aroma:       fields.Aroma,
		Variety:     fields.Variety,
		Pairing:     fields.Pairing,
	}
	if err := w.repo.UpdateAINote(ctx, task.ReviewID, note); err != nil {
		w.logger.Error("시음 노트 저장에 실패했습니다",
			slog.String("review_id", task.ReviewID),
			slog.String("error", err.Error()),
		)
		return
	}

	if w.metrics != nil {
		w.metrics.RecordEnrichSuccess()
		w.metrics.RecordEnrichLatency(time.Since(start))
	}
}

// markFailed 는 리뷰의 노트 상태를 FAILED 로 기록한다.
// 기존 노트 내용은 유지하고 상태만 바꾼다. 여기서의 실패는 로그만 남긴다.
func (w *Worker) markFailed(ctx context.Context, reviewID string) {
	review, err := w.repo.FindByID(ctx, reviewID)
	if err != nil {
		w.logger.Error("실패 상태 기록 전 리뷰 조회에 실패했습니다",
			slog.String("review_id", reviewID),
			slog.String("error", err.Error()),
		)
		return
	}
	if review == nil {
		return
	}

	note := &model.AINote{Status: model.AINoteStatusFailed}
	if review.AINote != nil {
		existing := *review.AINote
		existing.Status = model.AINoteStatusFailed
		note = &existing
	}

	if err := w.repo.UpdateAINote(ctx, reviewID, note); err != nil {
		w.logger.Error("실패 상태 기록에 실패했습니다",
			slog.String("review_id", reviewID),
			slog.String("error", err.Error()),
		)
	}
}
