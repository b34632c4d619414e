package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minjun/sweethome/internal/model"
	"github.com/minjun/sweethome/internal/repository"
)

// mockLiquorService 는 테스트용 주류 리뷰 서비스.
type mockLiquorService struct {
	listFunc   func(ctx context.Context, filter repository.LiquorFilter) ([]*model.LiquorReview, error)
	getFunc    func(ctx context.Context, id string) (*model.LiquorReview, error)
	createFunc func(ctx context.Context, input *model.LiquorReview) (*model.LiquorReview, error)
	updateFunc func(ctx context.Context, id string, input *model.LiquorReview) (*model.LiquorReview, error)
	deleteFunc func(ctx context.Context, id string) error
}

func (m *mockLiquorService) List(ctx context.Context, filter repository.LiquorFilter) ([]*model.LiquorReview, error) {
	return m.listFunc(ctx, filter)
}

func (m *mockLiquorService) Get(ctx context.Context, id string) (*model.LiquorReview, error) {
	return m.getFunc(ctx, id)
}

func (m *mockLiquorService) Create(ctx context.Context, input *model.LiquorReview) (*model.LiquorReview, error) {
	return m.createFunc(ctx, input)
}

func (m *mockLiquorService) Update(ctx context.Context, id string, input *model.LiquorReview) (*model.LiquorReview, error) {
	return m.updateFunc(ctx, id, input)
}

func (m *mockLiquorService) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func newLiquorTestRouter(service LiquorServiceInterface) http.Handler {
	r := chi.NewRouter()
	h := NewLiquorHandler(service)
	r.Get("/api/liquor", h.List)
	r.Post("/api/liquor", h.Create)
	r.Get("/api/liquor/{id}", h.Get)
	r.Delete("/api/liquor/{id}", h.Delete)
	return r
}

func TestLiquorCreate_ReturnsPendingNote(t *testing.T) {
	service := &mockLiquorService{
		createFunc: func(ctx context.Context, input *model.LiquorReview) (*model.LiquorReview, error) {
			input.ID = "review-1"
			input.AINote = &model.AINote{Status: model.AINoteStatusPending}
			input.CreatedAt = time.Now()
			input.UpdatedAt = time.Now()
			return input, nil
		},
	}
	router := newLiquorTestRouter(service)

	body := `{"name":"글렌피딕 12년","category":"위스키","price":65000}`
	req := httptest.NewRequest(http.MethodPost, "/api/liquor", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("상태 코드: %d, 기대 201", rec.Code)
	}

	var resp liquorReviewResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("응답 JSON 해석 실패: %v", err)
	}
	if resp.AINote == nil || resp.AINote.Status != "PENDING" {
		t.Errorf("응답의 노트 상태가 PENDING 이어야 합니다: %+v", resp.AINote)
	}
	if resp.PairingFoods == nil {
		t.Error("pairing_foods 는 null 이 아니라 빈 배열이어야 합니다")
	}
}

func TestLiquorList_FilterParsing(t *testing.T) {
	var gotFilter repository.LiquorFilter
	service := &mockLiquorService{
		listFunc: func(ctx context.Context, filter repository.LiquorFilter) ([]*model.LiquorReview, error) {
			gotFilter = filter
			return []*model.LiquorReview{}, nil
		},
	}
	router := newLiquorTestRouter(service)

	url := "/api/liquor?name=피딕&category=위스키&min_price=10000&max_price=90000" +
		"&min_rating_husband=3.5&start_date=2025-01-01&end_date=2025-12-31"
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("상태 코드: %d, 기대 200", rec.Code)
	}
	if gotFilter.Name != "피딕" || gotFilter.Category != "위스키" {
		t.Errorf("문자열 조건: %+v", gotFilter)
	}
	if gotFilter.MinPrice == nil || *gotFilter.MinPrice != 10000 {
		t.Errorf("MinPrice: %v", gotFilter.MinPrice)
	}
	if gotFilter.MaxPrice == nil || *gotFilter.MaxPrice != 90000 {
		t.Errorf("MaxPrice: %v", gotFilter.MaxPrice)
	}
	if gotFilter.MinRatingHusband == nil || *gotFilter.MinRatingHusband != 3.5 {
		t.Errorf("MinRatingHusband: %v", gotFilter.MinRatingHusband)
	}
	if gotFilter.MaxRatingWife != nil {
		t.Errorf("지정하지 않은 조건은 nil 이어야 합니다: %v", gotFilter.MaxRatingWife)
	}
	if gotFilter.StartDate != "2025-01-01" || gotFilter.EndDate != "2025-12-31" {
		t.Errorf("날짜 조건: %q ~ %q", gotFilter.StartDate, gotFilter.EndDate)
	}
}

func TestLiquorGet_NotFound(t *testing.T) {
	service := &mockLiquorService{
		getFunc: func(ctx context.Context, id string) (*model.LiquorReview, error) {
			return nil, model.NewNotFoundError("liquor", id)
		},
	}
	router := newLiquorTestRouter(service)

	req := httptest.NewRequest(http.MethodGet, "/api/liquor/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("상태 코드: %d, 기대 404", rec.Code)
	}
}

func TestLiquorCreate_InvalidBody(t *testing.T) {
	service := &mockLiquorService{
		createFunc: func(ctx context.Context, input *model.LiquorReview) (*model.LiquorReview, error) {
			t.Error("본문 해석 실패 시 서비스가 호출되면 안 됩니다")
			return nil, nil
		},
	}
	router := newLiquorTestRouter(service)

	req := httptest.NewRequest(http.MethodPost, "/api/liquor", strings.NewReader("{깨진 JSON"))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("상태 코드: %d, 기대 400", rec.Code)
	}
}

func TestLiquorDelete(t *testing.T) {
	var deletedID string
	service := &mockLiquorService{
		deleteFunc: func(ctx context.Context, id string) error {
			deletedID = id
			return nil
		},
	}
	router := newLiquorTestRouter(service)

	req := httptest.NewRequest(http.MethodDelete, "/api/liquor/review-1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Errorf("상태 코드: %d, 기대 204", rec.Code)
	}
	if deletedID != "review-1" {
		t.Errorf("삭제 ID: %q", deletedID)
	}
}
