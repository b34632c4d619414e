package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/minjun/sweethome/internal/model"
)

// mockCalendarService 는 테스트용 캘린더 서비스.
type mockCalendarService struct {
	listMonthFunc func(ctx context.Context, year, month int) ([]model.ResolvedEvent, error)
	getFunc       func(ctx context.Context, id string) (*model.ResolvedEvent, error)
	createFunc    func(ctx context.Context, input *model.CalendarEvent) (*model.CalendarEvent, error)
	updateFunc    func(ctx context.Context, id string, input *model.CalendarEvent) (*model.CalendarEvent, error)
	deleteFunc    func(ctx context.Context, id string) error
}

func (m *mockCalendarService) ListMonth(ctx context.Context, year, month int) ([]model.ResolvedEvent, error) {
	return m.listMonthFunc(ctx, year, month)
}

func (m *mockCalendarService) Get(ctx context.Context, id string) (*model.ResolvedEvent, error) {
	return m.getFunc(ctx, id)
}

func (m *mockCalendarService) Create(ctx context.Context, input *model.CalendarEvent) (*model.CalendarEvent, error) {
	return m.createFunc(ctx, input)
}

func (m *mockCalendarService) Update(ctx context.Context, id string, input *model.CalendarEvent) (*model.CalendarEvent, error) {
	return m.updateFunc(ctx, id, input)
}

func (m *mockCalendarService) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func newCalendarTestRouter(service CalendarServiceInterface, holidays HolidayProvider) http.Handler {
	r := chi.NewRouter()
	h := NewCalendarHandler(service, holidays)
	r.Get("/api/calendar", h.ListMonth)
	r.Post("/api/calendar", h.Create)
	r.Get("/api/calendar/holidays/{year}", h.Holidays)
	r.Get("/api/calendar/{id}", h.Get)
	return r
}

func TestCalendarListMonth_QueryParams(t *testing.T) {
	var gotYear, gotMonth int
	service := &mockCalendarService{
		listMonthFunc: func(ctx context.Context, year, month int) ([]model.ResolvedEvent, error) {
			gotYear, gotMonth = year, month
			return []model.ResolvedEvent{}, nil
		},
	}
	router := newCalendarTestRouter(service, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar?year=2025&month=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("상태 코드: %d, 기대 200", rec.Code)
	}
	if gotYear != 2025 || gotMonth != 10 {
		t.Errorf("연/월: %d/%d, 기대 2025/10", gotYear, gotMonth)
	}

	var body []calendarEventResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("응답 JSON 해석 실패: %v", err)
	}
	if len(body) != 0 {
		t.Errorf("응답 건수: %d, 기대 0", len(body))
	}
}

func TestCalendarHolidays(t *testing.T) {
	provider := HolidayFunc(func(year int) []model.Holiday {
		if year != 2025 {
			t.Errorf("연도: %d, 기대 2025", year)
		}
		return []model.Holiday{
			{Date: "2025-01-01", Name: "신정", IsLunar: false},
		}
	})
	router := newCalendarTestRouter(&mockCalendarService{}, provider)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar/holidays/2025", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("상태 코드: %d, 기대 200", rec.Code)
	}

	var body []model.Holiday
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("응답 JSON 해석 실패: %v", err)
	}
	if len(body) != 1 || body[0].Name != "신정" {
		t.Errorf("응답: %+v", body)
	}
}

func TestCalendarHolidays_InvalidYear(t *testing.T) {
	router := newCalendarTestRouter(&mockCalendarService{}, HolidayFunc(func(year int) []model.Holiday {
		t.Error("잘못된 연도로는 계산하면 안 됩니다")
		return nil
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/calendar/holidays/abc", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("상태 코드: %d, 기대 400", rec.Code)
	}
}

func TestCalendarCreate(t *testing.T) {
	service := &mockCalendarService{
		createFunc: func(ctx context.Context, input *model.CalendarEvent) (*model.CalendarEvent, error) {
			input.ID = "ev-1"
			return input, nil
		},
	}
	router := newCalendarTestRouter(service, nil)

	body := `{"title":"설날 모임","date":"2025-01-29","is_lunar":true}`
	req := httptest.NewRequest(http.MethodPost, "/api/calendar", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("상태 코드: %d, 기대 201", rec.Code)
	}

	var resp calendarEventResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("응답 JSON 해석 실패: %v", err)
	}
	if resp.ID != "ev-1" || resp.Title != "설날 모임" || !resp.IsLunar {
		t.Errorf("응답: %+v", resp)
	}
}

func TestCalendarCreate_InvalidDate(t *testing.T) {
	service := &mockCalendarService{
		createFunc: func(ctx context.Context, input *model.CalendarEvent) (*model.CalendarEvent, error) {
			return nil, model.NewInvalidDateError(input.Date)
		},
	}
	router := newCalendarTestRouter(service, nil)

	body := `{"title":"잘못된 날짜","date":"2025-02-30"}`
	req := httptest.NewRequest(http.MethodPost, "/api/calendar", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("상태 코드: %d, 기대 400", rec.Code)
	}

	var resp apiErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("응답 JSON 해석 실패: %v", err)
	}
	if resp.Code != model.ErrCodeInvalidDate {
		t.Errorf("에러 코드: %q, 기대 INVALID_DATE", resp.Code)
	}
}

func TestCalendarGet_NotFound(t *testing.T) {
	service := &mockCalendarService{
		getFunc: func(ctx context.Context, id string) (*model.ResolvedEvent, error) {
			return nil, model.NewNotFoundError("calendar", id)
		},
	}
	router := newCalendarTestRouter(service, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/calendar/missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("상태 코드: %d, 기대 404", rec.Code)
	}
}
