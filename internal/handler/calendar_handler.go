package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minjun/sweethome/internal/model"
)

// CalendarServiceInterface 는 캘린더 핸들러가 필요로 하는 서비스 인터페이스.
type CalendarServiceInterface interface {
	ListMonth(ctx context.Context, year, month int) ([]model.ResolvedEvent, error)
	Get(ctx context.Context, id string) (*model.ResolvedEvent, error)
	Create(ctx context.Context, input *model.CalendarEvent) (*model.CalendarEvent, error)
	Update(ctx context.Context, id string, input *model.CalendarEvent) (*model.CalendarEvent, error)
	Delete(ctx context.Context, id string) error
}

// HolidayProvider 는 공휴일 계산 인터페이스.
type HolidayProvider interface {
	Holidays(year int) []model.Holiday
}

// CalendarHandler 는 캘린더 이벤트의 HTTP 핸들러.
type CalendarHandler struct {
	service  CalendarServiceInterface
	holidays HolidayProvider
}

// NewCalendarHandler 는 CalendarHandler 를 생성한다.
func NewCalendarHandler(service CalendarServiceInterface, holidays HolidayProvider) *CalendarHandler {
	return &CalendarHandler{service: service, holidays: holidays}
}

// calendarEventRequest 는 이벤트 생성/갱신 요청 본문.
// 날짜는 항상 양력 YYYY-MM-DD 로 받는다.
type calendarEventRequest struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	EndDate  string `json:"end_date"`
	Memo     string `json:"memo"`
	IsYearly bool   `json:"is_yearly"`
	IsLunar  bool   `json:"is_lunar"`
	IsRange  bool   `json:"is_range"`
	Color    string `json:"color"`
}

// calendarEventResponse 는 이벤트 1건의 API 응답.
type calendarEventResponse struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	EndDate      string `json:"end_date,omitempty"`
	SolarDate    string `json:"solar_date,omitempty"`
	SolarEndDate string `json:"solar_end_date,omitempty"`
	Memo         string `json:"memo,omitempty"`
	IsYearly     bool   `json:"is_yearly"`
	IsLunar      bool   `json:"is_lunar"`
	IsRange      bool   `json:"is_range"`
	Color        string `json:"color,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

func toResolvedEventResponse(r model.ResolvedEvent) calendarEventResponse {
	return calendarEventResponse{
		ID:           r.Event.ID,
		Title:        r.Event.Title,
		Date:         r.Date,
		EndDate:      r.EndDate,
		SolarDate:    r.SolarDate,
		SolarEndDate: r.SolarEndDate,
		Memo:         r.Event.Memo,
		IsYearly:     r.Event.IsYearly,
		IsLunar:      r.Event.IsLunar,
		IsRange:      r.Event.IsRange,
		Color:        r.Event.Color,
		CreatedAt:    r.Event.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    r.Event.UpdatedAt.Format(time.RFC3339),
	}
}

func toEventResponse(ev *model.CalendarEvent) calendarEventResponse {
	return calendarEventResponse{
		ID:        ev.ID,
		Title:     ev.Title,
		Date:      ev.Date,
		EndDate:   ev.EndDate,
		Memo:      ev.Memo,
		IsYearly:  ev.IsYearly,
		IsLunar:   ev.IsLunar,
		IsRange:   ev.IsRange,
		Color:     ev.Color,
		CreatedAt: ev.CreatedAt.Format(time.RFC3339),
		UpdatedAt: ev.UpdatedAt.Format(time.RFC3339),
	}
}

func (req *calendarEventRequest) toModel() *model.CalendarEvent {
	return &model.CalendarEvent{
		Title:    req.Title,
		Date:     req.Date,
		EndDate:  req.EndDate,
		Memo:     req.Memo,
		IsYearly: req.IsYearly,
		IsLunar:  req.IsLunar,
		IsRange:  req.IsRange,
		Color:    req.Color,
	}
}

// ListMonth 는 월별 이벤트 목록을 반환한다.
// GET /api/calendar?year=2025&month=10
func (h *CalendarHandler) ListMonth(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year := queryInt(r, "year", now.Year())
	month := queryInt(r, "month", int(now.Month()))

	resolved, err := h.service.ListMonth(r.Context(), year, month)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responses := make([]calendarEventResponse, len(resolved))
	for i, ev := range resolved {
		responses[i] = toResolvedEventResponse(ev)
	}
	writeJSON(w, http.StatusOK, responses)
}

// Holidays 는 해당 연도의 한국 공휴일 목록을 반환한다.
// GET /api/calendar/holidays/{year}
func (h *CalendarHandler) Holidays(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidRequestError("연도가 숫자가 아닙니다"))
		return
	}

	writeJSON(w, http.StatusOK, h.holidays.Holidays(year))
}

// Get 은 이벤트 상세를 반환한다.
// GET /api/calendar/{id}
func (h *CalendarHandler) Get(w http.ResponseWriter, r *http.Request) {
	resolved, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResolvedEventResponse(*resolved))
}

// Create 는 이벤트를 생성한다.
// POST /api/calendar
func (h *CalendarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req calendarEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidRequestError("요청 본문 해석에 실패했습니다"))
		return
	}

	created, err := h.service.Create(r.Context(), req.toModel())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toEventResponse(created))
}

// Update 는 이벤트를 갱신한다.
// PUT /api/calendar/{id}
func (h *CalendarHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req calendarEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidRequestError("요청 본문 해석에 실패했습니다"))
		return
	}

	updated, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), req.toModel())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toEventResponse(updated))
}

// Delete 는 이벤트를 삭제한다.
// DELETE /api/calendar/{id}
func (h *CalendarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// queryInt 는 쿼리 파라미터를 정수로 읽는다. 없거나 숫자가 아니면 기본값.
func queryInt(r *http.Request, key string, defaultVal int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return defaultVal
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return defaultVal
	}
	return i
}
