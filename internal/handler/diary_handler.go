package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minjun/sweethome/internal/model"
	"github.com/minjun/sweethome/internal/repository"
)

// DiaryServiceInterface 는 일기 핸들러가 필요로 하는 서비스 인터페이스.
type DiaryServiceInterface interface {
	List(ctx context.Context, filter repository.DiaryFilter) ([]*model.Diary, error)
	Get(ctx context.Context, id string) (*model.Diary, error)
	Create(ctx context.Context, input *model.Diary) (*model.Diary, error)
	Update(ctx context.Context, id string, input *model.Diary) (*model.Diary, error)
	Delete(ctx context.Context, id string) error
	AddComment(ctx context.Context, id, author, content string) (*model.Diary, error)
	DeleteComment(ctx context.Context, id, commentID string) (*model.Diary, error)
}

// DiaryHandler 는 일기의 HTTP 핸들러.
type DiaryHandler struct {
	service DiaryServiceInterface
}

// NewDiaryHandler 는 DiaryHandler 를 생성한다.
func NewDiaryHandler(service DiaryServiceInterface) *DiaryHandler {
	return &DiaryHandler{service: service}
}

// diaryRequest 는 일기 생성/갱신 요청 본문.
type diaryRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Author   string `json:"author"`
	Date     string `json:"date"`
	Mood     string `json:"mood"`
	Weather  string `json:"weather"`
	ImageURL string `json:"image_url"`
}

// diaryCommentRequest 는 코멘트 추가 요청 본문.
type diaryCommentRequest struct {
	Author  string `json:"author"`
	Content string `json:"content"`
}

// diaryCommentResponse 는 코멘트 1건의 API 응답.
type diaryCommentResponse struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at"`
}

// diaryResponse 는 일기 1건의 API 응답.
type diaryResponse struct {
	ID        string                 `json:"id"`
	Title     string                 `json:"title"`
	Content   string                 `json:"content"`
	Author    string                 `json:"author"`
	Date      string                 `json:"date,omitempty"`
	Mood      string                 `json:"mood,omitempty"`
	Weather   string                 `json:"weather,omitempty"`
	ImageURL  string                 `json:"image_url,omitempty"`
	Comments  []diaryCommentResponse `json:"comments"`
	CreatedAt string                 `json:"created_at"`
	UpdatedAt string                 `json:"updated_at"`
}

func toDiaryResponse(diary *model.Diary) diaryResponse {
	comments := make([]diaryCommentResponse, len(diary.Comments))
	for i, c := range diary.Comments {
		comments[i] = diaryCommentResponse{
			ID:        c.ID,
			Author:    c.Author,
			Content:   c.Content,
			CreatedAt: c.CreatedAt.Format(time.RFC3339),
		}
	}
	return diaryResponse{
		ID:        diary.ID,
		Title:     diary.Title,
		Content:   diary.Content,
		Author:    diary.Author,
		Date:      diary.Date,
		Mood:      diary.Mood,
		Weather:   diary.Weather,
		ImageURL:  diary.ImageURL,
		Comments:  comments,
		CreatedAt: diary.CreatedAt.Format(time.RFC3339),
		UpdatedAt: diary.UpdatedAt.Format(time.RFC3339),
	}
}

func (req *diaryRequest) toModel() *model.Diary {
	return &model.Diary{
		Title:    req.Title,
		Content:  req.Content,
		Author:   req.Author,
		Date:     req.Date,
		Mood:     req.Mood,
		Weather:  req.Weather,
		ImageURL: req.ImageURL,
	}
}

// List 는 일기 목록을 반환한다.
// GET /api/diary
func (h *DiaryHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := repository.DiaryFilter{
		Keyword:  q.Get("keyword"),
		Author:   q.Get("author"),
		Mood:     q.Get("mood"),
		DateFrom: q.Get("date_from"),
		DateTo:   q.Get("date_to"),
	}

	diaries, err := h.service.List(r.Context(), filter)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responses := make([]diaryResponse, len(diaries))
	for i, d := range diaries {
		responses[i] = toDiaryResponse(d)
	}
	writeJSON(w, http.StatusOK, responses)
}

// Get 은 일기 상세를 반환한다.
// GET /api/diary/{id}
func (h *DiaryHandler) Get(w http.ResponseWriter, r *http.Request) {
	diary, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDiaryResponse(diary))
}

// Create 는 일기를 생성한다.
// POST /api/diary
func (h *DiaryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req diaryRequest
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

	writeJSON(w, http.StatusCreated, toDiaryResponse(created))
}

// Update 는 일기를 갱신한다.
// PUT /api/diary/{id}
func (h *DiaryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req diaryRequest
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

	writeJSON(w, http.StatusOK, toDiaryResponse(updated))
}

// Delete 는 일기를 삭제한다.
// DELETE /api/diary/{id}
func (h *DiaryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// AddComment 는 일기에 코멘트를 추가한다.
// POST /api/diary/{id}/comments
func (h *DiaryHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req diaryCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidRequestError("요청 본문 해석에 실패했습니다"))
		return
	}

	diary, err := h.service.AddComment(r.Context(), chi.URLParam(r, "id"), req.Author, req.Content)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toDiaryResponse(diary))
}

// DeleteComment 는 일기에서 코멘트를 삭제한다.
// DELETE /api/diary/{id}/comments/{commentId}
func (h *DiaryHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	diary, err := h.service.DeleteComment(r.Context(),
		chi.URLParam(r, "id"), chi.URLParam(r, "commentId"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toDiaryResponse(diary))
}
