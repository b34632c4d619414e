package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minjun/sweethome/internal/model"
	"github.com/minjun/sweethome/internal/repository"
)

// LiquorServiceInterface 는 주류 리뷰 핸들러가 필요로 하는 서비스 인터페이스.
type LiquorServiceInterface interface {
	List(ctx context.Context, filter repository.LiquorFilter) ([]*model.LiquorReview, error)
	Get(ctx context.Context, id string) (*model.LiquorReview, error)
	Create(ctx context.Context, input *model.LiquorReview) (*model.LiquorReview, error)
	Update(ctx context.Context, id string, input *model.LiquorReview) (*model.LiquorReview, error)
	Delete(ctx context.Context, id string) error
}

// LiquorHandler 는 주류 리뷰의 HTTP 핸들러.
type LiquorHandler struct {
	service LiquorServiceInterface
}

// NewLiquorHandler 는 LiquorHandler 를 생성한다.
func NewLiquorHandler(service LiquorServiceInterface) *LiquorHandler {
	return &LiquorHandler{service: service}
}

// liquorReviewRequest 는 리뷰 생성/갱신 요청 본문.
type liquorReviewRequest struct {
	Name           string   `json:"name"`
	Category       string   `json:"category"`
	PurchasePlace  string   `json:"purchase_place"`
	PairingFoods   []string `json:"pairing_foods"`
	ImageURLs      []string `json:"image_urls"`
	RatingHusband  float64  `json:"rating_husband"`
	RatingWife     float64  `json:"rating_wife"`
	CommentHusband string   `json:"comment_husband"`
	CommentWife    string   `json:"comment_wife"`
	VisitDate      string   `json:"visit_date"`
	Price          int      `json:"price"`
	ImageURL       string   `json:"image_url"`
}

// aiNoteResponse 는 AI 시음 노트의 API 응답.
type aiNoteResponse struct {
	Status      string `json:"status"`
	Description string `json:"description,omitempty"`
	Taste       string `json:"taste,omitempty"`
	Aroma       string `json:"aroma,omitempty"`
	Variety     string `json:"variety,omitempty"`
	Pairing     string `json:"pairing,omitempty"`
}

// liquorReviewResponse 는 리뷰 1건의 API 응답.
type liquorReviewResponse struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Category       string          `json:"category"`
	PurchasePlace  string          `json:"purchase_place,omitempty"`
	PairingFoods   []string        `json:"pairing_foods"`
	ImageURLs      []string        `json:"image_urls"`
	RatingHusband  float64         `json:"rating_husband"`
	RatingWife     float64         `json:"rating_wife"`
	CommentHusband string          `json:"comment_husband,omitempty"`
	CommentWife    string          `json:"comment_wife,omitempty"`
	VisitDate      string          `json:"visit_date,omitempty"`
	Price          int             `json:"price"`
	ImageURL       string          `json:"image_url,omitempty"`
	AINote         *aiNoteResponse `json:"ai_note,omitempty"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

func toLiquorResponse(review *model.LiquorReview) liquorReviewResponse {
	resp := liquorReviewResponse{
		ID:             review.ID,
		Name:           review.Name,
		Category:       review.Category,
		PurchasePlace:  review.PurchasePlace,
		PairingFoods:   review.PairingFoods,
		ImageURLs:      review.ImageURLs,
		RatingHusband:  review.RatingHusband,
		RatingWife:     review.RatingWife,
		CommentHusband: review.CommentHusband,
		CommentWife:    review.CommentWife,
		VisitDate:      review.VisitDate,
		Price:          review.Price,
		ImageURL:       review.ImageURL,
		CreatedAt:      review.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      review.UpdatedAt.Format(time.RFC3339),
	}
	if resp.PairingFoods == nil {
		resp.PairingFoods = []string{}
	}
	if resp.ImageURLs == nil {
		resp.ImageURLs = []string{}
	}
	if review.AINote != nil {
		resp.AINote = &aiNoteResponse{
			Status:      string(review.AINote.Status),
			Description: review.AINote.Description,
			Taste:       review.AINote.Taste,
			Aroma:       review.AINote.Aroma,
			Variety:     review.AINote.Variety,
			Pairing:     review.AINote.Pairing,
		}
	}
	return resp
}

func (req *liquorReviewRequest) toModel() *model.LiquorReview {
	return &model.LiquorReview{
		Name:           req.Name,
		Category:       req.Category,
		PurchasePlace:  req.PurchasePlace,
		PairingFoods:   req.PairingFoods,
		ImageURLs:      req.ImageURLs,
		RatingHusband:  req.RatingHusband,
		RatingWife:     req.RatingWife,
		CommentHusband: req.CommentHusband,
		CommentWife:    req.CommentWife,
		VisitDate:      req.VisitDate,
		Price:          req.Price,
		ImageURL:       req.ImageURL,
	}
}

// parseLiquorFilter 는 쿼리 파라미터에서 목록 조회 조건을 만든다.
// 숫자 해석에 실패한 파라미터는 조건에서 제외한다.
func parseLiquorFilter(r *http.Request) repository.LiquorFilter {
	q := r.URL.Query()
	filter := repository.LiquorFilter{
		Name:          q.Get("name"),
		Category:      q.Get("category"),
		PurchasePlace: q.Get("purchase_place"),
		PairingFood:   q.Get("pairing_food"),
		Comment:       q.Get("comment"),
		StartDate:     q.Get("start_date"),
		EndDate:       q.Get("end_date"),
	}

	filter.MinPrice = queryIntPtr(q.Get("min_price"))
	filter.MaxPrice = queryIntPtr(q.Get("max_price"))
	filter.MinRatingHusband = queryFloatPtr(q.Get("min_rating_husband"))
	filter.MaxRatingHusband = queryFloatPtr(q.Get("max_rating_husband"))
	filter.MinRatingWife = queryFloatPtr(q.Get("min_rating_wife"))
	filter.MaxRatingWife = queryFloatPtr(q.Get("max_rating_wife"))

	return filter
}

func queryIntPtr(v string) *int {
	if v == "" {
		return nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return nil
	}
	return &i
}

func queryFloatPtr(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

// List 는 리뷰 목록을 반환한다.
// GET /api/liquor
func (h *LiquorHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.List(r.Context(), parseLiquorFilter(r))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	responses := make([]liquorReviewResponse, len(reviews))
	for i, review := range reviews {
		responses[i] = toLiquorResponse(review)
	}
	writeJSON(w, http.StatusOK, responses)
}

// Get 은 리뷰 상세를 반환한다.
// GET /api/liquor/{id}
func (h *LiquorHandler) Get(w http.ResponseWriter, r *http.Request) {
	review, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toLiquorResponse(review))
}

// Create 는 리뷰를 등록한다. AI 시음 노트는 PENDING 상태로 응답되고
// 백그라운드 생성이 끝나면 이후 조회에서 내용이 채워진다.
// POST /api/liquor
func (h *LiquorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req liquorReviewRequest
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

	writeJSON(w, http.StatusCreated, toLiquorResponse(created))
}

// Update 는 리뷰를 갱신한다.
// PUT /api/liquor/{id}
func (h *LiquorHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req liquorReviewRequest
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

	writeJSON(w, http.StatusOK, toLiquorResponse(updated))
}

// Delete 는 리뷰를 삭제한다.
// DELETE /api/liquor/{id}
func (h *LiquorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
