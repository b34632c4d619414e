package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/minjun/sweethome/internal/model"
)

// AuthServiceInterface 는 인증 핸들러가 필요로 하는 서비스 인터페이스.
type AuthServiceInterface interface {
	Signup(ctx context.Context, username, password string) (*model.User, error)
	Login(ctx context.Context, username, password string) (string, error)
}

// AuthHandler 는 인증의 HTTP 핸들러.
type AuthHandler struct {
	service AuthServiceInterface
}

// NewAuthHandler 는 AuthHandler 를 생성한다.
func NewAuthHandler(service AuthServiceInterface) *AuthHandler {
	return &AuthHandler{service: service}
}

// credentialsRequest 는 가입/로그인 요청 본문.
type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// signupResponse 는 가입 성공 응답.
type signupResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

// loginResponse 는 로그인 성공 응답.
type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Signup 은 계정 가입을 처리한다.
// POST /auth/signup
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidRequestError("요청 본문 해석에 실패했습니다"))
		return
	}

	user, err := h.service.Signup(r.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, signupResponse{
		ID:       user.ID,
		Username: user.Username,
	})
}

// Login 은 로그인을 처리하고 액세스 토큰을 반환한다.
// POST /auth/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAPIErrorResponse(w, http.StatusBadRequest,
			model.NewInvalidRequestError("요청 본문 해석에 실패했습니다"))
		return
	}

	token, err := h.service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, loginResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
