package middleware

import (
	"net/http"
	"strings"

	"github.com/minjun/sweethome/internal/model"
)

// TokenVerifier 는 액세스 토큰 검증 인터페이스.
type TokenVerifier interface {
	// ParseToken 은 토큰을 검증하고 사용자 아이디를 반환한다.
	ParseToken(tokenString string) (string, error)
}

// NewAuthMiddleware 는 Authorization 헤더의 Bearer 토큰을 검증하고
// 사용자 아이디를 컨텍스트에 담는 미들웨어를 반환한다.
// 헤더 누락, 형식 오류, 검증 실패는 모두 401로 끝난다.
func NewAuthMiddleware(verifier TokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			username, err := verifier.ParseToken(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				WriteErrorResponse(w, http.StatusUnauthorized, model.NewUnauthorizedError())
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUsername(r.Context(), username)))
		})
	}
}
