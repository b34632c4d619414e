package model

import "fmt"

// APIError 는 통일된 에러 포맷을 표현한다.
// UI에 표시할 원인 카테고리와 대처 방법을 포함한다.
type APIError struct {
	Code     string // 에러 코드
	Message  string // 에러 메시지
	Category string // 카테고리: auth, validation, calendar, liquor, diary, system
	Action   string // 사용자 대처 방법
}

// Error 는 error 인터페이스를 구현한다.
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 정의된 에러 코드
const (
	ErrCodeNotFound          = "NOT_FOUND"
	ErrCodeInvalidRequest    = "INVALID_REQUEST"
	ErrCodeInvalidDate       = "INVALID_DATE"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeInvalidCredential = "INVALID_CREDENTIAL"
	ErrCodeDuplicateUsername = "DUPLICATE_USERNAME"
)

// NewNotFoundError 는 문서 미존재 에러를 생성한다.
func NewNotFoundError(category, id string) *APIError {
	return &APIError{
		Code:     ErrCodeNotFound,
		Message:  fmt.Sprintf("요청한 문서를 찾을 수 없습니다: %s", id),
		Category: category,
		Action:   "ID를 확인해 주세요.",
	}
}

// NewInvalidRequestError 는 요청 본문 해석 실패 에러를 생성한다.
func NewInvalidRequestError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  fmt.Sprintf("잘못된 요청입니다: %s", reason),
		Category: "validation",
		Action:   "요청 형식을 확인해 주세요.",
	}
}

// NewInvalidDateError 는 날짜 형식 오류 에러를 생성한다.
func NewInvalidDateError(value string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidDate,
		Message:  fmt.Sprintf("잘못된 날짜 형식입니다: %q", value),
		Category: "validation",
		Action:   "날짜는 YYYY-MM-DD 형식으로 입력해 주세요.",
	}
}

// NewUnauthorizedError 는 인증 실패 에러를 생성한다.
func NewUnauthorizedError() *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  "인증이 필요합니다.",
		Category: "auth",
		Action:   "로그인 후 다시 시도해 주세요.",
	}
}

// NewInvalidCredentialError 는 로그인 실패 에러를 생성한다.
func NewInvalidCredentialError() *APIError {
	return &APIError{
		Code:     ErrCodeInvalidCredential,
		Message:  "아이디 또는 비밀번호가 올바르지 않습니다.",
		Category: "auth",
		Action:   "입력한 정보를 확인해 주세요.",
	}
}

// NewDuplicateUsernameError 는 이미 등록된 아이디 에러를 생성한다.
func NewDuplicateUsernameError(username string) *APIError {
	return &APIError{
		Code:     ErrCodeDuplicateUsername,
		Message:  fmt.Sprintf("이미 등록된 아이디입니다: %s", username),
		Category: "auth",
		Action:   "다른 아이디를 사용해 주세요.",
	}
}
