package model

import "time"

// AINoteStatus 는 AI 시음 노트의 생성 상태를 표현한다.
type AINoteStatus string

const (
	// AINoteStatusPending 은 백그라운드 생성 작업이 예약된 상태.
	AINoteStatusPending AINoteStatus = "PENDING"
	// AINoteStatusCompleted 는 생성이 완료된 상태. 파싱 실패로 인한
	// 대체 콘텐츠가 담긴 경우도 COMPLETED 로 취급한다.
	AINoteStatusCompleted AINoteStatus = "COMPLETED"
	// AINoteStatusFailed 는 외부 호출 실패로 생성에 실패한 상태.
	AINoteStatusFailed AINoteStatus = "FAILED"
)

// AINote 는 주류 리뷰에 첨부되는 AI 생성 시음 노트를 표현한다.
type AINote struct {
	Status      AINoteStatus `json:"status"`
	Description string       `json:"description"`
	Taste       string       `json:"taste"`
	Aroma       string       `json:"aroma"`
	Variety     string       `json:"variety"`
	Pairing     string       `json:"pairing"`
}

// LiquorReview 는 주류 리뷰 문서를 표현한다.
type LiquorReview struct {
	ID             string
	Name           string
	Category       string
	PurchasePlace  string
	PairingFoods   []string
	ImageURLs      []string
	RatingHusband  float64
	RatingWife     float64
	CommentHusband string
	CommentWife    string
	VisitDate      string // YYYY-MM-DD, 빈 문자열 허용
	Price          int
	ImageURL       string // 구버전 호환용 단일 이미지
	AINote         *AINote
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
