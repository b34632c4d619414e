// Package repository 는 문서 영속화 인터페이스를 정의한다.
package repository

import (
	"context"

	"github.com/minjun/sweethome/internal/model"
)

// CalendarEventRepository 는 캘린더 이벤트 문서의 영속화 인터페이스.
type CalendarEventRepository interface {
	// FindAll 은 저장된 모든 이벤트를 반환한다.
	// 월 해석은 메모리에서 수행하므로 필터 없이 전체를 가져온다.
	FindAll(ctx context.Context) ([]*model.CalendarEvent, error)

	// FindByID 는 지정 ID의 이벤트를 반환한다. 없으면 nil을 반환한다.
	FindByID(ctx context.Context, id string) (*model.CalendarEvent, error)

	// Create 는 이벤트를 생성한다.
	Create(ctx context.Context, event *model.CalendarEvent) error

	// Update 는 이벤트 전체를 갱신한다.
	Update(ctx context.Context, event *model.CalendarEvent) error

	// Delete 는 지정 ID의 이벤트를 삭제한다.
	Delete(ctx context.Context, id string) error
}

// LiquorFilter 는 주류 리뷰 목록 조회 조건. 0값 필드는 조건에서 제외된다.
type LiquorFilter struct {
	Name          string // 부분 일치(대소문자 무시)
	Category      string // 완전 일치
	PurchasePlace string // 부분 일치
	PairingFood   string // 페어링 음식 목록에 대한 부분 일치
	Comment       string // 남편/아내 코멘트 중 한쪽이라도 부분 일치

	MinPrice *int
	MaxPrice *int

	StartDate string // visit_date >= StartDate
	EndDate   string // visit_date <= EndDate

	MinRatingHusband *float64
	MaxRatingHusband *float64
	MinRatingWife    *float64
	MaxRatingWife    *float64
}

// LiquorReviewRepository 는 주류 리뷰 문서의 영속화 인터페이스.
type LiquorReviewRepository interface {
	// Find 는 조건에 맞는 리뷰를 visit_date, created_at 내림차순으로 반환한다.
	Find(ctx context.Context, filter LiquorFilter) ([]*model.LiquorReview, error)

	// FindByID 는 지정 ID의 리뷰를 반환한다. 없으면 nil을 반환한다.
	FindByID(ctx context.Context, id string) (*model.LiquorReview, error)

	// Create 는 리뷰를 생성한다.
	Create(ctx context.Context, review *model.LiquorReview) error

	// Update 는 리뷰 전체를 갱신한다.
	Update(ctx context.Context, review *model.LiquorReview) error

	// UpdateAINote 는 ai_note 필드만 갱신한다.
	// 백그라운드 작업이 동시 수정 중인 다른 필드를 덮어쓰지 않도록 분리했다.
	UpdateAINote(ctx context.Context, id string, note *model.AINote) error

	// Delete 는 지정 ID의 리뷰를 삭제한다.
	Delete(ctx context.Context, id string) error
}

// DiaryFilter 는 일기 목록 조회 조건. 0값 필드는 조건에서 제외된다.
type DiaryFilter struct {
	Keyword  string // 제목/본문 부분 일치
	Author   string // 완전 일치
	Mood     string // 완전 일치
	DateFrom string
	DateTo   string
}

// DiaryRepository 는 일기 문서의 영속화 인터페이스.
type DiaryRepository interface {
	// Find 는 조건에 맞는 일기를 date, created_at 내림차순으로 반환한다.
	Find(ctx context.Context, filter DiaryFilter) ([]*model.Diary, error)

	// FindByID 는 지정 ID의 일기를 반환한다. 없으면 nil을 반환한다.
	FindByID(ctx context.Context, id string) (*model.Diary, error)

	// Create 는 일기를 생성한다.
	Create(ctx context.Context, diary *model.Diary) error

	// Update 는 내장 코멘트를 포함해 일기 전체를 갱신한다.
	Update(ctx context.Context, diary *model.Diary) error

	// Delete 는 지정 ID의 일기를 삭제한다.
	Delete(ctx context.Context, id string) error
}

// UserRepository 는 로그인 계정의 영속화 인터페이스.
type UserRepository interface {
	// FindByUsername 은 아이디로 계정을 찾는다. 없으면 nil을 반환한다.
	FindByUsername(ctx context.Context, username string) (*model.User, error)

	// Create 는 계정을 생성한다.
	Create(ctx context.Context, user *model.User) error
}
