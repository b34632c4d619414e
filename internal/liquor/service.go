// Package liquor 는 주류 리뷰 도메인 로직을 제공한다.
// 등록/이름 변경 시 AI 시음 노트 생성 작업을 예약하는 책임을 포함한다.
package liquor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minjun/sweethome/internal/model"
	"github.com/minjun/sweethome/internal/repository"
)

// Enricher 는 시음 노트 생성 작업 예약 인터페이스.
// 예약은 즉시 반환되고 결과는 나중에 문서에 반영된다.
type Enricher interface {
	Enqueue(reviewID, name string)
}

// Service 는 주류 리뷰의 서비스 계층.
type Service struct {
	repo     repository.LiquorReviewRepository
	enricher Enricher
}

// NewService 는 Service 를 생성한다.
func NewService(repo repository.LiquorReviewRepository, enricher Enricher) *Service {
	return &Service{repo: repo, enricher: enricher}
}

// List 는 조건에 맞는 리뷰 목록을 반환한다.
func (s *Service) List(ctx context.Context, filter repository.LiquorFilter) ([]*model.LiquorReview, error) {
	reviews, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("리뷰 목록 조회에 실패했습니다: %w", err)
	}
	return reviews, nil
}

// Get 은 지정 ID의 리뷰를 반환한다.
func (s *Service) Get(ctx context.Context, id string) (*model.LiquorReview, error) {
	review, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("리뷰 조회에 실패했습니다: %w", err)
	}
	if review == nil {
		return nil, model.NewNotFoundError("liquor", id)
	}
	return review, nil
}

// Create 는 리뷰를 등록하고 시음 노트 생성 작업을 예약한다.
// 노트는 PENDING 상태로 먼저 저장되고, HTTP 응답이 나간 뒤
// 백그라운드에서 COMPLETED 또는 FAILED 로 바뀐다.
func (s *Service) Create(ctx context.Context, input *model.LiquorReview) (*model.LiquorReview, error) {
	if input.Name == "" {
		return nil, model.NewInvalidRequestError("주류명이 비어 있습니다")
	}
	if input.Category == "" {
		return nil, model.NewInvalidRequestError("종류가 비어 있습니다")
	}

	now := time.Now()
	input.ID = uuid.NewString()
	input.CreatedAt = now
	input.UpdatedAt = now
	input.AINote = &model.AINote{Status: model.AINoteStatusPending}

	if err := s.repo.Create(ctx, input); err != nil {
		return nil, fmt.Errorf("리뷰 생성에 실패했습니다: %w", err)
	}

	// 저장이 끝난 뒤에 예약해야 워커의 재조회가 문서를 찾을 수 있다.
	s.enricher.Enqueue(input.ID, input.Name)

	return input, nil
}

// Update 는 리뷰를 갱신한다. 주류명이 바뀐 경우에만 노트를 PENDING 으로
// 되돌리고 생성 작업을 다시 예약한다. 이름이 그대로면 기존 노트를 유지한다.
func (s *Service) Update(ctx context.Context, id string, input *model.LiquorReview) (*model.LiquorReview, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("리뷰 조회에 실패했습니다: %w", err)
	}
	if existing == nil {
		return nil, model.NewNotFoundError("liquor", id)
	}

	if input.Name == "" {
		return nil, model.NewInvalidRequestError("주류명이 비어 있습니다")
	}
	if input.Category == "" {
		return nil, model.NewInvalidRequestError("종류가 비어 있습니다")
	}

	renamed := input.Name != existing.Name

	input.ID = existing.ID
	input.CreatedAt = existing.CreatedAt
	input.UpdatedAt = time.Now()
	if renamed {
		input.AINote = &model.AINote{Status: model.AINoteStatusPending}
	} else {
		input.AINote = existing.AINote
	}

	if err := s.repo.Update(ctx, input); err != nil {
		return nil, fmt.Errorf("리뷰 갱신에 실패했습니다: %w", err)
	}

	if renamed {
		s.enricher.Enqueue(input.ID, input.Name)
	}

	updated, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("리뷰 재조회에 실패했습니다: %w", err)
	}
	return updated, nil
}

// Delete 는 지정 ID의 리뷰를 삭제한다.
func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("리뷰 조회에 실패했습니다: %w", err)
	}
	if existing == nil {
		return model.NewNotFoundError("liquor", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("리뷰 삭제에 실패했습니다: %w", err)
	}
	return nil
}
