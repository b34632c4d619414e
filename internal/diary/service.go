// Package diary 는 부부 공유 일기의 도메인 로직을 제공한다.
// 본문과 코멘트는 저장 전에 HTML 정화를 거친다.
package diary

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minjun/sweethome/internal/model"
	"github.com/minjun/sweethome/internal/repository"
	"github.com/minjun/sweethome/internal/security"
)

// Service 는 일기의 서비스 계층.
type Service struct {
	repo      repository.DiaryRepository
	sanitizer security.ContentSanitizerService
}

// NewService 는 Service 를 생성한다.
func NewService(repo repository.DiaryRepository, sanitizer security.ContentSanitizerService) *Service {
	return &Service{repo: repo, sanitizer: sanitizer}
}

// List 는 조건에 맞는 일기 목록을 반환한다.
func (s *Service) List(ctx context.Context, filter repository.DiaryFilter) ([]*model.Diary, error) {
	diaries, err := s.repo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("일기 목록 조회에 실패했습니다: %w", err)
	}
	return diaries, nil
}

// Get 은 지정 ID의 일기를 반환한다.
func (s *Service) Get(ctx context.Context, id string) (*model.Diary, error) {
	diary, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("일기 조회에 실패했습니다: %w", err)
	}
	if diary == nil {
		return nil, model.NewNotFoundError("diary", id)
	}
	return diary, nil
}

// Create 는 일기를 생성한다.
func (s *Service) Create(ctx context.Context, input *model.Diary) (*model.Diary, error) {
	if input.Title == "" {
		return nil, model.NewInvalidRequestError("제목이 비어 있습니다")
	}
	if input.Author == "" {
		return nil, model.NewInvalidRequestError("작성자가 비어 있습니다")
	}

	now := time.Now()
	input.ID = uuid.NewString()
	input.Content = s.sanitizer.Sanitize(input.Content)
	input.Comments = []model.DiaryComment{}
	input.CreatedAt = now
	input.UpdatedAt = now

	if err := s.repo.Create(ctx, input); err != nil {
		return nil, fmt.Errorf("일기 생성에 실패했습니다: %w", err)
	}
	return input, nil
}

// Update 는 일기를 갱신한다. 코멘트 목록은 이 경로로 바꿀 수 없다.
func (s *Service) Update(ctx context.Context, id string, input *model.Diary) (*model.Diary, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("일기 조회에 실패했습니다: %w", err)
	}
	if existing == nil {
		return nil, model.NewNotFoundError("diary", id)
	}

	if input.Title == "" {
		return nil, model.NewInvalidRequestError("제목이 비어 있습니다")
	}

	input.ID = existing.ID
	input.Content = s.sanitizer.Sanitize(input.Content)
	input.Comments = existing.Comments
	input.CreatedAt = existing.CreatedAt
	input.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, input); err != nil {
		return nil, fmt.Errorf("일기 갱신에 실패했습니다: %w", err)
	}
	return input, nil
}

// Delete 는 지정 ID의 일기를 삭제한다.
func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("일기 조회에 실패했습니다: %w", err)
	}
	if existing == nil {
		return model.NewNotFoundError("diary", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("일기 삭제에 실패했습니다: %w", err)
	}
	return nil
}

// AddComment 는 일기에 코멘트를 추가하고 갱신된 일기를 반환한다.
func (s *Service) AddComment(ctx context.Context, id, author, content string) (*model.Diary, error) {
	if author == "" {
		return nil, model.NewInvalidRequestError("작성자가 비어 있습니다")
	}
	if content == "" {
		return nil, model.NewInvalidRequestError("코멘트 내용이 비어 있습니다")
	}

	diary, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("일기 조회에 실패했습니다: %w", err)
	}
	if diary == nil {
		return nil, model.NewNotFoundError("diary", id)
	}

	diary.Comments = append(diary.Comments, model.DiaryComment{
		ID:        uuid.NewString(),
		Author:    author,
		Content:   s.sanitizer.Sanitize(content),
		CreatedAt: time.Now(),
	})
	diary.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, diary); err != nil {
		return nil, fmt.Errorf("코멘트 저장에 실패했습니다: %w", err)
	}
	return diary, nil
}

// DeleteComment 는 일기에서 코멘트 1건을 제거하고 갱신된 일기를 반환한다.
func (s *Service) DeleteComment(ctx context.Context, id, commentID string) (*model.Diary, error) {
	diary, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("일기 조회에 실패했습니다: %w", err)
	}
	if diary == nil {
		return nil, model.NewNotFoundError("diary", id)
	}

	remaining := make([]model.DiaryComment, 0, len(diary.Comments))
	found := false
	for _, c := range diary.Comments {
		if c.ID == commentID {
			found = true
			continue
		}
		remaining = append(remaining, c)
	}
	if !found {
		return nil, model.NewNotFoundError("diary", commentID)
	}

	diary.Comments = remaining
	diary.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, diary); err != nil {
		return nil, fmt.Errorf("코멘트 삭제에 실패했습니다: %w", err)
	}
	return diary, nil
}
