package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/minjun/sweethome/internal/lunar"
	"github.com/minjun/sweethome/internal/model"
	"github.com/minjun/sweethome/internal/repository"
)

// Service 는 캘린더 이벤트의 서비스 계층.
// 입력은 항상 양력 날짜로 받고, 음력 이벤트는 저장 시 음력 문자열로 변환한다.
type Service struct {
	repo repository.CalendarEventRepository
}

// NewService 는 Service 를 생성한다.
func NewService(repo repository.CalendarEventRepository) *Service {
	return &Service{repo: repo}
}

// ListMonth 는 지정 연/월에 발생하는 이벤트 목록을 반환한다.
func (s *Service) ListMonth(ctx context.Context, year, month int) ([]model.ResolvedEvent, error) {
	if month < 1 || month > 12 {
		return nil, model.NewInvalidRequestError(fmt.Sprintf("월이 범위를 벗어났습니다: %d", month))
	}

	events, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("이벤트 목록 조회에 실패했습니다: %w", err)
	}

	return ResolveMonth(year, month, events), nil
}

// Get 은 지정 ID의 이벤트를 표시용 발생으로 반환한다.
// 음력 이벤트의 양력 변환 기준 연도는 저장된 날짜의 연도를 쓰고,
// 날짜 형식이 깨져 있으면 현재 연도로 대체한다.
func (s *Service) Get(ctx context.Context, id string) (*model.ResolvedEvent, error) {
	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("이벤트 조회에 실패했습니다: %w", err)
	}
	if event == nil {
		return nil, model.NewNotFoundError("calendar", id)
	}

	targetYear := time.Now().Year()
	if y, _, _, ok := SplitDate(event.Date); ok {
		targetYear = y
	}

	resolved := ResolveEvent(event, targetYear)
	return &resolved, nil
}

// Create 는 이벤트를 생성한다. 입력 날짜는 실존하는 양력 날짜여야 하며,
// 음력 플래그가 켜진 경우 음력 날짜 문자열로 변환해 저장한다.
func (s *Service) Create(ctx context.Context, input *model.CalendarEvent) (*model.CalendarEvent, error) {
	if input.Title == "" {
		return nil, model.NewInvalidRequestError("제목이 비어 있습니다")
	}
	if err := s.normalizeDates(input); err != nil {
		return nil, err
	}

	now := time.Now()
	input.ID = uuid.NewString()
	input.CreatedAt = now
	input.UpdatedAt = now

	if err := s.repo.Create(ctx, input); err != nil {
		return nil, fmt.Errorf("이벤트 생성에 실패했습니다: %w", err)
	}
	return input, nil
}

// Update 는 이벤트를 갱신한다. 날짜 변환 규칙은 Create 와 같다.
func (s *Service) Update(ctx context.Context, id string, input *model.CalendarEvent) (*model.CalendarEvent, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("이벤트 조회에 실패했습니다: %w", err)
	}
	if existing == nil {
		return nil, model.NewNotFoundError("calendar", id)
	}

	if input.Title == "" {
		return nil, model.NewInvalidRequestError("제목이 비어 있습니다")
	}
	if err := s.normalizeDates(input); err != nil {
		return nil, err
	}

	input.ID = existing.ID
	input.CreatedAt = existing.CreatedAt
	input.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, input); err != nil {
		return nil, fmt.Errorf("이벤트 갱신에 실패했습니다: %w", err)
	}
	return input, nil
}

// Delete 는 지정 ID의 이벤트를 삭제한다.
func (s *Service) Delete(ctx context.Context, id string) error {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return fmt.Errorf("이벤트 조회에 실패했습니다: %w", err)
	}
	if existing == nil {
		return model.NewNotFoundError("calendar", id)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("이벤트 삭제에 실패했습니다: %w", err)
	}
	return nil
}

// normalizeDates 는 입력 날짜를 검증하고, 음력 이벤트면 저장용 음력
// 문자열로 바꾼다. 변환 실패 시에는 입력한 양력 날짜를 그대로 둔다.
func (s *Service) normalizeDates(event *model.CalendarEvent) error {
	y, m, d, ok := ParseDate(event.Date)
	if !ok {
		return model.NewInvalidDateError(event.Date)
	}

	var ey, em, ed int
	if event.EndDate != "" {
		var endOK bool
		ey, em, ed, endOK = ParseDate(event.EndDate)
		if !endOK {
			return model.NewInvalidDateError(event.EndDate)
		}
		if event.EndDate < event.Date {
			return model.NewInvalidRequestError("종료일이 시작일보다 앞입니다")
		}
	}

	if event.IsLunar {
		if ld, ok := lunar.ToLunar(y, m, d); ok {
			event.Date = ld.String()
		}
		if event.EndDate != "" {
			if ld, ok := lunar.ToLunar(ey, em, ed); ok {
				event.EndDate = ld.String()
			}
		}
	}

	return nil
}
