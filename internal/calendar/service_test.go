package calendar

import (
	"context"
	"errors"
	"testing"

	"github.com/minjun/sweethome/internal/model"
)

// mockEventRepo 는 테스트용 이벤트 저장소.
type mockEventRepo struct {
	findAllFunc  func(ctx context.Context) ([]*model.CalendarEvent, error)
	findByIDFunc func(ctx context.Context, id string) (*model.CalendarEvent, error)
	createFunc   func(ctx context.Context, event *model.CalendarEvent) error
	updateFunc   func(ctx context.Context, event *model.CalendarEvent) error
	deleteFunc   func(ctx context.Context, id string) error
}

func (m *mockEventRepo) FindAll(ctx context.Context) ([]*model.CalendarEvent, error) {
	return m.findAllFunc(ctx)
}

func (m *mockEventRepo) FindByID(ctx context.Context, id string) (*model.CalendarEvent, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockEventRepo) Create(ctx context.Context, event *model.CalendarEvent) error {
	return m.createFunc(ctx, event)
}

func (m *mockEventRepo) Update(ctx context.Context, event *model.CalendarEvent) error {
	return m.updateFunc(ctx, event)
}

func (m *mockEventRepo) Delete(ctx context.Context, id string) error {
	return m.deleteFunc(ctx, id)
}

func TestServiceCreate_LunarConversion(t *testing.T) {
	var created *model.CalendarEvent
	repo := &mockEventRepo{
		createFunc: func(ctx context.Context, event *model.CalendarEvent) error {
			created = event
			return nil
		},
	}
	svc := NewService(repo)

	// 양력 2025-01-29 는 음력 2025-01-01 (설날)
	_, err := svc.Create(context.Background(), &model.CalendarEvent{
		Title:   "설날 모임",
		Date:    "2025-01-29",
		IsLunar: true,
	})
	if err != nil {
		t.Fatalf("예상치 못한 에러: %v", err)
	}

	if created.Date != "2025-01-01" {
		t.Errorf("음력 변환 저장 날짜가 올바르지 않습니다: %q", created.Date)
	}
	if created.ID == "" {
		t.Error("ID가 생성되지 않았습니다")
	}
}

func TestServiceCreate_SolarKeptAsIs(t *testing.T) {
	var created *model.CalendarEvent
	repo := &mockEventRepo{
		createFunc: func(ctx context.Context, event *model.CalendarEvent) error {
			created = event
			return nil
		},
	}
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), &model.CalendarEvent{
		Title: "결혼기념일",
		Date:  "2025-05-10",
	})
	if err != nil {
		t.Fatalf("예상치 못한 에러: %v", err)
	}
	if created.Date != "2025-05-10" {
		t.Errorf("양력 이벤트 날짜가 바뀌면 안 됩니다: %q", created.Date)
	}
}

func TestServiceCreate_InvalidDate(t *testing.T) {
	svc := NewService(&mockEventRepo{})

	cases := []string{"2025-02-30", "2025/01/01", "20250101", "2025-13-01", ""}
	for _, date := range cases {
		_, err := svc.Create(context.Background(), &model.CalendarEvent{
			Title: "잘못된 날짜",
			Date:  date,
		})
		var apiErr *model.APIError
		if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeInvalidDate {
			t.Errorf("날짜 %q: INVALID_DATE 에러를 기대했으나 %v", date, err)
		}
	}
}

func TestServiceCreate_EndBeforeStart(t *testing.T) {
	svc := NewService(&mockEventRepo{})

	_, err := svc.Create(context.Background(), &model.CalendarEvent{
		Title:   "여행",
		Date:    "2025-05-10",
		EndDate: "2025-05-01",
		IsRange: true,
	})
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeInvalidRequest {
		t.Errorf("INVALID_REQUEST 에러를 기대했으나: %v", err)
	}
}

func TestServiceGet_NotFound(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.CalendarEvent, error) {
			return nil, nil
		},
	}
	svc := NewService(repo)

	_, err := svc.Get(context.Background(), "missing")
	var apiErr *model.APIError
	if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeNotFound {
		t.Errorf("NOT_FOUND 에러를 기대했으나: %v", err)
	}
}

func TestServiceGet_LunarSolarDate(t *testing.T) {
	repo := &mockEventRepo{
		findByIDFunc: func(ctx context.Context, id string) (*model.CalendarEvent, error) {
			return &model.CalendarEvent{
				ID:      id,
				Title:   "어머니 생신",
				Date:    "2025-08-15",
				IsLunar: true,
			}, nil
		},
	}
	svc := NewService(repo)

	resolved, err := svc.Get(context.Background(), "ev-1")
	if err != nil {
		t.Fatalf("예상치 못한 에러: %v", err)
	}
	// 음력 2025-08-15 는 양력 2025-10-06
	if resolved.SolarDate != "2025-10-06" {
		t.Errorf("양력 변환 날짜가 올바르지 않습니다: %q", resolved.SolarDate)
	}
}

func TestServiceListMonth_InvalidMonth(t *testing.T) {
	svc := NewService(&mockEventRepo{})

	for _, month := range []int{0, 13, -1} {
		_, err := svc.ListMonth(context.Background(), 2025, month)
		var apiErr *model.APIError
		if !errors.As(err, &apiErr) || apiErr.Code != model.ErrCodeInvalidRequest {
			t.Errorf("월 %d: INVALID_REQUEST 에러를 기대했으나 %v", month, err)
		}
	}
}
