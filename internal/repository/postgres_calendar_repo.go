package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/minjun/sweethome/internal/model"
)

// PostgresCalendarEventRepo 는 PostgreSQL 기반 캘린더 이벤트 리포지토리.
type PostgresCalendarEventRepo struct {
	db *sql.DB
}

// NewPostgresCalendarEventRepo 는 PostgresCalendarEventRepo 를 생성한다.
func NewPostgresCalendarEventRepo(db *sql.DB) *PostgresCalendarEventRepo {
	return &PostgresCalendarEventRepo{db: db}
}

const calendarEventColumns = `id, title, date, end_date, memo, is_yearly, is_lunar, is_range, color, created_at, updated_at`

// scanCalendarEvent 는 행 1개를 모델로 변환한다.
func scanCalendarEvent(scan func(dest ...any) error) (*model.CalendarEvent, error) {
	ev := &model.CalendarEvent{}
	var endDate, memo, color sql.NullString

	err := scan(
		&ev.ID, &ev.Title, &ev.Date, &endDate, &memo,
		&ev.IsYearly, &ev.IsLunar, &ev.IsRange, &color,
		&ev.CreatedAt, &ev.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	ev.EndDate = endDate.String
	ev.Memo = memo.String
	ev.Color = color.String
	return ev, nil
}

// FindAll 은 저장된 모든 이벤트를 반환한다.
func (r *PostgresCalendarEventRepo) FindAll(ctx context.Context) ([]*model.CalendarEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+calendarEventColumns+` FROM calendar_events ORDER BY date`)
	if err != nil {
		return nil, fmt.Errorf("이벤트 목록 조회에 실패했습니다: %w", err)
	}
	defer rows.Close()

	events := []*model.CalendarEvent{}
	for rows.Next() {
		ev, err := scanCalendarEvent(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("이벤트 행 변환에 실패했습니다: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("이벤트 목록 순회에 실패했습니다: %w", err)
	}
	return events, nil
}

// FindByID 는 지정 ID의 이벤트를 반환한다. 없으면 nil을 반환한다.
func (r *PostgresCalendarEventRepo) FindByID(ctx context.Context, id string) (*model.CalendarEvent, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+calendarEventColumns+` FROM calendar_events WHERE id = $1`, id)

	ev, err := scanCalendarEvent(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("이벤트 조회에 실패했습니다: %w", err)
	}
	return ev, nil
}

// Create 는 이벤트를 생성한다.
func (r *PostgresCalendarEventRepo) Create(ctx context.Context, ev *model.CalendarEvent) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO calendar_events (id, title, date, end_date, memo, is_yearly, is_lunar, is_range, color, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		ev.ID, ev.Title, ev.Date, nullString(ev.EndDate), nullString(ev.Memo),
		ev.IsYearly, ev.IsLunar, ev.IsRange, nullString(ev.Color),
		ev.CreatedAt, ev.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("이벤트 생성에 실패했습니다: %w", err)
	}
	return nil
}

// Update 는 이벤트 전체를 갱신한다.
func (r *PostgresCalendarEventRepo) Update(ctx context.Context, ev *model.CalendarEvent) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE calendar_events SET
		    title = $2, date = $3, end_date = $4, memo = $5,
		    is_yearly = $6, is_lunar = $7, is_range = $8, color = $9,
		    updated_at = $10
		 WHERE id = $1`,
		ev.ID, ev.Title, ev.Date, nullString(ev.EndDate), nullString(ev.Memo),
		ev.IsYearly, ev.IsLunar, ev.IsRange, nullString(ev.Color),
		ev.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("이벤트 갱신에 실패했습니다: %w", err)
	}
	return nil
}

// Delete 는 지정 ID의 이벤트를 삭제한다.
func (r *PostgresCalendarEventRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM calendar_events WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("이벤트 삭제에 실패했습니다: %w", err)
	}
	return nil
}

// nullString 은 빈 문자열을 NULL 로 저장하기 위한 변환.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
