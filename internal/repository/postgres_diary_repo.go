package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/minjun/sweethome/internal/model"
)

// PostgresDiaryRepo 는 PostgreSQL 기반 일기 리포지토리.
// 내장 코멘트 목록은 JSONB 배열 컬럼에 담는다.
type PostgresDiaryRepo struct {
	db *sql.DB
}

// NewPostgresDiaryRepo 는 PostgresDiaryRepo 를 생성한다.
func NewPostgresDiaryRepo(db *sql.DB) *PostgresDiaryRepo {
	return &PostgresDiaryRepo{db: db}
}

const diaryColumns = `id, title, content, author, date, mood, weather, image_url, comments, created_at, updated_at`

// scanDiary 는 행 1개를 모델로 변환한다.
func scanDiary(scan func(dest ...any) error) (*model.Diary, error) {
	d := &model.Diary{}
	var date, mood, weather, imageURL sql.NullString
	var comments []byte

	err := scan(
		&d.ID, &d.Title, &d.Content, &d.Author, &date, &mood, &weather, &imageURL,
		&comments, &d.CreatedAt, &d.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	d.Date = date.String
	d.Mood = mood.String
	d.Weather = weather.String
	d.ImageURL = imageURL.String

	if len(comments) > 0 {
		if err := json.Unmarshal(comments, &d.Comments); err != nil {
			return nil, fmt.Errorf("comments 해석에 실패했습니다: %w", err)
		}
	}
	return d, nil
}

// Find 는 조건에 맞는 일기를 date, created_at 내림차순으로 반환한다.
func (r *PostgresDiaryRepo) Find(ctx context.Context, filter DiaryFilter) ([]*model.Diary, error) {
	query := `SELECT ` + diaryColumns + ` FROM diaries`
	where := []string{}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Keyword != "" {
		p := arg(filter.Keyword)
		where = append(where, `(title ILIKE '%' || `+p+` || '%' OR content ILIKE '%' || `+p+` || '%')`)
	}
	if filter.Author != "" {
		where = append(where, `author = `+arg(filter.Author))
	}
	if filter.Mood != "" {
		where = append(where, `mood = `+arg(filter.Mood))
	}
	if filter.DateFrom != "" {
		where = append(where, `date >= `+arg(filter.DateFrom))
	}
	if filter.DateTo != "" {
		where = append(where, `date <= `+arg(filter.DateTo))
	}

	for i, cond := range where {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY date DESC NULLS LAST, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("일기 목록 조회에 실패했습니다: %w", err)
	}
	defer rows.Close()

	diaries := []*model.Diary{}
	for rows.Next() {
		d, err := scanDiary(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("일기 행 변환에 실패했습니다: %w", err)
		}
		diaries = append(diaries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("일기 목록 순회에 실패했습니다: %w", err)
	}
	return diaries, nil
}

// FindByID 는 지정 ID의 일기를 반환한다. 없으면 nil을 반환한다.
func (r *PostgresDiaryRepo) FindByID(ctx context.Context, id string) (*model.Diary, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+diaryColumns+` FROM diaries WHERE id = $1`, id)

	d, err := scanDiary(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("일기 조회에 실패했습니다: %w", err)
	}
	return d, nil
}

// Create 는 일기를 생성한다.
func (r *PostgresDiaryRepo) Create(ctx context.Context, d *model.Diary) error {
	comments, err := marshalComments(d.Comments)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO diaries (id, title, content, author, date, mood, weather, image_url, comments, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		d.ID, d.Title, d.Content, d.Author,
		nullString(d.Date), nullString(d.Mood), nullString(d.Weather), nullString(d.ImageURL),
		comments, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("일기 생성에 실패했습니다: %w", err)
	}
	return nil
}

// Update 는 내장 코멘트를 포함해 일기 전체를 갱신한다.
func (r *PostgresDiaryRepo) Update(ctx context.Context, d *model.Diary) error {
	comments, err := marshalComments(d.Comments)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE diaries SET
		    title = $2, content = $3, author = $4, date = $5, mood = $6,
		    weather = $7, image_url = $8, comments = $9, updated_at = $10
		 WHERE id = $1`,
		d.ID, d.Title, d.Content, d.Author,
		nullString(d.Date), nullString(d.Mood), nullString(d.Weather), nullString(d.ImageURL),
		comments, d.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("일기 갱신에 실패했습니다: %w", err)
	}
	return nil
}

// Delete 는 지정 ID의 일기를 삭제한다.
func (r *PostgresDiaryRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM diaries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("일기 삭제에 실패했습니다: %w", err)
	}
	return nil
}

// marshalComments 는 코멘트 목록을 JSONB 컬럼용으로 직렬화한다.
func marshalComments(comments []model.DiaryComment) ([]byte, error) {
	if comments == nil {
		comments = []model.DiaryComment{}
	}
	data, err := json.Marshal(comments)
	if err != nil {
		return nil, fmt.Errorf("comments 직렬화에 실패했습니다: %w", err)
	}
	return data, nil
}
