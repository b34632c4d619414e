package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/minjun/sweethome/internal/model"
)

// PostgresLiquorReviewRepo 는 PostgreSQL 기반 주류 리뷰 리포지토리.
// 목록형 필드(pairing_foods, image_urls)와 ai_note 는 JSONB 컬럼에 담는다.
type PostgresLiquorReviewRepo struct {
	db *sql.DB
}

// NewPostgresLiquorReviewRepo 는 PostgresLiquorReviewRepo 를 생성한다.
func NewPostgresLiquorReviewRepo(db *sql.DB) *PostgresLiquorReviewRepo {
	return &PostgresLiquorReviewRepo{db: db}
}

const liquorReviewColumns = `id, name, category, purchase_place, pairing_foods, image_urls,
	rating_husband, rating_wife, comment_husband, comment_wife,
	visit_date, price, image_url, ai_note, created_at, updated_at`

// scanLiquorReview 는 행 1개를 모델로 변환한다.
func scanLiquorReview(scan func(dest ...any) error) (*model.LiquorReview, error) {
	rv := &model.LiquorReview{}
	var purchasePlace, commentHusband, commentWife, visitDate, imageURL sql.NullString
	var pairingFoods, imageURLs, aiNote []byte

	err := scan(
		&rv.ID, &rv.Name, &rv.Category, &purchasePlace, &pairingFoods, &imageURLs,
		&rv.RatingHusband, &rv.RatingWife, &commentHusband, &commentWife,
		&visitDate, &rv.Price, &imageURL, &aiNote,
		&rv.CreatedAt, &rv.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rv.PurchasePlace = purchasePlace.String
	rv.CommentHusband = commentHusband.String
	rv.CommentWife = commentWife.String
	rv.VisitDate = visitDate.String
	rv.ImageURL = imageURL.String

	if len(pairingFoods) > 0 {
		if err := json.Unmarshal(pairingFoods, &rv.PairingFoods); err != nil {
			return nil, fmt.Errorf("pairing_foods 해석에 실패했습니다: %w", err)
		}
	}
	if len(imageURLs) > 0 {
		if err := json.Unmarshal(imageURLs, &rv.ImageURLs); err != nil {
			return nil, fmt.Errorf("image_urls 해석에 실패했습니다: %w", err)
		}
	}
	if len(aiNote) > 0 {
		note := &model.AINote{}
		if err := json.Unmarshal(aiNote, note); err != nil {
			return nil, fmt.Errorf("ai_note 해석에 실패했습니다: %w", err)
		}
		rv.AINote = note
	}

	return rv, nil
}

// Find 는 조건에 맞는 리뷰를 visit_date, created_at 내림차순으로 반환한다.
func (r *PostgresLiquorReviewRepo) Find(ctx context.Context, filter LiquorFilter) ([]*model.LiquorReview, error) {
	query := `SELECT ` + liquorReviewColumns + ` FROM liquor_reviews`
	where := []string{}
	args := []any{}

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Name != "" {
		where = append(where, `name ILIKE '%' || `+arg(filter.Name)+` || '%'`)
	}
	if filter.Category != "" {
		where = append(where, `category = `+arg(filter.Category))
	}
	if filter.PurchasePlace != "" {
		where = append(where, `purchase_place ILIKE '%' || `+arg(filter.PurchasePlace)+` || '%'`)
	}
	if filter.PairingFood != "" {
		// JSONB 배열 원소에 대한 부분 일치
		where = append(where, `EXISTS (
			SELECT 1 FROM jsonb_array_elements_text(pairing_foods) AS food
			WHERE food ILIKE '%' || `+arg(filter.PairingFood)+` || '%')`)
	}
	if filter.Comment != "" {
		p := arg(filter.Comment)
		where = append(where, `(comment_husband ILIKE '%' || `+p+` || '%' OR comment_wife ILIKE '%' || `+p+` || '%')`)
	}
	if filter.MinPrice != nil {
		where = append(where, `price >= `+arg(*filter.MinPrice))
	}
	if filter.MaxPrice != nil {
		where = append(where, `price <= `+arg(*filter.MaxPrice))
	}
	if filter.StartDate != "" {
		where = append(where, `visit_date >= `+arg(filter.StartDate))
	}
	if filter.EndDate != "" {
		where = append(where, `visit_date <= `+arg(filter.EndDate))
	}
	if filter.MinRatingHusband != nil {
		where = append(where, `rating_husband >= `+arg(*filter.MinRatingHusband))
	}
	if filter.MaxRatingHusband != nil {
		where = append(where, `rating_husband <= `+arg(*filter.MaxRatingHusband))
	}
	if filter.MinRatingWife != nil {
		where = append(where, `rating_wife >= `+arg(*filter.MinRatingWife))
	}
	if filter.MaxRatingWife != nil {
		where = append(where, `rating_wife <= `+arg(*filter.MaxRatingWife))
	}

	for i, cond := range where {
		if i == 0 {
			query += ` WHERE ` + cond
		} else {
			query += ` AND ` + cond
		}
	}
	query += ` ORDER BY visit_date DESC NULLS LAST, created_at DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("리뷰 목록 조회에 실패했습니다: %w", err)
	}
	defer rows.Close()

	reviews := []*model.LiquorReview{}
	for rows.Next() {
		rv, err := scanLiquorReview(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("리뷰 행 변환에 실패했습니다: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("리뷰 목록 순회에 실패했습니다: %w", err)
	}
	return reviews, nil
}

// FindByID 는 지정 ID의 리뷰를 반환한다. 없으면 nil을 반환한다.
func (r *PostgresLiquorReviewRepo) FindByID(ctx context.Context, id string) (*model.LiquorReview, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+liquorReviewColumns+` FROM liquor_reviews WHERE id = $1`, id)

	rv, err := scanLiquorReview(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("리뷰 조회에 실패했습니다: %w", err)
	}
	return rv, nil
}

// Create 는 리뷰를 생성한다.
func (r *PostgresLiquorReviewRepo) Create(ctx context.Context, rv *model.LiquorReview) error {
	pairingFoods, imageURLs, aiNote, err := marshalLiquorJSON(rv)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO liquor_reviews (id, name, category, purchase_place, pairing_foods, image_urls,
		    rating_husband, rating_wife, comment_husband, comment_wife,
		    visit_date, price, image_url, ai_note, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)`,
		rv.ID, rv.Name, rv.Category, nullString(rv.PurchasePlace), pairingFoods, imageURLs,
		rv.RatingHusband, rv.RatingWife, nullString(rv.CommentHusband), nullString(rv.CommentWife),
		nullString(rv.VisitDate), rv.Price, nullString(rv.ImageURL), aiNote,
		rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("리뷰 생성에 실패했습니다: %w", err)
	}
	return nil
}

// Update 는 리뷰 전체를 갱신한다.
func (r *PostgresLiquorReviewRepo) Update(ctx context.Context, rv *model.LiquorReview) error {
	pairingFoods, imageURLs, aiNote, err := marshalLiquorJSON(rv)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE liquor_reviews SET
		    name = $2, category = $3, purchase_place = $4, pairing_foods = $5, image_urls = $6,
		    rating_husband = $7, rating_wife = $8, comment_husband = $9, comment_wife = $10,
		    visit_date = $11, price = $12, image_url = $13, ai_note = $14, updated_at = $15
		 WHERE id = $1`,
		rv.ID, rv.Name, rv.Category, nullString(rv.PurchasePlace), pairingFoods, imageURLs,
		rv.RatingHusband, rv.RatingWife, nullString(rv.CommentHusband), nullString(rv.CommentWife),
		nullString(rv.VisitDate), rv.Price, nullString(rv.ImageURL), aiNote,
		rv.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("리뷰 갱신에 실패했습니다: %w", err)
	}
	return nil
}

// UpdateAINote 는 ai_note 필드만 갱신한다.
func (r *PostgresLiquorReviewRepo) UpdateAINote(ctx context.Context, id string, note *model.AINote) error {
	data, err := json.Marshal(note)
	if err != nil {
		return fmt.Errorf("ai_note 직렬화에 실패했습니다: %w", err)
	}

	_, err = r.db.ExecContext(ctx,
		`UPDATE liquor_reviews SET ai_note = $2, updated_at = now() WHERE id = $1`,
		id, data,
	)
	if err != nil {
		return fmt.Errorf("ai_note 갱신에 실패했습니다: %w", err)
	}
	return nil
}

// Delete 는 지정 ID의 리뷰를 삭제한다.
func (r *PostgresLiquorReviewRepo) Delete(ctx context.Context, id string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM liquor_reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("리뷰 삭제에 실패했습니다: %w", err)
	}
	return nil
}

// marshalLiquorJSON 은 JSONB 컬럼용 필드를 직렬화한다.
func marshalLiquorJSON(rv *model.LiquorReview) (pairingFoods, imageURLs, aiNote []byte, err error) {
	foods := rv.PairingFoods
	if foods == nil {
		foods = []string{}
	}
	pairingFoods, err = json.Marshal(foods)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("pairing_foods 직렬화에 실패했습니다: %w", err)
	}

	urls := rv.ImageURLs
	if urls == nil {
		urls = []string{}
	}
	imageURLs, err = json.Marshal(urls)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("image_urls 직렬화에 실패했습니다: %w", err)
	}

	if rv.AINote != nil {
		aiNote, err = json.Marshal(rv.AINote)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("ai_note 직렬화에 실패했습니다: %w", err)
		}
	}
	return pairingFoods, imageURLs, aiNote, nil
}
