package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/minjun/sweethome/internal/model"
)

// PostgresUserRepo 는 PostgreSQL 기반 계정 리포지토리.
type PostgresUserRepo struct {
	db *sql.DB
}

// NewPostgresUserRepo 는 PostgresUserRepo 를 생성한다.
func NewPostgresUserRepo(db *sql.DB) *PostgresUserRepo {
	return &PostgresUserRepo{db: db}
}

// FindByUsername 은 아이디로 계정을 찾는다. 없으면 nil을 반환한다.
func (r *PostgresUserRepo) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	user := &model.User{}

	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, password_hash, created_at FROM users WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("계정 조회에 실패했습니다: %w", err)
	}
	return user, nil
}

// Create 는 계정을 생성한다.
func (r *PostgresUserRepo) Create(ctx context.Context, user *model.User) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO users (id, username, password_hash, created_at) VALUES ($1, $2, $3, $4)`,
		user.ID, user.Username, user.PasswordHash, user.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("계정 생성에 실패했습니다: %w", err)
	}
	return nil
}
