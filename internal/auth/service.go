// Package auth 는 계정 가입/로그인과 JWT 토큰 발급·검증을 제공한다.
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/minjun/sweethome/internal/model"
	"github.com/minjun/sweethome/internal/repository"
)

// Service 는 인증 서비스 계층.
type Service struct {
	users       repository.UserRepository
	secret      []byte
	tokenExpire time.Duration
}

// NewService 는 Service 를 생성한다.
func NewService(users repository.UserRepository, secret string, tokenExpire time.Duration) *Service {
	return &Service{
		users:       users,
		secret:      []byte(secret),
		tokenExpire: tokenExpire,
	}
}

// Signup 은 계정을 생성한다. 이미 등록된 아이디면 에러를 반환한다.
func (s *Service) Signup(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, model.NewInvalidRequestError("아이디와 비밀번호가 필요합니다")
	}

	existing, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("계정 조회에 실패했습니다: %w", err)
	}
	if existing != nil {
		return nil, model.NewDuplicateUsernameError(username)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("비밀번호 해시 생성에 실패했습니다: %w", err)
	}

	user := &model.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("계정 생성에 실패했습니다: %w", err)
	}

	return user, nil
}

// Login 은 아이디/비밀번호를 검증하고 액세스 토큰을 발급한다.
// 아이디 미존재와 비밀번호 불일치는 같은 에러로 반환해 계정 존재 여부를
// 노출하지 않는다.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("계정 조회에 실패했습니다: %w", err)
	}
	if user == nil {
		return "", model.NewInvalidCredentialError()
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", model.NewInvalidCredentialError()
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": user.Username,
		"iat": now.Unix(),
		"exp": now.Add(s.tokenExpire).Unix(),
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("토큰 서명에 실패했습니다: %w", err)
	}

	return signed, nil
}

// ParseToken 은 액세스 토큰을 검증하고 사용자 아이디(sub)를 반환한다.
// 서명 불일치, 만료, 형식 오류는 모두 인증 실패로 취급한다.
func (s *Service) ParseToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("지원하지 않는 서명 방식입니다: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", model.NewUnauthorizedError()
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", model.NewUnauthorizedError()
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", model.NewUnauthorizedError()
	}

	return sub, nil
}
