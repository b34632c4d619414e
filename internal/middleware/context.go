package middleware

import (
	"context"
	"errors"
)

// contextKey 는 컨텍스트 충돌을 피하기 위한 전용 키 타입.
type contextKey string

const usernameKey contextKey = "username"

// ErrNoUsername 은 컨텍스트에 인증 정보가 없을 때 반환된다.
var ErrNoUsername = errors.New("컨텍스트에 사용자 정보가 없습니다")

// WithUsername 은 인증된 사용자 아이디를 컨텍스트에 담는다.
func WithUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// UsernameFromContext 는 컨텍스트에서 인증된 사용자 아이디를 꺼낸다.
func UsernameFromContext(ctx context.Context) (string, error) {
	username, ok := ctx.Value(usernameKey).(string)
	if !ok || username == "" {
		return "", ErrNoUsername
	}
	return username, nil
}
