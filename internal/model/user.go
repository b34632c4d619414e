package model

import "time"

// User 는 로그인 계정을 표현한다. 가족 구성원 수만큼만 존재한다.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
