package model

import "time"

// DiaryComment 는 일기에 내장되는 코멘트를 표현한다.
type DiaryComment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Diary 는 부부가 공유하는 일기 문서를 표현한다.
type Diary struct {
	ID        string
	Title     string
	Content   string
	Author    string // husband, wife
	Date      string // 사용자가 지정하는 날짜(YYYY-MM-DD), 빈 문자열 허용
	Mood      string // happy, sad, angry, tired, excited 등
	Weather   string // sunny, cloudy, rainy, snowy
	ImageURL  string
	Comments  []DiaryComment
	CreatedAt time.Time
	UpdatedAt time.Time
}
