// Package model 은 도메인 모델을 정의한다.
package model

import "time"

// CalendarEvent 는 캘린더 이벤트 문서를 표현한다.
// Date/EndDate 는 YYYY-MM-DD 문자열이며, IsLunar 가 true 인 경우
// 저장된 값은 음력 날짜다(연도는 음력 연도로 해석한다).
type CalendarEvent struct {
	ID        string
	Title     string
	Date      string
	EndDate   string // 빈 문자열이면 종료일 미정
	Memo      string
	IsYearly  bool // 매년 반복 여부
	IsLunar   bool // 음력 여부
	IsRange   bool // 기간 이벤트 여부
	Color     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ResolvedEvent 는 특정 연/월 조회에 대해 확정된 이벤트 발생 1건을 표현한다.
// 음력 이벤트의 경우 SolarDate/SolarEndDate 에 양력 변환 결과가 담긴다.
type ResolvedEvent struct {
	Event        CalendarEvent
	Date         string // 표시용 시작일(매년 반복 양력 이벤트는 조회 연도로 치환됨)
	EndDate      string
	SolarDate    string // 음력 이벤트의 양력 변환 날짜(변환 실패 시 빈 문자열)
	SolarEndDate string
}

// Holiday 는 계산으로 얻어지는 공휴일 1건을 표현한다. 저장되지 않는다.
type Holiday struct {
	Date    string `json:"date"`
	Name    string `json:"name"`
	IsLunar bool   `json:"is_lunar"`
}
