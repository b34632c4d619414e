package calendar

import (
	"fmt"
	"time"
)

// ParseDate 는 0 패딩된 YYYY-MM-DD 문자열을 (연, 월, 일)로 분해한다.
// 형식이 다르거나 실제로 존재하지 않는 양력 날짜면 ok=false 를 반환한다.
// 저장된 날짜 문자열의 사전식 비교가 시간순 비교와 일치하려면
// 반드시 이 형식을 지켜야 한다.
func ParseDate(s string) (year, month, day int, ok bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return 0, 0, 0, false
	}
	return t.Year(), int(t.Month()), t.Day(), true
}

// SplitDate 는 YYYY-MM-DD 형식만 검사하고 (연, 월, 일)로 분해한다.
// 음력 날짜 문자열은 양력 달력에 존재하지 않는 날(예: 2025-01-30이 없는 해의
// 음력 1월 30일)을 담을 수 있으므로 실제 날짜 검증 없이 숫자만 취한다.
func SplitDate(s string) (year, month, day int, ok bool) {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return 0, 0, 0, false
	}
	if _, err := fmt.Sscanf(s, "%4d-%2d-%2d", &year, &month, &day); err != nil {
		return 0, 0, 0, false
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

// FormatDate 는 (연, 월, 일)을 0 패딩된 YYYY-MM-DD 문자열로 만든다.
func FormatDate(year, month, day int) string {
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}
