// Package lunar 는 한국 음력(태음태양력)과 양력 사이의 날짜 변환을 제공한다.
// 변환 자체는 검증된 천문 산출 기반 라이브러리(6tail/lunar-go)에 위임하고,
// 이 패키지는 호출자 비즈니스 로직으로 절대 panic 이 전파되지 않도록
// ok-플래그 반환으로 감싸는 경계 역할만 한다.
//
// 윤달 주의: 양력→음력 변환 결과가 윤달에 해당하는 경우 월 번호만 취하고
// 윤달 여부는 버린다. 음력→양력 변환은 항상 평달로 해석한다.
// (원 시스템의 저장 포맷이 YYYY-MM-DD 문자열이라 윤달을 표현할 수 없다.)
package lunar

import (
	"fmt"

	"github.com/6tail/lunar-go/calendar"
)

// SolarDate 는 양력 날짜 하나를 표현한다.
type SolarDate struct {
	Year  int
	Month int
	Day   int
}

// String 은 YYYY-MM-DD 형식으로 반환한다.
func (d SolarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// LunarDate 는 음력 날짜 하나를 표현한다.
type LunarDate struct {
	Year  int
	Month int
	Day   int
}

// String 은 YYYY-MM-DD 형식으로 반환한다.
func (d LunarDate) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// ToSolar 는 음력 (year, month, day) 를 양력 날짜로 변환한다.
// 존재하지 않는 날짜(예: 29일까지인 달의 30일)나 지원 범위 밖 입력이면
// ok=false 를 반환한다. 호출자는 실패를 "해당 발생 건너뜀"으로 취급해야 한다.
func ToSolar(year, month, day int) (result SolarDate, ok bool) {
	defer func() {
		// lunar-go 는 잘못된 입력에 panic 하므로 여기서 흡수한다.
		if r := recover(); r != nil {
			result = SolarDate{}
			ok = false
		}
	}()

	if month < 1 || month > 12 || day < 1 || day > 30 {
		return SolarDate{}, false
	}

	l := calendar.NewLunarFromYmd(year, month, day)
	s := l.GetSolar()
	return SolarDate{Year: s.GetYear(), Month: s.GetMonth(), Day: s.GetDay()}, true
}

// ToLunar 는 양력 (year, month, day) 를 음력 날짜로 변환한다.
// 결과가 윤달이면 월 번호만 취한다. 잘못된 입력이면 ok=false 를 반환한다.
func ToLunar(year, month, day int) (result LunarDate, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			result = LunarDate{}
			ok = false
		}
	}()

	if month < 1 || month > 12 || day < 1 || day > 31 {
		return LunarDate{}, false
	}

	s := calendar.NewSolarFromYmd(year, month, day)
	l := s.GetLunar()

	lm := l.GetMonth()
	if lm < 0 {
		// 윤달은 음수 월로 표현되므로 평달 번호로 정규화한다.
		lm = -lm
	}
	return LunarDate{Year: l.GetYear(), Month: lm, Day: l.GetDay()}, true
}
