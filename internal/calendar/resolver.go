// Package calendar 는 저장된 캘린더 이벤트를 특정 연/월의 발생 목록으로
// 해석하는 리졸버와 한국 공휴일 계산을 제공한다.
// 모든 계산은 읽기 전용이며 요청 간 상태를 공유하지 않는다.
package calendar

import (
	"github.com/minjun/sweethome/internal/lunar"
	"github.com/minjun/sweethome/internal/model"
)

// openEndedSentinel 은 종료일 미정 기간 이벤트의 가상 종료일.
// YYYY-MM-DD 사전식 비교에서 모든 실제 날짜보다 뒤에 온다.
const openEndedSentinel = "9999-12-31"

// ResolveMonth 는 저장된 전체 이벤트를 (year, month)에 해당하는
// 발생 목록으로 확장한다.
//
// 이벤트별 규칙:
//   - 매년 반복 + 음력: 음력→양력 변환 시 연 경계를 넘을 수 있으므로
//     year 와 year-1 두 음력 연도를 확인하고, 첫 일치에서 멈춘다(중복 방지).
//   - 매년 반복 + 양력: 저장된 월이 일치하면 연도를 조회 연도로 치환해 포함한다.
//   - 음력 단일: 저장된 음력 연도를 기준으로 변환해 일치하면 포함한다.
//   - 기간: [시작, 종료(미정이면 9999-12-31)] 가 조회 월과 겹치면 포함한다.
//   - 단일: 날짜가 조회 월 안이면 포함한다.
//
// 매년 반복이 기간 처리보다 우선한다. 두 플래그가 모두 켜진 이벤트는
// 반복 이벤트로만 해석된다. 변환 실패나 형식 오류는 해당 이벤트를 조용히
// 건너뛴다. 빠진 날짜보다 죽은 요청이 더 나쁘다는 정책이다.
func ResolveMonth(year, month int, events []*model.CalendarEvent) []model.ResolvedEvent {
	monthStart := FormatDate(year, month, 1)
	monthEnd := FormatDate(year, month, 31)

	result := []model.ResolvedEvent{}

	for _, ev := range events {
		if ev.IsYearly {
			if ev.IsLunar {
				_, lm, ld, ok := SplitDate(ev.Date)
				if !ok {
					continue
				}
				// 음력 12월은 양력으로 다음 해 1~2월이 되므로 전년도도 확인한다.
				for _, checkYear := range []int{year, year - 1} {
					solar, ok := lunar.ToSolar(checkYear, lm, ld)
					if !ok {
						continue
					}
					if solar.Year == year && solar.Month == month {
						resolved := ResolveEvent(ev, checkYear)
						resolved.SolarDate = solar.String()
						result = append(result, resolved)
						break
					}
				}
			} else {
				_, em, _, ok := SplitDate(ev.Date)
				if !ok {
					continue
				}
				if em == month {
					resolved := ResolveEvent(ev, year)
					// 표시용으로 연도만 조회 연도로 치환한다.
					resolved.Date = FormatDate(year, month, dayOf(ev.Date))
					if ev.EndDate != "" {
						if _, eem, eed, ok := SplitDate(ev.EndDate); ok {
							resolved.EndDate = FormatDate(year, eem, eed)
						}
					}
					result = append(result, resolved)
				}
			}
			continue
		}

		switch {
		case ev.IsLunar:
			ey, em, ed, ok := SplitDate(ev.Date)
			if !ok {
				continue
			}
			solar, ok := lunar.ToSolar(ey, em, ed)
			if ok && solar.Year == year && solar.Month == month {
				result = append(result, ResolveEvent(ev, ey))
			}
		case ev.IsRange:
			eventStart := ev.Date
			eventEnd := ev.EndDate
			if eventEnd == "" {
				eventEnd = openEndedSentinel
			}
			if eventStart <= monthEnd && eventEnd >= monthStart {
				result = append(result, ResolveEvent(ev, year))
			}
		default:
			if monthStart <= ev.Date && ev.Date <= monthEnd {
				result = append(result, ResolveEvent(ev, year))
			}
		}
	}

	return result
}

// ResolveEvent 는 이벤트 1건을 표시용 발생으로 변환한다.
// 음력 이벤트면 targetYear 를 음력 연도로 하여 양력 변환 날짜를 채운다.
// 변환 실패 시 SolarDate/SolarEndDate 는 빈 문자열로 남는다.
func ResolveEvent(ev *model.CalendarEvent, targetYear int) model.ResolvedEvent {
	resolved := model.ResolvedEvent{
		Event:   *ev,
		Date:    ev.Date,
		EndDate: ev.EndDate,
	}

	if !ev.IsLunar {
		return resolved
	}

	if _, lm, ld, ok := SplitDate(ev.Date); ok {
		if solar, ok := lunar.ToSolar(targetYear, lm, ld); ok {
			resolved.SolarDate = solar.String()
		}
	}
	if ev.EndDate != "" {
		if _, lm, ld, ok := SplitDate(ev.EndDate); ok {
			if solar, ok := lunar.ToSolar(targetYear, lm, ld); ok {
				resolved.SolarEndDate = solar.String()
			}
		}
	}

	return resolved
}

// dayOf 는 검증이 끝난 YYYY-MM-DD 문자열에서 일을 읽는다.
func dayOf(date string) int {
	_, _, d, _ := SplitDate(date)
	return d
}
