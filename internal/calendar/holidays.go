package calendar

import (
	"sort"

	"github.com/minjun/sweethome/internal/lunar"
	"github.com/minjun/sweethome/internal/model"
)

// fixedHoliday 는 매년 같은 양력 월/일에 오는 공휴일.
type fixedHoliday struct {
	month int
	day   int
	name  string
}

// lunarHoliday 는 음력 기준 공휴일.
type lunarHoliday struct {
	month    int
	day      int
	name     string
	extended bool // 전날/다음날도 연휴로 포함하는지 여부
}

var fixedHolidays = []fixedHoliday{
	{1, 1, "신정"},
	{3, 1, "삼일절"},
	{5, 5, "어린이날"},
	{6, 6, "현충일"},
	{8, 15, "광복절"},
	{10, 3, "개천절"},
	{10, 9, "한글날"},
	{12, 25, "크리스마스"},
}

var lunarHolidays = []lunarHoliday{
	{1, 1, "설날", true},
	{4, 8, "석가탄신일", false},
	{8, 15, "추석", true},
}

// Holidays 는 해당 연도의 한국 공휴일을 날짜 오름차순으로 반환한다.
// 음력 공휴일은 양력으로 변환해 담고, 변환에 실패한 항목은 조용히 뺀다.
// 설날과 추석은 음력 기준 전날/다음날을 "<이름> 연휴" 로 추가하되,
// 각 항목의 변환 실패는 독립적으로 건너뛴다. 음력 1일의 전날은
// 이전 달로 넘어가는 계산을 하지 않고 생략한다.
func Holidays(year int) []model.Holiday {
	holidays := []model.Holiday{}

	for _, h := range fixedHolidays {
		holidays = append(holidays, model.Holiday{
			Date:    FormatDate(year, h.month, h.day),
			Name:    h.name,
			IsLunar: false,
		})
	}

	for _, h := range lunarHolidays {
		solar, ok := lunar.ToSolar(year, h.month, h.day)
		if !ok {
			continue
		}
		holidays = append(holidays, model.Holiday{
			Date:    solar.String(),
			Name:    h.name,
			IsLunar: true,
		})

		if !h.extended {
			continue
		}

		if h.day > 1 {
			if prev, ok := lunar.ToSolar(year, h.month, h.day-1); ok {
				holidays = append(holidays, model.Holiday{
					Date:    prev.String(),
					Name:    h.name + " 연휴",
					IsLunar: true,
				})
			}
		}
		if next, ok := lunar.ToSolar(year, h.month, h.day+1); ok {
			holidays = append(holidays, model.Holiday{
				Date:    next.String(),
				Name:    h.name + " 연휴",
				IsLunar: true,
			})
		}
	}

	sort.SliceStable(holidays, func(i, j int) bool {
		return holidays[i].Date < holidays[j].Date
	})

	return holidays
}
