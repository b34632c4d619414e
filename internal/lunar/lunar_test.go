package lunar

import "testing"

func TestToSolar_KnownDates(t *testing.T) {
	cases := []struct {
		name                string
		year, month, day    int
		wantY, wantM, wantD int
	}{
		{"설날 2025", 2025, 1, 1, 2025, 1, 29},
		{"추석 2025", 2025, 8, 15, 2025, 10, 6},
		{"석가탄신일 2025", 2025, 4, 8, 2025, 5, 5},
		{"설날 2024", 2024, 1, 1, 2024, 2, 10},
		{"추석 2024", 2024, 8, 15, 2024, 9, 17},
		{"설날 2023", 2023, 1, 1, 2023, 1, 22},
		{"설날 2026", 2026, 1, 1, 2026, 2, 17},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ToSolar(tc.year, tc.month, tc.day)
			if !ok {
				t.Fatalf("변환 실패: %d-%d-%d", tc.year, tc.month, tc.day)
			}
			if got.Year != tc.wantY || got.Month != tc.wantM || got.Day != tc.wantD {
				t.Errorf("음력 %d-%d-%d → %s, 기대 %04d-%02d-%02d",
					tc.year, tc.month, tc.day, got, tc.wantY, tc.wantM, tc.wantD)
			}
		})
	}
}

func TestToLunar_KnownDates(t *testing.T) {
	// 양력 2025-01-29 는 음력 2025-01-01
	got, ok := ToLunar(2025, 1, 29)
	if !ok {
		t.Fatal("변환 실패")
	}
	if got.Year != 2025 || got.Month != 1 || got.Day != 1 {
		t.Errorf("양력 2025-01-29 → %s, 기대 2025-01-01", got)
	}

	// 양력 2025-10-06 은 음력 2025-08-15
	got, ok = ToLunar(2025, 10, 6)
	if !ok {
		t.Fatal("변환 실패")
	}
	if got.Year != 2025 || got.Month != 8 || got.Day != 15 {
		t.Errorf("양력 2025-10-06 → %s, 기대 2025-08-15", got)
	}
}

func TestRoundTrip(t *testing.T) {
	// 평달 날짜는 음력→양력→음력이 원래 값으로 돌아와야 한다.
	cases := []struct{ y, m, d int }{
		{2025, 1, 1},
		{2025, 8, 15},
		{2024, 4, 8},
		{2023, 12, 25},
	}
	for _, tc := range cases {
		solar, ok := ToSolar(tc.y, tc.m, tc.d)
		if !ok {
			t.Fatalf("음력→양력 변환 실패: %d-%d-%d", tc.y, tc.m, tc.d)
		}
		back, ok := ToLunar(solar.Year, solar.Month, solar.Day)
		if !ok {
			t.Fatalf("양력→음력 변환 실패: %s", solar)
		}
		if back.Year != tc.y || back.Month != tc.m || back.Day != tc.d {
			t.Errorf("왕복 결과 불일치: %d-%d-%d → %s → %s", tc.y, tc.m, tc.d, solar, back)
		}
	}
}

func TestToSolar_InvalidInput(t *testing.T) {
	cases := []struct{ y, m, d int }{
		{2025, 0, 1},
		{2025, 13, 1},
		{2025, 1, 0},
		{2025, 1, 31}, // 음력 일은 최대 30
	}
	for _, tc := range cases {
		if _, ok := ToSolar(tc.y, tc.m, tc.d); ok {
			t.Errorf("잘못된 입력이 통과했습니다: %d-%d-%d", tc.y, tc.m, tc.d)
		}
	}
}

func TestToLunar_InvalidInput(t *testing.T) {
	cases := []struct{ y, m, d int }{
		{2025, 0, 1},
		{2025, 13, 1},
		{2025, 1, 32},
	}
	for _, tc := range cases {
		if _, ok := ToLunar(tc.y, tc.m, tc.d); ok {
			t.Errorf("잘못된 입력이 통과했습니다: %d-%d-%d", tc.y, tc.m, tc.d)
		}
	}
}
