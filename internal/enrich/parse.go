// Package enrich 는 주류 리뷰의 AI 시음 노트 생성 백그라운드 워크플로를 제공한다.
// 생성 트리거(등록/이름 변경), 큐 기반 워커, 방어적 응답 해석을 포함한다.
package enrich

import (
	"encoding/json"
	"strings"
)

// maxFallbackDescription 은 해석 실패 시 description 으로 쓰는
// 원문 조각의 최대 길이(룬 단위).
const maxFallbackDescription = 300

// NoteFields 는 모델 응답에서 기대하는 5개 문자열 필드.
type NoteFields struct {
	Description string `json:"description"`
	Taste       string `json:"taste"`
	Aroma       string `json:"aroma"`
	Variety     string `json:"variety"`
	Pairing     string `json:"pairing"`
}

// ExtractJSONObject 는 원문에서 최초의 '{' 부터 마지막 '}' 까지를 잘라낸다.
// 모델이 JSON 앞뒤에 설명 문장이나 코드펜스를 붙이는 경우를 허용하기 위한
// 탐욕적 추출이다. 중괄호 쌍이 없으면 ok=false 를 반환한다.
func ExtractJSONObject(raw string) (string, bool) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return "", false
	}
	return raw[start : end+1], true
}

// ParseNote 는 모델 원문 응답을 5필드 구조로 해석한다.
// 추출이나 JSON 해석에 실패하면 원문 앞부분(최대 300자)을 description 으로,
// 나머지 필드를 "-" 로 채운 대체 결과를 반환하며 degraded=true 를 표시한다.
// 이 함수는 어떤 입력에도 실패하지 않는다. 호출 실패와 달리 해석 실패는
// 항상 (품질이 떨어진) COMPLETED 로 끝나야 하기 때문이다.
func ParseNote(raw string) (fields NoteFields, degraded bool) {
	if extracted, ok := ExtractJSONObject(raw); ok {
		if err := json.Unmarshal([]byte(extracted), &fields); err == nil {
			return fields, false
		}
	}

	return NoteFields{
		Description: truncateRunes(strings.TrimSpace(raw), maxFallbackDescription),
		Taste:       "-",
		Aroma:       "-",
		Variety:     "-",
		Pairing:     "-",
	}, true
}

// truncateRunes 는 문자열을 룬 단위 최대 길이로 자른다.
// 한글이 바이트 경계에서 깨지지 않도록 바이트가 아닌 룬으로 센다.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
