package security

import (
	"strings"
	"testing"
)

// TestSanitize_AllowedTags 는 허용 태그가 그대로 통과하는지 검증한다.
func TestSanitize_AllowedTags(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name         string
		input        string
		wantContains []string
	}{
		{
			name:         "p 태그 허용",
			input:        "<p>오늘의 일기</p>",
			wantContains: []string{"<p>오늘의 일기</p>"},
		},
		{
			name:         "strong/em 태그 허용",
			input:        "<strong>중요</strong>하고 <em>강조</em>되는 내용",
			wantContains: []string{"<strong>중요</strong>", "<em>강조</em>"},
		},
		{
			name:         "목록 태그 허용",
			input:        "<ul><li>장보기</li><li>청소</li></ul>",
			wantContains: []string{"<ul>", "<li>장보기</li>", "<li>청소</li>", "</ul>"},
		},
		{
			name:         "인용 태그 허용",
			input:        "<blockquote>오늘 들은 말</blockquote>",
			wantContains: []string{"<blockquote>오늘 들은 말</blockquote>"},
		},
		{
			name:         "https 이미지 허용",
			input:        `<img src="https://example.com/photo.jpg" alt="사진">`,
			wantContains: []string{"<img", "https://example.com/photo.jpg", `alt="사진"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Sanitize(tt.input)
			for _, want := range tt.wantContains {
				if !strings.Contains(got, want) {
					t.Errorf("Sanitize(%q) = %q, %q 가 포함돼야 합니다", tt.input, got, want)
				}
			}
		})
	}
}

// TestSanitize_ForbiddenContent 는 위험 요소가 제거되는지 검증한다.
func TestSanitize_ForbiddenContent(t *testing.T) {
	sanitizer := NewContentSanitizer()

	tests := []struct {
		name       string
		input      string
		wantAbsent []string
	}{
		{
			name:       "script 태그 제거",
			input:      `<p>일기</p><script>alert('xss')</script>`,
			wantAbsent: []string{"<script", "alert"},
		},
		{
			name:       "iframe 태그 제거",
			input:      `<iframe src="https://evil.com"></iframe><p>일기</p>`,
			wantAbsent: []string{"<iframe", "evil.com"},
		},
		{
			name:       "on* 이벤트 속성 제거",
			input:      `<p onclick="steal()">일기</p>`,
			wantAbsent: []string{"onclick", "steal"},
		},
		{
			name:       "http 이미지 거부",
			input:      `<img src="http://example.com/photo.jpg" alt="사진">`,
			wantAbsent: []string{"http://example.com/photo.jpg"},
		},
		{
			name:       "javascript URI 거부",
			input:      `<a href="javascript:alert('xss')">클릭</a>`,
			wantAbsent: []string{"javascript:"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sanitizer.Sanitize(tt.input)
			for _, absent := range tt.wantAbsent {
				if strings.Contains(got, absent) {
					t.Errorf("Sanitize(%q) = %q, %q 는 제거돼야 합니다", tt.input, got, absent)
				}
			}
		})
	}
}

// TestSanitize_AnchorAttributes 는 a 태그에 새 창 속성이 부여되는지 검증한다.
func TestSanitize_AnchorAttributes(t *testing.T) {
	sanitizer := NewContentSanitizer()

	got := sanitizer.Sanitize(`<a href="https://example.com">링크</a>`)
	for _, want := range []string{`target="_blank"`, "noopener", "noreferrer"} {
		if !strings.Contains(got, want) {
			t.Errorf("결과에 %q 가 포함돼야 합니다: %q", want, got)
		}
	}
}

// TestSanitize_PlainText 는 평문이 변형 없이 통과하는지 검증한다.
func TestSanitize_PlainText(t *testing.T) {
	sanitizer := NewContentSanitizer()

	input := "오늘은 날씨가 좋아서 한강에 다녀왔다."
	if got := sanitizer.Sanitize(input); got != input {
		t.Errorf("Sanitize(%q) = %q, 변형 없이 통과해야 합니다", input, got)
	}

	if got := sanitizer.Sanitize(""); got != "" {
		t.Errorf("빈 입력은 빈 출력이어야 합니다: %q", got)
	}
}

// TestSanitize_Idempotent 는 이중 정화가 결과를 바꾸지 않는지 검증한다.
func TestSanitize_Idempotent(t *testing.T) {
	sanitizer := NewContentSanitizer()

	input := `<p>일기 <strong>본문</strong></p><img src="https://example.com/p.jpg" alt="사진">`
	once := sanitizer.Sanitize(input)
	twice := sanitizer.Sanitize(once)
	if once != twice {
		t.Errorf("이중 정화로 결과가 바뀌었습니다: %q → %q", once, twice)
	}
}

// TestContentSanitizerInterface 는 인터페이스 적합성을 검증한다.
func TestContentSanitizerInterface(t *testing.T) {
	var _ ContentSanitizerService = NewContentSanitizer()
}
