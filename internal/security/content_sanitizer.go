// Package security 는 애플리케이션의 보안 기능을 제공한다.
//
// ContentSanitizerService 는 일기 본문과 코멘트의 HTML 콘텐츠를
// 정화해 XSS 등의 위험으로부터 보호한다. bluemonday 의 허용 목록
// 기반 정책으로 안전한 태그와 속성만 통과시킨다.
package security

import (
	"net/url"

	"github.com/microcosm-cc/bluemonday"
)

// ContentSanitizerService 는 HTML 정화 기능의 인터페이스.
// 일기 본문과 코멘트의 저장 전에 사용된다.
type ContentSanitizerService interface {
	// Sanitize 는 HTML 콘텐츠를 정화해 안전한 HTML 을 반환한다.
	// 허용 태그(p, br, a, ul, ol, li, blockquote, pre, code, strong, em, img)만
	// 통과시키고 script, iframe, style 태그와 on* 이벤트 속성은 제거한다.
	// img 의 src 속성은 https 스킴만 허용한다.
	// 빈 문자열 입력에는 빈 문자열을 반환하며, 같은 입력에 항상 같은
	// 출력을 낸다.
	Sanitize(rawHTML string) string
}

// contentSanitizer 는 ContentSanitizerService 의 구현.
// bluemonday 정책을 보유하며 정화 처리는 스레드 세이프하다.
type contentSanitizer struct {
	policy *bluemonday.Policy
}

// NewContentSanitizer 는 정화 정책을 구성해 새 인스턴스를 생성한다.
func NewContentSanitizer() *contentSanitizer {
	p := bluemonday.NewPolicy()

	// 허용 목록에 없는 태그(script, iframe, style 등)와 on* 이벤트
	// 속성은 자동으로 제거된다.
	p.AllowElements(
		"p", "br", "ul", "ol", "li",
		"blockquote", "pre", "code",
		"strong", "em",
	)

	// a 태그는 href 만 허용하고 새 창 열기 속성을 강제한다.
	p.AllowAttrs("href").OnElements("a")
	p.AllowRelativeURLs(false)
	p.AddTargetBlankToFullyQualifiedLinks(true)
	p.RequireNoReferrerOnLinks(true)

	// img 는 https 스킴의 src 와 alt 만 허용한다.
	p.AllowAttrs("src").OnElements("img")
	p.AllowAttrs("alt").OnElements("img")
	p.AllowURLSchemeWithCustomPolicy("https", func(u *url.URL) bool {
		return true
	})

	return &contentSanitizer{
		policy: p,
	}
}

// Sanitize 는 HTML 콘텐츠를 정화해 안전한 HTML 을 반환한다.
func (s *contentSanitizer) Sanitize(rawHTML string) string {
	return s.policy.Sanitize(rawHTML)
}
