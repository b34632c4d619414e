// Package ai 는 생성형 텍스트 서비스(Gemini) 호출 클라이언트를 제공한다.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// defaultEndpoint 는 Gemini generateContent API 의 베이스 URL.
const defaultEndpoint = "https://generativelanguage.googleapis.com/v1beta"

// Client 는 Gemini API 클라이언트.
// 시음 노트 프롬프트를 보내고 모델의 원문 텍스트 응답을 돌려준다.
type Client struct {
	apiKey     string
	model      string
	httpClient *http.Client
	logger     *slog.Logger
	endpoint   string // 테스트에서 교체 가능
}

// NewClient 는 Client 를 생성한다. apiKey 가 비어 있으면 호출 시 에러를 반환한다.
func NewClient(apiKey, model string, httpClient *http.Client, logger *slog.Logger) *Client {
	return &Client{
		apiKey:     apiKey,
		model:      model,
		httpClient: httpClient,
		logger:     logger,
		endpoint:   defaultEndpoint,
	}
}

// SetEndpoint 는 API 베이스 URL 을 교체한다. 테스트용.
func (c *Client) SetEndpoint(endpoint string) {
	c.endpoint = endpoint
}

// generateRequest 는 generateContent 요청 본문.
type generateRequest struct {
	Contents       []content       `json:"contents"`
	SafetySettings []safetySetting `json:"safetySettings"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type safetySetting struct {
	Category  string `json:"category"`
	Threshold string `json:"threshold"`
}

// generateResponse 는 generateContent 응답에서 필요한 부분만 취한다.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// safetyOff 는 전 카테고리 안전 필터 해제 설정.
// 주류 관련 프롬프트가 필터에 걸려 빈 응답이 오는 것을 막는다.
var safetyOff = []safetySetting{
	{Category: "HARM_CATEGORY_HARASSMENT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_HATE_SPEECH", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_SEXUALLY_EXPLICIT", Threshold: "BLOCK_NONE"},
	{Category: "HARM_CATEGORY_DANGEROUS_CONTENT", Threshold: "BLOCK_NONE"},
}

// tastingNotePrompt 는 주류 시음 노트 프롬프트를 만든다.
// 응답은 영어 키 5개를 갖는 JSON 객체 하나여야 한다.
func tastingNotePrompt(name string) string {
	return fmt.Sprintf(`술 이름: %s

이 술에 대한 정보를 다음 5가지 항목으로 JSON 형식으로만 답해주세요.
키(key) 이름은 반드시 아래 영어 단어를 사용하세요.

{
    "description": "이 술에 대한 1~2문장 소개 (한국어)",
    "taste": "맛의 특징 (단맛, 쓴맛, 바디감 등)",
    "aroma": "향의 특징 (과일, 오크, 바닐라 등)",
    "variety": "품종 또는 원료 (예: 피노 누아, 보리, 쌀)",
    "pairing": "잘 어울리는 음식 추천"
}`, name)
}

// GenerateTastingNote 는 주류명에 대한 시음 노트 생성을 요청하고
// 모델이 낸 원문 텍스트를 그대로 반환한다. JSON 추출/해석은 호출자 몫이다.
func (c *Client) GenerateTastingNote(ctx context.Context, name string) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("AI API 키가 설정되지 않았습니다")
	}

	body := generateRequest{
		Contents:       []content{{Parts: []part{{Text: tastingNotePrompt(name)}}}},
		SafetySettings: safetyOff,
	}
	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("요청 본문 직렬화에 실패했습니다: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.endpoint, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("HTTP 요청 생성에 실패했습니다: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("AI 호출에 실패했습니다: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		c.logger.Error("AI API가 에러 상태를 반환했습니다",
			slog.Int("http_status", resp.StatusCode),
			slog.String("model", c.model),
		)
		return "", fmt.Errorf("AI API가 상태 %d 를 반환했습니다: %s", resp.StatusCode, data)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("응답 본문 읽기에 실패했습니다: %w", err)
	}

	var result generateResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return "", fmt.Errorf("응답 JSON 해석에 실패했습니다: %w", err)
	}
	if len(result.Candidates) == 0 {
		return "", fmt.Errorf("응답에 후보가 없습니다")
	}

	var sb strings.Builder
	for _, p := range result.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return sb.String(), nil
}
