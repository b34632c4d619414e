// Package logger 는 JSON 구조화 로그 설정을 제공한다.
package logger

import (
	"io"
	"log/slog"
	"os"
)

// Setup 은 JSON 구조화 로그를 출력하는 slog.Logger 를 생성해 반환한다.
func Setup(w io.Writer) *slog.Logger {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	return slog.New(handler)
}

// SetupDefault 는 JSON 구조화 로그를 글로벌 로거로 설정한다.
// w 가 nil 이면 os.Stdout 으로 출력한다.
func SetupDefault(w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	slog.SetDefault(Setup(w))
}
