// Package metrics 는 Prometheus 메트릭 수집과 공개를 제공한다.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EnrichmentCollector 는 시음 노트 생성 작업의 메트릭 수집 인터페이스.
// 워커에서 사용한다.
type EnrichmentCollector interface {
	RecordEnrichSuccess()
	RecordEnrichFailure()
	RecordEnrichParseFallback()
	RecordEnrichLatency(duration time.Duration)
}

// Collector 는 Prometheus 메트릭을 수집하는 구현.
type Collector struct {
	enrichSuccess  prometheus.Counter
	enrichFail     prometheus.Counter
	parseFallback  prometheus.Counter
	enrichLatency  prometheus.Histogram
	httpStatus     *prometheus.CounterVec
}

// NewCollector 는 Collector 를 생성하고 지정 레지스트리에 메트릭을 등록한다.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		enrichSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sweethome_enrich_success_total",
			Help: "AI 시음 노트 생성 성공 합계",
		}),
		enrichFail: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sweethome_enrich_fail_total",
			Help: "AI 시음 노트 생성 실패(호출 실패) 합계",
		}),
		parseFallback: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "sweethome_enrich_parse_fallback_total",
			Help: "응답 해석 실패로 대체 콘텐츠를 저장한 합계",
		}),
		enrichLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "sweethome_enrich_latency_seconds",
			Help:    "AI 시음 노트 생성 지연(초)",
			Buckets: prometheus.DefBuckets,
		}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "sweethome_http_status_total",
			Help: "HTTP 상태 코드별 응답 수",
		}, []string{"status_code"}),
	}

	reg.MustRegister(
		c.enrichSuccess,
		c.enrichFail,
		c.parseFallback,
		c.enrichLatency,
		c.httpStatus,
	)

	return c
}

// RecordEnrichSuccess 는 생성 성공을 기록한다.
func (c *Collector) RecordEnrichSuccess() {
	c.enrichSuccess.Inc()
}

// RecordEnrichFailure 는 호출 실패를 기록한다.
func (c *Collector) RecordEnrichFailure() {
	c.enrichFail.Inc()
}

// RecordEnrichParseFallback 은 해석 실패 대체 저장을 기록한다.
func (c *Collector) RecordEnrichParseFallback() {
	c.parseFallback.Inc()
}

// RecordEnrichLatency 는 생성 지연을 기록한다.
func (c *Collector) RecordEnrichLatency(duration time.Duration) {
	c.enrichLatency.Observe(duration.Seconds())
}

// RecordHTTPStatus 는 HTTP 상태 코드를 기록한다.
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// Handler 는 Prometheus 스크레이프용 HTTP 핸들러를 반환한다.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
