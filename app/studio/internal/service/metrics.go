package service

import (
	nethttp "net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// 生成结果标签
const (
	OutcomeSuccess = "success"
	OutcomeInvalid = "invalid"
	OutcomeFailed  = "failed"
)

// Metrics 服务指标，使用独立的 registry
type Metrics struct {
	registry           *prometheus.Registry
	generations        *prometheus.CounterVec
	complianceWarnings prometheus.Counter
}

// NewMetrics 创建并注册指标
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	return &Metrics{
		registry: registry,
		generations: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "post_studio_generations_total",
				Help: "Total number of post generations, partitioned by outcome.",
			},
			[]string{"outcome"},
		),
		complianceWarnings: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "post_studio_compliance_warnings_total",
				Help: "Total number of generated captions flagged by the compliance scan.",
			},
		),
	}
}

// ObserveGeneration 记录一次生成结果
func (m *Metrics) ObserveGeneration(outcome string, flagged bool) {
	m.generations.WithLabelValues(outcome).Inc()
	if flagged {
		m.complianceWarnings.Inc()
	}
}

// Handler /metrics 处理器
func (m *Metrics) Handler() nethttp.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
