package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsBuilder 按 method/path/status 维度记录请求耗时和次数，
// 指标由 governor 端口上的 /metrics 暴露出去
type MetricsBuilder struct {
	summaryVec *prometheus.SummaryVec
	counterVec *prometheus.CounterVec
}

func NewMetricsBuilder() *MetricsBuilder {
	summaryVec := promauto.NewSummaryVec(
		prometheus.SummaryOpts{
			Namespace: "manabiya",
			Subsystem: "web",
			Name:      "request_duration_seconds",
			Help:      "HTTP 请求耗时",
			Objectives: map[float64]float64{
				0.5:  0.05,
				0.9:  0.01,
				0.95: 0.005,
				0.99: 0.001,
			},
		},
		[]string{"method", "path", "status_code"},
	)

	counterVec := promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "manabiya",
			Subsystem: "web",
			Name:      "requests_total",
			Help:      "HTTP 请求总数",
		},
		[]string{"method", "path", "status_code"},
	)

	return &MetricsBuilder{
		summaryVec: summaryVec,
		counterVec: counterVec,
	}
}

func (b *MetricsBuilder) Build() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		duration := time.Since(start).Seconds()
		method := ctx.Request.Method
		// 注册过的路由用模式串，没匹配上的退回原始路径
		path := ctx.FullPath()
		if path == "" {
			path = ctx.Request.URL.Path
		}
		statusCode := strconv.Itoa(ctx.Writer.Status())

		b.summaryVec.WithLabelValues(method, path, statusCode).Observe(duration)
		b.counterVec.WithLabelValues(method, path, statusCode).Inc()
	}
}
