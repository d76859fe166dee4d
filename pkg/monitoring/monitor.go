package monitoring

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: []float64{0.1, 0.5, 1, 2, 5},
		},
		[]string{"method", "endpoint"},
	)

	// ImportCounter 题库导入次数，result: success / rejected / failed
	ImportCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "question_bank_imports_total",
			Help: "Total number of question bank imports by result",
		},
		[]string{"result"},
	)

	ImportedQuestions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "question_bank_imported_questions_total",
			Help: "Total number of questions persisted by imports",
		},
	)

	MergedQuestions = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "question_bank_merged_questions_total",
			Help: "Total number of questions copied into merged banks",
		},
	)

	MergeCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "question_bank_merges_total",
			Help: "Total number of bank merges by result",
		},
		[]string{"result"},
	)

	VerifyCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "question_answer_verifications_total",
			Help: "Total number of answer verifications by question type and correctness",
		},
		[]string{"type", "correct"},
	)
)

var initOnce sync.Once

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(RequestCounter)
		prometheus.MustRegister(RequestDuration)
		prometheus.MustRegister(ImportCounter)
		prometheus.MustRegister(ImportedQuestions)
		prometheus.MustRegister(MergeCounter)
		prometheus.MustRegister(MergedQuestions)
		prometheus.MustRegister(VerifyCounter)
	})
}

func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		status := c.Writer.Status()

		RequestCounter.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			strconv.Itoa(status),
		).Inc()

		RequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}

func PrometheusHandler() gin.HandlerFunc {
	h := promhttp.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
