package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"net/http"
	"time"
)

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests.",
		},
		[]string{"method", "endpoint", "status"},
	)
	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Histogram of HTTP request durations.",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)
	cardsSubmittedTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cards_submitted_total",
			Help: "Submission cards posted to the national catalog feed endpoint.",
		},
		[]string{"outcome"},
	)
	vocabularyFetchesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_vocabulary_fetches_total",
			Help: "Controlled vocabulary fetches from the catalog metadata endpoint.",
		},
		[]string{"kind"},
	)
)

func init() {
	prometheus.MustRegister(httpRequestsTotal)
	prometheus.MustRegister(httpRequestDuration)
	prometheus.MustRegister(cardsSubmittedTotal)
	prometheus.MustRegister(vocabularyFetchesTotal)
}

// RecordRequest записывает метрики для HTTP-запроса.
func RecordRequest(method, endpoint string, statusCode int, duration time.Duration) {
	status := classifyStatus(statusCode)
	httpRequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	httpRequestDuration.WithLabelValues(method, endpoint, status).Observe(duration.Seconds())
}

// RecordSubmission учитывает исход отправки карточки: submitted/rejected/error.
func RecordSubmission(outcome string) {
	cardsSubmittedTotal.WithLabelValues(outcome).Inc()
}

// RecordVocabularyFetch учитывает обращение за справочником: color/kind.
func RecordVocabularyFetch(kind string) {
	vocabularyFetchesTotal.WithLabelValues(kind).Inc()
}

func classifyStatus(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "2xx"
	} else if statusCode >= 300 && statusCode < 400 {
		return "3xx"
	} else if statusCode >= 400 && statusCode < 500 {
		return "4xx"
	} else if statusCode >= 500 && statusCode < 600 {
		return "5xx"
	}
	return "unknown"
}

// MetricsHandler возвращает HTTP-обработчик для экспорта метрик Prometheus.
func MetricsHandler() http.Handler {
	return promhttp.Handler()
}
