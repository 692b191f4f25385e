package web

import (
	"log"
	"net/http"
	"time"

	"natcatalog_api/internal/auth"
	"natcatalog_api/internal/natcatalog/app/web/handlers"
	"natcatalog_api/metrics"
	"natcatalog_api/pkg/middleware"
)

// SetupRoutes собирает mux сервиса: публичные маршруты чтения, защищённая
// отправка и служебные /api/health с /metrics.
func SetupRoutes(products *handlers.ProductHandler, feed *handlers.FeedHandler, health *handlers.HealthHandler, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	mux.Handle("/api/products", middleware.PrometheusMiddleware(http.HandlerFunc(products.GetProductsHandler)))
	mux.Handle("/api/products/preview", middleware.PrometheusMiddleware(http.HandlerFunc(products.PreviewProductHandler)))
	mux.Handle("/api/products/analyze", middleware.PrometheusMiddleware(http.HandlerFunc(products.AnalyzeHandler)))
	mux.Handle("/api/feed-status", middleware.PrometheusMiddleware(http.HandlerFunc(feed.GetFeedStatusHandler)))
	mux.Handle("/api/health", middleware.PrometheusMiddleware(http.HandlerFunc(health.GetHealthHandler)))
	mux.Handle("/metrics", metrics.MetricsHandler())

	// отправка в нац. каталог доступна только авторизованным операторам
	sendHandler := auth.AuthMiddleware(jwtSecret)(
		auth.RoleMiddleware("operator", "admin")(http.HandlerFunc(products.SendProductsHandler)))
	mux.Handle("/api/products/send", middleware.PrometheusMiddleware(sendHandler))

	return enableCORS(loggingMiddleware(mux))
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)
		next.ServeHTTP(w, r)
		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}
