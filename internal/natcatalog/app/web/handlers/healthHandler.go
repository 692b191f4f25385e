package handlers

import (
	"context"
	"net/http"

	"natcatalog_api/pkg/logger"
)

type connectionTester interface {
	TestConnection(ctx context.Context) error
}

type HealthHandler struct {
	inventory connectionTester
	log       logger.Logger
}

func NewHealthHandler(inventory connectionTester, log logger.Logger) *HealthHandler {
	return &HealthHandler{inventory: inventory, log: log}
}

// GetHealthHandler проверяет доступность МойСклад по токену сервиса.
func (h *HealthHandler) GetHealthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	if err := h.inventory.TestConnection(r.Context()); err != nil {
		h.log.Warn("проверка соединения: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		writeJSON(w, h.log, map[string]string{"status": "unavailable", "error": err.Error()})
		return
	}

	writeJSON(w, h.log, map[string]string{"status": "ok"})
}
