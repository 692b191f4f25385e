package handlers

import (
	"net/http"
	"strconv"

	"natcatalog_api/internal/natcatalog/business/services/update"
	"natcatalog_api/pkg/logger"
)

type FeedHandler struct {
	feed *update.FeedService
	log  logger.Logger
}

func NewFeedHandler(feed *update.FeedService, log logger.Logger) *FeedHandler {
	return &FeedHandler{feed: feed, log: log}
}

// GetFeedStatusHandler — GET /api/feed-status?feed_id=N.
func (h *FeedHandler) GetFeedStatusHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	feedID, err := strconv.ParseInt(r.URL.Query().Get("feed_id"), 10, 64)
	if err != nil || feedID <= 0 {
		http.Error(w, "Invalid feed_id", http.StatusBadRequest)
		return
	}

	status, err := h.feed.Status(feedID)
	if err != nil {
		h.log.Warn("статус фида %d: %v", feedID, err)
		http.Error(w, "Failed to fetch feed status", http.StatusBadGateway)
		return
	}

	writeJSON(w, h.log, status)
}
