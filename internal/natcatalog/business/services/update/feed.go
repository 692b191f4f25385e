package update

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"natcatalog_api/internal/natcatalog/business/models/dto/request"
	"natcatalog_api/internal/natcatalog/business/models/dto/responses"
	"natcatalog_api/internal/natcatalog/business/services"
	"natcatalog_api/metrics"
	"natcatalog_api/pkg/logger"
)

// RequestTimeout ограничивает каждый вызов API каталога.
const RequestTimeout = 30 * time.Second

// Состояния фида после опроса feed-status.
const (
	FeedStatePending  = "PENDING"
	FeedStateAccepted = "ACCEPTED"
	FeedStateRejected = "REJECTED"
	FeedStateUnknown  = "UNKNOWN"
)

// FeedStatus — агрегированный результат обработки фида каталогом.
type FeedStatus struct {
	FeedID         int64                      `json:"feed_id"`
	State          string                     `json:"state"`
	ItemsCount     int                        `json:"items_count"`
	ItemsProcessed int                        `json:"items_processed"`
	ItemsAccepted  int                        `json:"items_accepted"`
	ItemsRejected  int                        `json:"items_rejected"`
	AssignedGTIN   string                     `json:"assigned_gtin,omitempty"`
	Errors         []responses.FeedError      `json:"errors,omitempty"`
	Items          []responses.FeedItemResult `json:"items,omitempty"`
}

// FeedService отправляет карточки в нац. каталог и опрашивает статус фида.
type FeedService struct {
	services.AuthEngine
	baseURL string
	client  http.Client
	log     logger.Logger
}

func NewFeedService(baseURL string, auth services.AuthEngine, log logger.Logger) *FeedService {
	return &FeedService{
		AuthEngine: auth,
		baseURL:    baseURL,
		client:     http.Client{Timeout: RequestTimeout},
		log:        log,
	}
}

// Submit отправляет карточку одним фидом. Ошибка терминальна: повторных
// попыток сервис не делает, решение остаётся за вызывающим.
func (s *FeedService) Submit(card *request.CreateCardRequest) (int64, error) {
	if err := card.Validate(); err != nil {
		return 0, err
	}

	body, err := json.Marshal([]*request.CreateCardRequest{card})
	if err != nil {
		return 0, fmt.Errorf("сериализация карточки: %w", err)
	}

	req, err := http.NewRequest(http.MethodPost, s.baseURL+"/v3/feed", bytes.NewReader(body))
	if err != nil {
		return 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	s.SetApiKey(req)

	resp, err := s.client.Do(req)
	if err != nil {
		metrics.RecordSubmission("error")
		return 0, fmt.Errorf("отправка фида: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		metrics.RecordSubmission("error")
		return 0, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		metrics.RecordSubmission("rejected")
		return 0, fmt.Errorf("нац. каталог ответил %d: %s", resp.StatusCode, string(data))
	}

	var created responses.FeedCreated
	if err := responses.DecodeResult(data, &created); err != nil {
		metrics.RecordSubmission("error")
		return 0, err
	}
	if created.FeedID == 0 {
		metrics.RecordSubmission("rejected")
		return 0, fmt.Errorf("нац. каталог не вернул feed_id: %s", string(data))
	}

	metrics.RecordSubmission("submitted")
	s.log.Log("карточка «%s» отправлена, feed_id=%d", card.GoodName, created.FeedID)
	return created.FeedID, nil
}

// Status опрашивает feed-status и сворачивает ответ в одно состояние.
func (s *FeedService) Status(feedID int64) (*FeedStatus, error) {
	statusURL := s.baseURL + "/v3/feed-status?" + url.Values{
		"feed_id": {strconv.FormatInt(feedID, 10)},
	}.Encode()

	req, err := http.NewRequest(http.MethodGet, statusURL, nil)
	if err != nil {
		return nil, err
	}
	s.SetApiKey(req)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("запрос статуса фида %d: %w", feedID, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("статус фида %d: нац. каталог ответил %d", feedID, resp.StatusCode)
	}

	var result responses.FeedStatusResult
	if err := responses.DecodeResult(data, &result); err != nil {
		return nil, err
	}

	status := &FeedStatus{
		FeedID:         feedID,
		State:          classifyFeed(result),
		ItemsCount:     result.ItemsCount,
		ItemsProcessed: result.ItemsProcessed,
		ItemsAccepted:  result.ItemsAccepted,
		ItemsRejected:  result.ItemsRejected,
		Errors:         result.Errors,
		Items:          result.Items,
	}
	for _, item := range result.Items {
		if item.GTIN != "" {
			status.AssignedGTIN = item.GTIN
			break
		}
	}
	return status, nil
}

func classifyFeed(result responses.FeedStatusResult) string {
	switch {
	case result.ItemsRejected > 0:
		return FeedStateRejected
	case result.ItemsCount > 0 && result.ItemsProcessed == result.ItemsCount:
		return FeedStateAccepted
	case result.ItemsProcessed < result.ItemsCount:
		return FeedStatePending
	default:
		return FeedStateUnknown
	}
}
