package update

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"natcatalog_api/internal/natcatalog/business/models/dto/request"
	"natcatalog_api/internal/natcatalog/business/services"
	"natcatalog_api/pkg/logger"
)

func testCard() *request.CreateCardRequest {
	return &request.CreateCardRequest{
		IsTechGtin: true,
		Tnved:      "6204",
		Brand:      "БрендОдежды",
		GoodName:   "Юбка женская",
		Categories: []int{215014},
	}
}

func newFeedService(baseURL string) *FeedService {
	return NewFeedService(baseURL, services.NewApiKeyAuth("test-key"), logger.NewLogger(io.Discard, "[test]"))
}

func TestSubmitSuccess(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		if r.Method != http.MethodPost || r.URL.Path != "/v3/feed" {
			t.Errorf("неожиданный запрос: %s %s", r.Method, r.URL.Path)
		}
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Error("apikey не передан")
		}
		var cards []request.CreateCardRequest
		if err := json.NewDecoder(r.Body).Decode(&cards); err != nil || len(cards) != 1 {
			t.Errorf("тело фида: %v, карточек %d", err, len(cards))
		}
		w.Write([]byte(`{"result": {"feed_id": 777}}`))
	}))
	defer server.Close()

	feedID, err := newFeedService(server.URL).Submit(testCard())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if feedID != 777 {
		t.Errorf("feedID = %d, want 777", feedID)
	}
	if requests != 1 {
		t.Errorf("запросов %d, want 1", requests)
	}
}

func TestSubmitNon2xxNoRetry(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		http.Error(w, "bad card", http.StatusBadRequest)
	}))
	defer server.Close()

	if _, err := newFeedService(server.URL).Submit(testCard()); err == nil {
		t.Fatal("ожидалась ошибка на не-2xx ответе")
	}
	if requests != 1 {
		t.Errorf("ошибка терминальна, но запросов %d", requests)
	}
}

func TestSubmitMissingFeedID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": {}}`))
	}))
	defer server.Close()

	if _, err := newFeedService(server.URL).Submit(testCard()); err == nil {
		t.Fatal("отсутствие feed_id должно быть ошибкой")
	}
}

func TestSubmitInvalidCardSkipsNetwork(t *testing.T) {
	var requests int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	card := testCard()
	card.GoodName = ""
	if _, err := newFeedService(server.URL).Submit(card); err == nil {
		t.Fatal("карточка без наименования должна отклоняться")
	}
	if requests != 0 {
		t.Errorf("проверка до сети, но запросов %d", requests)
	}
}

func TestStatusAccepted(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/feed-status" || r.URL.Query().Get("feed_id") != "777" {
			t.Errorf("неожиданный запрос: %s %s", r.URL.Path, r.URL.RawQuery)
		}
		w.Write([]byte(`{"result": {
			"feed_id": 777,
			"status": "done",
			"items_count": 2,
			"items_processed": 2,
			"items_accepted": 2,
			"items_rejected": 0,
			"item": [
				{"good_id": 1, "gtin": "", "status": "ok"},
				{"good_id": 2, "gtin": "02900001234567", "status": "ok"}
			]
		}}`))
	}))
	defer server.Close()

	status, err := newFeedService(server.URL).Status(777)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.State != FeedStateAccepted {
		t.Errorf("State = %q", status.State)
	}
	// первый непустой GTIN по списку позиций
	if status.AssignedGTIN != "02900001234567" {
		t.Errorf("AssignedGTIN = %q", status.AssignedGTIN)
	}
}

func TestStatusRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": {
			"feed_id": 778,
			"items_count": 1,
			"items_processed": 1,
			"items_rejected": 1,
			"errors": [{"attr_id": 36, "code": "bad_value", "message": "цвет не из справочника"}]
		}}`))
	}))
	defer server.Close()

	status, err := newFeedService(server.URL).Status(778)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.State != FeedStateRejected {
		t.Errorf("State = %q", status.State)
	}
	if len(status.Errors) != 1 || status.Errors[0].AttrID != 36 {
		t.Errorf("Errors = %+v", status.Errors)
	}
}

func TestStatusPending(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": {"feed_id": 779, "items_count": 3, "items_processed": 1}}`))
	}))
	defer server.Close()

	status, err := newFeedService(server.URL).Status(779)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.State != FeedStatePending {
		t.Errorf("State = %q", status.State)
	}
}
