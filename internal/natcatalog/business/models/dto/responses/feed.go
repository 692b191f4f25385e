package responses

import "errors"

var ErrEmptyResult = errors.New("пустой result в ответе нац. каталога")

type FeedCreated struct {
	FeedID int64 `json:"feed_id"`
}

// FeedError — структурная ошибка обработки позиции фида.
type FeedError struct {
	AttrID  int    `json:"attr_id,omitempty"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

// FeedItemResult — результат обработки одной позиции фида; при приёмке
// сервер присваивает позиции GTIN.
type FeedItemResult struct {
	GoodID int64       `json:"good_id,omitempty"`
	GTIN   string      `json:"gtin,omitempty"`
	Status string      `json:"status,omitempty"`
	Errors []FeedError `json:"errors,omitempty"`
}

// FeedStatusResult — текущее серверное состояние фида, как его отдаёт
// GET /v3/feed-status. Никогда не изменяется локально.
type FeedStatusResult struct {
	FeedID         int64            `json:"feed_id"`
	Status         string           `json:"status"`
	ItemsCount     int              `json:"items_count"`
	ItemsProcessed int              `json:"items_processed"`
	ItemsAccepted  int              `json:"items_accepted"`
	ItemsRejected  int              `json:"items_rejected"`
	Errors         []FeedError      `json:"errors,omitempty"`
	Items          []FeedItemResult `json:"item,omitempty"`
}
