package services

import (
	"net/http"
)

type AuthEngine interface {
	GetApiKey() string
	SetApiKey(request *http.Request)
}

// ApiKeyAuth — авторизация API нац. каталога: ключ передаётся
// query-параметром apikey в каждом запросе.
type ApiKeyAuth struct {
	apiKey string
}

func (a *ApiKeyAuth) GetApiKey() string {
	return a.apiKey
}

func (a *ApiKeyAuth) SetApiKey(request *http.Request) {
	query := request.URL.Query()
	query.Set("apikey", a.apiKey)
	request.URL.RawQuery = query.Encode()
}

func NewApiKeyAuth(apiKey string) *ApiKeyAuth {
	return &ApiKeyAuth{apiKey: apiKey}
}
