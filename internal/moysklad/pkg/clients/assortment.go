package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"natcatalog_api/internal/moysklad/business/models"
	"natcatalog_api/pkg/logger"
)

// не больше 45 запросов за 3 секунды на токен по правилам МойСклад,
// держимся заметно ниже
const requestsPerSecond = 5

// AssortmentClient читает ассортимент МойСклад: Bearer-авторизация,
// постраничная выборка со сдвигом offset до первой неполной страницы.
type AssortmentClient struct {
	baseURL   string
	token     string
	pageLimit int
	client    *http.Client
	limiter   *rate.Limiter
	log       logger.Logger
}

func NewAssortmentClient(baseURL, token string, pageLimit int, timeout time.Duration, writer io.Writer) *AssortmentClient {
	if pageLimit <= 0 {
		pageLimit = 1000
	}
	return &AssortmentClient{
		baseURL:   baseURL,
		token:     token,
		pageLimit: pageLimit,
		client:    &http.Client{Timeout: timeout},
		limiter:   rate.NewLimiter(requestsPerSecond, requestsPerSecond),
		log:       logger.NewLogger(writer, "[AssortmentClient]"),
	}
}

// TestConnection проверяет токен на лёгком endpoint перед полной выборкой.
func (c *AssortmentClient) TestConnection(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/context/employee", nil)
	if err != nil {
		return err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка соединения с МойСклад: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("ошибка авторизации МойСклад: %s", resp.Status)
	}
	return nil
}

func (c *AssortmentClient) GetAssortment(ctx context.Context, limit, offset int) (*models.AssortmentResponse, error) {
	params := url.Values{}
	params.Add("limit", strconv.Itoa(limit))
	params.Add("offset", strconv.Itoa(offset))
	params.Add("expand", "attributes,characteristics")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s/entity/assortment?%s", c.baseURL, params.Encode()), nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка запроса ассортимента: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("МойСклад отклонил токен: %s", resp.Status)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("неожиданный статус ответа: %s", resp.Status)
	}

	var assortment models.AssortmentResponse
	if err := json.NewDecoder(resp.Body).Decode(&assortment); err != nil {
		return nil, fmt.Errorf("ошибка декодирования ответа: %w", err)
	}
	return &assortment, nil
}

// GetAllAssortment выбирает все страницы подряд. Ошибка любой страницы
// прерывает выборку, частичный результат не возвращается.
func (c *AssortmentClient) GetAllAssortment(ctx context.Context) ([]models.CatalogItem, error) {
	if err := c.TestConnection(ctx); err != nil {
		return nil, err
	}

	var all []models.CatalogItem
	offset := 0
	for {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
		page, err := c.GetAssortment(ctx, c.pageLimit, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Rows...)
		if len(page.Rows) < c.pageLimit {
			break
		}
		offset += c.pageLimit
	}

	c.log.Log("Всего загружено записей ассортимента: %d", len(all))
	return all, nil
}

func (c *AssortmentClient) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Accept", "application/json;charset=utf-8")
	req.Header.Set("Content-Type", "application/json;charset=utf-8")
}
