package get

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"natcatalog_api/internal/natcatalog/business/models/dto/responses"
	"natcatalog_api/internal/natcatalog/business/services"
)

const RequestTimeout = 30 * time.Second

// fetchResult выполняет GET к API нац. каталога и декодирует конверт result.
func fetchResult(client *http.Client, auth services.AuthEngine, rawURL string, out interface{}) error {
	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return err
	}
	auth.SetApiKey(req)

	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("ошибка запроса к нац. каталогу: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("неожиданный статус ответа: %s", resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}
	if err := responses.DecodeResult(body, out); err != nil {
		return fmt.Errorf("неверный формат ответа: %w", err)
	}
	return nil
}

// absoluteURL дополняет относительный preset_url базовым адресом API.
func absoluteURL(baseURL, ref string) string {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return baseURL + ref
}
