package get

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"natcatalog_api/internal/natcatalog/business/models/dto/responses"
	"natcatalog_api/internal/natcatalog/business/services"
)

// CategoriesEngine ищет категории нац. каталога по коду ТН ВЭД.
type CategoriesEngine struct {
	baseURL string
	client  *http.Client
	services.AuthEngine
}

func NewCategoriesEngine(baseURL string, auth services.AuthEngine) *CategoriesEngine {
	return &CategoriesEngine{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: RequestTimeout},
		AuthEngine: auth,
	}
}

// GetCategoriesByTnved возвращает категории, в которые входит код.
// Для 10-значного кода сначала пробуем группу (первые 4 цифры): так
// находится больше категорий, детальные коды размечены реже.
func (e *CategoriesEngine) GetCategoriesByTnved(tnved string) ([]responses.CategoryInfo, error) {
	if len(tnved) == 10 {
		cats, err := e.fetch(tnved[:4])
		if err != nil {
			return nil, err
		}
		if len(cats) > 0 {
			return cats, nil
		}
	}
	return e.fetch(tnved)
}

func (e *CategoriesEngine) GetCategoryByID(catID int) (*responses.CategoryInfo, error) {
	params := url.Values{}
	params.Add("cat_id", strconv.Itoa(catID))

	var cats []responses.CategoryInfo
	reqURL := fmt.Sprintf("%s/v3/categories?%s", e.baseURL, params.Encode())
	if err := fetchResult(e.client, e.AuthEngine, reqURL, &cats); err != nil {
		return nil, err
	}
	if len(cats) == 0 {
		return nil, nil
	}
	return &cats[0], nil
}

func (e *CategoriesEngine) fetch(tnved string) ([]responses.CategoryInfo, error) {
	params := url.Values{}
	params.Add("tnved", tnved)

	var cats []responses.CategoryInfo
	reqURL := fmt.Sprintf("%s/v3/categories?%s", e.baseURL, params.Encode())
	if err := fetchResult(e.client, e.AuthEngine, reqURL, &cats); err != nil {
		return nil, err
	}
	return cats, nil
}
