package get

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"natcatalog_api/internal/natcatalog/business/models/dto/responses"
	"natcatalog_api/internal/natcatalog/business/services"
)

// AttributesEngine читает описания атрибутов категорий из metadata endpoint
// нац. каталога; на нём строятся контролируемые справочники.
type AttributesEngine struct {
	baseURL string
	client  *http.Client
	services.AuthEngine
}

func NewAttributesEngine(baseURL string, auth services.AuthEngine) *AttributesEngine {
	return &AttributesEngine{
		baseURL:    baseURL,
		client:     &http.Client{Timeout: RequestTimeout},
		AuthEngine: auth,
	}
}

// GetAttributes возвращает атрибуты категории. attr_type "a" — все,
// "m" — только обязательные.
func (e *AttributesEngine) GetAttributes(catID int, attrType string) ([]responses.AttributeInfo, error) {
	params := url.Values{}
	params.Add("cat_id", strconv.Itoa(catID))
	if attrType != "" {
		params.Add("attr_type", attrType)
	}

	var attrs []responses.AttributeInfo
	reqURL := fmt.Sprintf("%s/v3/attributes?%s", e.baseURL, params.Encode())
	if err := fetchResult(e.client, e.AuthEngine, reqURL, &attrs); err != nil {
		return nil, err
	}
	return attrs, nil
}

// GetPreset догружает справочник значений по preset_url атрибута.
func (e *AttributesEngine) GetPreset(presetURL string) ([]string, error) {
	var preset []string
	if err := fetchResult(e.client, e.AuthEngine, absoluteURL(e.baseURL, presetURL), &preset); err != nil {
		return nil, err
	}
	return preset, nil
}
