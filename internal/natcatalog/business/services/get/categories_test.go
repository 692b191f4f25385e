package get

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"natcatalog_api/internal/natcatalog/business/models/dto/responses"
	"natcatalog_api/internal/natcatalog/business/services"
)

func categoriesServer(t *testing.T, byTnved map[string][]responses.CategoryInfo, queried *[]string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/categories" {
			t.Errorf("неожиданный путь %s", r.URL.Path)
		}
		if r.URL.Query().Get("apikey") != "test-key" {
			t.Error("apikey не передан")
		}
		tnved := r.URL.Query().Get("tnved")
		*queried = append(*queried, tnved)

		payload := map[string]interface{}{"result": byTnved[tnved]}
		json.NewEncoder(w).Encode(payload)
	}))
}

func TestGetCategoriesByTnvedGroupFirst(t *testing.T) {
	var queried []string
	server := categoriesServer(t, map[string][]responses.CategoryInfo{
		"6204": {{CatID: 215014, CategoryName: "Юбки и брюки женские"}},
	}, &queried)
	defer server.Close()

	engine := NewCategoriesEngine(server.URL, services.NewApiKeyAuth("test-key"))

	cats, err := engine.GetCategoriesByTnved("6204631800")
	if err != nil {
		t.Fatalf("GetCategoriesByTnved: %v", err)
	}
	if len(cats) != 1 || cats[0].CatID != 215014 {
		t.Errorf("cats = %+v", cats)
	}
	// группа размечена — полный код не запрашивается
	if len(queried) != 1 || queried[0] != "6204" {
		t.Errorf("запрошены коды %v", queried)
	}
}

func TestGetCategoriesByTnvedFallsBackToFullCode(t *testing.T) {
	var queried []string
	server := categoriesServer(t, map[string][]responses.CategoryInfo{
		"6109100010": {{CatID: 30717}},
	}, &queried)
	defer server.Close()

	engine := NewCategoriesEngine(server.URL, services.NewApiKeyAuth("test-key"))

	cats, err := engine.GetCategoriesByTnved("6109100010")
	if err != nil {
		t.Fatalf("GetCategoriesByTnved: %v", err)
	}
	if len(cats) != 1 || cats[0].CatID != 30717 {
		t.Errorf("cats = %+v", cats)
	}
	want := []string{"6109", "6109100010"}
	if len(queried) != 2 || queried[0] != want[0] || queried[1] != want[1] {
		t.Errorf("запрошены коды %v, want %v", queried, want)
	}
}

func TestGetAttributesDecodesEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v3/attributes" {
			t.Errorf("неожиданный путь %s", r.URL.Path)
		}
		if r.URL.Query().Get("cat_id") != "30933" || r.URL.Query().Get("attr_type") != "a" {
			t.Errorf("параметры: %s", r.URL.RawQuery)
		}
		w.Write([]byte(`{"apiversion": 3, "result": [
			{"attr_id": 36, "attr_name": "Цвет", "attr_preset": ["Красный", "Синий"]}
		]}`))
	}))
	defer server.Close()

	engine := NewAttributesEngine(server.URL, services.NewApiKeyAuth("test-key"))

	attrs, err := engine.GetAttributes(30933, "a")
	if err != nil {
		t.Fatalf("GetAttributes: %v", err)
	}
	if len(attrs) != 1 || attrs[0].AttrID != 36 || len(attrs[0].AttrPreset) != 2 {
		t.Errorf("attrs = %+v", attrs)
	}
}

func TestGetAttributesErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "forbidden", http.StatusForbidden)
	}))
	defer server.Close()

	engine := NewAttributesEngine(server.URL, services.NewApiKeyAuth("test-key"))
	if _, err := engine.GetAttributes(30933, "a"); err == nil {
		t.Fatal("не-2xx должен быть ошибкой")
	}
}
