package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"natcatalog_api/internal/natcatalog/business/models"
	"natcatalog_api/internal/natcatalog/business/models/dto/responses"
	"natcatalog_api/internal/natcatalog/business/services/builder"
	"natcatalog_api/internal/natcatalog/business/services/update"
	"natcatalog_api/pkg/logger"
)

type categoryReader interface {
	GetCategoryByID(catID int) (*responses.CategoryInfo, error)
}

// SendProductRequest — тело POST /api/products/send: индекс товара в текущей
// выборке плюс правки оператора.
type SendProductRequest struct {
	Index    int             `json:"index"`
	Override models.Override `json:"override"`
}

type ProductHandler struct {
	catalog     *update.CatalogService
	cardBuilder *builder.CardBuilder
	feed        *update.FeedService
	categories  categoryReader
	log         logger.Logger
}

func NewProductHandler(catalog *update.CatalogService, cardBuilder *builder.CardBuilder, feed *update.FeedService, categories categoryReader, log logger.Logger) *ProductHandler {
	return &ProductHandler{
		catalog:     catalog,
		cardBuilder: cardBuilder,
		feed:        feed,
		categories:  categories,
		log:         log,
	}
}

// GetProductsHandler отдаёт все товары, помеченные к выгрузке, после
// извлечения и проверки справочников.
func (h *ProductHandler) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	products, err := h.catalog.CollectProducts(r.Context())
	if err != nil {
		h.log.Warn("выгрузка ассортимента: %v", err)
		http.Error(w, "Failed to fetch products", http.StatusBadGateway)
		return
	}

	writeJSON(w, h.log, products)
}

// PreviewProductHandler собирает карточку для одного товара без отправки.
func (h *ProductHandler) PreviewProductHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	index, err := strconv.Atoi(r.URL.Query().Get("index"))
	if err != nil || index < 0 {
		http.Error(w, "Invalid index", http.StatusBadRequest)
		return
	}

	products, err := h.catalog.CollectProducts(r.Context())
	if err != nil {
		h.log.Warn("выгрузка ассортимента: %v", err)
		http.Error(w, "Failed to fetch products", http.StatusBadGateway)
		return
	}
	if index >= len(products) {
		http.Error(w, "Index out of range", http.StatusNotFound)
		return
	}

	data := products[index]
	card := h.cardBuilder.Assemble(data, 0)
	payload := map[string]interface{}{
		"product": data,
		"card":    card,
	}
	if info, err := h.categories.GetCategoryByID(card.Categories[0]); err == nil && info != nil {
		payload["category"] = info
	} else if err != nil {
		h.log.Warn("категория %d: %v", card.Categories[0], err)
	}
	writeJSON(w, h.log, payload)
}

// SendProductsHandler собирает и отправляет карточку. Обязательные поля
// проверяются до любого обращения к каталогу.
func (h *ProductHandler) SendProductsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var sendReq SendProductRequest
	if err := json.NewDecoder(r.Body).Decode(&sendReq); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	if sendReq.Index < 0 {
		http.Error(w, "Invalid index", http.StatusBadRequest)
		return
	}

	products, err := h.catalog.CollectProducts(r.Context())
	if err != nil {
		h.log.Warn("выгрузка ассортимента: %v", err)
		http.Error(w, "Failed to fetch products", http.StatusBadGateway)
		return
	}
	if sendReq.Index >= len(products) {
		http.Error(w, "Index out of range", http.StatusNotFound)
		return
	}

	data := products[sendReq.Index].WithOverride(sendReq.Override)
	if err := builder.ValidateRequired(data); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	card := h.cardBuilder.Assemble(data, 0)
	feedID, err := h.feed.Submit(card)
	if err != nil {
		h.catalog.Metrics.ErroredItems.Add(1)
		h.log.Warn("отправка карточки «%s»: %v", data.Name, err)
		http.Error(w, "Submission failed: "+err.Error(), http.StatusBadGateway)
		return
	}

	h.catalog.Metrics.SubmittedCount.Add(1)
	writeJSON(w, h.log, map[string]interface{}{"feed_id": feedID})
}

// AnalyzeHandler — разбор структуры ассортимента и сводка готовности
// выборки к выгрузке, ничего не отправляет.
func (h *ProductHandler) AnalyzeHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	report, err := h.catalog.AnalyzeStructure(r.Context())
	if err != nil {
		h.log.Warn("выгрузка ассортимента: %v", err)
		http.Error(w, "Failed to fetch products", http.StatusBadGateway)
		return
	}

	writeJSON(w, h.log, report)
}

func writeJSON(w http.ResponseWriter, log logger.Logger, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Warn("кодирование ответа: %v", err)
	}
}
