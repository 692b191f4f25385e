package update

import (
	"context"

	msmodels "natcatalog_api/internal/moysklad/business/models"
	"natcatalog_api/internal/natcatalog/business/models"
	"natcatalog_api/internal/natcatalog/business/services/parse"
	"natcatalog_api/metrics"
	"natcatalog_api/pkg/logger"
)

type assortmentSource interface {
	GetAllAssortment(ctx context.Context) ([]msmodels.CatalogItem, error)
}

// CatalogService ведёт проход: выгрузка ассортимента, отбор помеченных
// товаров, привязка вариантов к родителям и извлечение данных карточек.
type CatalogService struct {
	source    assortmentSource
	extractor *parse.Extractor
	flagName  string
	log       logger.Logger

	Metrics metrics.SyncMetrics
}

func NewCatalogService(source assortmentSource, extractor *parse.Extractor, flagName string, log logger.Logger) *CatalogService {
	return &CatalogService{
		source:    source,
		extractor: extractor,
		flagName:  flagName,
		log:       log,
	}
}

// CollectProducts — полный проход: ассортимент → фильтр → пары → извлечение.
func (s *CatalogService) CollectProducts(ctx context.Context) ([]models.ProductData, error) {
	rows, err := s.source.GetAllAssortment(ctx)
	if err != nil {
		return nil, err
	}

	flagged := s.FilterForNationalCatalog(rows)
	pairs := s.PairVariants(rows, flagged)

	result := make([]models.ProductData, 0, len(pairs))
	for i := range pairs {
		result = append(result, s.extractor.Extract(&pairs[i].Item, pairs[i].Parent))
		s.Metrics.ProcessedCount.Add(1)
	}

	s.log.Log("ассортимент: %d записей, помечено %d, к обработке %d",
		len(rows), len(flagged), len(result))
	return result, nil
}

// FilterForNationalCatalog оставляет товары с установленным флагом выгрузки.
// Варианты флага не несут, он проверяется только у товаров.
func (s *CatalogService) FilterForNationalCatalog(rows []msmodels.CatalogItem) []msmodels.CatalogItem {
	flagged := make([]msmodels.CatalogItem, 0)
	for _, row := range rows {
		if row.Kind() != msmodels.TypeProduct {
			continue
		}
		if value, ok := row.AttributeByName(s.flagName); ok && value.IsTrue() {
			flagged = append(flagged, row)
		}
	}
	return flagged
}

// PairVariants собирает единицы обработки: каждый вариант помеченного товара
// идёт отдельной записью с привязкой к родителю; помеченный товар без
// вариантов идёт сам по себе.
func (s *CatalogService) PairVariants(rows []msmodels.CatalogItem, flagged []msmodels.CatalogItem) []msmodels.ParentLink {
	variantsByProduct := make(map[string][]msmodels.CatalogItem)
	for _, row := range rows {
		if row.Kind() != msmodels.TypeVariant {
			continue
		}
		productID := row.ProductID()
		variantsByProduct[productID] = append(variantsByProduct[productID], row)
	}

	pairs := make([]msmodels.ParentLink, 0, len(flagged))
	for i := range flagged {
		parent := &flagged[i]
		variants := variantsByProduct[parent.ID]
		if len(variants) == 0 {
			pairs = append(pairs, msmodels.ParentLink{Item: *parent})
			continue
		}
		for _, variant := range variants {
			pairs = append(pairs, msmodels.ParentLink{Item: variant, Parent: parent})
		}
	}
	return pairs
}
