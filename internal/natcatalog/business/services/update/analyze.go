package update

import (
	"context"

	msmodels "natcatalog_api/internal/moysklad/business/models"
	"natcatalog_api/internal/natcatalog/business/models"
)

// StructureItem — краткая сводка одной записи ассортимента для ручной
// вычитки структуры каталога.
type StructureItem struct {
	Name          string `json:"name"`
	Article       string `json:"article,omitempty"`
	Tnved         string `json:"tnved,omitempty"`
	Flagged       bool   `json:"national_catalog,omitempty"`
	VariantsCount int    `json:"variants_count,omitempty"`
	ParentID      string `json:"parent_id,omitempty"`
}

// ReadinessSummary — готовность помеченной выборки к выгрузке. Индексы
// совпадают с порядком записей в /api/products.
type ReadinessSummary struct {
	Total              int   `json:"total"`
	ReadyToSend        int   `json:"ready_to_send"`
	MissingName        []int `json:"missing_name,omitempty"`
	MissingTnved       []int `json:"missing_tnved,omitempty"`
	MissingComposition []int `json:"missing_composition,omitempty"`
	InvalidColor       []int `json:"invalid_color,omitempty"`
	InvalidProductType []int `json:"invalid_product_type,omitempty"`
}

// StructureReport — разбор ассортимента по типам записей плюс сводка
// готовности, всё за одну выборку.
type StructureReport struct {
	Products []StructureItem  `json:"products"`
	Variants []StructureItem  `json:"variants"`
	Bundles  []StructureItem  `json:"bundles"`
	Services []StructureItem  `json:"services"`
	Summary  ReadinessSummary `json:"summary"`
}

// AnalyzeStructure строит отчёт по текущему ассортименту без отправки.
func (s *CatalogService) AnalyzeStructure(ctx context.Context) (*StructureReport, error) {
	rows, err := s.source.GetAllAssortment(ctx)
	if err != nil {
		return nil, err
	}

	report := &StructureReport{}
	for i := range rows {
		row := &rows[i]
		item := StructureItem{
			Name:          row.Name,
			Article:       row.Article,
			Tnved:         s.extractor.ExtractTnved(row, nil),
			VariantsCount: row.VariantsCount,
		}
		if value, ok := row.AttributeByName(s.flagName); ok {
			item.Flagged = value.IsTrue()
		}

		switch row.Kind() {
		case msmodels.TypeProduct:
			report.Products = append(report.Products, item)
		case msmodels.TypeVariant:
			item.ParentID = row.ProductID()
			report.Variants = append(report.Variants, item)
		case msmodels.TypeBundle:
			report.Bundles = append(report.Bundles, item)
		case msmodels.TypeService:
			report.Services = append(report.Services, item)
		}
	}

	flagged := s.FilterForNationalCatalog(rows)
	pairs := s.PairVariants(rows, flagged)
	extracted := make([]models.ProductData, 0, len(pairs))
	for i := range pairs {
		extracted = append(extracted, s.extractor.Extract(&pairs[i].Item, pairs[i].Parent))
	}
	report.Summary = summarize(extracted)

	return report, nil
}

func summarize(products []models.ProductData) ReadinessSummary {
	summary := ReadinessSummary{Total: len(products)}
	for i, p := range products {
		ready := true
		if p.Name == "" {
			summary.MissingName = append(summary.MissingName, i)
			ready = false
		}
		if p.Tnved == "" {
			summary.MissingTnved = append(summary.MissingTnved, i)
			ready = false
		}
		if p.Composition == "" {
			summary.MissingComposition = append(summary.MissingComposition, i)
		}
		if p.Color != "" && !p.ColorValid {
			summary.InvalidColor = append(summary.InvalidColor, i)
		}
		if p.ProductType != "" && !p.ProductTypeValid {
			summary.InvalidProductType = append(summary.InvalidProductType, i)
		}
		if ready {
			summary.ReadyToSend++
		}
	}
	return summary
}
