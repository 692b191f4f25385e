package update

import (
	"context"
	"testing"

	msmodels "natcatalog_api/internal/moysklad/business/models"
)

func TestAnalyzeStructure(t *testing.T) {
	skirt := product("aaa", "Юбка", flagAttr(true))
	skirt.Tnved = "6204"
	skirt.VariantsCount = 1
	rows := []msmodels.CatalogItem{
		skirt,
		product("bbb", "Носки", flagAttr(false)),
		variant("Юбка (44)", "aaa"),
		{Meta: msmodels.Meta{Type: msmodels.TypeBundle}, Name: "Комплект"},
		{Meta: msmodels.Meta{Type: msmodels.TypeService}, Name: "Доставка"},
	}
	s := newCatalogService(t, rows)

	report, err := s.AnalyzeStructure(context.Background())
	if err != nil {
		t.Fatalf("AnalyzeStructure: %v", err)
	}

	if len(report.Products) != 2 || len(report.Variants) != 1 ||
		len(report.Bundles) != 1 || len(report.Services) != 1 {
		t.Fatalf("разбивка по типам: %+v", report)
	}
	if !report.Products[0].Flagged || report.Products[1].Flagged {
		t.Errorf("флаги товаров: %+v", report.Products)
	}
	if report.Products[0].Tnved != "6204" {
		t.Errorf("Tnved товара = %q", report.Products[0].Tnved)
	}
	if report.Variants[0].ParentID != "aaa" {
		t.Errorf("ParentID варианта = %q", report.Variants[0].ParentID)
	}

	// к отправке идёт единственный вариант помеченного товара,
	// ТН ВЭД наследуется от родителя
	if report.Summary.Total != 1 || report.Summary.ReadyToSend != 1 {
		t.Errorf("summary = %+v", report.Summary)
	}
}

func TestAnalyzeStructureMissingTnved(t *testing.T) {
	rows := []msmodels.CatalogItem{product("aaa", "Юбка", flagAttr(true))}
	s := newCatalogService(t, rows)

	report, err := s.AnalyzeStructure(context.Background())
	if err != nil {
		t.Fatalf("AnalyzeStructure: %v", err)
	}
	if report.Summary.Total != 1 || report.Summary.ReadyToSend != 0 {
		t.Errorf("summary = %+v", report.Summary)
	}
	if len(report.Summary.MissingTnved) != 1 || report.Summary.MissingTnved[0] != 0 {
		t.Errorf("MissingTnved = %v", report.Summary.MissingTnved)
	}
}
