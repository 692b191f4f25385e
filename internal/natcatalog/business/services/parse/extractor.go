package parse

import (
	"io"
	"strings"

	"natcatalog_api/config/values"
	msmodels "natcatalog_api/internal/moysklad/business/models"
	"natcatalog_api/internal/natcatalog/business/models"
	"natcatalog_api/internal/natcatalog/business/models/dto/request"
	"natcatalog_api/pkg/logger"
)

// порог подсказок принят интерфейсом поиска, см. FindSimilar
const suggestionThreshold = 0.6

// Validator — проверка значений по контролируемым справочникам каталога.
type Validator interface {
	ValidateColor(value string) (bool, []string)
	ValidateKind(value string, catID int) (bool, []string)
}

// Extractor собирает ProductData из записи ассортимента с наследованием
// от владеющего товара: значение варианта побеждает, пустота проверяется
// до отката к родителю.
type Extractor struct {
	values    values.CatalogValues
	resolver  *CategoryResolver
	validator Validator
	finder    CategoryFinder
	log       logger.Logger
}

func NewExtractor(vals values.CatalogValues, resolver *CategoryResolver, validator Validator, finder CategoryFinder, writer io.Writer) *Extractor {
	return &Extractor{
		values:    vals,
		resolver:  resolver,
		validator: validator,
		finder:    finder,
		log:       logger.NewLogger(writer, "[Extractor]"),
	}
}

// Extract формирует каноническую запись товара. Для товара без вариантов
// parent передаётся nil; для варианта — полная запись владеющего товара.
// Повторный вызов на тех же данных даёт идентичный результат.
func (e *Extractor) Extract(item *msmodels.CatalogItem, parent *msmodels.CatalogItem) models.ProductData {
	data := models.ProductData{
		Name:     clean(item.Name),
		Article:  clean(item.Article),
		ItemType: item.Kind(),
	}

	current := attributeMap(item)
	parentAttrs := map[string]string{}
	if parent != nil && parent != item {
		parentAttrs = attributeMap(parent)
	}

	if data.Article == "" && parent != nil {
		data.Article = clean(parent.Article)
	}

	names := e.values.Attributes
	data.Composition = inherit(current, parentAttrs, names.Composition)
	data.PermitDocs = inherit(current, parentAttrs, names.PermitDocs)
	data.Brand = inherit(current, parentAttrs, names.Brand)
	data.ProductType = inherit(current, parentAttrs, names.ProductType)
	data.TargetGender = inherit(current, parentAttrs, names.TargetGender)
	data.SizeType = inherit(current, parentAttrs, names.SizeType)

	data.Tnved = e.ExtractTnved(item, parent)

	// цвет и размер: сперва характеристики варианта, затем атрибуты
	data.Color = fromCharacteristics(item, e.values.Characteristics.Color)
	if data.Color == "" {
		data.Color = inherit(current, parentAttrs, names.Color)
	}
	data.Size = fromCharacteristics(item, e.values.Characteristics.Size)
	if data.Size == "" {
		data.Size = inherit(current, parentAttrs, names.Size)
	}

	e.attachValidation(&data)
	return data
}

func (e *Extractor) attachValidation(data *models.ProductData) {
	if data.Color != "" {
		valid, preset := e.validator.ValidateColor(data.Color)
		data.ColorValid = valid
		if !valid {
			data.ColorSuggestions = FindSimilar(data.Color, preset, suggestionThreshold)
		}
	}

	if data.ProductType != "" {
		catID := e.resolver.ResolveOrDefault(e.finder, data.Tnved, "")
		valid, preset := e.validator.ValidateKind(data.ProductType, catID)
		data.ProductTypeValid = valid
		if !valid {
			data.ProductTypeSuggestions = FindSimilar(data.ProductType, preset, suggestionThreshold)
		}
	}
}

// ExtractTnved выбирает код по категорийному режиму: категории, требующие
// детальный код, читают только 10-значный атрибут; остальные — прямое поле
// tnved либо атрибут группы. Режимы не смешиваются.
func (e *Extractor) ExtractTnved(item *msmodels.CatalogItem, parent *msmodels.CatalogItem) string {
	attrs := make([]msmodels.Attribute, 0, len(item.Attributes))
	attrs = append(attrs, item.Attributes...)
	if parent != nil && parent != item {
		attrs = append(attrs, parent.Attributes...)
	}

	if e.requiresFullTnved(item, parent, attrs) {
		for _, attr := range attrs {
			if attr.AttrID != request.AttrTnvedDetailed {
				continue
			}
			if value := clean(attr.Value.String()); value != "" {
				return value
			}
		}
		return ""
	}

	if value := clean(item.Tnved); value != "" {
		return value
	}
	if parent != nil {
		if value := clean(parent.Tnved); value != "" {
			return value
		}
	}
	for _, attr := range attrs {
		if attr.AttrID != request.AttrTnvedGroup {
			continue
		}
		if value := clean(attr.Value.String()); value != "" {
			return value
		}
	}
	return ""
}

func (e *Extractor) requiresFullTnved(item, parent *msmodels.CatalogItem, attrs []msmodels.Attribute) bool {
	for _, cat := range item.Categories {
		if e.values.RequiresFullTnved(cat.CatID) {
			return true
		}
	}
	if parent != nil {
		for _, cat := range parent.Categories {
			if e.values.RequiresFullTnved(cat.CatID) {
				return true
			}
		}
	}
	// ссылка на категорию может лежать и в атрибуте
	for _, attr := range attrs {
		if ref, ok := attr.Value.Reference(); ok && ref.CatID != 0 {
			if e.values.RequiresFullTnved(ref.CatID) {
				return true
			}
		}
	}
	return false
}

// attributeMap приводит атрибуты к карте имя → строка: ссылка становится
// именем, булево — Да/Нет.
func attributeMap(item *msmodels.CatalogItem) map[string]string {
	result := make(map[string]string, len(item.Attributes))
	for _, attr := range item.Attributes {
		if attr.Name == "" {
			continue
		}
		result[attr.Name] = strings.TrimSpace(attr.Value.String())
	}
	return result
}

func inherit(current, parent map[string]string, name string) string {
	if value := clean(current[name]); value != "" {
		return value
	}
	return clean(parent[name])
}

// fromCharacteristics сканирует характеристики в порядке списка; выигрывает
// первая, чьё имя содержит любой из синонимов.
func fromCharacteristics(item *msmodels.CatalogItem, synonyms []string) string {
	for _, char := range item.Characteristics {
		name := strings.ToLower(char.Name)
		for _, synonym := range synonyms {
			if strings.Contains(name, synonym) {
				if value := clean(char.Value.String()); value != "" {
					return value
				}
			}
		}
	}
	return ""
}

// clean обрезает пробелы и гасит токены-заглушки до канонической пустоты.
func clean(value string) string {
	value = strings.TrimSpace(value)
	switch value {
	case "None", "nan", "Нет":
		return ""
	}
	return value
}
