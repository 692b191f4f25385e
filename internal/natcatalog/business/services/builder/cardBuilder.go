package builder

import (
	"errors"
	"strings"

	"natcatalog_api/config/values"
	"natcatalog_api/internal/natcatalog/business/models"
	"natcatalog_api/internal/natcatalog/business/models/dto/request"
	"natcatalog_api/internal/natcatalog/business/services/parse"
	"natcatalog_api/pkg/business/service"
)

// CardBuilder собирает карточку нац. каталога из извлечённых данных товара
// и решённой категории.
type CardBuilder struct {
	values   values.CatalogValues
	text     service.ITextService
	resolver *parse.CategoryResolver
	finder   parse.CategoryFinder
}

func NewCardBuilder(vals values.CatalogValues, text service.ITextService, resolver *parse.CategoryResolver, finder parse.CategoryFinder) *CardBuilder {
	return &CardBuilder{
		values:   vals,
		text:     text,
		resolver: resolver,
		finder:   finder,
	}
}

// ValidateRequired — проверка обязательных полей до любого сетевого вызова.
func ValidateRequired(data models.ProductData) error {
	if data.Name == "" {
		return errors.New("отсутствует наименование товара")
	}
	if data.Tnved == "" {
		return errors.New("отсутствует ТН ВЭД")
	}
	return nil
}

// Assemble строит карточку. categoryID = 0 включает цепочку определения:
// ТН ВЭД + вид → только ТН ВЭД → API каталога → категория по умолчанию.
func (b *CardBuilder) Assemble(data models.ProductData, categoryID int) *request.CreateCardRequest {
	if categoryID == 0 {
		categoryID = b.resolveCategory(data)
	}

	tnved := strings.TrimSpace(data.Tnved)
	brand := data.Brand
	if brand == "" {
		brand = b.values.DefaultBrand
	}

	card := &request.CreateCardRequest{
		IsTechGtin: true,
		Tnved:      b.cardTnved(tnved, categoryID),
		Brand:      brand,
		GoodName:   data.Name,
		Moderation: request.ModerationDraft,
		Categories: []int{categoryID},
	}

	// обязательные атрибуты присутствуют всегда, даже при пустом источнике
	attrs := []request.GoodAttribute{
		{AttrID: request.AttrCountry, AttrValue: request.CountryRU},
		{AttrID: request.AttrFullName, AttrValue: data.Name},
		{AttrID: request.AttrTrademark, AttrValue: brand},
		{AttrID: request.AttrTnvedGroup, AttrValue: tnvedGroup(tnved)},
	}

	if len(tnved) == 10 {
		attrs = append(attrs, request.GoodAttribute{AttrID: request.AttrTnvedDetailed, AttrValue: tnved})
	}
	if data.ProductType != "" {
		attrs = append(attrs, request.GoodAttribute{AttrID: request.AttrProductKind, AttrValue: b.text.Upper(data.ProductType)})
	}
	if data.Color != "" {
		attrs = append(attrs, request.GoodAttribute{AttrID: request.AttrColor, AttrValue: b.text.Upper(data.Color)})
	}
	if data.Size != "" {
		attrs = append(attrs, request.GoodAttribute{
			AttrID:        request.AttrSize,
			AttrValue:     data.Size,
			AttrValueType: request.ValueTypeInternational,
		})
	}
	if data.Composition != "" {
		attrs = append(attrs, request.GoodAttribute{AttrID: request.AttrComposition, AttrValue: data.Composition})
	}

	attrs = append(attrs, request.GoodAttribute{AttrID: request.AttrRegulation, AttrValue: request.RegulationClause})

	if data.Article != "" {
		attrs = append(attrs, request.GoodAttribute{
			AttrID:        request.AttrArticle,
			AttrValue:     data.Article,
			AttrValueType: request.ValueTypeArticle,
		})
	}
	if gender := DetermineGender(data); gender != "" {
		attrs = append(attrs, request.GoodAttribute{AttrID: request.AttrGender, AttrValue: gender})
	}
	if data.PermitDocs != "" {
		attrs = append(attrs, request.GoodAttribute{AttrID: request.AttrPermitDocs, AttrValue: data.PermitDocs})
	}

	card.GoodAttrs = attrs
	return card
}

func (b *CardBuilder) resolveCategory(data models.ProductData) int {
	tnved := strings.TrimSpace(data.Tnved)
	productType := strings.TrimSpace(data.ProductType)

	if tnved != "" && productType != "" {
		if id, ok := b.resolver.Resolve(tnved, productType); ok {
			return id
		}
	}
	return b.resolver.ResolveOrDefault(b.finder, tnved, "")
}

// cardTnved: в карточку идёт 4-значная группа; полный 10-значный код
// остаётся только у категорий, которым он предписан.
func (b *CardBuilder) cardTnved(tnved string, categoryID int) string {
	if b.values.RequiresFullTnved(categoryID) {
		return tnved
	}
	return tnvedGroup(tnved)
}

func tnvedGroup(tnved string) string {
	if len(tnved) > 4 {
		return tnved[:4]
	}
	return tnved
}

// DetermineGender: явное поле «Пол» важнее подбора по названию;
// непустое название без ключевых слов считается унисексом.
func DetermineGender(data models.ProductData) string {
	if gender := genderByKeywords(data.TargetGender); gender != "" {
		return gender
	}
	if gender := genderByKeywords(data.Name); gender != "" {
		return gender
	}
	if data.Name != "" {
		return "УНИСЕКС"
	}
	return ""
}

func genderByKeywords(text string) string {
	lowered := strings.ToLower(text)
	if lowered == "" {
		return ""
	}
	// женские ключи проверяются раньше: "men" входит в "women"
	for _, keyword := range []string{"женск", "women", "female"} {
		if strings.Contains(lowered, keyword) {
			return "ЖЕНСКИЙ"
		}
	}
	for _, keyword := range []string{"мужск", "men", "male"} {
		if strings.Contains(lowered, keyword) {
			return "МУЖСКОЙ"
		}
	}
	for _, keyword := range []string{"детск", "kid", "child"} {
		if strings.Contains(lowered, keyword) {
			return "ДЕТСКИЙ"
		}
	}
	return ""
}
