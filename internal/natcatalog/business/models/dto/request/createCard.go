package request

import (
	"errors"
	"fmt"
)

// Идентификаторы атрибутов нац. каталога, используемые в карточке.
const (
	AttrCountry       = 2630
	AttrFullName      = 2478
	AttrTrademark     = 2504
	AttrTnvedGroup    = 3959
	AttrTnvedDetailed = 13933
	AttrProductKind   = 12
	AttrColor         = 36
	AttrSize          = 35
	AttrComposition   = 2483
	AttrRegulation    = 13836
	AttrArticle       = 13914
	AttrGender        = 14013
	AttrPermitDocs    = 23557
)

const (
	CountryRU              = "RU"
	ValueTypeInternational = "МЕЖДУНАРОДНЫЙ"
	ValueTypeArticle       = "Артикул"
	RegulationClause       = `ТР ТС 017/2011 "О безопасности продукции легкой промышленности"`

	// moderation=0 — карточка остаётся черновиком
	ModerationDraft = 0
)

type GoodAttribute struct {
	AttrID        int    `json:"attr_id"`
	AttrValue     string `json:"attr_value"`
	AttrValueType string `json:"attr_value_type,omitempty"`
}

// CreateCardRequest — тело POST /v3/feed: одна карточка товара.
type CreateCardRequest struct {
	IsTechGtin bool            `json:"is_tech_gtin"`
	Tnved      string          `json:"tnved"`
	Brand      string          `json:"brand"`
	GoodName   string          `json:"good_name"`
	Moderation int             `json:"moderation"`
	Categories []int           `json:"categories"`
	GoodAttrs  []GoodAttribute `json:"good_attrs"`
}

func (c *CreateCardRequest) Validate() error {
	if c.GoodName == "" {
		return errors.New("карточка без наименования")
	}
	if len(c.Categories) != 1 {
		return fmt.Errorf("карточка должна иметь ровно одну категорию, получено %d", len(c.Categories))
	}
	return nil
}

func (c *CreateCardRequest) Attribute(attrID int) (GoodAttribute, bool) {
	for _, attr := range c.GoodAttrs {
		if attr.AttrID == attrID {
			return attr, true
		}
	}
	return GoodAttribute{}, false
}
