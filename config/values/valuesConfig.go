package values

type Config interface {
}

// CatalogValues — статические значения нац. каталога: имена пользовательских
// полей МойСклад, синонимы характеристик, политика выбора категорий.
type CatalogValues struct {
	DefaultBrand          string                 `yaml:"default-brand"`
	DefaultCategory       int                    `yaml:"default-category"`
	PriorityCategories    []int                  `yaml:"priority-categories"`
	LowPriorityCategories []int                  `yaml:"low-priority-categories"`
	InactiveCategories    []int                  `yaml:"inactive-categories"`
	FullTnvedCategories   []int                  `yaml:"full-tnved-categories"`
	Disambiguation        []DisambiguationRule   `yaml:"disambiguation"`
	Attributes            AttributeNames         `yaml:"attributes"`
	Characteristics       CharacteristicSynonyms `yaml:"characteristics"`
}

// DisambiguationRule — множитель оценки кандидата при совпадении ключевого
// слова в запросе. Factor < 1 гасит известные ложные совпадения,
// Factor > 1 усиливает единственно верные.
type DisambiguationRule struct {
	Keyword  string  `yaml:"keyword"`
	Category int     `yaml:"category"`
	Factor   float64 `yaml:"factor"`
}

// AttributeNames — имена пользовательских атрибутов в МойСклад.
type AttributeNames struct {
	NationalCatalog string `yaml:"national-catalog"`
	Composition     string `yaml:"composition"`
	PermitDocs      string `yaml:"permit-docs"`
	Brand           string `yaml:"brand"`
	ProductType     string `yaml:"product-type"`
	Color           string `yaml:"color"`
	Size            string `yaml:"size"`
	TargetGender    string `yaml:"target-gender"`
	SizeType        string `yaml:"size-type"`
}

// CharacteristicSynonyms — подстроки имён характеристик варианта,
// по которым ищутся цвет и размер.
type CharacteristicSynonyms struct {
	Color []string `yaml:"color"`
	Size  []string `yaml:"size"`
}

func Default() CatalogValues {
	return CatalogValues{
		DefaultBrand:    "БрендОдежды",
		DefaultCategory: 215009,
		// одежда, обувь
		PriorityCategories: []int{30933, 30717},
		// общие "швейные изделия" выбираются только если нет более точного кандидата
		LowPriorityCategories: []int{215009},
		InactiveCategories:    []int{30724},
		FullTnvedCategories:   []int{30933, 30717},
		Disambiguation: []DisambiguationRule{
			// брюки и юбки делят ключевые слова в названиях категорий
			{Keyword: "брюк", Category: 215014, Factor: 0.3},
			{Keyword: "юбк", Category: 215014, Factor: 2},
			{Keyword: "плать", Category: 215013, Factor: 3},
		},
		Attributes: AttributeNames{
			NationalCatalog: "Для нац.каталога",
			Composition:     "Состав",
			PermitDocs:      "Разрешительные документы",
			Brand:           "Бренд НК",
			ProductType:     "Вид товара",
			Color:           "Цвет",
			Size:            "Размер",
			TargetGender:    "Пол",
			SizeType:        "Тип размера",
		},
		Characteristics: CharacteristicSynonyms{
			Color: []string{"цвет", "color"},
			Size:  []string{"размер", "size", "рост"},
		},
	}
}

func (v CatalogValues) IsLowPriority(catID int) bool {
	return containsInt(v.LowPriorityCategories, catID)
}

func (v CatalogValues) IsInactive(catID int) bool {
	return containsInt(v.InactiveCategories, catID)
}

func (v CatalogValues) RequiresFullTnved(catID int) bool {
	return containsInt(v.FullTnvedCategories, catID)
}

func containsInt(list []int, x int) bool {
	for _, v := range list {
		if v == x {
			return true
		}
	}
	return false
}
