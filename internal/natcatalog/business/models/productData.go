package models

// ProductData — каноническое промежуточное представление товара после
// извлечения с наследованием. Каждое поле либо непустая обрезанная строка,
// либо пустая строка; токены-заглушки ("None", "nan", "Нет") сюда не попадают.
type ProductData struct {
	Name         string `json:"name"`
	Article      string `json:"article"`
	Composition  string `json:"composition"`
	PermitDocs   string `json:"permit_docs"`
	Brand        string `json:"brand_nk"`
	Color        string `json:"color"`
	Size         string `json:"size"`
	ProductType  string `json:"product_type"`
	Tnved        string `json:"tnved"`
	TargetGender string `json:"target_gender"`
	SizeType     string `json:"size_type"`
	ItemType     string `json:"item_type"`

	ColorValid             bool     `json:"color_valid"`
	ColorSuggestions       []string `json:"color_suggestions"`
	ProductTypeValid       bool     `json:"product_type_valid"`
	ProductTypeSuggestions []string `json:"product_type_suggestions"`
}

// Override — правки пользователя перед сборкой карточки. Применяются
// только к цвету, виду и размеру и только непустыми значениями.
type Override struct {
	Color       string `json:"color,omitempty"`
	ProductType string `json:"product_type,omitempty"`
	Size        string `json:"size,omitempty"`
}

func (d ProductData) WithOverride(o Override) ProductData {
	if o.Color != "" {
		d.Color = o.Color
	}
	if o.ProductType != "" {
		d.ProductType = o.ProductType
	}
	if o.Size != "" {
		d.Size = o.Size
	}
	return d
}
