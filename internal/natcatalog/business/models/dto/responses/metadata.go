package responses

import "encoding/json"

// resultEnvelope — общий конверт ответов /v3/*: полезная нагрузка в result.
type resultEnvelope struct {
	Result json.RawMessage `json:"result"`
	ApiVer int             `json:"apiversion,omitempty"`
}

// DecodeResult распаковывает конверт и декодирует result в out.
func DecodeResult(data []byte, out interface{}) error {
	var envelope resultEnvelope
	if err := json.Unmarshal(data, &envelope); err != nil {
		return err
	}
	if len(envelope.Result) == 0 {
		return ErrEmptyResult
	}
	return json.Unmarshal(envelope.Result, out)
}

// AttributeInfo — описание атрибута категории из metadata endpoint.
type AttributeInfo struct {
	AttrID     int      `json:"attr_id"`
	AttrName   string   `json:"attr_name"`
	AttrPreset []string `json:"attr_preset,omitempty"`
	PresetURL  string   `json:"preset_url,omitempty"`
}

// CategoryInfo — категория нац. каталога для кода ТН ВЭД.
type CategoryInfo struct {
	CatID          int    `json:"cat_id"`
	CategoryName   string `json:"category_name"`
	CategoryActive *bool  `json:"category_active,omitempty"`
}

// Active: отсутствие флага считается активной категорией.
func (c CategoryInfo) Active() bool {
	return c.CategoryActive == nil || *c.CategoryActive
}
