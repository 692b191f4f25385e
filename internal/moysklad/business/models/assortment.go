package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

const (
	TypeProduct = "product"
	TypeVariant = "variant"
	TypeBundle  = "bundle"
	TypeService = "service"
)

type Meta struct {
	Type string `json:"type"`
	Href string `json:"href"`
}

type MetaWrapper struct {
	Meta Meta `json:"meta"`
}

// Reference — вложенный объект-значение атрибута (справочник МойСклад
// либо ссылка на категорию нац. каталога).
type Reference struct {
	Name  string `json:"name"`
	CatID int    `json:"cat_id,omitempty"`
}

type valueKind int

const (
	kindEmpty valueKind = iota
	kindString
	kindBool
	kindNumber
	kindReference
)

// AttrValue — значение пользовательского атрибута или характеристики.
// API отдаёт строку, булево, число или объект; форма фиксируется на
// границе декодирования и дальше наружу отдаётся только строка.
type AttrValue struct {
	kind valueKind
	str  string
	b    bool
	ref  Reference
}

func StringValue(s string) AttrValue {
	return AttrValue{kind: kindString, str: s}
}

func BoolValue(b bool) AttrValue {
	return AttrValue{kind: kindBool, b: b}
}

func ReferenceValue(ref Reference) AttrValue {
	return AttrValue{kind: kindReference, ref: ref}
}

func (v *AttrValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*v = AttrValue{}
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = AttrValue{kind: kindString, str: s}
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = AttrValue{kind: kindBool, b: b}
	case '{':
		var ref Reference
		if err := json.Unmarshal(data, &ref); err != nil {
			return err
		}
		*v = AttrValue{kind: kindReference, ref: ref}
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = AttrValue{kind: kindNumber, str: n.String()}
	}
	return nil
}

func (v AttrValue) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// String приводит значение к строке: ссылка — имя, булево — Да/Нет.
func (v AttrValue) String() string {
	switch v.kind {
	case kindString, kindNumber:
		return v.str
	case kindBool:
		if v.b {
			return "Да"
		}
		return "Нет"
	case kindReference:
		return v.ref.Name
	}
	return ""
}

func (v AttrValue) Reference() (Reference, bool) {
	return v.ref, v.kind == kindReference
}

// IsTrue трактует значение как флажок, формы сверены с выгрузкой МойСклад.
func (v AttrValue) IsTrue() bool {
	switch v.kind {
	case kindBool:
		return v.b
	case kindString:
		switch strings.ToLower(v.str) {
		case "да", "true", "1", "yes":
			return true
		}
	case kindNumber:
		return v.str == "1"
	case kindReference:
		switch strings.ToLower(v.ref.Name) {
		case "да", "true", "yes":
			return true
		}
	}
	return false
}

type Attribute struct {
	AttrID int       `json:"attr_id,omitempty"`
	Name   string    `json:"name"`
	Value  AttrValue `json:"value"`
}

type Characteristic struct {
	Name  string    `json:"name"`
	Value AttrValue `json:"value"`
}

type CategoryRef struct {
	CatID int `json:"cat_id"`
}

// CatalogItem — одна запись ассортимента: товар, вариант, комплект или услуга.
// Запись читается из API и внутри одного запроса не изменяется.
type CatalogItem struct {
	Meta            Meta             `json:"meta"`
	ID              string           `json:"id"`
	Name            string           `json:"name"`
	Article         string           `json:"article"`
	Tnved           string           `json:"tnved"`
	Attributes      []Attribute      `json:"attributes"`
	Characteristics []Characteristic `json:"characteristics"`
	Categories      []CategoryRef    `json:"categories"`
	Product         *MetaWrapper     `json:"product,omitempty"`
	VariantsCount   int              `json:"variantsCount"`
}

func (i *CatalogItem) Kind() string {
	return i.Meta.Type
}

// ProductID возвращает идентификатор владеющего товара для варианта.
func (i *CatalogItem) ProductID() string {
	if i.Product == nil {
		return ""
	}
	href := i.Product.Meta.Href
	if idx := strings.LastIndex(href, "/"); idx >= 0 {
		return href[idx+1:]
	}
	return href
}

func (i *CatalogItem) AttributeByName(name string) (AttrValue, bool) {
	for _, attr := range i.Attributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return AttrValue{}, false
}

func (i *CatalogItem) AttributeByID(attrID int) (AttrValue, bool) {
	for _, attr := range i.Attributes {
		if attr.AttrID == attrID {
			return attr.Value, true
		}
	}
	return AttrValue{}, false
}

// ParentLink привязывает вариант к полной записи владеющего товара на время
// одного прохода обработки; никуда не сохраняется.
type ParentLink struct {
	Item   CatalogItem
	Parent *CatalogItem
}

type AssortmentResponse struct {
	Rows []CatalogItem `json:"rows"`
}
