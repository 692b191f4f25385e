package models

import (
	"encoding/json"
	"testing"
)

func TestAttrValueUnmarshalForms(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"Хлопок 100%"`, "Хлопок 100%"},
		{`true`, "Да"},
		{`false`, "Нет"},
		{`42`, "42"},
		{`{"name": "Красный"}`, "Красный"},
		{`null`, ""},
	}
	for _, tt := range tests {
		var v AttrValue
		if err := json.Unmarshal([]byte(tt.raw), &v); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.raw, err)
			continue
		}
		if got := v.String(); got != tt.want {
			t.Errorf("String(%s) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestAttrValueReference(t *testing.T) {
	var v AttrValue
	if err := json.Unmarshal([]byte(`{"name": "Одежда", "cat_id": 30933}`), &v); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	ref, ok := v.Reference()
	if !ok || ref.CatID != 30933 {
		t.Errorf("Reference = %+v, %v", ref, ok)
	}
}

func TestAttrValueIsTrue(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`true`, true},
		{`false`, false},
		{`"Да"`, true},
		{`"да"`, true},
		{`"true"`, true},
		{`"1"`, true},
		{`"Нет"`, false},
		{`1`, true},
		{`0`, false},
		{`{"name": "Да"}`, true},
		{`{"name": "Нет"}`, false},
		{`null`, false},
	}
	for _, tt := range tests {
		var v AttrValue
		if err := json.Unmarshal([]byte(tt.raw), &v); err != nil {
			t.Errorf("Unmarshal(%s): %v", tt.raw, err)
			continue
		}
		if got := v.IsTrue(); got != tt.want {
			t.Errorf("IsTrue(%s) = %v, want %v", tt.raw, got, tt.want)
		}
	}
}

func TestCatalogItemProductID(t *testing.T) {
	item := CatalogItem{
		Meta: Meta{Type: TypeVariant},
		Product: &MetaWrapper{
			Meta: Meta{Href: "https://api.moysklad.ru/api/remap/1.2/entity/product/abc-123"},
		},
	}
	if got := item.ProductID(); got != "abc-123" {
		t.Errorf("ProductID = %q", got)
	}

	item.Product = nil
	if got := item.ProductID(); got != "" {
		t.Errorf("ProductID без родителя = %q", got)
	}
}

func TestCatalogItemAttributeLookup(t *testing.T) {
	item := CatalogItem{
		Attributes: []Attribute{
			{AttrID: 3959, Name: "ТН ВЭД группа", Value: StringValue("6204")},
		},
	}

	if v, ok := item.AttributeByName("ТН ВЭД группа"); !ok || v.String() != "6204" {
		t.Errorf("AttributeByName = %q, %v", v.String(), ok)
	}
	if v, ok := item.AttributeByID(3959); !ok || v.String() != "6204" {
		t.Errorf("AttributeByID = %q, %v", v.String(), ok)
	}
	if _, ok := item.AttributeByName("нет такого"); ok {
		t.Error("найден несуществующий атрибут")
	}
}
