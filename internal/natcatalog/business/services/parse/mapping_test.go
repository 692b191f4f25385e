package parse

import (
	"reflect"
	"strings"
	"testing"
)

const mappingDoc = `{
  "6204": {
    "215009": "Швейные изделия",
    "215013": "Платья женские",
    "215014": "Юбки и брюки женские"
  },
  "6109": {
    "30933": "Трикотажные изделия",
    "30717": "Футболки и майки"
  }
}`

func mustMapping(t *testing.T, doc string) *CategoryMapping {
	t.Helper()
	mapping, err := DecodeMapping(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeMapping: %v", err)
	}
	return mapping
}

func TestDecodeMappingPreservesOrder(t *testing.T) {
	mapping := mustMapping(t, mappingDoc)

	got := mapping.Lookup("6204")
	want := []CategoryOption{
		{ID: 215009, Name: "Швейные изделия"},
		{ID: 215013, Name: "Платья женские"},
		{ID: 215014, Name: "Юбки и брюки женские"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Lookup(6204) = %v, want %v", got, want)
	}
}

func TestLookupFallsBackToGroup(t *testing.T) {
	mapping := mustMapping(t, mappingDoc)

	full := mapping.Lookup("6204440000")
	group := mapping.Lookup("6204")
	if !reflect.DeepEqual(full, group) {
		t.Errorf("полный код должен падать на группу: %v != %v", full, group)
	}
}

func TestLookupUnknownCode(t *testing.T) {
	mapping := mustMapping(t, mappingDoc)

	if got := mapping.Lookup("9999"); got != nil {
		t.Errorf("Lookup(9999) = %v, want nil", got)
	}
	if got := mapping.Lookup(""); got != nil {
		t.Errorf("Lookup(\"\") = %v, want nil", got)
	}
}

func TestDecodeMappingRejectsBadID(t *testing.T) {
	if _, err := DecodeMapping(strings.NewReader(`{"6204": {"abc": "X"}}`)); err == nil {
		t.Fatal("ожидалась ошибка на нечисловом идентификаторе")
	}
}
