package parse

import (
	"reflect"
	"testing"
)

func TestFindSimilar(t *testing.T) {
	preset := []string{"КРАСНЫЙ", "СИНИЙ", "КРАСНОВАТЫЙ"}

	got := FindSimilar("КРАСНЫЙ", preset, 0.6)
	want := []string{"КРАСНОВАТЫЙ", "КРАСНЫЙ"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("FindSimilar = %v, want %v", got, want)
	}
}

func TestFindSimilarCaseInsensitive(t *testing.T) {
	got := FindSimilar("красный", []string{"КРАСНЫЙ"}, 0.6)
	if !reflect.DeepEqual(got, []string{"КРАСНЫЙ"}) {
		t.Errorf("FindSimilar = %v", got)
	}
}

func TestFindSimilarTruncatesToFive(t *testing.T) {
	preset := []string{
		"СЕРЫЙ-1", "СЕРЫЙ-2", "СЕРЫЙ-3", "СЕРЫЙ-4", "СЕРЫЙ-5", "СЕРЫЙ-6",
	}
	got := FindSimilar("СЕРЫЙ", preset, 0.6)
	if len(got) != 5 {
		t.Fatalf("len = %d, want 5", len(got))
	}
	// лексикографический порядок после усечения
	for i := 1; i < len(got); i++ {
		if got[i-1] > got[i] {
			t.Errorf("результат не отсортирован: %v", got)
		}
	}
}

func TestFindSimilarEmptyInputs(t *testing.T) {
	if got := FindSimilar("", []string{"КРАСНЫЙ"}, 0.6); got != nil {
		t.Errorf("пустое значение: %v", got)
	}
	if got := FindSimilar("КРАСНЫЙ", nil, 0.6); got != nil {
		t.Errorf("пустой словарь: %v", got)
	}
}

func TestFindSimilarNoMatches(t *testing.T) {
	if got := FindSimilar("ЗЕЛЁНЫЙ", []string{"КРАСНЫЙ", "СИНИЙ"}, 0.6); got != nil {
		t.Errorf("FindSimilar = %v, want nil", got)
	}
}
