package parse

import (
	"sort"
	"strings"

	"natcatalog_api/pkg/business/service"
)

const maxSuggestions = 5

var suggestText = service.NewTextService()

// FindSimilar подбирает до пяти подсказок из словаря. Сравниваются основы
// слов без учёта регистра: основа значения входит в основу кандидата либо
// наоборот, поэтому КРАСНЫЙ находит и КРАСНОВАТЫЙ. Результат отсортирован
// лексикографически. Порог threshold принимается, но на отбор не влияет —
// подходит любое вхождение.
func FindSimilar(value string, preset []string, threshold float64) []string {
	if value == "" || len(preset) == 0 {
		return nil
	}

	valueStem := suggestText.Stem(strings.ToLower(value))
	var similar []string
	for _, candidate := range preset {
		candidateStem := suggestText.Stem(strings.ToLower(candidate))
		if strings.Contains(candidateStem, valueStem) || strings.Contains(valueStem, candidateStem) {
			similar = append(similar, candidate)
		}
	}

	sort.Strings(similar)
	if len(similar) > maxSuggestions {
		similar = similar[:maxSuggestions]
	}
	return similar
}
