package service

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

type ITextService interface {
	Normalize(input string) string
	Tokenize(input string) []string
	Stem(token string) string
	Upper(input string) string
}

// TextService нормализует свободный текст и строит множества основ слов
// для нечёткого сопоставления названий категорий и видов товара.
type TextService struct{}

func NewTextService() *TextService {
	return &TextService{}
}

var nonLetter = regexp.MustCompile(`[^\pL\pN]+`)

// окончания существительных и прилагательных, от длинных к коротким
var ruSuffixes = []string{
	"иями", "ями", "ами", "ого", "его", "ому", "ему", "ыми", "ими",
	"ая", "яя", "ое", "ее", "ие", "ые", "ой", "ей", "ий", "ый",
	"ах", "ях", "ам", "ям", "ом", "ем", "ов", "ев",
	"ы", "и", "а", "я", "о", "е", "у", "ю", "ь",
}

func (ts *TextService) Normalize(input string) string {
	lowered := cases.Lower(language.Russian).String(input)
	lowered = strings.ReplaceAll(lowered, "ё", "е")
	cleaned := nonLetter.ReplaceAllString(lowered, " ")
	return strings.TrimSpace(cleaned)
}

func (ts *TextService) Tokenize(input string) []string {
	seen := make(map[string]struct{})
	var tokens []string
	for _, word := range strings.Fields(ts.Normalize(input)) {
		token := ts.Stem(word)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		tokens = append(tokens, token)
	}
	return tokens
}

// Stem отрезает одно окончание. Короткие слова не трогаем: у них
// окончание неотличимо от корня.
func (ts *TextService) Stem(token string) string {
	runes := []rune(token)
	if len(runes) < 4 {
		return token
	}
	for _, suffix := range ruSuffixes {
		if !strings.HasSuffix(token, suffix) {
			continue
		}
		stem := runes[:len(runes)-len([]rune(suffix))]
		if len(stem) >= 3 {
			return string(stem)
		}
	}
	return token
}

func (ts *TextService) Upper(input string) string {
	return cases.Upper(language.Russian).String(input)
}
