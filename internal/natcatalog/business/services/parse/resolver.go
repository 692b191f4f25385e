package parse

import (
	"io"
	"sort"
	"strings"

	"natcatalog_api/config/values"
	"natcatalog_api/internal/natcatalog/business/models/dto/responses"
	"natcatalog_api/pkg/business/service"
	"natcatalog_api/pkg/logger"
)

// CategoryFinder — удалённый поиск категорий, используется когда локальная
// таблица не знает код.
type CategoryFinder interface {
	GetCategoriesByTnved(tnved string) ([]responses.CategoryInfo, error)
}

// CategoryResolver выбирает категорию нац. каталога по коду ТН ВЭД и
// свободному тексту вида товара: локальная таблица, оценка совпадения
// токенов, политика неактивных и низкоприоритетных категорий.
type CategoryResolver struct {
	mapping *CategoryMapping
	text    service.ITextService
	values  values.CatalogValues
	log     logger.Logger
}

func NewCategoryResolver(mapping *CategoryMapping, text service.ITextService, vals values.CatalogValues, writer io.Writer) *CategoryResolver {
	return &CategoryResolver{
		mapping: mapping,
		text:    text,
		values:  vals,
		log:     logger.NewLogger(writer, "[CategoryResolver]"),
	}
}

// Resolve возвращает категорию по локальной таблице. Второй результат false
// означает, что таблица кода не знает и решение за вызывающим.
func (r *CategoryResolver) Resolve(tnved, productKind string) (int, bool) {
	if tnved == "" {
		return 0, false
	}
	candidates := r.mapping.Lookup(tnved)
	if len(candidates) == 0 {
		return 0, false
	}

	active := r.withoutInactive(candidates)
	if len(active) == 0 {
		// лучше сомнительный ответ, чем никакого: неактивность проверяется
		// внешним списком и может отставать от каталога
		r.log.Warn("все категории кода %s помечены неактивными, список не фильтруется", tnved)
		active = candidates
	}

	if productKind == "" {
		return r.firstNormalOrAny(active), true
	}

	queryTokens := r.text.Tokenize(productKind)
	if len(queryTokens) == 0 {
		return r.firstNormalOrAny(active), true
	}
	normalizedQuery := r.text.Normalize(productKind)

	type scoredOption struct {
		option CategoryOption
		score  float64
	}
	scored := make([]scoredOption, 0, len(active))
	for _, option := range active {
		scored = append(scored, scoredOption{
			option: option,
			score:  r.score(queryTokens, normalizedQuery, option),
		})
	}
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})

	// лучший не низкоприоритетный с положительной оценкой
	for _, s := range scored {
		if s.score > 0 && !r.values.IsLowPriority(s.option.ID) {
			return s.option.ID, true
		}
	}
	// все набравшие очки — низкоприоритетные: берём сильнейшего
	if scored[0].score > 0 {
		return scored[0].option.ID, true
	}
	// вид товара не дал совпадений — политика как без вида
	return r.firstNormalOrAny(active), true
}

// ResolveOrDefault дополняет Resolve удалённым поиском и дефолтом, порядок
// падения: таблица → API каталога → настроенная категория по умолчанию.
func (r *CategoryResolver) ResolveOrDefault(finder CategoryFinder, tnved, productKind string) int {
	if id, ok := r.Resolve(tnved, productKind); ok {
		return id
	}
	if tnved == "" {
		return r.values.DefaultCategory
	}

	if finder != nil {
		cats, err := finder.GetCategoriesByTnved(tnved)
		if err != nil {
			r.log.Warn("поиск категорий для %s не удался: %s", tnved, err)
		} else if len(cats) > 0 {
			for _, cat := range cats {
				if containsInt(r.values.PriorityCategories, cat.CatID) && cat.Active() {
					return cat.CatID
				}
			}
			for _, cat := range cats {
				if cat.Active() {
					return cat.CatID
				}
			}
			return cats[0].CatID
		}
	}

	r.log.Warn("для кода %s категория не найдена, используем %d", tnved, r.values.DefaultCategory)
	return r.values.DefaultCategory
}

// score: +1 за совпавший токен, +0.5 за каждую пару токенов длиной от трёх
// рун, где один входит в другой (пары не схлопываются); затем множители
// правил разрешения коллизий и нормировка на длину запроса.
func (r *CategoryResolver) score(queryTokens []string, normalizedQuery string, option CategoryOption) float64 {
	nameTokens := r.text.Tokenize(option.Name)

	var score float64
	for _, qt := range queryTokens {
		for _, nt := range nameTokens {
			if qt == nt {
				score++
				continue
			}
			if runeLen(qt) >= 3 && runeLen(nt) >= 3 &&
				(strings.Contains(qt, nt) || strings.Contains(nt, qt)) {
				score += 0.5
			}
		}
	}
	if score == 0 {
		return 0
	}

	for _, rule := range r.values.Disambiguation {
		if rule.Category == option.ID && strings.Contains(normalizedQuery, rule.Keyword) {
			score *= rule.Factor
		}
	}
	return score / float64(len(queryTokens))
}

func (r *CategoryResolver) withoutInactive(options []CategoryOption) []CategoryOption {
	var active []CategoryOption
	for _, option := range options {
		if !r.values.IsInactive(option.ID) {
			active = append(active, option)
		}
	}
	return active
}

func (r *CategoryResolver) firstNormalOrAny(options []CategoryOption) int {
	for _, option := range options {
		if !r.values.IsLowPriority(option.ID) {
			return option.ID
		}
	}
	return options[0].ID
}

func containsInt(list []int, x int) bool {
	for _, v := range list {
		if v == x {
			return true
		}
	}
	return false
}

func runeLen(s string) int {
	return len([]rune(s))
}
