package get

import (
	"io"
	"sort"
	"sync"

	"natcatalog_api/internal/natcatalog/business/models/dto/responses"
	"natcatalog_api/metrics"
	"natcatalog_api/pkg/business/service"
	"natcatalog_api/pkg/logger"
)

const (
	colorAttrID = 36
	kindAttrID  = 12

	// пресет цветов общий для всех категорий, берём его из категории
	// одежды, как делает и веб-интерфейс каталога
	colorPresetCategory = 30933
)

type attributeSource interface {
	GetAttributes(catID int, attrType string) ([]responses.AttributeInfo, error)
	GetPreset(presetURL string) ([]string, error)
}

type vocabulary struct {
	set    map[string]struct{}
	values []string
}

func newVocabulary(raw []string, text service.ITextService) vocabulary {
	vocab := vocabulary{set: make(map[string]struct{}, len(raw))}
	for _, v := range raw {
		upper := text.Upper(v)
		if _, ok := vocab.set[upper]; ok {
			continue
		}
		vocab.set[upper] = struct{}{}
		vocab.values = append(vocab.values, upper)
	}
	sort.Strings(vocab.values)
	return vocab
}

// VocabularyService — контролируемые справочники каталога: цвета (общий)
// и виды товара (по категориям). Каждый ключ выбирается из сети один раз
// за время жизни процесса и далее отдаётся из памяти; перезапроса и
// инвалидации нет, в том числе для пустого результата.
type VocabularyService struct {
	source attributeSource
	text   service.ITextService
	log    logger.Logger

	mu           sync.RWMutex
	colors       vocabulary
	colorsLoaded bool
	kinds        map[int]vocabulary
}

func NewVocabularyService(source attributeSource, text service.ITextService, writer io.Writer) *VocabularyService {
	return &VocabularyService{
		source: source,
		text:   text,
		log:    logger.NewLogger(writer, "[VocabularyService]"),
		kinds:  make(map[int]vocabulary),
	}
}

// ValidateColor проверяет цвет по общему пресету. Пустое значение
// недействительно и не вызывает обращения к сети.
func (v *VocabularyService) ValidateColor(value string) (bool, []string) {
	if value == "" {
		return false, nil
	}
	vocab := v.colorVocabulary()
	_, ok := vocab.set[v.text.Upper(value)]
	return ok, vocab.values
}

// ValidateKind проверяет вид товара по справочнику категории.
func (v *VocabularyService) ValidateKind(value string, catID int) (bool, []string) {
	if value == "" || catID == 0 {
		return false, nil
	}
	vocab := v.kindVocabulary(catID)
	_, ok := vocab.set[v.text.Upper(value)]
	return ok, vocab.values
}

func (v *VocabularyService) colorVocabulary() vocabulary {
	v.mu.RLock()
	if v.colorsLoaded {
		defer v.mu.RUnlock()
		return v.colors
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()
	if v.colorsLoaded {
		return v.colors
	}
	metrics.RecordVocabularyFetch("color")
	v.colors = newVocabulary(v.fetchPreset(colorPresetCategory, colorAttrID), v.text)
	v.colorsLoaded = true
	return v.colors
}

func (v *VocabularyService) kindVocabulary(catID int) vocabulary {
	v.mu.RLock()
	if vocab, ok := v.kinds[catID]; ok {
		v.mu.RUnlock()
		return vocab
	}
	v.mu.RUnlock()

	v.mu.Lock()
	defer v.mu.Unlock()
	if vocab, ok := v.kinds[catID]; ok {
		return vocab
	}
	metrics.RecordVocabularyFetch("kind")
	vocab := newVocabulary(v.fetchPreset(catID, kindAttrID), v.text)
	v.kinds[catID] = vocab
	return vocab
}

// fetchPreset достаёт пресет атрибута категории; ошибка сети даёт пустой
// справочник, который тоже кешируется.
func (v *VocabularyService) fetchPreset(catID, attrID int) []string {
	attrs, err := v.source.GetAttributes(catID, "a")
	if err != nil {
		v.log.Warn("не удалось получить атрибуты категории %d: %s", catID, err)
		return nil
	}

	for _, attr := range attrs {
		if attr.AttrID != attrID {
			continue
		}
		if len(attr.AttrPreset) > 0 {
			return attr.AttrPreset
		}
		if attr.PresetURL != "" {
			preset, err := v.source.GetPreset(attr.PresetURL)
			if err != nil {
				v.log.Warn("не удалось получить пресет атрибута %d категории %d: %s", attrID, catID, err)
				return nil
			}
			return preset
		}
		return nil
	}
	return nil
}
