package parse

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
)

// CategoryOption — один кандидат из таблицы соответствия.
type CategoryOption struct {
	ID   int
	Name string
}

// CategoryMapping — таблица ТН ВЭД → категории, загружается один раз на
// старте и дальше не меняется. Порядок категорий внутри кода сохраняется
// как в файле: от него зависит детерминированность выбора.
type CategoryMapping struct {
	entries map[string][]CategoryOption
}

// LoadMapping читает таблицу из JSON-файла. Отсутствие файла — фатальная
// ошибка конфигурации.
func LoadMapping(path string) (*CategoryMapping, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("файл маппинга %s не найден: %w", path, err)
	}
	defer file.Close()
	return DecodeMapping(file)
}

// DecodeMapping разбирает документ вида {"6204": {"215009": "Швейные изделия"}}.
// Стандартный map не сохраняет порядок ключей, поэтому внутренние объекты
// читаются потоком токенов.
func DecodeMapping(r io.Reader) (*CategoryMapping, error) {
	dec := json.NewDecoder(r)

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("маппинг должен быть JSON-объектом: %w", err)
	}

	entries := make(map[string][]CategoryOption)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		tnved, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("неожиданный ключ маппинга: %v", keyTok)
		}

		options, err := decodeOptions(dec)
		if err != nil {
			return nil, fmt.Errorf("код %s: %w", tnved, err)
		}
		entries[tnved] = options
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return &CategoryMapping{entries: entries}, nil
}

func decodeOptions(dec *json.Decoder) ([]CategoryOption, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}

	var options []CategoryOption
	for dec.More() {
		idTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		rawID, ok := idTok.(string)
		if !ok {
			return nil, fmt.Errorf("неожиданный идентификатор категории: %v", idTok)
		}
		id, err := strconv.Atoi(rawID)
		if err != nil {
			return nil, fmt.Errorf("идентификатор категории %q не число: %w", rawID, err)
		}

		var name string
		if err := dec.Decode(&name); err != nil {
			return nil, err
		}
		options = append(options, CategoryOption{ID: id, Name: name})
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return options, nil
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != want {
		return fmt.Errorf("ожидался %q, получен %v", want, tok)
	}
	return nil
}

// Lookup ищет кандидатов по полному коду, затем по 4-значной группе.
// Возвращает nil, если таблица кода не знает.
func (m *CategoryMapping) Lookup(tnved string) []CategoryOption {
	if tnved == "" {
		return nil
	}
	if options, ok := m.entries[tnved]; ok {
		return options
	}
	if len(tnved) > 4 {
		if options, ok := m.entries[tnved[:4]]; ok {
			return options
		}
	}
	return nil
}
