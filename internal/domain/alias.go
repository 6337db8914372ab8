package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// aliases - объявленная схема ключей: каноническое поле -> допустимые написания в порядке приоритета.
// API отдаёт одни и те же поля в snake_case, camelCase и PascalCase.
type aliases map[string][]string

// fieldDecoder разбирает одно значение в каноническое поле
type fieldDecoder func(raw json.RawMessage) error

// decodeAliased - единственная точка, где разрешаются варианты ключей.
// Для каждого канонического поля берётся первый присутствующий и не-null алиас.
func decodeAliased(data []byte, schema aliases, fields map[string]fieldDecoder) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for canonical, decode := range fields {
		names, ok := schema[canonical]
		if !ok {
			names = []string{canonical}
		}
		for _, name := range names {
			v, ok := raw[name]
			if !ok || isNull(v) {
				continue
			}
			if err := decode(v); err != nil {
				return fmt.Errorf("field %s: %w", name, err)
			}
			break
		}
	}
	return nil
}

func isNull(v json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(v), []byte("null"))
}

// asString принимает строку или число (цена приходит и так, и так).
// Любое другое значение сохраняется как текст JSON, ответ целиком не отбрасывается.
func asString(dst *string) fieldDecoder {
	return func(raw json.RawMessage) error {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			*dst = s
			return nil
		}
		var n json.Number
		if err := json.Unmarshal(raw, &n); err == nil {
			*dst = n.String()
			return nil
		}
		*dst = rawText(raw)
		return nil
	}
}

func rawText(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(bytes.TrimSpace(raw))
	}
	return buf.String()
}

// asInt - число или числовая строка; результат nil означает "нет значения"
func asInt(dst **int) fieldDecoder {
	return func(raw json.RawMessage) error {
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			var s string
			if err2 := json.Unmarshal(raw, &s); err2 != nil {
				return fmt.Errorf("expected number: %w", err)
			}
			n = json.Number(strings.TrimSpace(s))
		}
		v, err := strconv.Atoi(n.String())
		if err != nil {
			f, ferr := n.Float64()
			if ferr != nil {
				return fmt.Errorf("expected integer, got %q", n.String())
			}
			v = int(f)
		}
		*dst = &v
		return nil
	}
}

func asInt64(dst *int64) fieldDecoder {
	return func(raw json.RawMessage) error {
		return json.Unmarshal(raw, dst)
	}
}

func asBool(dst *bool) fieldDecoder {
	return func(raw json.RawMessage) error {
		return json.Unmarshal(raw, dst)
	}
}

// asJSON - вложенная структура со своим UnmarshalJSON
func asJSON(dst any) fieldDecoder {
	return func(raw json.RawMessage) error {
		return json.Unmarshal(raw, dst)
	}
}
