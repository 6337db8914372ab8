package query

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 50
)

// FilterState - поля формы фильтров таблицы котировок, как их ввёл пользователь
type FilterState struct {
	Symbol   string `form:"symbol" query:"symbol"`
	Provider string `form:"provider" query:"provider"`
	Currency string `form:"currency" query:"currency"`
	From     string `form:"from" query:"from"`
	To       string `form:"to" query:"to"`
	MinPrice string `form:"min_price" query:"min_price"`
	MaxPrice string `form:"max_price" query:"max_price"`
	Page     string `form:"page" query:"page"`
	PageSize string `form:"page_size" query:"page_size"`
}

// NormalizeSymbol - trim + верхний регистр. Идемпотентна.
func NormalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Build - каноничный query для GET /quotes: только непустые поля,
// symbol в верхнем регистре, page/page_size всегда есть (1/50 по умолчанию).
func Build(f FilterState) url.Values {
	q := url.Values{}
	set := func(key, v string) {
		if v = strings.TrimSpace(v); v != "" {
			q.Set(key, v)
		}
	}

	set("symbol", NormalizeSymbol(f.Symbol))
	set("provider", f.Provider)
	set("currency", f.Currency)
	set("from", f.From)
	set("to", f.To)
	set("min_price", normalizePrice(f.MinPrice))
	set("max_price", normalizePrice(f.MaxPrice))

	q.Set("page", strconv.Itoa(pageOr(f.Page, DefaultPage)))
	q.Set("page_size", strconv.Itoa(pageOr(f.PageSize, DefaultPageSize)))
	return q
}

// Apply - новые фильтры всегда начинают с первой страницы
func (f FilterState) Apply() FilterState {
	f.Page = strconv.Itoa(DefaultPage)
	return f
}

// Next - следующая страница. Верхней границы здесь нет, её знает только сервер.
func (f FilterState) Next() FilterState {
	f.Page = strconv.Itoa(pageOr(f.Page, DefaultPage) + 1)
	return f
}

// Prev - предыдущая страница, не меньше 1
func (f FilterState) Prev() FilterState {
	f.Page = strconv.Itoa(max(DefaultPage, pageOr(f.Page, DefaultPage)-1))
	return f
}

// Clear - все поля пустые, страница 1, размер 50
func Clear() FilterState {
	return FilterState{
		Page:     strconv.Itoa(DefaultPage),
		PageSize: strconv.Itoa(DefaultPageSize),
	}
}

// SyncFromSummary - после загрузки страница и размер берутся из ответа сервера
func (f FilterState) SyncFromSummary(s domain.PageSummary) FilterState {
	if s.Page != nil {
		f.Page = strconv.Itoa(*s.Page)
	}
	if s.PageSize != nil {
		f.PageSize = strconv.Itoa(*s.PageSize)
	}
	return f
}

// pageOr - положительное целое из поля формы или def
func pageOr(s string, def int) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return def
	}
	return n
}

// normalizePrice убирает лишнее из числа ("0100.50" -> "100.5"); нечисловое значение уходит как есть,
// проверять его - дело сервера.
func normalizePrice(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return s
	}
	return d.String()
}
