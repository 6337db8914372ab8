package domain

import (
	"encoding/json"
	"strings"
)

// Quote - одна строка таблицы котировок
type Quote struct {
	Symbol   string
	Provider string
	Currency string
	Price    string // число строкой, как отдаёт API
	QuotedAt string // RFC3339, форматирование - на стороне view
}

var quoteAliases = aliases{
	"symbol":    {"symbol", "Symbol"},
	"provider":  {"provider", "Provider"},
	"currency":  {"currency", "Currency"},
	"price":     {"price", "Price"},
	"quoted_at": {"quoted_at", "quotedAt", "QuotedAt", "Quoted_At"},
}

func (q *Quote) UnmarshalJSON(data []byte) error {
	return decodeAliased(data, quoteAliases, map[string]fieldDecoder{
		"symbol":    asString(&q.Symbol),
		"provider":  asString(&q.Provider),
		"currency":  asString(&q.Currency),
		"price":     asString(&q.Price),
		"quoted_at": asString(&q.QuotedAt),
	})
}

// NormalizedSymbol - символ в верхнем регистре для сравнения с избранным
func (q Quote) NormalizedSymbol() string {
	return strings.ToUpper(strings.TrimSpace(q.Symbol))
}

// PriceQuote - последняя цена по символу (GET /crypto/price)
type PriceQuote struct {
	Symbol    string
	Provider  string
	Currency  string
	Price     string
	Timestamp string
}

var priceAliases = aliases{
	"symbol":    {"symbol", "Symbol"},
	"provider":  {"provider", "Provider"},
	"currency":  {"currency", "Currency"},
	"price":     {"price", "Price"},
	"timestamp": {"timestamp", "Timestamp"},
}

func (p *PriceQuote) UnmarshalJSON(data []byte) error {
	return decodeAliased(data, priceAliases, map[string]fieldDecoder{
		"symbol":    asString(&p.Symbol),
		"provider":  asString(&p.Provider),
		"currency":  asString(&p.Currency),
		"price":     asString(&p.Price),
		"timestamp": asString(&p.Timestamp),
	})
}

// PageSummary - сводка пагинации от сервера. nil - значение не пришло.
type PageSummary struct {
	TotalItems *int
	TotalPages *int
	Page       *int
	PageSize   *int
}

var summaryAliases = aliases{
	"total_items": {"total_items", "totalItems", "TotalItems"},
	"total_pages": {"total_pages", "totalPages", "TotalPages"},
	"page":        {"page", "Page"},
	"page_size":   {"page_size", "pageSize", "PageSize"},
}

func (s *PageSummary) UnmarshalJSON(data []byte) error {
	return decodeAliased(data, summaryAliases, map[string]fieldDecoder{
		"total_items": asInt(&s.TotalItems),
		"total_pages": asInt(&s.TotalPages),
		"page":        asInt(&s.Page),
		"page_size":   asInt(&s.PageSize),
	})
}

// QuotesPage - ответ GET /quotes
type QuotesPage struct {
	Items   []Quote
	Summary PageSummary
}

var pageAliases = aliases{
	"items":   {"items", "Items"},
	"summary": {"summary", "Summary"},
}

func (p *QuotesPage) UnmarshalJSON(data []byte) error {
	return decodeAliased(data, pageAliases, map[string]fieldDecoder{
		"items":   asJSON(&p.Items),
		"summary": asJSON(&p.Summary),
	})
}

// IntPtr - хелпер для сводок в тестах и адаптерах
func IntPtr(v int) *int { return &v }

var _ json.Unmarshaler = (*Quote)(nil)
