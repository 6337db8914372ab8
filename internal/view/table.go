package view

import (
	"fmt"
	"time"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
)

// Columns - число колонок таблицы котировок (для colspan служебных строк)
const Columns = 5

type TableState string

const (
	StateReady   TableState = "ready"
	StateLoading TableState = "loading"
	StateEmpty   TableState = "empty"
	StateError   TableState = "error"
)

// Row - строка таблицы, уже отформатированная (экранирование делает шаблон)
type Row struct {
	Symbol   string
	Provider string
	Currency string
	Price    string
	QuotedAt string
}

// Table - проекция страницы котировок в вид
type Table struct {
	State   TableState
	Rows    []Row
	Error   string
	Summary domain.PageSummary
}

func NewTable(items []domain.Quote, summary domain.PageSummary, loc *time.Location) Table {
	if len(items) == 0 {
		return Table{State: StateEmpty, Summary: summary}
	}
	rows := make([]Row, 0, len(items))
	for _, q := range items {
		rows = append(rows, Row{
			Symbol:   orDash(q.Symbol),
			Provider: orDash(q.Provider),
			Currency: orDash(q.Currency),
			Price:    orDash(q.Price),
			QuotedAt: FormatLocalDate(q.QuotedAt, loc),
		})
	}
	return Table{State: StateReady, Rows: rows, Summary: summary}
}

// Loading - таблица на время запроса; сводка прошлой страницы остаётся
func (t Table) Loading() Table {
	return Table{State: StateLoading, Summary: t.Summary}
}

func ErrorTable(message string, summary domain.PageSummary) Table {
	return Table{State: StateError, Error: message, Summary: summary}
}

func (t Table) IsLoading() bool { return t.State == StateLoading }
func (t Table) IsEmpty() bool   { return t.State == StateEmpty }
func (t Table) IsError() bool   { return t.State == StateError }
func (t Table) Colspan() int    { return Columns }

// SummaryLine - всегда четыре поля, отсутствующие - "-"
func (t Table) SummaryLine() string {
	return SummaryLine(t.Summary)
}

func SummaryLine(s domain.PageSummary) string {
	return fmt.Sprintf("Всего записей: %s | Всего страниц: %s | Страница: %s | Размер страницы: %s",
		intOrDash(s.TotalItems), intOrDash(s.TotalPages), intOrDash(s.Page), intOrDash(s.PageSize))
}

// Pager - доступность кнопок пагинации
type Pager struct {
	PrevDisabled bool
	NextDisabled bool
}

func (t Table) Pager() Pager {
	return PagerFor(t.Summary)
}

// PagerFor: "назад" выключена без номера страницы или на первой;
// "вперёд" выключена на последней, если известны и страница, и их число.
func PagerFor(s domain.PageSummary) Pager {
	p := Pager{PrevDisabled: s.Page == nil || *s.Page <= 1}
	if s.Page != nil && s.TotalPages != nil {
		p.NextDisabled = *s.Page >= *s.TotalPages
	}
	return p
}
