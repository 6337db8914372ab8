package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/notify"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/query"
)

//go:embed templates/*.html
var templatesFS embed.FS

const (
	TemplatePage = "dashboard"
	TemplateRows = "rows"
)

// PriceCard - карточка последней цены
type PriceCard struct {
	Symbol    string
	Price     string
	Provider  string
	Currency  string
	Timestamp string
}

func EmptyPriceCard() PriceCard {
	return PriceCard{Symbol: dash, Price: dash, Provider: dash, Currency: dash, Timestamp: dash}
}

func NewPriceCard(p domain.PriceQuote, loc *time.Location) PriceCard {
	return PriceCard{
		Symbol:    orDash(p.Symbol),
		Price:     orDash(p.Price),
		Provider:  orDash(p.Provider),
		Currency:  orDash(p.Currency),
		Timestamp: FormatLocalDate(p.Timestamp, loc),
	}
}

// Page - всё, что нужно для отрисовки дашборда
type Page struct {
	LoggedIn     bool
	Email        string
	TokenExpired bool

	Notices []notify.Notice

	Price   PriceCard
	Filters query.FilterState
	Table   Table

	Favorites      []domain.Coin
	FavoritesError string

	Refreshing bool
}

func (p Page) Toasts() []notify.Notice  { return p.byKind(notify.KindToast) }
func (p Page) Modals() []notify.Notice  { return p.byKind(notify.KindModal) }
func (p Page) Pager() Pager             { return p.Table.Pager() }
func (p Page) PrivateDisabled() bool    { return !p.LoggedIn }
func (p Page) RefreshDisabled() bool    { return !p.LoggedIn || p.Refreshing }
func (p Page) byKind(k notify.Kind) []notify.Notice {
	var out []notify.Notice
	for _, n := range p.Notices {
		if n.Kind == k {
			out = append(out, n)
		}
	}
	return out
}

// Renderer - html/template шаблоны дашборда. Все строки экранируются шаблонизатором.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("view").ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Execute рисует именованный шаблон (TemplatePage или TemplateRows)
func (r *Renderer) Execute(w io.Writer, name string, data any) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

func (r *Renderer) Page(w io.Writer, p Page) error {
	return r.Execute(w, TemplatePage, p)
}

// Rows - только tbody таблицы котировок
func (r *Renderer) Rows(w io.Writer, t Table) error {
	return r.Execute(w, TemplateRows, t)
}
