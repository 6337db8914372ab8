package dashboard

import (
	"context"
	"log/slog"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/notify"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/query"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/session"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/view"
	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=dashboard.go -destination=mocks/mock_dashboard.go -package=mocks

// QuoteAPI - внешний API котировок (api_client.Client)
type QuoteAPI interface {
	GetPrice(ctx context.Context, symbol, provider, currency string) (domain.PriceQuote, error)
	ListQuotes(ctx context.Context, query url.Values) (domain.QuotesPage, error)
	Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error)
	Register(ctx context.Context, reg domain.Registration) (domain.User, error)
	ListFavorites(ctx context.Context, token string) ([]domain.Coin, error)
	AddFavorite(ctx context.Context, token, symbol string) (domain.FavoriteChange, error)
	RemoveFavorite(ctx context.Context, token, symbol string) (domain.FavoriteChange, error)
	CreateCoin(ctx context.Context, token, symbol string, enabled bool) (domain.Coin, error)
	UpdateCoin(ctx context.Context, token, symbol string, enabled bool) (domain.Coin, error)
	RunRefresh(ctx context.Context, token string) (domain.RefreshResult, error)
}

// Логические операции для Sequencer
const (
	opPrice     = "price"
	opQuotes    = "quotes"
	opFavorites = "favorites"
)

// Dashboard - контроллер событий: действия пользователя -> запросы к API -> состояние вида.
// Ошибки каждого действия остаются внутри действия: пользователь видит тост/модалку,
// в лог уходит подробность.
type Dashboard struct {
	api      QuoteAPI
	sess     *session.Session
	notifier notify.Notifier
	logger   *slog.Logger
	seq      *session.Sequencer
	validate *validator.Validate

	loc      *time.Location
	pageSize int

	onSessionChange func()

	mu         sync.Mutex
	filters    query.FilterState
	table      view.Table
	price      view.PriceCard
	favorites  []domain.Coin
	favErr     string
	refreshing bool
}

type Option func(*Dashboard)

// WithLocation - часовой пояс для дат в таблице
func WithLocation(loc *time.Location) Option {
	return func(d *Dashboard) {
		if loc != nil {
			d.loc = loc
		}
	}
}

// WithPageSize - размер страницы по умолчанию
func WithPageSize(n int) Option {
	return func(d *Dashboard) {
		if n > 0 {
			d.pageSize = n
		}
	}
}

// WithSessionChanged - fn вызывается после входа, выхода и изменения избранного.
// Нужна, когда одну сессию делят несколько дашбордов.
func WithSessionChanged(fn func()) Option {
	return func(d *Dashboard) {
		d.onSessionChange = fn
	}
}

func New(api QuoteAPI, sess *session.Session, notifier notify.Notifier, logger *slog.Logger, opts ...Option) *Dashboard {
	d := &Dashboard{
		api:      api,
		sess:     sess,
		notifier: notifier,
		logger:   logger,
		seq:      session.NewSequencer(),
		validate: validator.New(),
		loc:      time.Local,
		pageSize: query.DefaultPageSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.filters = d.clearedFilters()
	d.table = view.Table{State: view.StateEmpty}
	d.price = view.EmptyPriceCard()
	return d
}

// Snapshot - текущее состояние для отрисовки (без уведомлений)
func (d *Dashboard) Snapshot(ctx context.Context) view.Page {
	loggedIn := d.sess.LoggedIn(ctx)
	page := view.Page{LoggedIn: loggedIn}
	if loggedIn {
		if id, ok := d.sess.Identity(ctx); ok {
			page.Email = id.Email
			page.TokenExpired = id.Expired
		}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	page.Price = d.price
	page.Filters = d.filters
	page.Table = d.table
	page.Refreshing = d.refreshing
	if loggedIn {
		page.Favorites = append([]domain.Coin(nil), d.favorites...)
		page.FavoritesError = d.favErr
	}
	return page
}

func (d *Dashboard) Filters() query.FilterState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.filters
}

func (d *Dashboard) Table() view.Table {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.table
}

func (d *Dashboard) Price() view.PriceCard {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.price
}

func (d *Dashboard) Favorites() []domain.Coin {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.Coin(nil), d.favorites...)
}

func (d *Dashboard) clearedFilters() query.FilterState {
	f := query.Clear()
	f.PageSize = strconv.Itoa(d.pageSize)
	return f
}

// updateFilters меняет фильтры под блокировкой
func (d *Dashboard) updateFilters(fn func(query.FilterState) query.FilterState) {
	d.mu.Lock()
	d.filters = fn(d.filters)
	d.mu.Unlock()
}
