package web

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/notify"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/query"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/service/dashboard"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/view"
	"github.com/labstack/echo/v4"
)

// Dashboard - действия контроллера, доступные из браузера
type Dashboard interface {
	Snapshot(ctx context.Context) view.Page
	Table() view.Table

	LookupPrice(ctx context.Context, form dashboard.PriceForm) error
	LoadQuotes(ctx context.Context) error
	ApplyFilters(ctx context.Context, f query.FilterState) error
	ClearFilters(ctx context.Context) error
	NextPage(ctx context.Context) error
	PrevPage(ctx context.Context) error

	Login(ctx context.Context, form dashboard.LoginForm) error
	Logout(ctx context.Context) error
	Register(ctx context.Context, form dashboard.RegisterForm) error

	AddFavorite(ctx context.Context, form dashboard.SymbolForm) error
	RemoveFavorite(ctx context.Context, form dashboard.SymbolForm) error
	EnableCoin(ctx context.Context, form dashboard.SymbolForm) error
	DisableCoin(ctx context.Context, form dashboard.SymbolForm) error
	RunRefresh(ctx context.Context) error
}

// Notices - уведомления, накопленные между запросами (notify.Flash)
type Notices interface {
	Drain() []notify.Notice
}

// DashboardHandler — HTTP‑handler страницы дашборда.
// Формы отправляются POST-ом, после действия - редирект на страницу (post/redirect/get),
// уведомления действия показываются при следующей отрисовке.
type DashboardHandler struct {
	logger  *slog.Logger
	dash    Dashboard
	notices Notices
	timeout time.Duration
}

func NewDashboardHandler(logger *slog.Logger, dash Dashboard, notices Notices, timeout time.Duration) *DashboardHandler {
	if logger == nil {
		log.Fatal("nil logger")
	}
	if dash == nil {
		log.Fatal("nil dashboard")
	}
	// Задаём таймаут по умолчанию, если он не задан
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &DashboardHandler{
		logger:  logger,
		dash:    dash,
		notices: notices,
		timeout: timeout,
	}
}

type router interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

func (h *DashboardHandler) RegisterRoutes(r router) {
	r.GET("/", h.Index)
	r.GET("/quotes/rows", h.Rows)
	r.GET("/healthz", h.Health)

	r.POST("/price", h.Price)
	r.POST("/quotes/apply", h.ApplyFilters)
	r.POST("/quotes/clear", h.action(h.dash.ClearFilters))
	r.POST("/quotes/reload", h.action(h.dash.LoadQuotes))
	r.POST("/quotes/prev", h.action(h.dash.PrevPage))
	r.POST("/quotes/next", h.action(h.dash.NextPage))

	r.POST("/favorites", h.Favorites)
	r.POST("/coins", h.Coins)
	r.POST("/job/refresh", h.action(h.dash.RunRefresh))

	r.POST("/login", h.Login)
	r.POST("/logout", h.action(h.dash.Logout))
	r.POST("/register", h.Register)
}

func (h *DashboardHandler) Index(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	page := h.dash.Snapshot(ctx)
	if h.notices != nil {
		page.Notices = h.notices.Drain()
	}
	return c.Render(http.StatusOK, view.TemplatePage, page)
}

// Rows - только строки таблицы, для частичного обновления
func (h *DashboardHandler) Rows(c echo.Context) error {
	return c.Render(http.StatusOK, view.TemplateRows, h.dash.Table())
}

func (h *DashboardHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (h *DashboardHandler) Price(c echo.Context) error {
	var form dashboard.PriceForm
	if err := c.Bind(&form); err != nil {
		return h.badRequest(c, "Price", err)
	}
	return h.run(c, "Price", func(ctx context.Context) error { return h.dash.LookupPrice(ctx, form) })
}

func (h *DashboardHandler) ApplyFilters(c echo.Context) error {
	var f query.FilterState
	if err := c.Bind(&f); err != nil {
		return h.badRequest(c, "ApplyFilters", err)
	}
	return h.run(c, "ApplyFilters", func(ctx context.Context) error { return h.dash.ApplyFilters(ctx, f) })
}

func (h *DashboardHandler) Favorites(c echo.Context) error {
	var form dashboard.SymbolForm
	if err := c.Bind(&form); err != nil {
		return h.badRequest(c, "Favorites", err)
	}
	switch strings.ToLower(c.FormValue("action")) {
	case "add":
		return h.run(c, "AddFavorite", func(ctx context.Context) error { return h.dash.AddFavorite(ctx, form) })
	case "remove":
		return h.run(c, "RemoveFavorite", func(ctx context.Context) error { return h.dash.RemoveFavorite(ctx, form) })
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown_action"})
	}
}

func (h *DashboardHandler) Coins(c echo.Context) error {
	var form dashboard.SymbolForm
	if err := c.Bind(&form); err != nil {
		return h.badRequest(c, "Coins", err)
	}
	switch strings.ToLower(c.FormValue("action")) {
	case "enable":
		return h.run(c, "EnableCoin", func(ctx context.Context) error { return h.dash.EnableCoin(ctx, form) })
	case "disable":
		return h.run(c, "DisableCoin", func(ctx context.Context) error { return h.dash.DisableCoin(ctx, form) })
	default:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown_action"})
	}
}

func (h *DashboardHandler) Login(c echo.Context) error {
	var form dashboard.LoginForm
	if err := c.Bind(&form); err != nil {
		return h.badRequest(c, "Login", err)
	}
	return h.run(c, "Login", func(ctx context.Context) error { return h.dash.Login(ctx, form) })
}

func (h *DashboardHandler) Register(c echo.Context) error {
	var form dashboard.RegisterForm
	if err := c.Bind(&form); err != nil {
		return h.badRequest(c, "Register", err)
	}
	return h.run(c, "Register", func(ctx context.Context) error { return h.dash.Register(ctx, form) })
}

// action - обработчик для действия без параметров
func (h *DashboardHandler) action(fn func(ctx context.Context) error) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.run(c, c.Path(), fn)
	}
}

// run выполняет действие с таймаутом и возвращает на страницу.
// Ошибку действия пользователь уже получил уведомлением, здесь она только в логе.
func (h *DashboardHandler) run(c echo.Context, op string, fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := fn(ctx); err != nil {
		h.logger.Debug("dashboard action finished with error",
			slog.String("op", op),
			slog.String("error", err.Error()),
		)
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *DashboardHandler) badRequest(c echo.Context, op string, err error) error {
	h.logger.Warn("bind failed", slog.String("op", op), slog.String("error", err.Error()))
	return c.JSON(http.StatusBadRequest, echo.Map{"error": "bad_request"})
}
