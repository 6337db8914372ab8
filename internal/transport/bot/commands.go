package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/notify"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/query"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/service/dashboard"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/view"
)

const helpText = "Привет! Доступные команды:\n" +
	"/price {symbol} [provider] [currency] - текущая цена\n" +
	"/quotes [symbol] - таблица котировок\n" +
	"/next, /prev - листать таблицу\n" +
	"/clear - сбросить фильтры\n" +
	"/favorites - избранное\n" +
	"/fav {symbol}, /unfav {symbol} - изменить избранное\n" +
	"/coin_on {symbol}, /coin_off {symbol} - включить/выключить монету\n" +
	"/refresh - запустить обновление котировок\n" +
	"/whoami - текущий пользователь"

// Factory собирает дашборд для чата; уведомления дашборда уходят в notifier
type Factory func(notifier notify.Notifier) *dashboard.Dashboard

type chatState struct {
	dash  *dashboard.Dashboard
	flash *notify.Flash
}

// Commands - команды бота поверх контроллера дашборда. У каждого чата свои фильтры и таблица.
type Commands struct {
	factory Factory
	allowed int64
	logger  *slog.Logger

	mu    sync.Mutex
	chats map[int64]*chatState
}

// NewCommands - allowed != 0 ограничивает бота одним чатом
func NewCommands(factory Factory, allowed int64, logger *slog.Logger) *Commands {
	return &Commands{
		factory: factory,
		allowed: allowed,
		logger:  logger,
		chats:   map[int64]*chatState{},
	}
}

func (c *Commands) chat(id int64) *chatState {
	c.mu.Lock()
	defer c.mu.Unlock()
	st, ok := c.chats[id]
	if !ok {
		flash := notify.NewFlash()
		st = &chatState{dash: c.factory(flash), flash: flash}
		c.chats[id] = st
	}
	return st
}

// Run выполняет команду и возвращает ответы в порядке отправки:
// сначала уведомления действия, потом результат.
func (c *Commands) Run(ctx context.Context, chatID int64, cmd string, args []string) []string {
	if c.allowed != 0 && chatID != c.allowed {
		c.logger.Warn("telegram: command from foreign chat", slog.Int64("chat_id", chatID), slog.String("cmd", cmd))
		return []string{"Этот чат не подключён к дашборду"}
	}
	if cmd == "/start" || cmd == "/help" {
		return []string{helpText}
	}

	st := c.chat(chatID)
	d := st.dash
	arg := func(i int) string {
		if i < len(args) {
			return args[i]
		}
		return ""
	}

	var (
		err    error
		result func() string
	)
	switch cmd {
	case "/price":
		err = d.LookupPrice(ctx, dashboard.PriceForm{Symbol: arg(0), Provider: arg(1), Currency: arg(2)})
		result = func() string { return view.FormatPriceCard(d.Price()) }
	case "/quotes":
		if len(args) > 0 {
			err = d.ApplyFilters(ctx, query.FilterState{Symbol: arg(0)})
		} else {
			err = d.LoadQuotes(ctx)
		}
		result = func() string { return view.FormatTable(d.Table()) }
	case "/next":
		err = d.NextPage(ctx)
		result = func() string { return view.FormatTable(d.Table()) }
	case "/prev":
		err = d.PrevPage(ctx)
		result = func() string { return view.FormatTable(d.Table()) }
	case "/clear":
		err = d.ClearFilters(ctx)
		result = func() string { return view.FormatTable(d.Table()) }
	case "/favorites":
		err = d.LoadFavorites(ctx)
		result = func() string { return view.FormatFavorites(d.Favorites()) }
	case "/fav":
		err = d.AddFavorite(ctx, dashboard.SymbolForm{Symbol: arg(0)})
	case "/unfav":
		err = d.RemoveFavorite(ctx, dashboard.SymbolForm{Symbol: arg(0)})
	case "/coin_on":
		err = d.EnableCoin(ctx, dashboard.SymbolForm{Symbol: arg(0)})
	case "/coin_off":
		err = d.DisableCoin(ctx, dashboard.SymbolForm{Symbol: arg(0)})
	case "/refresh":
		err = d.RunRefresh(ctx)
	case "/whoami":
		result = func() string { return whoami(d.Snapshot(ctx)) }
	default:
		return []string{"Неизвестная команда. /help - список команд"}
	}

	var out []string
	for _, n := range st.flash.Drain() {
		out = append(out, view.FormatNotice(n))
	}
	if err != nil {
		c.logger.Debug("telegram: command finished with error",
			slog.Int64("chat_id", chatID),
			slog.String("cmd", cmd),
			slog.String("error", err.Error()),
		)
	}
	if result != nil && (err == nil || cmd == "/quotes" || cmd == "/favorites") {
		// таблица и избранное показывают и состояние ошибки
		out = append(out, result())
	}
	if len(out) == 0 {
		out = append(out, "Готово")
	}
	return out
}

func whoami(p view.Page) string {
	if !p.LoggedIn {
		return "Вход не выполнен. Войдите в веб-дашборде."
	}
	email := p.Email
	if email == "" {
		email = "неизвестный пользователь"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Вы вошли как %s", view.FormatText(email))
	if p.TokenExpired {
		b.WriteString("\n⚠️ Срок действия токена истёк, войдите заново")
	}
	return b.String()
}
