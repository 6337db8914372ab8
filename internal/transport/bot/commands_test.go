package bot

import (
	"context"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/credentials"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/infra/storage"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/notify"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/service/dashboard"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/service/dashboard/mocks"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/session"
	"github.com/NastyaGoryachaya/crypto-dashboard/pkg/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"gopkg.in/telebot.v4"
)

func newCommands(t *testing.T, allowed int64) (*Commands, *mocks.MockQuoteAPI, *credentials.Store) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	api := mocks.NewMockQuoteAPI(ctrl)
	log := logger.Discard()
	tokens := credentials.NewStore(storage.NewMemoryStore())
	sess := session.New(tokens, api, log)

	factory := func(n notify.Notifier) *dashboard.Dashboard {
		return dashboard.New(api, sess, n, log, dashboard.WithLocation(time.UTC))
	}
	return NewCommands(factory, allowed, log), api, tokens
}

func TestRun_ForeignChat(t *testing.T) {
	t.Parallel()
	c, _, _ := newCommands(t, 42)

	out := c.Run(context.Background(), 7, "/quotes", nil)
	require.Equal(t, []string{"Этот чат не подключён к дашборду"}, out)
}

func TestRun_Price(t *testing.T) {
	t.Parallel()
	c, api, _ := newCommands(t, 0)
	api.EXPECT().
		GetPrice(gomock.Any(), "ETH", "", "").
		Return(domain.PriceQuote{Symbol: "ETH", Provider: "coingecko", Currency: "USD", Price: "3100.5"}, nil)

	out := c.Run(context.Background(), 1, "/price", []string{"eth"})
	require.Len(t, out, 1)
	require.Contains(t, out[0], "<b>ETH</b>")
	require.Contains(t, out[0], "3100.50 USD")
}

// Ошибка валидации приходит модалкой, карточка не отправляется
func TestRun_PriceWithoutSymbol(t *testing.T) {
	t.Parallel()
	c, _, _ := newCommands(t, 0)

	out := c.Run(context.Background(), 1, "/price", nil)
	require.Len(t, out, 1)
	require.Contains(t, out[0], "<b>Нужны данные</b>")
}

func TestRun_FavWithoutLogin(t *testing.T) {
	t.Parallel()
	c, api, _ := newCommands(t, 0)
	api.EXPECT().AddFavorite(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	out := c.Run(context.Background(), 1, "/fav", []string{"btc"})
	require.Len(t, out, 1)
	require.Contains(t, out[0], "🔒")
}

func TestRun_QuotesPerChat(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	c, api, _ := newCommands(t, 0)

	api.EXPECT().ListQuotes(gomock.Any(), gomock.Any()).Return(domain.QuotesPage{
		Items:   []domain.Quote{{Symbol: "BTC", Provider: "binance", Currency: "USD", Price: "64000"}},
		Summary: domain.PageSummary{TotalItems: domain.IntPtr(1), TotalPages: domain.IntPtr(1), Page: domain.IntPtr(1), PageSize: domain.IntPtr(50)},
	}, nil)

	out := c.Run(ctx, 1, "/quotes", []string{"btc"})
	require.Len(t, out, 1)
	require.Contains(t, out[0], "BTC | binance | 64000.00 USD")

	// у другого чата своя таблица
	require.True(t, c.chat(2).dash.Table().IsEmpty())
	require.Len(t, c.chat(1).dash.Table().Rows, 1)
}

func TestRun_Whoami(t *testing.T) {
	t.Parallel()
	c, _, tokens := newCommands(t, 0)

	require.Equal(t, []string{"Вход не выполнен. Войдите в веб-дашборде."}, c.Run(context.Background(), 1, "/whoami", nil))

	require.NoError(t, tokens.SetToken(context.Background(), "opaque"))
	require.Equal(t, []string{"Вы вошли как неизвестный пользователь"}, c.Run(context.Background(), 1, "/whoami", nil))
}

func TestRun_Unknown(t *testing.T) {
	t.Parallel()
	c, _, _ := newCommands(t, 0)
	require.Equal(t, []string{"Неизвестная команда. /help - список команд"}, c.Run(context.Background(), 1, "hello", nil))
}

type fakeSender struct {
	sent []string
}

func (f *fakeSender) Send(_ telebot.Recipient, what interface{}, _ ...interface{}) (*telebot.Message, error) {
	f.sent = append(f.sent, what.(string))
	return &telebot.Message{}, nil
}

func TestChatNotifier(t *testing.T) {
	t.Parallel()
	s := &fakeSender{}
	n := NewChatNotifier(s, 5, logger.Discard())

	n.Toast(context.Background(), "Монета включена ✅ <UNI>", notify.Success)
	n.Modal(context.Background(), "Войдите", "Требуется вход", "🔒")

	require.Equal(t, []string{
		"🟢 Монета включена ✅ &lt;UNI&gt;",
		"🔒 <b>Требуется вход</b>\nВойдите",
	}, s.sent)
}
