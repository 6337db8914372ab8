package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
	"github.com/stretchr/testify/require"
)

// Один и тот же ответ в трёх написаниях ключей даёт одинаковую котировку
func TestQuote_UnmarshalAliases(t *testing.T) {
	t.Parallel()

	bodies := []string{
		`{"symbol":"BTC","provider":"binance","currency":"USD","price":"70000.5","quoted_at":"2024-05-01T10:00:00Z"}`,
		`{"symbol":"BTC","provider":"binance","currency":"USD","price":"70000.5","quotedAt":"2024-05-01T10:00:00Z"}`,
		`{"Symbol":"BTC","Provider":"binance","Currency":"USD","Price":70000.5,"QuotedAt":"2024-05-01T10:00:00Z"}`,
		`{"Symbol":"BTC","Provider":"binance","Currency":"USD","Price":"70000.5","Quoted_At":"2024-05-01T10:00:00Z"}`,
	}
	want := domain.Quote{
		Symbol:   "BTC",
		Provider: "binance",
		Currency: "USD",
		Price:    "70000.5",
		QuotedAt: "2024-05-01T10:00:00Z",
	}

	for _, body := range bodies {
		var got domain.Quote
		require.NoError(t, json.Unmarshal([]byte(body), &got), body)
		require.Equal(t, want, got, body)
	}
}

// null у приоритетного алиаса не затирает значение из следующего
func TestQuote_NullAliasSkipped(t *testing.T) {
	t.Parallel()

	var q domain.Quote
	require.NoError(t, json.Unmarshal([]byte(`{"symbol":null,"Symbol":"eth"}`), &q))
	require.Equal(t, "eth", q.Symbol)
	require.Equal(t, "ETH", q.NormalizedSymbol())
	require.Empty(t, q.QuotedAt)
}

func TestQuotesPage_Unmarshal(t *testing.T) {
	t.Parallel()

	body := `{
		"Items": [{"symbol":"BTC","price":"1"},{"Symbol":"ETH","Price":"2"}],
		"summary": {"totalItems": 12, "TotalPages": "2", "page": 1}
	}`

	var page domain.QuotesPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))

	require.Len(t, page.Items, 2)
	require.Equal(t, "ETH", page.Items[1].Symbol)
	require.Equal(t, 12, *page.Summary.TotalItems)
	require.Equal(t, 2, *page.Summary.TotalPages)
	require.Equal(t, 1, *page.Summary.Page)
	require.Nil(t, page.Summary.PageSize)
}

func TestPriceQuote_PascalCase(t *testing.T) {
	t.Parallel()

	body := `{"Symbol":"BTC","Currency":"USD","Price":"64000.12","Provider":"coingecko","Timestamp":"2024-05-01T10:00:00Z"}`

	var p domain.PriceQuote
	require.NoError(t, json.Unmarshal([]byte(body), &p))
	require.Equal(t, domain.PriceQuote{
		Symbol:    "BTC",
		Provider:  "coingecko",
		Currency:  "USD",
		Price:     "64000.12",
		Timestamp: "2024-05-01T10:00:00Z",
	}, p)
}

func TestLoginResult_TokenAliases(t *testing.T) {
	t.Parallel()

	for _, body := range []string{
		`{"access_token":"t1"}`,
		`{"accessToken":"t1"}`,
		`{"AccessToken":"t1"}`,
	} {
		var l domain.LoginResult
		require.NoError(t, json.Unmarshal([]byte(body), &l))
		require.Equal(t, "t1", l.AccessToken, body)
	}

	var none domain.LoginResult
	require.NoError(t, json.Unmarshal([]byte(`{"token":"t1"}`), &none))
	require.Empty(t, none.AccessToken)
}

func TestRefreshResult_PartialCounts(t *testing.T) {
	t.Parallel()

	var r domain.RefreshResult
	require.NoError(t, json.Unmarshal([]byte(`{"CoinsProcessed":3,"quotesSaved":5}`), &r))
	require.Equal(t, 3, *r.CoinsProcessed)
	require.Equal(t, 5, *r.QuotesSaved)
	require.Nil(t, r.Failed)
}

func TestCoin_Unmarshal(t *testing.T) {
	t.Parallel()

	var coins []domain.Coin
	body := `[{"id":1,"symbol":"BTC","enabled":true,"coingecko_id":"bitcoin","binance_symbol":"BTCUSDT"},
		{"ID":2,"Symbol":"ETH","Enabled":false,"CoinGeckoID":"ethereum","BinanceSymbol":"ETHUSDT"}]`
	require.NoError(t, json.Unmarshal([]byte(body), &coins))
	require.Equal(t, []domain.Coin{
		{ID: 1, Symbol: "BTC", Enabled: true, CoinGeckoID: "bitcoin", BinanceSymbol: "BTCUSDT"},
		{ID: 2, Symbol: "ETH", Enabled: false, CoinGeckoID: "ethereum", BinanceSymbol: "ETHUSDT"},
	}, coins)
}

// Поле неожиданного типа показывается текстом JSON, остальная страница разбирается
func TestQuotesPage_OddFieldTypesKeptAsText(t *testing.T) {
	t.Parallel()

	body := `{
		"items": [
			{"symbol": true, "price": "1"},
			{"symbol": "ETH", "price": {"value": 2}},
			{"symbol": "UNI", "price": "3", "provider": ["a", "b"]}
		],
		"summary": {"total_items": 3}
	}`

	var page domain.QuotesPage
	require.NoError(t, json.Unmarshal([]byte(body), &page))
	require.Len(t, page.Items, 3)
	require.Equal(t, "true", page.Items[0].Symbol)
	require.Equal(t, `{"value":2}`, page.Items[1].Price)
	require.Equal(t, `["a","b"]`, page.Items[2].Provider)
	require.Equal(t, 3, *page.Summary.TotalItems)
}

func TestQuote_BadJSON(t *testing.T) {
	t.Parallel()

	var q domain.Quote
	require.Error(t, json.Unmarshal([]byte(`["BTC", "1"]`), &q))
}
