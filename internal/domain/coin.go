package domain

// Coin - монета, за которой следит бекенд. Тот же формат у элементов списка избранного.
type Coin struct {
	ID            int64
	Symbol        string
	Enabled       bool
	CoinGeckoID   string
	BinanceSymbol string
}

var coinAliases = aliases{
	"id":             {"id", "ID", "Id"},
	"symbol":         {"symbol", "Symbol"},
	"enabled":        {"enabled", "Enabled"},
	"coingecko_id":   {"coingecko_id", "coinGeckoId", "CoinGeckoID"},
	"binance_symbol": {"binance_symbol", "binanceSymbol", "BinanceSymbol"},
}

func (c *Coin) UnmarshalJSON(data []byte) error {
	return decodeAliased(data, coinAliases, map[string]fieldDecoder{
		"id":             asInt64(&c.ID),
		"symbol":         asString(&c.Symbol),
		"enabled":        asBool(&c.Enabled),
		"coingecko_id":   asString(&c.CoinGeckoID),
		"binance_symbol": asString(&c.BinanceSymbol),
	})
}

// FavoriteChange - ответ на добавление/удаление избранного
type FavoriteChange struct {
	OK     bool
	Action string // added|removed
	Symbol string
}

var favoriteChangeAliases = aliases{
	"ok":     {"ok", "OK", "Ok"},
	"action": {"action", "Action"},
	"symbol": {"symbol", "Symbol"},
}

func (f *FavoriteChange) UnmarshalJSON(data []byte) error {
	return decodeAliased(data, favoriteChangeAliases, map[string]fieldDecoder{
		"ok":     asBool(&f.OK),
		"action": asString(&f.Action),
		"symbol": asString(&f.Symbol),
	})
}

// RefreshResult - итог ручного запуска обновления котировок
type RefreshResult struct {
	CoinsProcessed    *int
	QuotesSaved       *int
	Failed            *int
	RetryAfterSeconds *int
}

var refreshAliases = aliases{
	"coins_processed":     {"coins_processed", "coinsProcessed", "CoinsProcessed"},
	"quotes_saved":        {"quotes_saved", "quotesSaved", "QuotesSaved"},
	"failed":              {"failed", "Failed"},
	"retry_after_seconds": {"retry_after_seconds", "retryAfterSeconds", "RetryAfterSeconds"},
}

func (r *RefreshResult) UnmarshalJSON(data []byte) error {
	return decodeAliased(data, refreshAliases, map[string]fieldDecoder{
		"coins_processed":     asInt(&r.CoinsProcessed),
		"quotes_saved":        asInt(&r.QuotesSaved),
		"failed":              asInt(&r.Failed),
		"retry_after_seconds": asInt(&r.RetryAfterSeconds),
	})
}
