package api_client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
)

// GetPrice - последняя цена по символу. provider и currency необязательны.
func (c *Client) GetPrice(ctx context.Context, symbol, provider, currency string) (domain.PriceQuote, error) {
	q := url.Values{}
	q.Set("symbol", normalizeSymbol(symbol))
	if provider != "" {
		q.Set("provider", provider)
	}
	if currency != "" {
		q.Set("currency", currency)
	}

	var out domain.PriceQuote
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   []string{"crypto", "price"},
		query:  q,
	}, &out)
	return out, err
}

// ListQuotes - страница исторических котировок. query строит пакет query.
func (c *Client) ListQuotes(ctx context.Context, query url.Values) (domain.QuotesPage, error) {
	var out domain.QuotesPage
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   []string{"quotes"},
		query:  query,
	}, &out)
	return out, err
}
