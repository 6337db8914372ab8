package api_client

import (
	"context"
	"net/http"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
)

// Защищённые вызовы: избранное, монеты, ручной refresh

func (c *Client) ListFavorites(ctx context.Context, token string) ([]domain.Coin, error) {
	var out []domain.Coin
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   []string{"users", "me", "favorites"},
		token:  token,
	}, &out)
	return out, err
}

func (c *Client) AddFavorite(ctx context.Context, token, symbol string) (domain.FavoriteChange, error) {
	return c.changeFavorite(ctx, http.MethodPost, token, symbol)
}

func (c *Client) RemoveFavorite(ctx context.Context, token, symbol string) (domain.FavoriteChange, error) {
	return c.changeFavorite(ctx, http.MethodDelete, token, symbol)
}

func (c *Client) changeFavorite(ctx context.Context, method, token, symbol string) (domain.FavoriteChange, error) {
	var out domain.FavoriteChange
	err := c.do(ctx, request{
		method: method,
		path:   []string{"users", "me", "favorites", normalizeSymbol(symbol)},
		token:  token,
	}, &out)
	return out, err
}

type createCoinBody struct {
	Symbol  string `json:"symbol"`
	Enabled bool   `json:"enabled"`
}

type updateCoinBody struct {
	Enabled bool `json:"enabled"`
}

// CreateCoin - POST /coins (создать или включить монету)
func (c *Client) CreateCoin(ctx context.Context, token, symbol string, enabled bool) (domain.Coin, error) {
	var out domain.Coin
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   []string{"coins"},
		token:  token,
		body:   createCoinBody{Symbol: normalizeSymbol(symbol), Enabled: enabled},
	}, &out)
	return out, err
}

// UpdateCoin - PUT /coins/{symbol}
func (c *Client) UpdateCoin(ctx context.Context, token, symbol string, enabled bool) (domain.Coin, error) {
	var out domain.Coin
	err := c.do(ctx, request{
		method: http.MethodPut,
		path:   []string{"coins", normalizeSymbol(symbol)},
		token:  token,
		body:   updateCoinBody{Enabled: enabled},
	}, &out)
	return out, err
}

// RunRefresh - POST /job/refresh. При активном cooldown API отвечает 429 с retry_after_seconds.
func (c *Client) RunRefresh(ctx context.Context, token string) (domain.RefreshResult, error) {
	var out domain.RefreshResult
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   []string{"job", "refresh"},
		token:  token,
	}, &out)
	return out, err
}
