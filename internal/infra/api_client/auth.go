package api_client

import (
	"context"
	"net/http"
	"strings"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
	errs "github.com/NastyaGoryachaya/crypto-dashboard/internal/errors"
)

// Login - обмен email/пароля на токен. Ответ без токена - ErrNoTokenReturned.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.LoginResult, error) {
	var out domain.LoginResult
	if err := c.do(ctx, request{
		method: http.MethodPost,
		path:   []string{"auth", "login"},
		body:   creds,
	}, &out); err != nil {
		return domain.LoginResult{}, err
	}
	if strings.TrimSpace(out.AccessToken) == "" {
		return domain.LoginResult{}, errs.ErrNoTokenReturned
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	var out domain.User
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   []string{"auth", "register"},
		body:   reg,
	}, &out)
	return out, err
}
