package credentials

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	errs "github.com/NastyaGoryachaya/crypto-dashboard/internal/errors"
	"github.com/golang-jwt/jwt/v5"
)

// TokenKey - фиксированный ключ токена в хранилище
const TokenKey = "crypto_api_token"

// KV - постоянное хранилище клиента (файл, redis, postgres)
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Store - bearer-токен пользователя API
type Store struct {
	kv  KV
	now func() time.Time
}

func NewStore(kv KV) *Store {
	return &Store{kv: kv, now: time.Now}
}

// Token - сохранённый токен или "" если пользователь не вошёл
func (s *Store) Token(ctx context.Context) (string, error) {
	v, err := s.kv.Get(ctx, TokenKey)
	if errors.Is(err, errs.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	return strings.TrimSpace(v), nil
}

func (s *Store) SetToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errs.ErrNoTokenReturned
	}
	if err := s.kv.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}
	return nil
}

func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, TokenKey); err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}

// LoggedIn - есть ли токен. Ошибка хранилища считается "не вошёл".
func (s *Store) LoggedIn(ctx context.Context) bool {
	token, err := s.Token(ctx)
	return err == nil && token != ""
}

// Identity - что известно о владельце токена из его claims
type Identity struct {
	Email     string
	Subject   string
	ExpiresAt time.Time // нулевое, если exp нет
	Expired   bool
}

// Identity читает claims без проверки подписи: секрет есть только у API,
// здесь это лишь подсказка для интерфейса. Непарсящийся токен - ok=false.
func (s *Store) Identity(ctx context.Context) (Identity, bool) {
	token, err := s.Token(ctx)
	if err != nil || token == "" {
		return Identity{}, false
	}
	return ParseIdentity(token, s.now())
}

func ParseIdentity(token string, now time.Time) (Identity, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return Identity{}, false
	}

	var id Identity
	if email, ok := claims["email"].(string); ok {
		id.Email = email
	}
	if sub, err := claims.GetSubject(); err == nil {
		id.Subject = sub
	}
	if id.Subject == "" {
		// API кладёт в sub числовой id пользователя
		if n, ok := claims["sub"].(float64); ok {
			id.Subject = fmt.Sprintf("%.0f", n)
		}
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		id.ExpiresAt = exp.Time
		id.Expired = !now.Before(exp.Time)
	}
	return id, true
}
