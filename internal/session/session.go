package session

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/credentials"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
	"golang.org/x/sync/singleflight"
)

const defaultFetchTimeout = 15 * time.Second

//go:generate mockgen -source=session.go -destination=mocks/mock_session.go -package=mocks

// TokenStore - хранилище токена (credentials.Store)
type TokenStore interface {
	Token(ctx context.Context) (string, error)
	SetToken(ctx context.Context, token string) error
	Clear(ctx context.Context) error
	Identity(ctx context.Context) (credentials.Identity, bool)
}

// FavoritesSource - откуда берётся список избранного (API)
type FavoritesSource interface {
	ListFavorites(ctx context.Context, token string) ([]domain.Coin, error)
}

// Session - состояние пользователя дашборда: токен и кеш избранного.
// Кеш имеет смысл только при наличии токена; любая смена авторизации его сбрасывает.
type Session struct {
	tokens TokenStore
	source FavoritesSource
	logger *slog.Logger

	fetchTimeout time.Duration

	mu         sync.Mutex
	favorites  map[string]struct{}
	loaded     bool
	generation uint64

	group singleflight.Group
}

func New(tokens TokenStore, source FavoritesSource, logger *slog.Logger) *Session {
	return &Session{tokens: tokens, source: source, logger: logger, fetchTimeout: defaultFetchTimeout}
}

func (s *Session) Token(ctx context.Context) (string, error) {
	return s.tokens.Token(ctx)
}

func (s *Session) LoggedIn(ctx context.Context) bool {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.logger.Warn("session: token read failed", slog.String("error", err.Error()))
		return false
	}
	return token != ""
}

func (s *Session) Identity(ctx context.Context) (credentials.Identity, bool) {
	return s.tokens.Identity(ctx)
}

// Login сохраняет токен и сбрасывает кеш избранного
func (s *Session) Login(ctx context.Context, token string) error {
	if err := s.tokens.SetToken(ctx, token); err != nil {
		return err
	}
	s.InvalidateFavorites()
	return nil
}

// Logout удаляет токен. Кеш сбрасывается даже если хранилище вернуло ошибку.
func (s *Session) Logout(ctx context.Context) error {
	defer s.InvalidateFavorites()
	return s.tokens.Clear(ctx)
}

// InvalidateFavorites - следующий доступ к избранному пойдёт в API
func (s *Session) InvalidateFavorites() {
	s.mu.Lock()
	s.favorites = nil
	s.loaded = false
	s.generation++
	s.mu.Unlock()
}

// Favorites - множество символов избранного (верхний регистр). Без токена - nil, false.
// Одновременные первые обращения делят один запрос.
func (s *Session) Favorites(ctx context.Context) (map[string]struct{}, bool, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, false, err
	}
	if token == "" {
		return nil, false, nil
	}

	s.mu.Lock()
	if s.loaded {
		set := s.favorites
		s.mu.Unlock()
		return set, true, nil
	}
	gen := s.generation
	s.mu.Unlock()

	// запрос общий: отмена одного из ожидающих его не прерывает, каждый ждёт по своему ctx
	ch := s.group.DoChan(strconv.FormatUint(gen, 10), func() (any, error) {
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fetchTimeout)
		defer cancel()

		coins, err := s.source.ListFavorites(fetchCtx, token)
		if err != nil {
			return nil, fmt.Errorf("list favorites: %w", err)
		}
		set := make(map[string]struct{}, len(coins))
		for _, c := range coins {
			set[domain.Quote{Symbol: c.Symbol}.NormalizedSymbol()] = struct{}{}
		}

		s.mu.Lock()
		// за время запроса могли выйти/войти: такой результат не кешируем
		if s.generation == gen {
			s.favorites = set
			s.loaded = true
		}
		s.mu.Unlock()
		return set, nil
	})

	select {
	case <-ctx.Done():
		return nil, false, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return nil, false, res.Err
		}
		set := res.Val.(map[string]struct{})
		s.logger.Debug("session: favorites loaded", slog.Int("count", len(set)))
		return set, true, nil
	}
}

// IsFavorite - символ в избранном (без токена всегда false)
func (s *Session) IsFavorite(ctx context.Context, symbol string) (bool, error) {
	set, ok, err := s.Favorites(ctx)
	if err != nil || !ok {
		return false, err
	}
	_, in := set[domain.Quote{Symbol: symbol}.NormalizedSymbol()]
	return in, nil
}

// FilterFavorites - пересечение страницы котировок с избранным.
// Без токена строки возвращаются как есть (публичный режим), порядок сохраняется.
func (s *Session) FilterFavorites(ctx context.Context, items []domain.Quote) ([]domain.Quote, error) {
	set, ok, err := s.Favorites(ctx)
	if err != nil {
		return nil, err
	}
	if !ok {
		return items, nil
	}
	return Intersect(items, set), nil
}

// Intersect оставляет строки, чей символ есть в set
func Intersect(items []domain.Quote, set map[string]struct{}) []domain.Quote {
	out := make([]domain.Quote, 0, len(items))
	for _, it := range items {
		if _, ok := set[it.NormalizedSymbol()]; ok {
			out = append(out, it)
		}
	}
	return out
}
