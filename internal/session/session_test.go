package session_test

import (
	"context"
	"errors"
	"testing"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/credentials"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/infra/storage"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/session"
	sessionmocks "github.com/NastyaGoryachaya/crypto-dashboard/internal/session/mocks"
	"github.com/NastyaGoryachaya/crypto-dashboard/pkg/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
)

func quotes(symbols ...string) []domain.Quote {
	out := make([]domain.Quote, 0, len(symbols))
	for _, s := range symbols {
		out = append(out, domain.Quote{Symbol: s, Price: "1"})
	}
	return out
}

func newSession(t *testing.T, src session.FavoritesSource) *session.Session {
	t.Helper()
	return session.New(credentials.NewStore(storage.NewMemoryStore()), src, logger.Discard())
}

// Без токена - публичный режим: строки как есть, к API за избранным не ходим
func TestFilterFavorites_NoToken(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := sessionmocks.NewMockFavoritesSource(ctrl)
	src.EXPECT().ListFavorites(gomock.Any(), gomock.Any()).Times(0)

	s := newSession(t, src)
	items := quotes("BTC", "ETH", "UNI")

	got, err := s.FilterFavorites(context.Background(), items)
	require.NoError(t, err)
	require.Equal(t, items, got)
}

// {"BTC","ETH"} над [BTC, ETH, UNI] -> ровно [BTC, ETH], порядок сохранён; второй раз из кеша
func TestFilterFavorites_IntersectAndCache(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := sessionmocks.NewMockFavoritesSource(ctrl)
	src.EXPECT().
		ListFavorites(gomock.Any(), "tok").
		Return([]domain.Coin{{Symbol: "eth"}, {Symbol: "BTC"}}, nil).
		Times(1)

	s := newSession(t, src)
	require.NoError(t, s.Login(ctx, "tok"))

	got, err := s.FilterFavorites(ctx, quotes("BTC", "ETH", "UNI"))
	require.NoError(t, err)
	require.Equal(t, quotes("BTC", "ETH"), got)

	got, err = s.FilterFavorites(ctx, quotes("uni", "eth"))
	require.NoError(t, err)
	require.Equal(t, quotes("eth"), got)

	fav, err := s.IsFavorite(ctx, "btc")
	require.NoError(t, err)
	require.True(t, fav)
}

// Смена авторизации сбрасывает кеш до следующего чтения
func TestFavorites_InvalidatedOnAuthChange(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	src := sessionmocks.NewMockFavoritesSource(ctrl)
	gomock.InOrder(
		src.EXPECT().ListFavorites(gomock.Any(), "tok-a").Return([]domain.Coin{{Symbol: "BTC"}}, nil),
		src.EXPECT().ListFavorites(gomock.Any(), "tok-b").Return([]domain.Coin{{Symbol: "UNI"}}, nil),
	)

	s := newSession(t, src)
	require.NoError(t, s.Login(ctx, "tok-a"))
	set, ok, err := s.Favorites(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Contains(t, set, "BTC")

	require.NoError(t, s.Login(ctx, "tok-b"))
	set, _, err = s.Favorites(ctx)
	require.NoError(t, err)
	require.Contains(t, set, "UNI")
	require.NotContains(t, set, "BTC")

	require.NoError(t, s.Logout(ctx))
	require.False(t, s.LoggedIn(ctx))
	_, ok, err = s.Favorites(ctx)
	require.NoError(t, err)
	require.False(t, ok)
}

// Сброс во время запроса: ответ не попадает в кеш
func TestFavorites_InvalidateDuringFetch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var s *session.Session
	src := sessionmocks.NewMockFavoritesSource(ctrl)
	gomock.InOrder(
		src.EXPECT().ListFavorites(gomock.Any(), "tok").
			DoAndReturn(func(context.Context, string) ([]domain.Coin, error) {
				s.InvalidateFavorites()
				return []domain.Coin{{Symbol: "OLD"}}, nil
			}),
		src.EXPECT().ListFavorites(gomock.Any(), "tok").
			Return([]domain.Coin{{Symbol: "NEW"}}, nil),
	)

	s = newSession(t, src)
	require.NoError(t, s.Login(ctx, "tok"))

	first, _, err := s.Favorites(ctx)
	require.NoError(t, err)
	require.Contains(t, first, "OLD")

	second, _, err := s.Favorites(ctx)
	require.NoError(t, err)
	require.Contains(t, second, "NEW")
}

// Отмена первого ожидающего не ломает общий запрос для остальных
func TestFavorites_CallerCancelDoesNotFailOthers(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})
	src := sessionmocks.NewMockFavoritesSource(ctrl)
	src.EXPECT().ListFavorites(gomock.Any(), "tok").
		DoAndReturn(func(ctx context.Context, _ string) ([]domain.Coin, error) {
			close(started)
			select {
			case <-release:
				return []domain.Coin{{Symbol: "BTC"}}, nil
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}).
		Times(1)

	s := newSession(t, src)
	require.NoError(t, s.Login(context.Background(), "tok"))

	ctxA, cancelA := context.WithCancel(context.Background())
	errA := make(chan error, 1)
	go func() {
		_, _, err := s.Favorites(ctxA)
		errA <- err
	}()
	<-started

	type result struct {
		set map[string]struct{}
		ok  bool
		err error
	}
	resB := make(chan result, 1)
	go func() {
		set, ok, err := s.Favorites(context.Background())
		resB <- result{set: set, ok: ok, err: err}
	}()

	cancelA()
	require.ErrorIs(t, <-errA, context.Canceled)

	close(release)
	got := <-resB
	require.NoError(t, got.err)
	require.True(t, got.ok)
	require.Contains(t, got.set, "BTC")
}

// Ошибка загрузки избранного уходит наверх, паники нет; следующий вызов пробует снова
func TestFilterFavorites_FetchError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	boom := errors.New("HTTP 503")
	src := sessionmocks.NewMockFavoritesSource(ctrl)
	gomock.InOrder(
		src.EXPECT().ListFavorites(gomock.Any(), "tok").Return(nil, boom),
		src.EXPECT().ListFavorites(gomock.Any(), "tok").Return([]domain.Coin{}, nil),
	)

	s := newSession(t, src)
	require.NoError(t, s.Login(ctx, "tok"))

	_, err := s.FilterFavorites(ctx, quotes("BTC"))
	require.ErrorIs(t, err, boom)

	got, err := s.FilterFavorites(ctx, quotes("BTC"))
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestLogout_ClearErrorStillInvalidates(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tokens := sessionmocks.NewMockTokenStore(ctrl)
	src := sessionmocks.NewMockFavoritesSource(ctrl)

	tokens.EXPECT().Token(gomock.Any()).Return("tok", nil).Times(2)
	tokens.EXPECT().Clear(gomock.Any()).Return(errors.New("redis down"))
	src.EXPECT().ListFavorites(gomock.Any(), "tok").Return([]domain.Coin{{Symbol: "BTC"}}, nil).Times(2)

	s := session.New(tokens, src, logger.Discard())
	_, _, err := s.Favorites(ctx)
	require.NoError(t, err)

	require.Error(t, s.Logout(ctx))

	// кеш сброшен - идём в API повторно
	_, _, err = s.Favorites(ctx)
	require.NoError(t, err)
}
