package session_test

import (
	"context"
	"testing"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/session"
	"github.com/stretchr/testify/require"
)

// Поздний ответ старого запуска не применяется, его контекст отменён
func TestSequencer_StaleResponseDiscarded(t *testing.T) {
	t.Parallel()
	seq := session.NewSequencer()

	ctx1, first := seq.Begin(context.Background(), "quotes")
	ctx2, second := seq.Begin(context.Background(), "quotes")
	defer second.Done()

	require.ErrorIs(t, ctx1.Err(), context.Canceled)
	require.NoError(t, ctx2.Err())

	require.False(t, first.Current())
	require.True(t, second.Current())

	applied := ""
	require.True(t, second.Commit(func() { applied = "second" }))
	require.False(t, first.Commit(func() { applied = "first" }))
	require.Equal(t, "second", applied)
	first.Done()
}

// Операции независимы друг от друга
func TestSequencer_IndependentOps(t *testing.T) {
	t.Parallel()
	seq := session.NewSequencer()

	_, quotes := seq.Begin(context.Background(), "quotes")
	_, price := seq.Begin(context.Background(), "price")
	require.True(t, quotes.Current())
	require.True(t, price.Current())
}

func TestSequencer_Invalidate(t *testing.T) {
	t.Parallel()
	seq := session.NewSequencer()

	ctx, tk := seq.Begin(context.Background(), "quotes")
	seq.Invalidate("quotes")

	require.ErrorIs(t, ctx.Err(), context.Canceled)
	require.False(t, tk.Current())

	_, next := seq.Begin(context.Background(), "quotes")
	require.True(t, next.Current())
}

// Done отменяет только свой, ещё актуальный контекст
func TestTicket_Done(t *testing.T) {
	t.Parallel()
	seq := session.NewSequencer()

	ctx, tk := seq.Begin(context.Background(), "price")
	tk.Done()
	require.ErrorIs(t, ctx.Err(), context.Canceled)
	require.True(t, tk.Current())
}
