package dashboard

import (
	"context"
	"log/slog"

	errs "github.com/NastyaGoryachaya/crypto-dashboard/internal/errors"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/notify"
)

const favoritesLoginRequired = "Войдите, чтобы управлять избранным."

// LoadFavorites - список избранного для боковой панели. Без токена список пуст.
func (d *Dashboard) LoadFavorites(ctx context.Context) error {
	token, _ := d.sess.Token(ctx)
	if token == "" {
		d.mu.Lock()
		d.favorites = nil
		d.favErr = ""
		d.mu.Unlock()
		return nil
	}

	reqCtx, ticket := d.seq.Begin(ctx, opFavorites)
	defer ticket.Done()

	coins, err := d.api.ListFavorites(reqCtx, token)
	if err != nil {
		if canceled(reqCtx, err) && !ticket.Current() {
			return errs.ErrStaleResponse
		}
		d.logger.Error("dashboard: list favorites failed", slog.String("error", err.Error()))
		ticket.Commit(func() {
			d.mu.Lock()
			d.favorites = nil
			d.favErr = "Не удалось загрузить избранное"
			d.mu.Unlock()
		})
		return err
	}

	if !ticket.Commit(func() {
		d.mu.Lock()
		d.favorites = coins
		d.favErr = ""
		d.mu.Unlock()
	}) {
		return errs.ErrStaleResponse
	}
	return nil
}

// AddFavorite - добавить символ в избранное
func (d *Dashboard) AddFavorite(ctx context.Context, form SymbolForm) error {
	return d.changeFavorite(ctx, form, true)
}

// RemoveFavorite - убрать символ из избранного
func (d *Dashboard) RemoveFavorite(ctx context.Context, form SymbolForm) error {
	return d.changeFavorite(ctx, form, false)
}

func (d *Dashboard) changeFavorite(ctx context.Context, form SymbolForm, add bool) error {
	token, err := d.requireToken(ctx, favoritesLoginRequired)
	if err != nil {
		return err
	}
	if err := d.check(&form); err != nil {
		d.notifier.Modal(ctx, "Укажите символ монеты.", titleRequired, iconWarning)
		return err
	}

	call, done := d.api.RemoveFavorite, "Удалено из избранного: "
	if add {
		call, done = d.api.AddFavorite, "Добавлено в избранное: "
	}

	change, err := call(ctx, token, form.Symbol)
	if err != nil {
		d.logger.Error("dashboard: favorite change failed",
			slog.String("symbol", form.Symbol),
			slog.Bool("add", add),
			slog.String("error", err.Error()),
		)
		d.notifier.Modal(ctx, "Не удалось изменить избранное.\n"+detail(err), titleError, iconError)
		return err
	}

	// загрузки, начатые до изменения, уже не соответствуют избранному
	d.sess.InvalidateFavorites()
	d.seq.Invalidate(opQuotes)

	symbol := change.Symbol
	if symbol == "" {
		symbol = form.Symbol
	}
	d.notifier.Toast(ctx, done+symbol, notify.Success)

	d.reloadFavorites(ctx)
	d.reloadQuotes(ctx)
	d.sessionChanged()
	return nil
}

func (d *Dashboard) reloadFavorites(ctx context.Context) {
	if err := d.LoadFavorites(ctx); err != nil {
		d.logger.Debug("dashboard: favorites reload failed", slog.String("error", err.Error()))
	}
}
