package dashboard

import (
	"context"
	"log/slog"

	errs "github.com/NastyaGoryachaya/crypto-dashboard/internal/errors"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/view"
)

// LookupPrice - карточка текущей цены по символу
func (d *Dashboard) LookupPrice(ctx context.Context, form PriceForm) error {
	if err := d.check(&form); err != nil {
		d.notifier.Modal(ctx, "Укажите корректный символ (BTC, ETH, UNI и т.д.).", titleRequired, iconWarning)
		return err
	}

	reqCtx, ticket := d.seq.Begin(ctx, opPrice)
	defer ticket.Done()

	p, err := d.api.GetPrice(reqCtx, form.Symbol, form.Provider, form.Currency)
	if err != nil {
		if canceled(reqCtx, err) && !ticket.Current() {
			return errs.ErrStaleResponse
		}
		d.logger.Error("dashboard: get price failed",
			slog.String("symbol", form.Symbol),
			slog.String("error", err.Error()),
		)
		d.notifier.Modal(ctx, detail(err), "Ошибка запроса цены", iconError)
		return err
	}

	card := view.NewPriceCard(p, d.loc)
	if !ticket.Commit(func() {
		d.mu.Lock()
		d.price = card
		d.mu.Unlock()
	}) {
		return errs.ErrStaleResponse
	}
	return nil
}
