package dashboard

import (
	"context"
	"log/slog"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/notify"
)

const coinsLoginRequired = "Войдите, чтобы управлять монетами."

// OpenCoins - проверка перед показом формы управления монетами
func (d *Dashboard) OpenCoins(ctx context.Context) error {
	_, err := d.requireToken(ctx, coinsLoginRequired)
	return err
}

// EnableCoin - создать монету (или включить существующую)
func (d *Dashboard) EnableCoin(ctx context.Context, form SymbolForm) error {
	return d.setCoin(ctx, form, true)
}

// DisableCoin - выключить монету
func (d *Dashboard) DisableCoin(ctx context.Context, form SymbolForm) error {
	return d.setCoin(ctx, form, false)
}

func (d *Dashboard) setCoin(ctx context.Context, form SymbolForm, enabled bool) error {
	token, err := d.requireToken(ctx, coinsLoginRequired)
	if err != nil {
		return err
	}
	if err := d.check(&form); err != nil {
		d.notifier.Modal(ctx, "Укажите символ монеты.", titleRequired, iconWarning)
		return err
	}

	var failed, done string
	if enabled {
		_, err = d.api.CreateCoin(ctx, token, form.Symbol, true)
		failed, done = "Не удалось включить монету.\n", "Монета включена ✅ "
	} else {
		_, err = d.api.UpdateCoin(ctx, token, form.Symbol, false)
		failed, done = "Не удалось выключить монету.\n", "Монета выключена ⏸ "
	}
	if err != nil {
		d.logger.Error("dashboard: coin change failed",
			slog.String("symbol", form.Symbol),
			slog.Bool("enabled", enabled),
			slog.String("error", err.Error()),
		)
		d.notifier.Modal(ctx, failed+detail(err), titleError, iconError)
		return err
	}

	d.notifier.Toast(ctx, done+form.Symbol, notify.Success)
	d.reloadQuotes(ctx)
	return nil
}
