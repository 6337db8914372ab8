package dashboard

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/infra/api_client"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/notify"
)

const cooldownCode = "cooldown_active"

// RunRefresh - запуск обновления котировок на сервере. Пока запрос идёт, повторный запуск игнорируется.
func (d *Dashboard) RunRefresh(ctx context.Context) error {
	token, err := d.requireToken(ctx, "Войдите, чтобы запустить обновление.")
	if err != nil {
		return err
	}

	d.mu.Lock()
	if d.refreshing {
		d.mu.Unlock()
		return nil
	}
	d.refreshing = true
	d.mu.Unlock()
	defer func() {
		d.mu.Lock()
		d.refreshing = false
		d.mu.Unlock()
	}()

	res, err := d.api.RunRefresh(ctx, token)
	if err != nil {
		if apiErr, ok := api_client.AsAPIError(err); ok && apiErr.Code == cooldownCode {
			d.logger.Info("dashboard: refresh on cooldown")
			d.notifier.Toast(ctx, cooldownMessage(apiErr.RetryAfterSeconds), notify.Warning)
			return err
		}
		d.logger.Error("dashboard: refresh failed", slog.String("error", err.Error()))
		d.notifier.Toast(ctx, "Обновление не удалось ❌ "+detail(err), notify.Danger)
		return err
	}

	d.notifier.Toast(ctx, refreshMessage(res), notify.Success)
	d.reloadQuotes(ctx)
	return nil
}

func refreshMessage(r domain.RefreshResult) string {
	return fmt.Sprintf("Обновление выполнено ✅ Монет: %s | Котировок: %s | Ошибок: %s",
		countOrDash(r.CoinsProcessed), countOrDash(r.QuotesSaved), countOrDash(r.Failed))
}

func cooldownMessage(retryAfter *int) string {
	if retryAfter == nil {
		return "Обновление недавно запускалось, попробуйте позже ⏳"
	}
	return fmt.Sprintf("Обновление недавно запускалось, повторите через %d с ⏳", *retryAfter)
}

func countOrDash(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}
