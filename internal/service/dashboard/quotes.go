package dashboard

import (
	"context"
	"log/slog"

	errs "github.com/NastyaGoryachaya/crypto-dashboard/internal/errors"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/query"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/view"
)

const loadQuotesFailed = "Ошибка загрузки котировок"

// LoadQuotes загружает страницу котировок по текущим фильтрам.
// Применяется только ответ последнего запуска: более старые отменяются и отбрасываются.
func (d *Dashboard) LoadQuotes(ctx context.Context) error {
	reqCtx, ticket := d.seq.Begin(ctx, opQuotes)
	defer ticket.Done()

	var filters query.FilterState
	ticket.Commit(func() {
		d.mu.Lock()
		filters = d.filters
		d.table = d.table.Loading()
		d.mu.Unlock()
	})

	page, err := d.api.ListQuotes(reqCtx, query.Build(filters))
	if err == nil {
		// в режиме пользователя таблица показывает только избранное
		page.Items, err = d.sess.FilterFavorites(reqCtx, page.Items)
	}
	if err != nil {
		if canceled(reqCtx, err) && !ticket.Current() {
			return errs.ErrStaleResponse
		}
		d.logger.Error("dashboard: load quotes failed", slog.String("error", err.Error()))
		ticket.Commit(func() {
			d.mu.Lock()
			d.table = view.ErrorTable(loadQuotesFailed, d.table.Summary)
			d.mu.Unlock()
		})
		return err
	}

	table := view.NewTable(page.Items, page.Summary, d.loc)
	if !ticket.Commit(func() {
		d.mu.Lock()
		d.table = table
		d.filters = d.filters.SyncFromSummary(page.Summary)
		d.mu.Unlock()
	}) {
		d.logger.Debug("dashboard: stale quotes response dropped")
		return errs.ErrStaleResponse
	}
	return nil
}

// ApplyFilters - новые фильтры, страница 1
func (d *Dashboard) ApplyFilters(ctx context.Context, f query.FilterState) error {
	if f.PageSize == "" {
		f.PageSize = d.Filters().PageSize
	}
	d.updateFilters(func(query.FilterState) query.FilterState { return f.Apply() })
	return d.LoadQuotes(ctx)
}

// ClearFilters - сброс формы и перезагрузка
func (d *Dashboard) ClearFilters(ctx context.Context) error {
	d.updateFilters(func(query.FilterState) query.FilterState { return d.clearedFilters() })
	return d.LoadQuotes(ctx)
}

// NextPage - как нажатие "вперёд": на последней странице ничего не делает
func (d *Dashboard) NextPage(ctx context.Context) error {
	if d.Table().Pager().NextDisabled {
		return nil
	}
	d.updateFilters(query.FilterState.Next)
	return d.LoadQuotes(ctx)
}

// PrevPage - как нажатие "назад": на первой странице ничего не делает
func (d *Dashboard) PrevPage(ctx context.Context) error {
	if d.Table().Pager().PrevDisabled {
		return nil
	}
	d.updateFilters(query.FilterState.Prev)
	return d.LoadQuotes(ctx)
}
