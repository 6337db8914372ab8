package scheduler

import (
	"context"
	"errors"
	"log/slog"
	"time"

	errs "github.com/NastyaGoryachaya/crypto-dashboard/internal/errors"
)

// Reloader - то, что умеет перезагрузить таблицу котировок (dashboard.Dashboard)
type Reloader interface {
	LoadQuotes(ctx context.Context) error
}

type Scheduler struct {
	reloader Reloader
	interval time.Duration
	logger   *slog.Logger
}

// NewScheduler — конструктор планировщика автообновления таблицы
func NewScheduler(reloader Reloader, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Scheduler{
		reloader: reloader,
		interval: interval,
		logger:   logger,
	}
}

// Start — перезагружает таблицу раз в interval до остановки контекста.
// Первый запуск не сразу: при старте таблицу уже загрузило приложение.
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("scheduler started", slog.Duration("interval", s.interval))

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.runOnce(ctx)
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		}
	}
}

// runOnce — одна итерация: загрузить текущую страницу котировок
func (s *Scheduler) runOnce(ctx context.Context) {
	started := time.Now()
	err := s.reloader.LoadQuotes(ctx)
	switch {
	case errors.Is(err, errs.ErrStaleResponse):
		s.logger.Debug("tick: reload superseded by newer load")
	case err != nil:
		s.logger.Error("tick: reload failed", slog.String("err", err.Error()))
	default:
		s.logger.Debug("tick: reload completed", slog.Duration("duration", time.Since(started)))
	}
}
