package notify

import (
	"context"
	"log/slog"
	"sync"
)

// Variant - стиль тоста
type Variant string

const (
	Success Variant = "success"
	Danger  Variant = "danger"
	Warning Variant = "warning"
	Info    Variant = "info"
	Dark    Variant = "dark"
)

type Kind string

const (
	KindToast Kind = "toast"
	KindModal Kind = "modal"
)

const (
	DefaultModalTitle = "Внимание"
	DefaultModalIcon  = "ℹ️"
)

// Notice - одно уведомление для пользователя
type Notice struct {
	Kind    Kind
	Variant Variant
	Title   string
	Icon    string
	Message string
}

// Notifier - куда дашборд отдаёт тосты и модальные сообщения
type Notifier interface {
	Toast(ctx context.Context, message string, variant Variant)
	Modal(ctx context.Context, message, title, icon string)
}

// NewToast - тост; неизвестный вариант становится Dark
func NewToast(message string, variant Variant) Notice {
	switch variant {
	case Success, Danger, Warning, Info, Dark:
	default:
		variant = Dark
	}
	return Notice{Kind: KindToast, Variant: variant, Message: message}
}

// NewModal - модальное сообщение с заголовком и иконкой по умолчанию
func NewModal(message, title, icon string) Notice {
	if title == "" {
		title = DefaultModalTitle
	}
	if icon == "" {
		icon = DefaultModalIcon
	}
	return Notice{Kind: KindModal, Variant: Dark, Title: title, Icon: icon, Message: message}
}

// Flash копит уведомления до следующей отрисовки страницы
type Flash struct {
	mu      sync.Mutex
	notices []Notice
}

func NewFlash() *Flash { return &Flash{} }

func (f *Flash) Toast(_ context.Context, message string, variant Variant) {
	f.push(NewToast(message, variant))
}

func (f *Flash) Modal(_ context.Context, message, title, icon string) {
	f.push(NewModal(message, title, icon))
}

func (f *Flash) push(n Notice) {
	f.mu.Lock()
	f.notices = append(f.notices, n)
	f.mu.Unlock()
}

// Drain отдаёт накопленное и очищает очередь
func (f *Flash) Drain() []Notice {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.notices
	f.notices = nil
	return out
}

// Log пишет уведомления в slog (консольный режим и отладка)
type Log struct {
	logger *slog.Logger
}

func NewLog(logger *slog.Logger) *Log { return &Log{logger: logger} }

func (l *Log) Toast(ctx context.Context, message string, variant Variant) {
	n := NewToast(message, variant)
	level := slog.LevelInfo
	if n.Variant == Danger {
		level = slog.LevelWarn
	}
	l.logger.Log(ctx, level, "notify: toast",
		slog.String("variant", string(n.Variant)),
		slog.String("message", n.Message),
	)
}

func (l *Log) Modal(ctx context.Context, message, title, icon string) {
	n := NewModal(message, title, icon)
	l.logger.InfoContext(ctx, "notify: modal",
		slog.String("title", n.Title),
		slog.String("message", n.Message),
	)
}

// Multi рассылает уведомление во все приёмники
type Multi []Notifier

func (m Multi) Toast(ctx context.Context, message string, variant Variant) {
	for _, n := range m {
		n.Toast(ctx, message, variant)
	}
}

func (m Multi) Modal(ctx context.Context, message, title, icon string) {
	for _, n := range m {
		n.Modal(ctx, message, title, icon)
	}
}
