package bot

import (
	"context"
	"log/slog"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/notify"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/view"
	"gopkg.in/telebot.v4"
)

// Sender - отправка сообщений (telebot.Bot)
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

// ChatNotifier дублирует уведомления дашборда в один чат
type ChatNotifier struct {
	sender Sender
	chat   telebot.ChatID
	logger *slog.Logger
}

func NewChatNotifier(sender Sender, chatID int64, logger *slog.Logger) *ChatNotifier {
	return &ChatNotifier{sender: sender, chat: telebot.ChatID(chatID), logger: logger}
}

func (n *ChatNotifier) Toast(_ context.Context, message string, variant notify.Variant) {
	n.send(notify.NewToast(message, variant))
}

func (n *ChatNotifier) Modal(_ context.Context, message, title, icon string) {
	n.send(notify.NewModal(message, title, icon))
}

func (n *ChatNotifier) send(notice notify.Notice) {
	if _, err := n.sender.Send(n.chat, view.FormatNotice(notice), telebot.ModeHTML); err != nil {
		n.logger.Error("telegram: notice send failed",
			slog.Int64("chat_id", int64(n.chat)),
			slog.String("error", err.Error()),
		)
	}
}
