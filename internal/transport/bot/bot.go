package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/config"
	"gopkg.in/telebot.v4"
)

var commandNames = []string{
	"/start", "/help",
	"/price", "/quotes", "/next", "/prev", "/clear",
	"/favorites", "/fav", "/unfav",
	"/coin_on", "/coin_off",
	"/refresh", "/whoami",
}

// Bot — telegram-интерфейс дашборда
type Bot struct {
	bot      *telebot.Bot
	commands *Commands
	timeout  time.Duration
	logger   *slog.Logger
}

// NewTelebot - клиент telegram с long polling
func NewTelebot(cfg config.TelegramConfig) (*telebot.Bot, error) {
	const defaultPollTimeout = 10 * time.Second

	return telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: defaultPollTimeout},
	})
}

// New регистрирует команды на уже созданном клиенте
func New(b *telebot.Bot, commands *Commands, timeout time.Duration, logger *slog.Logger) *Bot {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	bot := &Bot{bot: b, commands: commands, timeout: timeout, logger: logger}

	// маршруты команд
	for _, name := range commandNames {
		b.Handle(name, bot.handle(name))
	}
	b.Handle(telebot.OnText, bot.handle(""))
	return bot
}

// handle — выполняет команду и отправляет ответы по очереди
func (b *Bot) handle(cmd string) telebot.HandlerFunc {
	return func(c telebot.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), b.timeout)
		defer cancel()

		name := cmd
		if name == "" {
			name = c.Text()
		}
		b.logger.Debug("telegram: command received",
			slog.Int64("chat_id", c.Chat().ID),
			slog.String("cmd", name),
			slog.Int("args_len", len(c.Args())),
		)

		for _, reply := range b.commands.Run(ctx, c.Chat().ID, cmd, c.Args()) {
			if err := c.Send(reply, telebot.ModeHTML); err != nil {
				b.logger.Error("telegram: reply send failed",
					slog.Int64("chat_id", c.Chat().ID),
					slog.String("error", err.Error()),
				)
				return err
			}
		}
		return nil
	}
}

// Start запускает long polling в фоне, остановка - через Stop
func (b *Bot) Start() {
	b.logger.Info("telegram bot started", slog.Int("commands", len(commandNames)))
	go b.bot.Start()
}

// Stop останавливает бота
func (b *Bot) Stop() {
	b.bot.Stop()
}
