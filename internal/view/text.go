package view

import (
	"fmt"
	"html"
	"strings"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/notify"
)

// Текстовые представления для бота (telegram, режим HTML).
// Всё, что пришло из API, экранируется через html.EscapeString.

// FormatPriceCard - ответ на /price
func FormatPriceCard(c PriceCard) string {
	return fmt.Sprintf("<b>%s</b>\nЦена: %s %s\nПровайдер: %s\nОбновлено: %s",
		esc(c.Symbol),
		esc(HumanPrice(c.Price)),
		esc(c.Currency),
		esc(c.Provider),
		esc(c.Timestamp),
	)
}

// FormatRateLine - одна строка таблицы котировок
func FormatRateLine(r Row) string {
	return fmt.Sprintf("%s | %s | %s %s | %s",
		esc(r.Symbol),
		esc(r.Provider),
		esc(HumanPrice(r.Price)),
		esc(r.Currency),
		esc(r.QuotedAt),
	)
}

// FormatTable - страница котировок со сводкой
func FormatTable(t Table) string {
	var b strings.Builder
	switch t.State {
	case StateLoading:
		b.WriteString("Загрузка...")
	case StateError:
		b.WriteString("⚠️ " + esc(t.Error))
	case StateEmpty:
		b.WriteString("Нет данных")
	default:
		for _, r := range t.Rows {
			b.WriteString(FormatRateLine(r))
			b.WriteByte('\n')
		}
	}
	b.WriteString("\n<i>" + esc(t.SummaryLine()) + "</i>")
	return strings.TrimLeft(b.String(), "\n")
}

// FormatFavorites - список избранного
func FormatFavorites(coins []domain.Coin) string {
	if len(coins) == 0 {
		return "Избранное пусто"
	}
	var b strings.Builder
	b.WriteString("Избранное:\n")
	for _, c := range coins {
		mark := "✅"
		if !c.Enabled {
			mark = "⏸"
		}
		fmt.Fprintf(&b, "%s %s\n", mark, esc(c.Symbol))
	}
	return strings.TrimRight(b.String(), "\n")
}

func esc(s string) string {
	return html.EscapeString(s)
}

// FormatNotice - тост или модалка одним сообщением
func FormatNotice(n notify.Notice) string {
	if n.Kind == notify.KindModal {
		return fmt.Sprintf("%s <b>%s</b>\n%s", esc(n.Icon), esc(n.Title), esc(n.Message))
	}
	return variantMark(n.Variant) + " " + esc(n.Message)
}

func variantMark(v notify.Variant) string {
	switch v {
	case notify.Success:
		return "🟢"
	case notify.Danger:
		return "🔴"
	case notify.Warning:
		return "🟡"
	case notify.Info:
		return "🔵"
	default:
		return "⚫"
	}
}

// FormatText - произвольная строка для сообщения в режиме HTML
func FormatText(s string) string {
	return esc(s)
}
