package view

import (
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	dash       = "-"
	dateLayout = "02.01.2006 15:04:05"
)

// FormatLocalDate - пусто -> "-", не разбирается -> исходная строка, иначе локальное время
func FormatLocalDate(raw string, loc *time.Location) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return dash
	}
	t, err := parseTime(raw)
	if err != nil {
		return raw
	}
	if loc == nil {
		loc = time.Local
	}
	return t.In(loc).Format(dateLayout)
}

func parseTime(raw string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, raw)
	if err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}

// orDash - пустое значение показываем как "-"
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return dash
	}
	return s
}

func intOrDash(v *int) string {
	if v == nil {
		return dash
	}
	return strconv.Itoa(*v)
}

// HumanPrice - цена для текстовых сообщений: от 1 и выше два знака, мелкие цены без округления
func HumanPrice(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return dash
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return raw
	}
	if d.Abs().GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return d.StringFixed(2)
	}
	return d.String()
}
