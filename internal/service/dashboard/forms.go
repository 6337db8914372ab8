package dashboard

import (
	"fmt"
	"strings"

	errs "github.com/NastyaGoryachaya/crypto-dashboard/internal/errors"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/query"
)

// Формы действий. Теги form - для биндинга echo, validate - для проверки до запроса.

type PriceForm struct {
	Symbol   string `form:"symbol" validate:"required"`
	Provider string `form:"provider"`
	Currency string `form:"currency"`
}

func (f *PriceForm) normalize() {
	f.Symbol = query.NormalizeSymbol(f.Symbol)
	f.Provider = strings.TrimSpace(f.Provider)
	f.Currency = strings.TrimSpace(f.Currency)
}

type LoginForm struct {
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (f *LoginForm) normalize() {
	f.Email = strings.TrimSpace(f.Email)
}

type RegisterForm struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (f *RegisterForm) normalize() {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
}

// SymbolForm - монета или избранное по символу
type SymbolForm struct {
	Symbol string `form:"symbol" validate:"required"`
}

func (f *SymbolForm) normalize() {
	f.Symbol = query.NormalizeSymbol(f.Symbol)
}

type normalizer interface {
	normalize()
}

// check нормализует форму и проверяет обязательные поля
func (d *Dashboard) check(form normalizer) error {
	form.normalize()
	if err := d.validate.Struct(form); err != nil {
		return fmt.Errorf("%w: %s", errs.ErrValidation, err.Error())
	}
	return nil
}
