package dashboard

import (
	"context"
	"errors"
	"net/http"

	errs "github.com/NastyaGoryachaya/crypto-dashboard/internal/errors"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/infra/api_client"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/ports/errcode"
)

// Иконки модальных сообщений
const (
	iconWarning = "⚠️"
	iconError   = "❌"
	iconLock    = "🔒"
)

const (
	titleRequired = "Нужны данные"
	titleError    = "Ошибка"
	titleLogin    = "Требуется вход"
)

func codeOf(err error) errcode.Code {
	switch {
	case errors.Is(err, errs.ErrLoginRequired):
		return errcode.LoginRequired
	case errors.Is(err, errs.ErrNoTokenReturned):
		return errcode.NoToken
	case errors.Is(err, errs.ErrValidation):
		return errcode.Validation
	}

	apiErr, ok := api_client.AsAPIError(err)
	if !ok {
		return errcode.Network
	}
	switch apiErr.StatusCode {
	case http.StatusBadRequest:
		return errcode.BadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return errcode.Unauthorized
	case http.StatusNotFound:
		return errcode.NotFound
	case http.StatusConflict:
		return errcode.Conflict
	case http.StatusTooManyRequests:
		return errcode.Cooldown
	case http.StatusServiceUnavailable:
		return errcode.Unavailable
	default:
		return errcode.Internal
	}
}

func translate(code errcode.Code) string {
	switch code {
	case errcode.LoginRequired:
		return "Войдите, чтобы выполнить это действие"
	case errcode.NoToken:
		return "Сервер не вернул access_token"
	case errcode.Validation:
		return "Заполните обязательные поля"
	case errcode.BadRequest:
		return "Некорректный запрос"
	case errcode.Unauthorized:
		return "Нет доступа, войдите заново"
	case errcode.NotFound:
		return "Не найдено"
	case errcode.Conflict:
		return "Такая запись уже существует"
	case errcode.Cooldown:
		return "Обновление пока недоступно, попробуйте позже"
	case errcode.Unavailable:
		return "Сервис временно недоступен"
	case errcode.Network:
		return "Ошибка сети, сервис не отвечает"
	default:
		return "Внутренняя ошибка сервиса, попробуйте позже"
	}
}

// detail - текст для пользователя: тело ответа API, если оно есть, иначе перевод кода
func detail(err error) string {
	if apiErr, ok := api_client.AsAPIError(err); ok && apiErr.Body != "" {
		return apiErr.Body
	}
	return translate(codeOf(err))
}

// canceled - запрос отменён более новым запуском той же операции
func canceled(ctx context.Context, err error) bool {
	return ctx.Err() != nil && errors.Is(err, context.Canceled)
}
