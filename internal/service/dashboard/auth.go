package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/NastyaGoryachaya/crypto-dashboard/internal/domain"
	errs "github.com/NastyaGoryachaya/crypto-dashboard/internal/errors"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/infra/api_client"
	"github.com/NastyaGoryachaya/crypto-dashboard/internal/notify"
)

// Login - вход. Токен сохраняется только если сервер его вернул.
func (d *Dashboard) Login(ctx context.Context, form LoginForm) error {
	if err := d.check(&form); err != nil {
		d.notifier.Modal(ctx, "Укажите email и пароль.", titleRequired, iconWarning)
		return err
	}

	res, err := d.api.Login(ctx, domain.Credentials{Email: form.Email, Password: form.Password})
	if err != nil {
		d.logger.Warn("dashboard: login failed", slog.String("email", form.Email), slog.String("error", err.Error()))
		d.notifier.Modal(ctx, loginFailure(err), "Ошибка входа", iconError)
		return err
	}

	if err := d.sess.Login(ctx, res.AccessToken); err != nil {
		d.logger.Error("dashboard: store token failed", slog.String("error", err.Error()))
		d.notifier.Modal(ctx, "Не удалось сохранить токен.", "Ошибка входа", iconError)
		return err
	}
	d.logger.Info("dashboard: logged in", slog.String("email", form.Email))
	d.notifier.Toast(ctx, "Вы вошли: "+form.Email, notify.Success)

	d.reloadFavorites(ctx)
	d.reloadQuotes(ctx)
	d.sessionChanged()
	return nil
}

// loginFailure - текст ошибки входа: тело ответа или код статуса
func loginFailure(err error) string {
	if errors.Is(err, errs.ErrNoTokenReturned) {
		return "Сервер не вернул токен."
	}
	if apiErr, ok := api_client.AsAPIError(err); ok {
		if apiErr.Body != "" {
			return apiErr.Body
		}
		return fmt.Sprintf("Неверный логин (HTTP %d)", apiErr.StatusCode)
	}
	return "Ошибка сети при входе."
}

// Logout - выход: токен удаляется, избранное и таблица возвращаются в публичный режим
func (d *Dashboard) Logout(ctx context.Context) error {
	err := d.sess.Logout(ctx)
	d.seq.Invalidate(opFavorites)
	d.mu.Lock()
	d.favorites = nil
	d.favErr = ""
	d.mu.Unlock()
	d.sessionChanged()

	if err != nil {
		d.logger.Error("dashboard: clear token failed", slog.String("error", err.Error()))
		d.notifier.Modal(ctx, "Не удалось удалить токен.", titleError, iconError)
		return err
	}
	d.notifier.Toast(ctx, "Вы вышли", notify.Info)
	d.reloadQuotes(ctx)
	return nil
}

// Register - регистрация. Вход после неё не выполняется.
func (d *Dashboard) Register(ctx context.Context, form RegisterForm) error {
	if err := d.check(&form); err != nil {
		d.notifier.Modal(ctx, "Укажите имя, email и пароль.", titleRequired, iconWarning)
		return err
	}

	user, err := d.api.Register(ctx, domain.Registration{Name: form.Name, Email: form.Email, Password: form.Password})
	if err != nil {
		d.logger.Warn("dashboard: register failed", slog.String("email", form.Email), slog.String("error", err.Error()))
		d.notifier.Modal(ctx, detail(err), "Ошибка регистрации", iconError)
		return err
	}

	email := user.Email
	if email == "" {
		email = form.Email
	}
	d.notifier.Toast(ctx, "Регистрация прошла успешно: "+email, notify.Success)
	return nil
}

// requireToken - токен для защищённого действия. Без токена пользователь видит
// просьбу войти, запрос в API не уходит.
func (d *Dashboard) requireToken(ctx context.Context, message string) (string, error) {
	token, err := d.sess.Token(ctx)
	if err != nil {
		d.logger.Error("dashboard: token read failed", slog.String("error", err.Error()))
	}
	if token == "" {
		d.notifier.Modal(ctx, message, titleLogin, iconLock)
		return "", errs.ErrLoginRequired
	}
	return token, nil
}

// reloadQuotes - перезагрузка после изменения; ошибку уже видит пользователь
func (d *Dashboard) reloadQuotes(ctx context.Context) {
	if err := d.LoadQuotes(ctx); err != nil && !errors.Is(err, errs.ErrStaleResponse) {
		d.logger.Debug("dashboard: reload after change failed", slog.String("error", err.Error()))
	}
}

// Resync - перечитать избранное и таблицу после того, как сессию изменил другой дашборд
func (d *Dashboard) Resync(ctx context.Context) error {
	d.seq.Invalidate(opFavorites)
	d.seq.Invalidate(opQuotes)
	if err := d.LoadFavorites(ctx); err != nil && !errors.Is(err, errs.ErrStaleResponse) {
		return err
	}
	if err := d.LoadQuotes(ctx); err != nil && !errors.Is(err, errs.ErrStaleResponse) {
		return err
	}
	return nil
}

func (d *Dashboard) sessionChanged() {
	if d.onSessionChange != nil {
		d.onSessionChange()
	}
}
