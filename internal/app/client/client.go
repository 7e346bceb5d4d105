package client

import (
	"context"
	"fmt"

	"golang.org/x/exp/slog"

	"userpanel/internal/app/client/config"
	"userpanel/internal/domain/user"
	"userpanel/internal/panel"
)

// App связывает конфигурацию, HTTP-клиент и сессию панели.
// Команды CLI работают только через App.
type App struct {
	config  *config.Config
	log     *slog.Logger
	store   *httpClient
	session *panel.Session
	form    panel.FormState
}

func New(cfg *config.Config, log *slog.Logger) (*App, error) {
	// Инициализируем HTTP клиент
	store, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	return &App{
		config:  cfg,
		log:     log,
		store:   store,
		session: panel.NewSession(store, log),
	}, nil
}

// Session возвращает сессию панели.
func (a *App) Session() *panel.Session {
	return a.session
}

// Form возвращает состояние формы добавления/редактирования.
func (a *App) Form() *panel.FormState {
	return &a.form
}

// Dispatch проксирует интент в сессию панели.
func (a *App) Dispatch(ctx context.Context, intent panel.Intent) (panel.View, error) {
	return a.session.Dispatch(ctx, intent)
}

// CreateUser отправляет черновик формы и возвращает созданную запись
// с присвоенным идентификатором. При ошибке черновик сохраняется,
// чтобы пользователь мог повторить отправку.
func (a *App) CreateUser(ctx context.Context) (user.User, panel.View, error) {
	created, view, err := a.session.CreateUser(ctx, a.form.Draft)
	if err != nil {
		return created, view, err
	}
	a.form.Close()
	return created, view, nil
}

// UpdateUser отправляет отредактированную запись.
func (a *App) UpdateUser(ctx context.Context) (panel.View, error) {
	view, err := a.session.UpdateUser(ctx, a.form.Draft)
	if err != nil {
		return view, err
	}
	a.form.Close()
	return view, nil
}

// DeleteUser удаляет запись. Подтверждение — ответственность CLI.
func (a *App) DeleteUser(ctx context.Context, id string) (panel.View, error) {
	return a.session.DeleteUser(ctx, id)
}

// FindUser ищет запись в текущем результате по идентификатору.
func (a *App) FindUser(ctx context.Context, id string) (*user.User, error) {
	view, err := a.session.Dispatch(ctx, panel.RefreshIntent{})
	if err != nil {
		return nil, err
	}
	for i := range view.Results {
		if view.Results[i].ID == id {
			return &view.Results[i], nil
		}
	}
	return nil, user.ErrNotFound
}
