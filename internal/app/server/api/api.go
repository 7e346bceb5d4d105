//Сервер коллекции пользователей. Совместим по формату с json-server:
//GET    /users           # Список (query: _sort, _order, status)
//GET    /users/{id}      # Получить пользователя
//POST   /users           # Создать пользователя (201)
//PUT    /users/{id}      # Обновить пользователя
//DELETE /users/{id}      # Удалить пользователя (204)
//GET    /api/v1/health   # Проверка живости

package api

import (
	healthAPI "userpanel/internal/app/server/api/http/health"
	"userpanel/internal/app/server/api/http/middleware"
	"userpanel/internal/app/server/api/http/middleware/logger"
	usersAPI "userpanel/internal/app/server/api/http/users"
	"userpanel/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"golang.org/x/exp/slog"
)

type Handlers struct {
	Health *healthAPI.Handler
	Users  *usersAPI.Handler
}

// New создает *chi.Mux со всеми операциями через huma.Register
func New(repo user.Repository, backend string, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("Userpanel API", "1.0.0")

	API := humachi.New(mux, config)

	h := handlers(repo, backend, log)
	h.Health.SetupRoutes(API)
	h.Users.SetupRoutes(API)

	return mux
}

func handlers(repo user.Repository, backend string, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(backend, log, middlewares.GetAllAndClear())

	userService := user.NewService(repo, user.NewFormValidator(), log)
	middlewares.Add(loggerMW.Middleware())
	usersHandler := usersAPI.NewHandler(userService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Users:  usersHandler,
	}
}
