package users

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-list",
		Method:      http.MethodGet,
		Path:        "/users",
		Summary:     "Список пользователей",
		Description: "Возвращает коллекцию с необязательной сортировкой (_sort, _order) и фильтром по статусу.",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) getOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-get",
		Method:      http.MethodGet,
		Path:        "/users/{id}",
		Summary:     "Получить пользователя",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "users-create",
		Method:        http.MethodPost,
		Path:          "/users",
		Summary:       "Создать пользователя",
		Description:   "ID приходит от клиента в теле запроса, сервер проверяет формат и уникальность.",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "users-update",
		Method:      http.MethodPut,
		Path:        "/users/{id}",
		Summary:     "Обновить пользователя",
		Tags:        []string{"users"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID:   "users-delete",
		Method:        http.MethodDelete,
		Path:          "/users/{id}",
		Summary:       "Удалить пользователя",
		Tags:          []string{"users"},
		DefaultStatus: http.StatusNoContent,
		Middlewares:   h.middleware,
	}
}
