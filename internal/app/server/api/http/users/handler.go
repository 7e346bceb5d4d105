package users

import (
	"context"
	"errors"

	"userpanel/internal/domain/user"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

type Handler struct {
	service    user.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service user.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.getOp(), h.get)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	q := user.ListQuery{
		SortField: input.Sort,
		Order:     input.Order,
		Status:    user.Status(input.Status),
	}

	found, err := h.service.List(ctx, q)
	if err != nil {
		return nil, mapError(err)
	}

	// json-server отдает пустой массив, а не null
	if found == nil {
		found = []user.User{}
	}

	return &listOutput{Body: found}, nil
}

func (h *Handler) get(ctx context.Context, input *getInput) (*getOutput, error) {
	u, err := h.service.Get(ctx, input.ID)
	if err != nil {
		return nil, mapError(err)
	}

	return &getOutput{Body: *u}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	u := input.Body
	if err := h.service.Create(ctx, &u); err != nil {
		return nil, mapError(err)
	}

	return &createOutput{Body: u}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	u := input.Body
	u.ID = input.ID

	if err := h.service.Update(ctx, &u); err != nil {
		return nil, mapError(err)
	}

	return &updateOutput{Body: u}, nil
}

func (h *Handler) delete(ctx context.Context, input *deleteInput) (*deleteOutput, error) {
	if err := h.service.Delete(ctx, input.ID); err != nil {
		return nil, mapError(err)
	}

	return &deleteOutput{}, nil
}

// mapError переводит доменные ошибки в HTTP статусы huma.
func mapError(err error) error {
	switch {
	case errors.Is(err, user.ErrNotFound):
		return huma.Error404NotFound("user not found", err)
	case errors.Is(err, user.ErrDuplicateID):
		return huma.Error409Conflict("id already exists", err)
	case errors.Is(err, user.ErrInvalidID):
		return huma.Error400BadRequest("malformed id", err)
	case errors.Is(err, user.ErrInvalidInput):
		return huma.Error422UnprocessableEntity("invalid user payload", err)
	default:
		return huma.Error500InternalServerError("internal error", err)
	}
}
