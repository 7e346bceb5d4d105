package middleware

import "github.com/danielgtaylor/huma/v2"

// Container накапливает huma-middleware до регистрации операций.
type Container struct {
	middlewares huma.Middlewares
}

func NewContainer() *Container {
	return &Container{}
}

// Add добавляет middleware в контейнер.
func (c *Container) Add(m func(ctx huma.Context, next func(huma.Context))) {
	c.middlewares = append(c.middlewares, m)
}

// GetAllAndClear возвращает накопленные middleware и очищает контейнер.
func (c *Container) GetAllAndClear() huma.Middlewares {
	out := c.middlewares
	c.middlewares = nil
	return out
}
