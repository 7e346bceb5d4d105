package users

import "userpanel/internal/domain/user"

type listInput struct {
	Sort   string `query:"_sort" example:"name" doc:"Поле сортировки: name, email, phone, address, status"`
	Order  string `query:"_order" example:"asc" doc:"Направление сортировки: asc или desc"`
	Status string `query:"status" example:"Active" doc:"Фильтр по статусу: Active или Inactive"`
}

// listOutput возвращает плоский JSON-массив, без конверта.
type listOutput struct {
	Body []user.User
}

type getInput struct {
	ID string `path:"id" example:"665aff00abababababababab" doc:"ID пользователя"`
}

type getOutput struct {
	Body user.User
}

type createInput struct {
	Body user.User
}

type createOutput struct {
	Body user.User
}

type updateInput struct {
	ID   string `path:"id" example:"665aff00abababababababab" doc:"ID пользователя"`
	Body user.User
}

type updateOutput struct {
	Body user.User
}

type deleteInput struct {
	ID string `path:"id" example:"665aff00abababababababab" doc:"ID пользователя"`
}

type deleteOutput struct{}
