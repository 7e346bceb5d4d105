package users

import (
	"fmt"

	"github.com/spf13/cobra"

	"userpanel/cmd/client/cmd/types"
	"userpanel/internal/app/client"
)

// UsersCmd - родительская команда для всех операций с коллекцией
var UsersCmd = &cobra.Command{
	Use:   "users",
	Short: "Управление коллекцией пользователей",
	Long:  `Просмотр, поиск, сортировка, фильтрация и редактирование записей коллекции.`,
}

// appFromContext достает App, положенный root-командой в контекст.
func appFromContext(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("приложение не инициализировано")
	}
	return app, nil
}

func init() {
	UsersCmd.AddCommand(listCmd)
	UsersCmd.AddCommand(addCmd)
	UsersCmd.AddCommand(editCmd)
	UsersCmd.AddCommand(deleteCmd)
	UsersCmd.AddCommand(resetCmd)
}
