// cmd/client/cmd/users/edit.go
package users

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"userpanel/internal/domain/user"
)

var (
	editName    string
	editEmail   string
	editPhone   string
	editAddress string
	editStatus  string
)

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Отредактировать запись",
	Long: `Редактирование существующей записи по идентификатору.

Изменяются только поля, указанные флагами; остальные сохраняют
текущие значения. Время создания записи не меняется.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		current, err := app.FindUser(cmd.Context(), args[0])
		if err != nil {
			return fmt.Errorf("запись не найдена: %w", err)
		}

		form := app.Form()
		form.OpenForEdit(*current)

		if editName != "" {
			form.Draft.Name = editName
		}
		if editEmail != "" {
			form.Draft.Email = editEmail
		}
		if editPhone != "" {
			form.Draft.Phone = editPhone
		}
		if editAddress != "" {
			form.Draft.Address = editAddress
		}
		if editStatus != "" {
			form.Draft.Status = user.Status(editStatus)
		}

		fmt.Println("Обновление записи...")
		if _, err := app.UpdateUser(cmd.Context()); err != nil {
			fmt.Println(color.RedString("Не удалось обновить запись: %v", err))
			return fmt.Errorf("ошибка обновления записи: %w", err)
		}

		fmt.Println(color.GreenString("Запись %s обновлена", args[0]))
		return nil
	},
}

func init() {
	editCmd.Flags().StringVar(&editName, "name", "", "новое имя")
	editCmd.Flags().StringVar(&editEmail, "email", "", "новый email")
	editCmd.Flags().StringVar(&editPhone, "phone", "", "новый телефон")
	editCmd.Flags().StringVar(&editAddress, "address", "", "новый адрес")
	editCmd.Flags().StringVar(&editStatus, "status", "", "новый статус (Active, Inactive)")
}
