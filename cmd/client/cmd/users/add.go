// cmd/client/cmd/users/add.go
package users

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"userpanel/internal/domain/user"
)

var (
	addName    string
	addEmail   string
	addPhone   string
	addAddress string
	addStatus  string
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Добавить нового пользователя",
	Long: `Создание новой записи в коллекции.

Все поля обязательны. Не указанные флагами поля запрашиваются
интерактивно. Идентификатор записи генерируется автоматически.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		form := app.Form()
		form.OpenForCreate()
		form.Draft = user.User{
			Name:    addName,
			Email:   addEmail,
			Phone:   addPhone,
			Address: addAddress,
			Status:  user.Status(addStatus),
		}

		if err := fillMissingFields(&form.Draft); err != nil {
			form.Close()
			return err
		}

		fmt.Println("Создание записи...")
		created, _, err := app.CreateUser(cmd.Context())
		if err != nil {
			// Черновик сохранен: пользователь может исправить данные
			// и повторить отправку.
			fmt.Println(color.RedString("Не удалось создать запись: %v", err))
			return fmt.Errorf("ошибка создания записи: %w", err)
		}

		fmt.Println()
		fmt.Println(color.GreenString("Запись '%s' успешно создана", created.Name))
		fmt.Printf("ID: %s\n", created.ID)
		return nil
	},
}

// fillMissingFields дозапрашивает обязательные поля в терминале.
// Вне терминала пустые поля — сразу ошибка валидации.
func fillMissingFields(draft *user.User) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	prompt := func(label string, dst *string) {
		if *dst != "" {
			return
		}
		fmt.Printf("%s: ", label)
		if scanner.Scan() {
			*dst = strings.TrimSpace(scanner.Text())
		}
	}

	prompt("Имя", &draft.Name)
	prompt("Email", &draft.Email)
	prompt("Телефон", &draft.Phone)
	prompt("Адрес", &draft.Address)

	if draft.Status == "" {
		fmt.Printf("Статус [1 - %s, 2 - %s]: ", user.StatusActive, user.StatusInactive)
		if scanner.Scan() {
			switch strings.TrimSpace(scanner.Text()) {
			case "1":
				draft.Status = user.StatusActive
			case "2":
				draft.Status = user.StatusInactive
			}
		}
	}

	return nil
}

func init() {
	addCmd.Flags().StringVar(&addName, "name", "", "имя пользователя")
	addCmd.Flags().StringVar(&addEmail, "email", "", "email")
	addCmd.Flags().StringVar(&addPhone, "phone", "", "телефон")
	addCmd.Flags().StringVar(&addAddress, "address", "", "адрес")
	addCmd.Flags().StringVar(&addStatus, "status", "", "статус (Active, Inactive)")
}
