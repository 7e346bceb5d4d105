// cmd/client/cmd/users/delete.go
package users

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Удалить запись",
	Long: `Удаление записи из коллекции по идентификатору.

Удаление необратимо и всегда требует подтверждения. Вне терминала
подтверждение невозможно — используйте флаг --yes.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}
		id := args[0]

		if !deleteYes {
			if !term.IsTerminal(int(os.Stdin.Fd())) {
				return fmt.Errorf("подтверждение недоступно вне терминала; используйте --yes")
			}

			current, err := app.FindUser(cmd.Context(), id)
			if err != nil {
				return fmt.Errorf("запись не найдена: %w", err)
			}

			fmt.Printf("Удалить запись %s (%s, %s)? [y/N]: ", id, current.Name, current.Email)
			scanner := bufio.NewScanner(os.Stdin)
			answer := ""
			if scanner.Scan() {
				answer = strings.ToLower(strings.TrimSpace(scanner.Text()))
			}
			if answer != "y" && answer != "yes" {
				fmt.Println("Удаление отменено")
				return nil
			}
		}

		view, err := app.DeleteUser(cmd.Context(), id)
		if err != nil {
			fmt.Println(color.RedString("Не удалось удалить запись: %v", err))
			return fmt.Errorf("ошибка удаления записи: %w", err)
		}

		fmt.Println(color.GreenString("Запись %s удалена", id))
		fmt.Printf("Осталось записей: %d\n", len(view.Results))
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "удалить без интерактивного подтверждения")
}
