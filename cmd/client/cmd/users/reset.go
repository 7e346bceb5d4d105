// cmd/client/cmd/users/reset.go
package users

import (
	"fmt"

	"github.com/spf13/cobra"

	"userpanel/internal/panel"
)

var resetFormat string

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Сбросить поиск, сортировку и фильтр",
	Long: `Возврат коллекции к виду по умолчанию: без поискового запроса,
без сортировки и фильтра, первая страница, порядок по времени
последнего изменения.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		view, err := app.Dispatch(cmd.Context(), panel.ResetIntent{})
		if err != nil {
			return fmt.Errorf("ошибка сброса: %w", err)
		}

		switch resetFormat {
		case "json":
			return printViewJSON(view)
		case "table":
			return printViewTable(view)
		default:
			return printViewSimple(view)
		}
	},
}

func init() {
	resetCmd.Flags().StringVarP(&resetFormat, "format", "f", "table", "формат вывода (simple, table, json)")
}
