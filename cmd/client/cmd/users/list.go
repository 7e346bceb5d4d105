// cmd/client/cmd/users/list.go
package users

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"userpanel/internal/domain/user"
	"userpanel/internal/panel"
)

var (
	searchTerm   string
	sortField    string
	statusFilter string
	pageNumber   int
	listFormat   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Показать страницу коллекции",
	Long: `Просмотр коллекции с поиском, сортировкой, фильтром по статусу
и постраничной навигацией.

Поиск и сортировка взаимоисключающие: поисковый запрос сбрасывает
выбранное поле сортировки, результат упорядочивается по времени
последнего изменения. Страница всегда содержит не более 10 записей.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFromContext(cmd)
		if err != nil {
			return err
		}

		if searchTerm != "" && sortField != "" {
			return fmt.Errorf("флаги --search и --sort взаимоисключающие")
		}

		ctx := cmd.Context()

		// Порядок диспетчеризации повторяет порядок действий
		// пользователя: фильтр, затем сортировка или поиск, затем
		// переход на страницу.
		if statusFilter != "" {
			if _, err := app.Dispatch(ctx, panel.FilterIntent{Status: user.Status(statusFilter)}); err != nil {
				return err
			}
		}
		if sortField != "" {
			if _, err := app.Dispatch(ctx, panel.SortIntent{Field: sortField}); err != nil {
				return err
			}
		}
		view, err := app.Dispatch(ctx, panel.SearchIntent{Term: searchTerm})
		if err != nil {
			return fmt.Errorf("ошибка получения списка: %w", err)
		}
		// Любое значение, кроме единицы по умолчанию, уходит в редьюсер:
		// --page 0 и выход за диапазон — это ошибка, а не первая страница.
		if pageNumber != 1 {
			view, err = app.Dispatch(ctx, panel.PageIntent{Page: pageNumber})
			if err != nil {
				return err
			}
		}

		switch listFormat {
		case "json":
			return printViewJSON(view)
		case "table":
			return printViewTable(view)
		default:
			return printViewSimple(view)
		}
	},
}

func printViewSimple(view panel.View) error {
	if view.Empty() {
		fmt.Println("Данные не найдены")
		return nil
	}

	fmt.Printf("Найдено записей: %d\n\n", len(view.Results))

	for _, row := range view.Rows() {
		fmt.Printf("%d. %s <%s>\n", row.Position, row.Name, row.Email)
		fmt.Printf("   %s | %s | %s | Обновлено: %s\n",
			statusLabel(row.Status), row.Phone, row.Address, row.UpdatedAt)
		fmt.Println()
	}

	printPageFooter(view.State)
	return nil
}

func printViewTable(view panel.View) error {
	if view.Empty() {
		fmt.Println("Данные не найдены")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "No.\tИмя\tEmail\tТелефон\tАдрес\tСтатус\tОбновлено\t\n")
	fmt.Fprintf(w, "---\t---\t---\t---\t---\t---\t---\t\n")

	for _, row := range view.Rows() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t\n",
			row.Position,
			truncate(row.Name, 30),
			row.Email,
			row.Phone,
			truncate(row.Address, 30),
			row.Status,
			row.UpdatedAt,
		)
	}

	w.Flush()
	printPageFooter(view.State)
	return nil
}

func printViewJSON(view panel.View) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(struct {
		Rows       []panel.Row `json:"rows"`
		Page       int         `json:"page"`
		TotalPages int         `json:"totalPages"`
		Total      int         `json:"total"`
	}{
		Rows:       view.Rows(),
		Page:       view.State.CurrentPage,
		TotalPages: view.State.TotalPages,
		Total:      len(view.Results),
	})
}

func printPageFooter(state panel.QueryState) {
	prev := "<"
	if !state.HasPrev() {
		prev = color.New(color.Faint).Sprint("<")
	}
	next := ">"
	if !state.HasNext() {
		next = color.New(color.Faint).Sprint(">")
	}
	fmt.Printf("\n%s Страница %d из %d %s\n", prev, state.CurrentPage, state.TotalPages, next)
}

func statusLabel(status string) string {
	switch user.Status(status) {
	case user.StatusActive:
		return color.GreenString(status)
	case user.StatusInactive:
		return color.RedString(status)
	default:
		return status
	}
}

func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func init() {
	listCmd.Flags().StringVarP(&searchTerm, "search", "q", "", "поисковый запрос по всем полям")
	listCmd.Flags().StringVarP(&sortField, "sort", "s", "", "поле сортировки (name, email, phone, address, status)")
	listCmd.Flags().StringVar(&statusFilter, "status", "", "фильтр по статусу (Active, Inactive)")
	listCmd.Flags().IntVarP(&pageNumber, "page", "p", 1, "номер страницы")
	listCmd.Flags().StringVarP(&listFormat, "format", "f", "table", "формат вывода (simple, table, json)")
}
