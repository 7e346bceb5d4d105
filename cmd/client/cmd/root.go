// cmd/client/cmd/root.go
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slog"

	"userpanel/cmd/client/cmd/types"
	"userpanel/cmd/client/cmd/users"
	"userpanel/internal/app/client"
	"userpanel/internal/app/client/config"
	"userpanel/internal/utils/logger"
)

var (
	cfg        *config.Config
	log        *slog.Logger
	app        *client.App
	debug      bool
	jsonOutput bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "userpanel",
	Short: "UserPanel - панель управления коллекцией пользователей",
	Long: `UserPanel — это клиент для управления удаленной коллекцией
пользователей: поиск, сортировка, фильтрация по статусу, постраничный
просмотр и редактирование записей.

Коллекция хранится на сервере; клиент держит только текущее
представление и состояние запроса.`,
	PersistentPreRunE: setupApp,
	SilenceUsage:      true,
	SilenceErrors:     true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func setupApp(cmd *cobra.Command, _ []string) error {
	// Загружаем конфигурацию
	cfg = config.MustLoad()

	// Переопределяем настройки из флагов командной строки
	if serverURL != "" {
		cfg.ServerAddress = serverURL
	}
	if debug {
		cfg.Env = logger.EnvLocal
	}

	// Настраиваем логгер
	log = logger.New(cfg.Env)

	// Создаем приложение
	var err error
	app, err = client.New(cfg, log)
	if err != nil {
		return fmt.Errorf("ошибка инициализации приложения: %w", err)
	}

	// Передаем приложение командам через контекст
	cmd.SetContext(context.WithValue(cmd.Context(), types.ClientAppKey, app))
	return nil
}

func init() {
	cobra.OnInitialize()

	// Глобальные флаги
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "включить отладочный режим")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "вывод в формате JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "адрес хранилища коллекции")

	rootCmd.AddCommand(users.UsersCmd)
}
