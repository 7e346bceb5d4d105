package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// Config - конфигурация сервера коллекции пользователей.
type Config struct {
	Env    string
	Server ServerConfig
	DB     DBConfig
}

type ServerConfig struct {
	RunAddress string
}

type DBConfig struct {
	// DatabaseURI - DSN PostgreSQL. Пустое значение переключает сервер
	// на файловое хранилище SQLite.
	DatabaseURI string
	Migrations  string
	SQLitePath  string
}

// MustLoad загружает конфигурацию из окружения и завершает процесс при ошибке.
func MustLoad() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("файл .env не найден, используются переменные окружения")
	}

	viper.SetDefault("ENV", EnvLocal)
	viper.SetDefault("RUN_ADDRESS", "localhost:5000")
	viper.SetDefault("DATABASE_URI", "")
	viper.SetDefault("MIGRATIONS_PATH", "migrations")
	viper.SetDefault("SQLITE_PATH", "userpanel.db")

	viper.AutomaticEnv()

	cfg := &Config{
		Env: viper.GetString("ENV"),
		Server: ServerConfig{
			RunAddress: viper.GetString("RUN_ADDRESS"),
		},
		DB: DBConfig{
			DatabaseURI: viper.GetString("DATABASE_URI"),
			Migrations:  viper.GetString("MIGRATIONS_PATH"),
			SQLitePath:  viper.GetString("SQLITE_PATH"),
		},
	}

	if err := cfg.validate(); err != nil {
		panic(fmt.Sprintf("некорректная конфигурация: %v", err))
	}

	return cfg
}

func (c *Config) validate() error {
	if c.Server.RunAddress == "" {
		return fmt.Errorf("не задан адрес сервера")
	}
	if c.Env != EnvLocal && c.Env != EnvDev && c.Env != EnvProd {
		return fmt.Errorf("неизвестное окружение %q", c.Env)
	}
	if c.DB.DatabaseURI == "" && c.DB.SQLitePath == "" {
		return fmt.Errorf("не задано ни одно хранилище")
	}
	return nil
}

// UsePostgres сообщает, настроено ли основное хранилище PostgreSQL.
func (c *Config) UsePostgres() bool {
	return c.DB.DatabaseURI != ""
}

func (c *Config) IsProd() bool {
	return c.Env == EnvProd
}
